package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nguyentantai21042004/verba/internal/processor"
	"github.com/nguyentantai21042004/verba/internal/transcriber"
)

// Transcribe converts an uploaded recording into text.
// POST /api/transcribe (multipart field "audio")
func (h *Handler) Transcribe(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := c.FormFile("audio")
	if err != nil || file.Filename == "" {
		return fail(c, http.StatusBadRequest, "No audio file provided", nil)
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open upload %s: %v", file.Filename, err)
		return fail(c, http.StatusInternalServerError, "Audio file could not be processed", err)
	}
	defer src.Close()

	transcript, err := h.proc.TranscribeReader(ctx, file.Filename, src)
	switch {
	case errors.Is(err, processor.ErrEmptyAudio):
		return fail(c, http.StatusBadRequest, "Audio file is empty", nil)
	case errors.Is(err, transcriber.ErrAudioNotFound):
		h.logger.Error(ctx, "Audio file not found: %v", err)
		return fail(c, http.StatusInternalServerError, "Audio file could not be processed", err)
	case err != nil:
		h.logger.Error(ctx, "Transcription error: %v", err)
		return fail(c, http.StatusInternalServerError, "Transcription failed. Please try recording again.", err)
	}

	if strings.TrimSpace(transcript) == "" {
		return c.JSON(http.StatusOK, map[string]string{
			"transcript": "",
			"warning":    "No speech detected in audio",
			"status":     "success",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"transcript": transcript,
		"status":     "success",
	})
}
