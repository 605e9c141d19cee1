// Package api provides the HTTP boundary of Verba.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nguyentantai21042004/verba/internal/config"
	"github.com/nguyentantai21042004/verba/internal/logger"
	"github.com/nguyentantai21042004/verba/internal/processor"
	"github.com/nguyentantai21042004/verba/internal/session"
)

// Version is reported by the health endpoint.
const Version = "0.2.0"

// Handler handles HTTP requests.
type Handler struct {
	proc   processor.Processor
	store  session.Store
	config *config.Config
	logger logger.Logger
}

// NewHandler creates a new handler.
func NewHandler(proc processor.Processor, store session.Store, cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{
		proc:   proc,
		store:  store,
		config: cfg,
		logger: log,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Health)
	e.GET("/api/status", h.Status)

	e.POST("/api/transcribe", h.Transcribe)
	e.POST("/api/summarize", h.Summarize)

	e.GET("/api/sessions", h.ListSessions)
	e.GET("/api/sessions/:id", h.GetSession)
	e.GET("/api/sessions/:id/export", h.ExportSession)
	e.DELETE("/api/sessions/:id", h.DeleteSession)
}

// Health returns health status.
// GET /
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Verba API is running",
		"version": Version,
	})
}

// Status describes how the server is configured.
// GET /api/status
func (h *Handler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"online_features_enabled": h.config.Features.Online,
		"backend":                 h.config.Transcriber.Backend,
		"model":                   h.config.Transcriber.Model,
		"audio_preprocessing":     h.config.Audio.Preprocess,
	})
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// fail writes the standard error body. err, when set, becomes the detail.
func fail(c echo.Context, status int, msg string, err error) error {
	body := errorResponse{Error: msg}
	if err != nil {
		body.Detail = err.Error()
	}
	return c.JSON(status, body)
}
