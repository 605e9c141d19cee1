package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nguyentantai21042004/verba/internal/export"
	"github.com/nguyentantai21042004/verba/internal/models"
	"github.com/nguyentantai21042004/verba/internal/session"
)

// ListSessions lists saved sessions, newest first.
// GET /api/sessions?limit=50
func (h *Handler) ListSessions(c echo.Context) error {
	ctx := c.Request().Context()

	limit := session.DefaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return fail(c, http.StatusBadRequest, "limit must be a positive integer", nil)
		}
		limit = n
	}

	previews, err := h.store.List(ctx, limit)
	if err != nil {
		h.logger.Error(ctx, "Failed to list sessions: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to load session history. Please try again.", err)
	}
	if previews == nil {
		previews = []models.Preview{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sessions": previews,
		"count":    len(previews),
		"status":   "success",
	})
}

// GetSession returns the full session.
// GET /api/sessions/:id
func (h *Handler) GetSession(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	sess, err := h.store.Get(ctx, id)
	if errors.Is(err, session.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Session not found", nil)
	}
	if err != nil {
		h.logger.Error(ctx, "Failed to get session %s: %v", id, err)
		return fail(c, http.StatusInternalServerError, "Failed to load session. Please try again.", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session": sess,
		"status":  "success",
	})
}

// ExportSession downloads a session as a document.
// GET /api/sessions/:id/export?format=markdown|docx
func (h *Handler) ExportSession(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Unsupported export format", err)
	}

	doc, err := h.proc.Export(ctx, id, format)
	if errors.Is(err, session.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Session not found", nil)
	}
	if err != nil {
		h.logger.Error(ctx, "Failed to export session %s: %v", id, err)
		return fail(c, http.StatusInternalServerError, "Failed to export session. Please try again.", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", doc.Name))
	return c.Blob(http.StatusOK, doc.ContentType, doc.Body)
}

// DeleteSession removes a session.
// DELETE /api/sessions/:id
func (h *Handler) DeleteSession(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	deleted, err := h.store.Delete(ctx, id)
	if err != nil {
		h.logger.Error(ctx, "Failed to delete session %s: %v", id, err)
		return fail(c, http.StatusInternalServerError, "Failed to delete session. Please try again.", err)
	}
	if !deleted {
		return fail(c, http.StatusNotFound, "Session not found", nil)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Session deleted successfully",
		"status":  "success",
	})
}
