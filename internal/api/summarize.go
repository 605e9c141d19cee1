package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// SummarizeRequest is the request to summarize a transcript.
type SummarizeRequest struct {
	Transcript string `json:"transcript"`
	// SaveSession defaults to true when omitted.
	SaveSession *bool `json:"save_session"`
}

func (r SummarizeRequest) save() bool {
	return r.SaveSession == nil || *r.SaveSession
}

// Summarize turns a transcript into notes and optionally stores a session.
// Storage failures do not fail the request; the response then carries no
// session_id.
// POST /api/summarize
func (h *Handler) Summarize(c echo.Context) error {
	ctx := c.Request().Context()

	var req SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body", nil)
	}

	if strings.TrimSpace(req.Transcript) == "" {
		return fail(c, http.StatusBadRequest, "No transcript provided", nil)
	}

	res := h.proc.Summarize(ctx, req.Transcript, req.save())

	resp := map[string]interface{}{
		"summary": res.Summary,
		"status":  "success",
	}
	if res.Saved() {
		resp["session_id"] = res.SessionID
	}

	return c.JSON(http.StatusOK, resp)
}
