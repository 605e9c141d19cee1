// Package models holds the value types shared by the summarizer, the session
// store and the boundary layers.
package models

import (
	"time"
	"unicode/utf8"
)

// PreviewLength is the number of characters of a transcript shown in listings.
const PreviewLength = 100

// Summary is the structured note set derived from one transcript.
type Summary struct {
	KeyPoints   []string `json:"key_points"`
	Decisions   []string `json:"decisions"`
	ActionItems []string `json:"action_items"`
}

// Normalize replaces nil sections with empty ones so that every field is
// always present when serialized.
func (s Summary) Normalize() Summary {
	if s.KeyPoints == nil {
		s.KeyPoints = []string{}
	}
	if s.Decisions == nil {
		s.Decisions = []string{}
	}
	if s.ActionItems == nil {
		s.ActionItems = []string{}
	}
	return s
}

// Session is a persisted transcript together with its summary.
type Session struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Transcript string    `json:"transcript"`
	Summary    Summary   `json:"summary"`
}

// Preview is the listing projection of a Session.
type Preview struct {
	ID                string    `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	TranscriptPreview string    `json:"transcript_preview"`
}

// NewPreview projects a session into its listing form.
func NewPreview(id string, createdAt time.Time, transcript string) Preview {
	return Preview{
		ID:                id,
		CreatedAt:         createdAt,
		TranscriptPreview: PreviewText(transcript),
	}
}

// PreviewText returns the first PreviewLength characters of transcript,
// followed by "..." when the transcript is longer.
func PreviewText(transcript string) string {
	if utf8.RuneCountInString(transcript) <= PreviewLength {
		return transcript
	}
	runes := []rune(transcript)
	return string(runes[:PreviewLength]) + "..."
}
