package processor

import (
	"context"
	"io"

	"github.com/nguyentantai21042004/verba/internal/export"
	"github.com/nguyentantai21042004/verba/internal/models"
)

// Processor is the application service behind the CLI, the HTTP API and the
// inbox watcher.
type Processor interface {
	// Transcribe converts an audio file into transcript text.
	Transcribe(ctx context.Context, audioPath string) (string, error)
	// TranscribeReader transcribes an uploaded audio stream. Empty streams
	// yield ErrEmptyAudio.
	TranscribeReader(ctx context.Context, filename string, r io.Reader) (string, error)
	// Summarize builds notes for transcript and, when save is set, persists
	// them. A storage failure never discards the summary.
	Summarize(ctx context.Context, transcript string, save bool) Result
	// Export renders a stored session. Unknown ids yield session.ErrNotFound.
	Export(ctx context.Context, id string, format export.Format) (export.Document, error)
	// Process handles one inbox file end to end.
	Process(ctx context.Context, path string) error
}

// Result is the outcome of Summarize.
type Result struct {
	Summary   models.Summary
	SessionID string
	SaveErr   error
}

// Saved reports whether the summary was persisted.
func (r Result) Saved() bool {
	return r.SessionID != ""
}
