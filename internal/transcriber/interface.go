package transcriber

import (
	"context"
	"errors"
)

// ErrAudioNotFound is returned when the audio path does not exist.
var ErrAudioNotFound = errors.New("audio file not found")

// Transcriber converts an audio file into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Name() string
}
