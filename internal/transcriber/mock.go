package transcriber

import (
	"context"
	"fmt"
	"os"
)

// MockTranscript is returned by the mock backend for every existing file.
const MockTranscript = "This is a mock transcription for testing purposes. " +
	"The meeting discussed project timelines and resource allocation. " +
	"We need to complete the documentation by next Friday. " +
	"John will be responsible for the technical specifications."

type mockTranscriber struct{}

// NewMock returns a Transcriber that needs no model or binaries.
func NewMock() Transcriber {
	return mockTranscriber{}
}

func (mockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrAudioNotFound, audioPath)
	}
	return MockTranscript, nil
}

func (mockTranscriber) Name() string {
	return BackendMock
}
