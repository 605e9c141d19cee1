package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ErrEmptyAudio is returned when an uploaded audio stream has no bytes.
var ErrEmptyAudio = errors.New("audio file is empty")

// Transcribe runs the configured transcriber, at most
// performance.max_concurrent at a time.
func (p *implProcessor) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if p.slots.busy() {
		p.logger.Info(ctx, "All %d transcription slots busy, %s is waiting", p.cfg.Performance.MaxConcurrent, audioPath)
	}
	release, err := p.slots.acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("wait for transcription slot: %w", err)
	}
	defer release()

	start := time.Now()
	p.logger.Info(ctx, "Transcribing %s with %s", audioPath, p.transcriber.Name())

	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	p.logger.Info(ctx, "Transcription finished: %d characters in %s", len(transcript), time.Since(start).Round(time.Millisecond))
	return transcript, nil
}

// TranscribeReader spools r into the temp folder, keeping the extension of
// filename, and transcribes it.
func (p *implProcessor) TranscribeReader(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	suffix := filepath.Ext(filename)
	if suffix == "" {
		suffix = ".webm"
	}

	tmp, err := os.CreateTemp(p.cfg.Paths.Temp, "upload-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer p.cleanupTempFile(ctx, tmp.Name())

	n, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	if n == 0 {
		return "", ErrEmptyAudio
	}

	p.logger.Info(ctx, "Received audio %s (%d bytes)", filename, n)
	return p.Transcribe(ctx, tmp.Name())
}
