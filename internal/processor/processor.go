package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/verba/internal/models"
)

// Process turns one inbox file into a saved session plus export files.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Obtain the transcript
	transcript, err := p.readTranscript(ctx, path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	if strings.TrimSpace(transcript) == "" {
		p.logger.Warn(ctx, "No speech detected in %s, nothing to summarize", path)
		if err := p.moveToArchived(ctx, path); err != nil {
			p.logger.Warn(ctx, "Failed to move %s to archived folder: %v", path, err)
		}
		return nil
	}

	// Step 2: Summarize and save (storage failure keeps the summary)
	res := p.Summarize(ctx, transcript, true)

	// Step 3: Write export documents
	sess := p.sessionFor(ctx, res, transcript)
	outputs, err := p.writeOutputs(ctx, path, sess)
	if err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	// Step 4: Move source to archived folder
	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move %s to archived folder: %v", path, err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	if res.Saved() {
		p.logger.Info(ctx, "Session: %s", res.SessionID)
	}
	for _, out := range outputs {
		p.logger.Info(ctx, "Output: %s", out)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) readTranscript(ctx context.Context, path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	}
	return p.Transcribe(ctx, path)
}

// sessionFor prefers the stored record so exports carry the persisted id
// and timestamp.
func (p *implProcessor) sessionFor(ctx context.Context, res Result, transcript string) models.Session {
	if res.Saved() {
		sess, err := p.store.Get(ctx, res.SessionID)
		if err == nil {
			return sess
		}
		p.logger.Warn(ctx, "Failed to reload session %s: %v", res.SessionID, err)
	}
	return models.Session{
		ID:         res.SessionID,
		CreatedAt:  time.Now().UTC(),
		Transcript: transcript,
		Summary:    res.Summary,
	}
}
