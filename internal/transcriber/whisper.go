package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/verba/internal/config"
	"github.com/nguyentantai21042004/verba/internal/logger"
	"github.com/nguyentantai21042004/verba/pkg/executor"
)

type whisperTranscriber struct {
	cfg     config.TranscriberConfig
	audio   config.AudioConfig
	tempDir string
	exec    executor.Executor
	logger  logger.Logger
}

func (w *whisperTranscriber) Name() string {
	if w.cfg.Model != "" {
		return fmt.Sprintf("%s (%s)", BackendWhisper, w.cfg.Model)
	}
	return BackendWhisper
}

// Transcribe runs the whisper.cpp CLI over audioPath and returns the text
// as a single line.
func (w *whisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrAudioNotFound, audioPath)
	}

	if err := os.MkdirAll(w.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	workDir, err := os.MkdirTemp(w.tempDir, "whisper-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	input := audioPath
	if w.audio.Preprocess {
		wav, err := w.preprocess(ctx, audioPath, workDir)
		if err != nil {
			w.logger.Warn(ctx, "Audio preprocessing failed, using original file: %v", err)
		} else {
			input = wav
		}
	}

	// whisper runs inside workDir, so every path it receives is absolute
	// except the output prefix.
	modelPath, err := filepath.Abs(w.cfg.ModelPath)
	if err != nil {
		return "", fmt.Errorf("resolve model path: %w", err)
	}
	if input, err = filepath.Abs(input); err != nil {
		return "", fmt.Errorf("resolve audio path: %w", err)
	}
	const outputPrefix = "transcript"

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, audioPath)

	// -otxt -of: plain text output at <prefix>.txt
	// -bo 5: best of 5 candidates
	// -np: no progress prints on stdout
	args := []string{
		"-m", modelPath,
		"-f", input,
		"-otxt",
		"-of", outputPrefix,
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-bo", "5",
		"-np",
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.exec.ExecuteInDir(ctx, workDir, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	raw, err := os.ReadFile(filepath.Join(workDir, outputPrefix+".txt"))
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	transcript := joinLines(string(raw))
	w.logger.Info(ctx, "Transcription completed: %d characters", len(transcript))
	return transcript, nil
}

// joinLines merges whisper's per-segment lines into one space separated text.
func joinLines(raw string) string {
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
