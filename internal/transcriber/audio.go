package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// preprocess converts audio to mono 16-bit PCM WAV at the configured sample
// rate, the input format whisper.cpp expects.
func (w *whisperTranscriber) preprocess(ctx context.Context, audioPath, workDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	wavPath := filepath.Join(workDir, base+"_16k.wav")

	w.logger.Debug(ctx, "Preprocessing audio: %s -> %s", audioPath, wavPath)

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", strconv.Itoa(w.audio.SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	if _, err := w.exec.Execute(ctx, w.audio.FFmpegPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg preprocess: %w", err)
	}

	return wavPath, nil
}
