package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/verba/internal/config"
	"github.com/nguyentantai21042004/verba/internal/logger"
)

type call struct {
	dir  string
	name string
	args []string
}

// fakeExecutor writes whisper's text output instead of running binaries.
type fakeExecutor struct {
	mu         sync.Mutex
	calls      []call
	output     string
	ffmpegErr  error
	whisperErr error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
	f.mu.Unlock()

	switch name {
	case "ffmpeg":
		return "", f.ffmpegErr
	case "whisper-cli":
		if f.whisperErr != nil {
			return "", f.whisperErr
		}
		prefix := filepath.Join(dir, argAfter(args, "-of"))
		return "", os.WriteFile(prefix+".txt", []byte(f.output), 0644)
	}
	return "", errors.New("unexpected command " + name)
}

func argAfter(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Transcriber.Backend = backend
	cfg.Transcriber.ModelPath = "models/ggml-base.en.bin"
	cfg.Transcriber.BinaryPath = "whisper-cli"
	cfg.Paths.Temp = t.TempDir()
	require.NoError(t, cfg.Validate())
	return cfg
}

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meeting.webm")
	require.NoError(t, os.WriteFile(path, []byte("not really audio"), 0644))
	return path
}

func TestNewSelectsBackend(t *testing.T) {
	exec := &fakeExecutor{}

	mock, err := New(testConfig(t, BackendMock), exec, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, BackendMock, mock.Name())

	whisper, err := New(testConfig(t, BackendWhisper), exec, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "whisper (base)", whisper.Name())

	cfg := testConfig(t, BackendMock)
	cfg.Transcriber.Backend = "cloud"
	_, err = New(cfg, exec, logger.NewNop())
	assert.Error(t, err)
}

func TestWhisperTranscribe(t *testing.T) {
	cfg := testConfig(t, BackendWhisper)
	exec := &fakeExecutor{output: " We need to finish the project.\n\n John will handle it. \n"}
	tr, err := New(cfg, exec, logger.NewNop())
	require.NoError(t, err)

	got, err := tr.Transcribe(context.Background(), writeAudio(t))
	require.NoError(t, err)
	assert.Equal(t, "We need to finish the project. John will handle it.", got)

	require.Len(t, exec.calls, 2)
	assert.Equal(t, "ffmpeg", exec.calls[0].name)
	assert.Equal(t, "16000", argAfter(exec.calls[0].args, "-ar"))

	whisper := exec.calls[1]
	assert.Equal(t, "whisper-cli", whisper.name)
	assert.True(t, filepath.IsAbs(argAfter(whisper.args, "-m")))
	assert.True(t, strings.HasSuffix(argAfter(whisper.args, "-m"), filepath.Join("models", "ggml-base.en.bin")))
	assert.NotEmpty(t, whisper.dir, "whisper must run in its work dir")
	assert.Equal(t, exec.calls[0].args[len(exec.calls[0].args)-1], argAfter(whisper.args, "-f"),
		"whisper must read the preprocessed wav")

	entries, err := os.ReadDir(cfg.Paths.Temp)
	require.NoError(t, err)
	assert.Empty(t, entries, "work dir must be cleaned up")
}

func TestWhisperPreprocessFallback(t *testing.T) {
	cfg := testConfig(t, BackendWhisper)
	exec := &fakeExecutor{output: "hello world", ffmpegErr: errors.New("ffmpeg missing")}
	tr, err := New(cfg, exec, logger.NewNop())
	require.NoError(t, err)

	audio := writeAudio(t)
	got, err := tr.Transcribe(context.Background(), audio)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, audio, argAfter(exec.calls[1].args, "-f"))
}

func TestWhisperWithoutPreprocessing(t *testing.T) {
	cfg := testConfig(t, BackendWhisper)
	cfg.Audio.Preprocess = false
	exec := &fakeExecutor{output: "only whisper ran"}
	tr, err := New(cfg, exec, logger.NewNop())
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), writeAudio(t))
	require.NoError(t, err)
	require.Len(t, exec.calls, 1)
	assert.Equal(t, "whisper-cli", exec.calls[0].name)
}

func TestWhisperFailure(t *testing.T) {
	cfg := testConfig(t, BackendWhisper)
	exec := &fakeExecutor{whisperErr: errors.New("model load failed")}
	tr, err := New(cfg, exec, logger.NewNop())
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), writeAudio(t))
	assert.ErrorContains(t, err, "model load failed")
}

func TestAudioNotFound(t *testing.T) {
	for _, backend := range []string{BackendMock, BackendWhisper} {
		t.Run(backend, func(t *testing.T) {
			tr, err := New(testConfig(t, backend), &fakeExecutor{}, logger.NewNop())
			require.NoError(t, err)

			_, err = tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
			assert.ErrorIs(t, err, ErrAudioNotFound)
		})
	}
}

func TestMockTranscribe(t *testing.T) {
	got, err := NewMock().Transcribe(context.Background(), writeAudio(t))
	require.NoError(t, err)
	assert.Equal(t, MockTranscript, got)
}
