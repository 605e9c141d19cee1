package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/verba/internal/config"
	"github.com/nguyentantai21042004/verba/internal/logger"
	"github.com/nguyentantai21042004/verba/pkg/executor"
)

const (
	BackendWhisper = "whisper"
	BackendMock    = "mock"
)

// New builds the transcriber selected by cfg.Transcriber.Backend. The choice
// is made once at startup.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcriber.Backend {
	case BackendWhisper:
		return &whisperTranscriber{
			cfg:     cfg.Transcriber,
			audio:   cfg.Audio,
			tempDir: cfg.Paths.Temp,
			exec:    exec,
			logger:  log,
		}, nil
	case BackendMock:
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown transcriber backend %q", cfg.Transcriber.Backend)
	}
}
