package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/verba/internal/logger"
)

const (
	defaultSettleInterval = 500 * time.Millisecond
	defaultSettleTimeout  = 2 * time.Minute
)

// New creates a new Watcher instance with concurrency control
func New(inputDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	return newWatcher(inputDir, handler, log, maxConcurrent, defaultSettleInterval)
}

func newWatcher(inputDir string, handler EventHandler, log logger.Logger, maxConcurrent int, settle time.Duration) (*implWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Default to 2 concurrent if not specified
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inputDir:       inputDir,
		handler:        handler,
		logger:         log,
		watcher:        watcher,
		maxConcurrent:  maxConcurrent,
		semaphore:      make(chan struct{}, maxConcurrent),
		settleInterval: settle,
		settleTimeout:  defaultSettleTimeout,
		inflight:       make(map[string]struct{}),
	}, nil
}
