package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/verba/internal/logger"
)

type implWatcher struct {
	inputDir       string
	handler        EventHandler
	logger         logger.Logger
	watcher        *fsnotify.Watcher
	maxConcurrent  int
	semaphore      chan struct{}
	wg             sync.WaitGroup
	settleInterval time.Duration
	settleTimeout  time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

// Start processes files already waiting in the inbox, then monitors it for
// new ones until ctx is done.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(SupportedExtensions, ", "))

	if err := w.scanExisting(ctx); err != nil {
		w.logger.Warn(ctx, "Failed to scan inbox: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !IsSupported(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New file detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return fmt.Errorf("read inbox: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		path := filepath.Join(w.inputDir, entry.Name())
		w.logger.Info(ctx, "Found waiting file: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

// dispatch hands path to the handler in its own goroutine once a
// concurrency slot is free. A path already being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	w.mu.Lock()
	if _, busy := w.inflight[path]; busy {
		w.mu.Unlock()
		return nil
	}
	w.inflight[path] = struct{}{}
	w.mu.Unlock()

	// Acquire semaphore slot (blocks if max concurrent reached)
	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		w.done(path)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }() // Release semaphore
		defer w.done(path)

		if err := w.waitUntilWritten(ctx, path); err != nil {
			w.logger.Warn(ctx, "Skipping %s: %v", path, err)
			return
		}

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) done(path string) {
	w.mu.Lock()
	delete(w.inflight, path)
	w.mu.Unlock()
}

// waitUntilWritten polls the file size until two consecutive reads agree.
func (w *implWatcher) waitUntilWritten(ctx context.Context, path string) error {
	deadline := time.Now().Add(w.settleTimeout)
	last := int64(-1)

	for {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat: %w", err)
		}
		if info.Size() == last {
			return nil
		}
		last = info.Size()

		if time.Now().After(deadline) {
			return fmt.Errorf("file still growing after %s", w.settleTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.settleInterval):
		}
	}
}

// IsSupported reports whether path has an extension the inbox accepts.
func IsSupported(path string) bool {
	return slices.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(path)))
}
