package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/verba/internal/api"
	"github.com/nguyentantai21042004/verba/internal/config"
	"github.com/nguyentantai21042004/verba/internal/watcher"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and, when paths.input is set, the inbox watcher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	cfg, log := a.cfg, a.logger

	log.Info(ctx, "========================================")
	log.Info(ctx, "Verba %s", api.Version)
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Transcriber: %s (model %s)", cfg.Transcriber.Backend, cfg.Transcriber.Model)
	log.Info(ctx, "Database: %s (%s)", cfg.Database.Path, cfg.Database.Driver)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	server := api.NewServer(api.NewHandler(a.proc, a.store, cfg, log), cfg.Server, log)

	errChan := make(chan error, 2)
	go func() {
		if err := server.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	watchDone := make(chan struct{})

	if cfg.Paths.Input != "" {
		w, err := watcher.New(cfg.Paths.Input, a.proc.Process, log, cfg.Performance.MaxConcurrent)
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer w.Stop()

		go func() {
			defer close(watchDone)
			if err := w.Start(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
				errChan <- fmt.Errorf("watcher: %w", err)
			}
		}()
	} else {
		close(watchDone)
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Verba is ready!")
	log.Info(ctx, "API: %s", cfg.Server.Address)
	if cfg.Paths.Input != "" {
		log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
		log.Info(ctx, "Output: %s", cfg.Paths.Output)
	}
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	var runErr error
	select {
	case <-ctx.Done():
		log.Info(context.Background(), "Shutdown signal received")
	case runErr = <-errChan:
		log.Error(context.Background(), "%v", runErr)
	}

	// Graceful shutdown
	log.Info(context.Background(), "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn(shutdownCtx, "Failed to shutdown HTTP server gracefully: %v", err)
	}
	cancelWatch()
	<-watchDone

	log.Info(context.Background(), "Verba stopped")
	return runErr
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}
	if cfg.Paths.Input != "" {
		dirs = append(dirs, cfg.Paths.Input)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
