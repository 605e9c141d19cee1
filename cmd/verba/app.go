package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/verba/internal/config"
	"github.com/nguyentantai21042004/verba/internal/logger"
	"github.com/nguyentantai21042004/verba/internal/processor"
	"github.com/nguyentantai21042004/verba/internal/session"
	"github.com/nguyentantai21042004/verba/internal/summarizer"
	"github.com/nguyentantai21042004/verba/internal/transcriber"
	"github.com/nguyentantai21042004/verba/pkg/executor"
)

type rootOptions struct {
	configPath *string
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if *o.configPath == "" {
		return config.LoadDefault()
	}
	return config.Load(*o.configPath)
}

// app holds the wired dependencies of one command invocation.
type app struct {
	cfg    *config.Config
	logger logger.Logger
	store  session.Store
	proc   processor.Processor
}

// newApp wires the dependencies. The session store is opened only when
// withStore is set so that stateless commands never touch the database.
func newApp(ctx context.Context, cmd *cobra.Command, opts *rootOptions, withStore bool) (*app, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.NewWithOutput(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	var store session.Store
	if withStore {
		store, err = openStore(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
	}

	tr, err := transcriber.New(cfg, executor.New(), log)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("create transcriber: %w", err)
	}

	sum := summarizer.New(processor.SummarizerOptions(cfg.Summary))

	return &app{
		cfg:    cfg,
		logger: log,
		store:  store,
		proc:   processor.New(cfg, tr, sum, store, log),
	}, nil
}

func (a *app) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func openStore(ctx context.Context, db config.DatabaseConfig) (session.Store, error) {
	if db.Path != ":memory:" {
		if dir := filepath.Dir(db.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create database dir: %w", err)
			}
		}
	}
	return session.Open(ctx, db.Driver, db.Path)
}
