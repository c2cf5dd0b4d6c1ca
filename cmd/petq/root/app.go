package root

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"petquest/internal/coach"
	"petquest/internal/config"
	"petquest/internal/engine"
	"petquest/internal/llm"
	"petquest/internal/logging"
	"petquest/internal/storage"
)

type app struct {
	cfg   *config.Config
	log   *slog.Logger
	store *storage.SQLite
	eng   *engine.Engine
	coach *coach.Coach
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	home := opts.home
	if home == "" {
		h, err := config.HomeDir()
		if err != nil {
			return nil, err
		}
		home = h
	}
	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		cfg.DBPath = opts.dbPath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

// openApp wires config, logging, storage, engine and coach. The returned
// cleanup stops engine timers and closes the database.
func openApp(ctx context.Context, cmd *cobra.Command, opts *rootOptions) (*app, func(), error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	eng, err := engine.New(ctx, engine.Options{KV: store, Logger: log, Location: loc})
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	a := &app{
		cfg:   cfg,
		log:   log,
		store: store,
		eng:   eng,
		coach: coach.New(newGenerator(cfg.Coach), log, cfg.Coach.Timeout),
	}
	cleanup := func() {
		eng.Close()
		if err := store.Close(); err != nil {
			log.Warn("close database", "error", err)
		}
	}
	return a, cleanup, nil
}

// newGenerator returns nil when no provider is configured, which puts the
// coach in fallback mode.
func newGenerator(cfg config.CoachConfig) llm.Generator {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		c := llm.NewClient(llm.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
		if !c.IsConfigured() {
			return nil
		}
		return c
	case config.ProviderOllama:
		return llm.NewOllamaClient(llm.OllamaConfig{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	default:
		return nil
	}
}
