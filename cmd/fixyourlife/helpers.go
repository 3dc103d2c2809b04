package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fixyourlife/fixyourlife/internal/config"
	"github.com/fixyourlife/fixyourlife/internal/plan"
	"github.com/fixyourlife/fixyourlife/internal/planner"
	"github.com/fixyourlife/fixyourlife/internal/progress"
	"github.com/fixyourlife/fixyourlife/internal/remote"
)

func loadConfig() config.Config {
	cfg := config.Load()
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
		cfg.RemoteDBPath = filepath.Join(dataDirFlag, "sync.db")
	}
	return cfg
}

// openRemoteStore opens the progress database and brings its schema up to
// date. The returned cleanup closes the underlying connection.
func openRemoteStore(path string) (*remote.SQLiteStore, func(), error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open progress db: %w", err)
	}
	if err := remote.MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate progress db: %w", err)
	}
	store, err := remote.NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return store, func() { _ = db.Close() }, nil
}

func openSession(cfg config.Config, opts ...plan.SessionOption) (*plan.Session, *progress.Aggregator, *plan.FileCache, error) {
	cache, err := plan.NewFileCache(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, err
	}
	agg, err := progress.NewAggregator(cache)
	if err != nil {
		return nil, nil, nil, err
	}
	session, err := plan.NewSession(cache, append(opts, plan.WithRecorder(agg))...)
	if err != nil {
		return nil, nil, nil, err
	}
	return session, agg, cache, nil
}

// buildGenerator picks the plan source: the AI endpoint when a key is
// configured, otherwise the built-in fallback when it is enabled.
func buildGenerator(cfg config.Config) (plan.Generator, error) {
	if cfg.AIAPIKey != "" {
		client := &planner.Client{
			APIKey:  cfg.AIAPIKey,
			BaseURL: cfg.AIBaseURL,
			Model:   cfg.AIModel,
		}
		if cfg.FallbackPlan {
			return planner.WithFallback(client), nil
		}
		return client, nil
	}
	if cfg.FallbackPlan {
		return planner.Fallback{}, nil
	}
	return nil, errors.New("no plan generator configured: set FYL_AI_API_KEY or FYL_FALLBACK_PLAN=true")
}

// loadProfile fetches the stored onboarding answers. A missing profile is
// not an error; generation then runs on defaults.
func loadProfile(errw io.Writer, store *remote.SQLiteStore, userID string) map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	answers, err := store.LoadProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, remote.ErrNotFound) {
			fmt.Fprintf(errw, "warning: load profile: %v\n", err)
		}
		return nil
	}
	return answers
}
