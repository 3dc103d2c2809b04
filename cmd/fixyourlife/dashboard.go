package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fixyourlife/fixyourlife/internal/plan"
	"github.com/fixyourlife/fixyourlife/internal/progress"
	"github.com/fixyourlife/fixyourlife/internal/remote"
	"github.com/fixyourlife/fixyourlife/internal/reset"
	"github.com/fixyourlife/fixyourlife/internal/update"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard (the default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command) error {
	cfg := loadConfig()

	// The progress database is best-effort: the dashboard still works
	// from the local cache when it cannot be opened.
	store, closeStore, err := openRemoteStore(cfg.RemoteDBPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: progress db unavailable: %v\n", err)
		store = nil
	} else {
		defer closeStore()
	}

	cache, err := plan.NewFileCache(cfg.DataDir)
	if err != nil {
		return err
	}

	var aggOpts []progress.AggregatorOption
	if store != nil {
		aggOpts = append(aggOpts, progress.WithRemote(store, cfg.UserID))
	}
	agg, err := progress.NewAggregator(cache, aggOpts...)
	if err != nil {
		return err
	}
	if store != nil {
		pullRemoteHistory(cmd, store, cfg.UserID, agg)
	}

	session, err := plan.NewSession(cache, plan.WithRecorder(agg))
	if err != nil {
		return err
	}

	checker := reset.NewChecker(cache)
	checker.Check(session)

	engine := reset.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	// Generation stays optional in the dashboard; pressing "g" without a
	// configured generator reports the problem in the status bar.
	generator, err := buildGenerator(cfg)
	if err != nil {
		generator = nil
	}

	var inputs map[string]string
	if store != nil {
		inputs = loadProfile(cmd.ErrOrStderr(), store, cfg.UserID)
	}

	var notifier update.DesktopNotifier
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	m := update.NewModelWithRuntime(session, agg, cfg, update.RuntimeDeps{
		Checker:     checker,
		ResetEvents: engine.C(),
		Generator:   generator,
		Inputs:      inputs,
		Notifier:    notifier,
	})

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}

// pullRemoteHistory replaces the local rolling history with the remote log,
// which is the source of truth across devices.
func pullRemoteHistory(cmd *cobra.Command, store *remote.SQLiteStore, userID string, agg *progress.Aggregator) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entries, err := store.LoadProgress(ctx, userID, progress.HistoryLimit)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: pull history: %v\n", err)
		return
	}
	if len(entries) > 0 {
		agg.ReplaceHistory(entries)
	}
}
