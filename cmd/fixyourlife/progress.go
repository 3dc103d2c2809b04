package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fixyourlife/fixyourlife/internal/plan"
	"github.com/fixyourlife/fixyourlife/internal/progress"
)

var progressPull bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print the recorded completion history, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		cache, err := plan.NewFileCache(cfg.DataDir)
		if err != nil {
			return err
		}
		agg, err := progress.NewAggregator(cache)
		if err != nil {
			return err
		}

		if progressPull {
			store, closeStore, err := openRemoteStore(cfg.RemoteDBPath)
			if err != nil {
				return err
			}
			defer closeStore()
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			entries, err := store.LoadProgress(ctx, cfg.UserID, progress.HistoryLimit)
			if err != nil {
				return fmt.Errorf("pull history: %w", err)
			}
			agg.ReplaceHistory(entries)
		}

		history := agg.History()
		if len(history) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No progress recorded yet.")
			return nil
		}
		for _, entry := range history {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %3d%%  %d/%d\n",
				entry.Date, progress.RoundRate(entry.CompletionRate), entry.TasksCompleted, entry.TotalTasks)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nLongest streak: %d day(s)\n", progress.Streak(history))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().BoolVar(&progressPull, "pull", false, "Refresh the local history from the progress database first")
}
