package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fixyourlife/fixyourlife/internal/model"
	"github.com/fixyourlife/fixyourlife/internal/plan"
	"github.com/fixyourlife/fixyourlife/internal/progress"
)

var reportPeriod string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize completion rates for the current week or month",
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
		history := agg.History()

		today := model.DayOf(time.Now())
		var from, to model.Day
		switch reportPeriod {
		case "week":
			from, to = progress.WeekRange(today)
		case "month":
			from, to = progress.MonthRange(today)
		default:
			return fmt.Errorf("invalid --period %q (expected week or month)", reportPeriod)
		}

		summary := progress.PeriodSummary(history, from, to)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Period: %s (%s to %s)\n", reportPeriod, from, to)
		fmt.Fprintf(out, "Average rate: %d%%\n", progress.RoundRate(summary.AverageRate))
		fmt.Fprintf(out, "Best day: %d%%\n", progress.RoundRate(summary.HighestRate))
		fmt.Fprintf(out, "Tasks: %d/%d\n", summary.TasksCompleted, summary.TotalTasks)
		fmt.Fprintf(out, "Active days: %d\n", summary.ActiveDays)
		fmt.Fprintf(out, "Longest streak: %d day(s)\n", progress.Streak(history))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportPeriod, "period", "week", "Reporting period: week or month")
}
