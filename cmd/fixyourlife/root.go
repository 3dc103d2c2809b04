package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dataDirFlag string

var rootCmd = &cobra.Command{
	Use:   "fixyourlife",
	Short: "fixyourlife tracks your daily plan, progress, and streaks from your terminal",
	Long: `fixyourlife is a local-first daily planner. It keeps an AI-generated
schedule, lets you tick tasks off during the day, resets everything at
midnight, and reports completion rates and streaks over time.

Running it without a subcommand opens the interactive dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory for the plan cache and progress database")
}
