package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fixyourlife/fixyourlife/internal/export"
	"github.com/fixyourlife/fixyourlife/internal/model"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress history or today's schedule",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Write the progress history as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		_, agg, _, err := openSession(cfg)
		if err != nil {
			return err
		}
		return withExportOutput(cmd, func(w io.Writer) error {
			return export.WriteCSV(w, agg.History())
		})
	},
}

var exportICSCmd = &cobra.Command{
	Use:   "ics",
	Short: "Write today's schedule as an iCalendar file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		session, _, _, err := openSession(cfg)
		if err != nil {
			return err
		}
		if !session.HasPlan() {
			return fmt.Errorf("no active plan to export")
		}
		today := model.DayOf(time.Now())
		return withExportOutput(cmd, func(w io.Writer) error {
			return export.WriteICS(w, today, session.Schedule(), time.Local)
		})
	},
}

func withExportOutput(cmd *cobra.Command, write func(io.Writer) error) error {
	if exportOut == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportICSCmd)
	exportCmd.PersistentFlags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
}
