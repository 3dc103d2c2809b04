package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var generateTimeout time.Duration

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fresh daily plan and make it the active one",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		generator, err := buildGenerator(cfg)
		if err != nil {
			return err
		}

		session, _, _, err := openSession(cfg)
		if err != nil {
			return err
		}

		var inputs map[string]string
		if store, closeStore, err := openRemoteStore(cfg.RemoteDBPath); err == nil {
			inputs = loadProfile(cmd.ErrOrStderr(), store, cfg.UserID)
			closeStore()
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), generateTimeout)
		defer cancel()
		if err := session.Regenerate(ctx, inputs, generator); err != nil {
			return fmt.Errorf("generate plan: %w", err)
		}

		p := session.Plan()
		fmt.Fprintln(cmd.OutOrStdout(), "New plan:")
		for _, item := range p.DailySchedule {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", item.Time, item.Task)
		}
		if p.MotivationalMessage != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", p.MotivationalMessage)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 90*time.Second, "How long to wait for the plan service")
}
