package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	onboardRoutine    string
	onboardGoals      string
	onboardChallenges string
	onboardHabits     string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Save the answers the plan generator personalizes from",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := map[string]string{}
		for key, value := range map[string]string{
			"routine":    onboardRoutine,
			"goals":      onboardGoals,
			"challenges": onboardChallenges,
			"habits":     onboardHabits,
		} {
			if v := strings.TrimSpace(value); v != "" {
				answers[key] = v
			}
		}
		if len(answers) == 0 {
			return fmt.Errorf("nothing to save: set at least one of --routine, --goals, --challenges, --habits")
		}

		cfg := loadConfig()
		store, closeStore, err := openRemoteStore(cfg.RemoteDBPath)
		if err != nil {
			return err
		}
		defer closeStore()

		// SaveProfile replaces the stored answers wholesale, so merge the
		// new ones over whatever is already there.
		merged := loadProfile(cmd.ErrOrStderr(), store, cfg.UserID)
		if merged == nil {
			merged = map[string]string{}
		}
		for k, v := range answers {
			merged[k] = v
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if err := store.SaveProfile(ctx, cfg.UserID, merged); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d answer(s) for %s\n", len(answers), cfg.UserID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)
	onboardCmd.Flags().StringVar(&onboardRoutine, "routine", "", "Current daily routine, including sleep")
	onboardCmd.Flags().StringVar(&onboardGoals, "goals", "", "What you want to achieve")
	onboardCmd.Flags().StringVar(&onboardChallenges, "challenges", "", "What keeps getting in the way")
	onboardCmd.Flags().StringVar(&onboardHabits, "habits", "", "Habits to build or break")
}
