package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xvierd/pomo-cli/internal/config"
)

// configCmd prints the effective configuration and where it lives.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("Focus interval:   %d minutes\n", cfg.Pomodoro.FocusMinutes)
		fmt.Printf("Break interval:   %d minutes\n", cfg.Pomodoro.BreakMinutes)
		fmt.Printf("Focus intervals:  %d per session\n", cfg.Pomodoro.MaxIntervals)
		fmt.Printf("Sound:            %v\n", cfg.Notifications.Sound)
		fmt.Printf("Desktop notices:  %v\n", cfg.Notifications.Desktop)
		fmt.Printf("Show git branch:  %v\n", cfg.Git.ShowBranch)
		return nil
	},
}
