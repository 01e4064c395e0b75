// Package cmd provides the CLI commands for the Pomo application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/pomo-cli/internal/adapters/audio"
	"github.com/xvierd/pomo-cli/internal/adapters/git"
	"github.com/xvierd/pomo-cli/internal/adapters/input"
	"github.com/xvierd/pomo-cli/internal/adapters/notification"
	"github.com/xvierd/pomo-cli/internal/adapters/tui"
	"github.com/xvierd/pomo-cli/internal/config"
	"github.com/xvierd/pomo-cli/internal/domain"
	"github.com/xvierd/pomo-cli/internal/session"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Flags
	focusMinutes int
	breakMinutes int
	maxIntervals int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Pomo - a terminal Pomodoro countdown timer",
	Long: `Pomo runs alternating focus and break intervals on a single
terminal status line, with a sound at each transition.

While running: q or ctrl-c quits, p pauses and resumes, and any key
advances past an ended interval.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&focusMinutes, "focus", "f", 25, "Focus interval length in minutes")
	rootCmd.Flags().IntVarP(&breakMinutes, "break", "b", 4, "Break interval length in minutes")
	rootCmd.Flags().IntVarP(&maxIntervals, "max", "m", 4, "Number of focus intervals to run")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Pomo CLI\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
}

// runSession wires the adapters together and drives the control loop.
func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		// If config loading fails, use defaults.
		cfg = config.DefaultConfig()
	}

	domCfg := resolveSessionConfig(cmd, cfg)
	if err := domCfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Adapters that may warn on stderr are created before raw mode so
	// their output lands on intact lines.
	player := audio.NewPlayer()
	desktop := notification.New(&cfg.Notifications)

	presenter := tui.NewPresenter(os.Stdout, &cfg.Theme)
	if cfg.Git.ShowBranch {
		if branch, err := git.NewDetector().CurrentBranch(""); err == nil {
			presenter.SetBranch(branch)
		}
	}

	sess := domain.NewSession(domCfg)
	notifier := newSessionNotifier(player, desktop, cfg.Notifications.Sound, domCfg.MaxFocus)

	if err := runLoop(sess, notifier, presenter); err != nil {
		return err
	}

	if sess.Phase == domain.PhaseDone {
		fmt.Printf("Session %s: completed %d focus intervals.\n",
			sess.ID[:8], sess.CompletedFocusIntervals())
	}
	return nil
}

// runLoop scopes the raw-terminal resources to the control loop's
// lifetime: the deferred restores run on every exit path, including the
// fatal input-closed one, before any further output.
func runLoop(sess *domain.Session, notifier *sessionNotifier, presenter *tui.Presenter) error {
	restore, err := input.RawMode(os.Stdin.Fd())
	if err != nil {
		return err
	}
	defer func() {
		if err := restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal: %v\n", err)
		}
	}()
	presenter.HideCursor()
	defer presenter.Close()

	ctx, cancel := signalContext()
	defer cancel()

	listener := input.NewListener(os.Stdin)
	listener.Start(ctx)

	runner := session.NewRunner(sess, listener.Events(), notifier, presenter)
	err = runner.Run(ctx)

	switch {
	case errors.Is(err, session.ErrInputClosed):
		return err
	case errors.Is(err, context.Canceled):
		return nil
	default:
		return err
	}
}

// resolveSessionConfig layers explicit flags over the config file over the
// built-in defaults.
func resolveSessionConfig(cmd *cobra.Command, cfg *config.Config) domain.Config {
	focus := cfg.Pomodoro.FocusMinutes
	brk := cfg.Pomodoro.BreakMinutes
	max := cfg.Pomodoro.MaxIntervals

	if cmd.Flags().Changed("focus") {
		focus = focusMinutes
	}
	if cmd.Flags().Changed("break") {
		brk = breakMinutes
	}
	if cmd.Flags().Changed("max") {
		max = maxIntervals
	}

	return domain.Config{
		FocusDuration: time.Duration(focus) * time.Minute,
		BreakDuration: time.Duration(brk) * time.Minute,
		MaxFocus:      max,
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM. SIGINT
// normally arrives as a raw ctrl-c byte instead, but SIGTERM still needs
// the cancel path so the terminal is restored.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx, cancel
}
