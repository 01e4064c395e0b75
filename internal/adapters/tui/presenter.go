// Package tui renders the session as a single continuously overwritten
// terminal status line.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/pomo-cli/internal/config"
	"github.com/xvierd/pomo-cli/internal/domain"
)

// Terminal control sequences. The line is rewritten in place; no line feed
// is emitted until the presenter closes.
const (
	eraseLine  = "\r\x1b[2K"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// Presenter writes session snapshots as one status line.
type Presenter struct {
	out    io.Writer
	styles styles
	branch string
}

type styles struct {
	focus  lipgloss.Style
	brk    lipgloss.Style
	paused lipgloss.Style
	prompt lipgloss.Style
}

// NewPresenter creates a presenter writing to out, colored from the theme.
func NewPresenter(out io.Writer, theme *config.ThemeConfig) *Presenter {
	return &Presenter{
		out: out,
		styles: styles{
			focus:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorFocus)),
			brk:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorBreak)),
			paused: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorPaused)),
			prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorPrompt)),
		},
	}
}

// SetBranch sets the git branch suffix shown during focus intervals.
func (p *Presenter) SetBranch(branch string) {
	p.branch = branch
}

// Render overwrites the status line with the current snapshot.
func (p *Presenter) Render(snap domain.Snapshot) {
	fmt.Fprintf(p.out, "%s%s", eraseLine, p.style(snap).Render(StatusText(snap, p.branch)))
}

// HideCursor hides the terminal cursor for the loop's lifetime.
func (p *Presenter) HideCursor() {
	fmt.Fprint(p.out, hideCursor)
}

// Close restores the cursor and terminates the status line. Runs on every
// exit path, including the fatal ones.
func (p *Presenter) Close() {
	fmt.Fprintf(p.out, "%s\r\n", showCursor)
}

func (p *Presenter) style(snap domain.Snapshot) lipgloss.Style {
	switch {
	case snap.Paused:
		return p.styles.paused
	case snap.Phase == domain.PhaseFocus:
		return p.styles.focus
	case snap.Phase == domain.PhaseBreak:
		return p.styles.brk
	default:
		return p.styles.prompt
	}
}

// StatusText formats a snapshot as the one-line status text, unstyled.
// Remaining time is already floored at zero by the snapshot.
func StatusText(snap domain.Snapshot, branch string) string {
	switch snap.Phase {
	case domain.PhaseFocus:
		line := fmt.Sprintf("Focus %d: %s", snap.FocusCount, domain.FormatClock(snap.Remaining))
		if branch != "" {
			line += fmt.Sprintf(" [%s]", branch)
		}
		if snap.Paused {
			line += " (paused)"
		}
		return line
	case domain.PhaseBreak:
		line := fmt.Sprintf("Break %d: %s", snap.BreakCount, domain.FormatClock(snap.Remaining))
		if snap.Paused {
			line += " (paused)"
		}
		return line
	case domain.PhaseFocusEnded:
		return "Focus ended. Press any key to begin the break."
	case domain.PhaseBreakEnded:
		return "Break ended. Press any key to begin the next focus."
	case domain.PhaseDone:
		return "Done. Press any key to end."
	default:
		return ""
	}
}
