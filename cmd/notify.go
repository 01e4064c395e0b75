package cmd

import (
	"fmt"
	"os"

	"github.com/xvierd/pomo-cli/internal/adapters/audio"
	"github.com/xvierd/pomo-cli/internal/adapters/notification"
	"github.com/xvierd/pomo-cli/internal/domain"
)

// sessionNotifier fans an interval-end signal out to the chime and the
// optional desktop notifier. Both run detached from the control loop.
type sessionNotifier struct {
	player   *audio.Player
	desktop  *notification.Notifier
	sound    bool
	maxFocus int
}

func newSessionNotifier(player *audio.Player, desktop *notification.Notifier, sound bool, maxFocus int) *sessionNotifier {
	return &sessionNotifier{
		player:   player,
		desktop:  desktop,
		sound:    sound,
		maxFocus: maxFocus,
	}
}

// Notify plays the chime and sends a desktop notification for the phase
// the session just entered. Failures are reported and swallowed; nothing
// here may block or crash the loop.
func (n *sessionNotifier) Notify(next domain.Phase) {
	if n.sound {
		n.player.Play()
	}

	if !n.desktop.IsEnabled() {
		return
	}
	go func() {
		var err error
		switch next {
		case domain.PhaseFocusEnded:
			err = n.desktop.NotifyFocusComplete()
		case domain.PhaseBreakEnded:
			err = n.desktop.NotifyBreakComplete()
		case domain.PhaseDone:
			err = n.desktop.NotifySessionDone(n.maxFocus)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
		}
	}()
}
