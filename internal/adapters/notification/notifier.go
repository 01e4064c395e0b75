// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/xvierd/pomo-cli/internal/config"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// IsEnabled returns true if desktop notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Desktop
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifyFocusComplete displays a notification when a focus interval ends.
func (n *Notifier) NotifyFocusComplete() error {
	return n.Notify("🍅 Focus Complete!", "Press any key to begin your break.")
}

// NotifyBreakComplete displays a notification when a break interval ends.
func (n *Notifier) NotifyBreakComplete() error {
	return n.Notify("☕ Break Over!", "Press any key to begin the next focus.")
}

// NotifySessionDone displays a notification when the session completes.
func (n *Notifier) NotifySessionDone(focusIntervals int) error {
	message := fmt.Sprintf("All %d focus intervals complete. Well done!", focusIntervals)
	return n.Notify("🎉 Session Complete!", message)
}
