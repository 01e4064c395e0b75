package ports

import "github.com/xvierd/pomo-cli/internal/domain"

// Notifier signals the end of an interval. Implementations must not block
// the control loop; playback and delivery run detached.
type Notifier interface {
	// Notify is called once per ended interval with the phase the session
	// transitioned into.
	Notify(next domain.Phase)
}

// Renderer displays a session snapshot. Called once per loop tick.
type Renderer interface {
	Render(snap domain.Snapshot)
}
