package domain

// Phase represents the mutually exclusive mode a session is in.
type Phase int

const (
	// PhaseFocus is a running focus interval.
	PhaseFocus Phase = iota

	// PhaseBreak is a running break interval.
	PhaseBreak

	// PhaseFocusEnded means a focus interval finished and the session is
	// waiting for a keypress before starting the break.
	PhaseFocusEnded

	// PhaseBreakEnded means a break interval finished and the session is
	// waiting for a keypress before starting the next focus interval.
	PhaseBreakEnded

	// PhaseDone means the configured number of focus intervals completed.
	PhaseDone
)

// Timed reports whether the phase has a running interval.
func (p Phase) Timed() bool {
	return p == PhaseFocus || p == PhaseBreak
}

// AwaitingAck reports whether the phase is waiting for an acknowledgment
// keypress.
func (p Phase) AwaitingAck() bool {
	return p == PhaseFocusEnded || p == PhaseBreakEnded
}

// Label returns a human-readable label for the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseFocus:
		return "Focus"
	case PhaseBreak:
		return "Break"
	case PhaseFocusEnded:
		return "Focus ended"
	case PhaseBreakEnded:
		return "Break ended"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}
