// Package domain contains the pomodoro session state machine: phases,
// intervals and the per-tick advance operation that drives them.
package domain

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the immutable session parameters.
type Config struct {
	FocusDuration time.Duration
	BreakDuration time.Duration
	MaxFocus      int
}

// DefaultConfig returns the classic pomodoro parameters.
func DefaultConfig() Config {
	return Config{
		FocusDuration: 25 * time.Minute,
		BreakDuration: 4 * time.Minute,
		MaxFocus:      4,
	}
}

// Validate rejects configurations the session cannot run with. Zero
// durations are legal and end the interval on the first tick that observes
// it; negative values are not.
func (c Config) Validate() error {
	if c.FocusDuration < 0 {
		return fmt.Errorf("focus duration must not be negative, got %v", c.FocusDuration)
	}
	if c.BreakDuration < 0 {
		return fmt.Errorf("break duration must not be negative, got %v", c.BreakDuration)
	}
	if c.MaxFocus < 1 {
		return errors.New("max focus intervals must be at least 1")
	}
	return nil
}

// Session is the full mutable state driving a pomodoro run. It is owned
// exclusively by the control loop; nothing else mutates it.
type Session struct {
	ID         string
	Phase      Phase
	Interval   Interval
	FocusCount int
	BreakCount int
	Paused     bool

	cfg Config
}

// Snapshot is an immutable view of the session for rendering.
type Snapshot struct {
	Phase      Phase
	FocusCount int
	BreakCount int
	Remaining  time.Duration
	Paused     bool
}

// NewSession creates a session at the start of its first focus interval.
// Counters are 1-based: the first focus interval is "Focus 1".
func NewSession(cfg Config) *Session {
	return &Session{
		ID:         generateID(),
		Phase:      PhaseFocus,
		Interval:   NewInterval(cfg.FocusDuration),
		FocusCount: 1,
		BreakCount: 1,
		cfg:        cfg,
	}
}

// Advance moves the session forward by one tick.
//
// delta is the wall-clock time since the previous tick, ack is whether an
// acknowledgment keypress arrived this tick, and togglePause is whether a
// pause-toggle keypress arrived this tick. At most one phase transition
// fires per call. The return value reports whether an interval ended this
// tick and the notification sound should play.
func (s *Session) Advance(delta time.Duration, ack, togglePause bool) (notify bool) {
	// Pause only applies to running intervals; the remaining-time display
	// is frozen in the ack and done phases regardless.
	if togglePause && s.Phase.Timed() {
		s.Paused = !s.Paused
	}

	if !s.Paused && s.Phase.Timed() {
		s.Interval.Advance(delta)
	}

	switch {
	case s.Phase == PhaseFocus && s.Interval.Ended() && s.FocusCount == s.cfg.MaxFocus:
		s.Phase = PhaseDone
		return true

	case s.Phase == PhaseFocus && s.Interval.Ended():
		s.Phase = PhaseFocusEnded
		return true

	case s.Phase == PhaseFocusEnded && ack:
		s.FocusCount++
		s.Interval = NewInterval(s.cfg.BreakDuration)
		s.Phase = PhaseBreak

	case s.Phase == PhaseBreak && s.Interval.Ended():
		s.Phase = PhaseBreakEnded
		return true

	case s.Phase == PhaseBreakEnded && ack:
		s.BreakCount++
		s.Interval = NewInterval(s.cfg.FocusDuration)
		s.Phase = PhaseFocus
	}

	return false
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:      s.Phase,
		FocusCount: s.FocusCount,
		BreakCount: s.BreakCount,
		Remaining:  s.Interval.Remaining(),
		Paused:     s.Paused,
	}
}

// CompletedFocusIntervals returns how many focus intervals have fully run.
// While the session is still going this lags FocusCount by one, because the
// counter is 1-based and names the interval currently in progress.
func (s *Session) CompletedFocusIntervals() int {
	if s.Phase == PhaseDone {
		return s.FocusCount
	}
	return s.FocusCount - 1
}
