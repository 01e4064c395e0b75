// Package session runs the control loop that drives a pomodoro session:
// one cooperative loop composing wall-clock time and keyboard events into
// state-machine ticks.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/xvierd/pomo-cli/internal/domain"
	"github.com/xvierd/pomo-cli/internal/ports"
)

// ErrInputClosed is returned when the input listener's channel closes
// unexpectedly. It is fatal to the loop; the caller reports it and exits.
var ErrInputClosed = errors.New("input stream closed")

// DefaultPollTimeout bounds the blocking receive on the input channel. It
// is the loop's only suspension point and caps how stale the displayed
// remaining time can get with no key activity.
const DefaultPollTimeout = 500 * time.Millisecond

// Runner owns a session and ticks it until completion or quit. All session
// mutation happens on the goroutine that calls Run; the input channel is
// the only synchronization point with the listener.
type Runner struct {
	session  *domain.Session
	events   <-chan ports.Event
	notifier ports.Notifier
	renderer ports.Renderer

	pollTimeout time.Duration
	now         func() time.Time
}

// NewRunner creates a control loop around a session.
func NewRunner(s *domain.Session, events <-chan ports.Event, notifier ports.Notifier, renderer ports.Renderer) *Runner {
	return &Runner{
		session:     s,
		events:      events,
		notifier:    notifier,
		renderer:    renderer,
		pollTimeout: DefaultPollTimeout,
		now:         time.Now,
	}
}

// SetPollTimeout overrides the input-wait bound. Used by tests to keep
// input-free ticks fast.
func (r *Runner) SetPollTimeout(d time.Duration) {
	r.pollTimeout = d
}

// SetClock overrides the wall-clock source. Used by tests to script
// elapsed time.
func (r *Runner) SetClock(now func() time.Time) {
	r.now = now
}

// Run ticks the session until an explicit quit, until any input arrives in
// the done phase, or until the input channel closes (ErrInputClosed). The
// context cancels the loop from outside, e.g. on SIGTERM.
func (r *Runner) Run(ctx context.Context) error {
	last := r.now()
	timer := time.NewTimer(r.pollTimeout)
	defer timer.Stop()

	for {
		var ack, togglePause bool

		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-r.events:
			if !ok {
				return ErrInputClosed
			}
			key, isKey := ev.(ports.KeyEvent)
			switch {
			case !isKey:
				// Future event kinds are ignorable today.
			case key.Key.Interrupt || key.Key.Rune == 'q':
				return nil
			case r.session.Phase == domain.PhaseDone:
				return nil
			case key.Key.Rune == 'p':
				togglePause = true
			default:
				// Consumed by the machine only while awaiting ack;
				// ignorable otherwise.
				ack = true
			}

		case <-timer.C:
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(r.pollTimeout)

		now := r.now()
		delta := now.Sub(last)
		last = now

		if r.session.Advance(delta, ack, togglePause) {
			r.notifier.Notify(r.session.Phase)
		}
		r.renderer.Render(r.session.Snapshot())
	}
}
