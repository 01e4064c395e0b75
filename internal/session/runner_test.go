package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/xvierd/pomo-cli/internal/adapters/tui"
	"github.com/xvierd/pomo-cli/internal/domain"
	"github.com/xvierd/pomo-cli/internal/ports"
)

// scriptedClock returns pre-planned instants, repeating the last one once
// the script runs out so further ticks see no elapsed time. Tests can
// extend the script while the runner is live.
type scriptedClock struct {
	mu    sync.Mutex
	times []time.Time
	idx   int
}

func newScriptedClock(deltas ...time.Duration) *scriptedClock {
	base := time.Unix(0, 0)
	times := []time.Time{base}
	for _, d := range deltas {
		base = base.Add(d)
		times = append(times, base)
	}
	return &scriptedClock{times: times}
}

func (c *scriptedClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.idx < len(c.times) {
		t := c.times[c.idx]
		c.idx++
		return t
	}
	return c.times[len(c.times)-1]
}

func (c *scriptedClock) extend(delta time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.times = append(c.times, c.times[len(c.times)-1].Add(delta))
}

type recordingNotifier struct {
	mu     sync.Mutex
	phases []domain.Phase
}

func (n *recordingNotifier) Notify(next domain.Phase) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.phases = append(n.phases, next)
}

func (n *recordingNotifier) all() []domain.Phase {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Phase(nil), n.phases...)
}

type recordingRenderer struct {
	mu     sync.Mutex
	frames []domain.Snapshot
}

func (r *recordingRenderer) Render(snap domain.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, snap)
}

func (r *recordingRenderer) all() []domain.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Snapshot(nil), r.frames...)
}

// waitForFrame polls until the renderer has produced a frame matching the
// predicate and returns it.
func (r *recordingRenderer) waitForFrame(t *testing.T, match func(domain.Snapshot) bool) domain.Snapshot {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		for _, f := range r.all() {
			if match(f) {
				return f
			}
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for a matching frame")
	return domain.Snapshot{}
}

func phaseIs(p domain.Phase) func(domain.Snapshot) bool {
	return func(s domain.Snapshot) bool { return s.Phase == p }
}

func key(r rune) ports.Event {
	return ports.KeyEvent{Key: ports.Key{Rune: r}}
}

func newTestRunner(cfg domain.Config, events chan ports.Event, clock *scriptedClock) (*Runner, *domain.Session, *recordingNotifier, *recordingRenderer) {
	sess := domain.NewSession(cfg)
	notifier := &recordingNotifier{}
	renderer := &recordingRenderer{}
	r := NewRunner(sess, events, notifier, renderer)
	r.SetPollTimeout(time.Millisecond)
	r.SetClock(clock.now)
	return r, sess, notifier, renderer
}

func runAsync(r *Runner) chan error {
	done := make(chan error, 1)
	go func() {
		done <- r.Run(context.Background())
	}()
	return done
}

func waitErr(t *testing.T, done chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not exit")
		return nil
	}
}

// Scenario from a one-interval session: focus runs out, notification
// fires, phase goes straight to done (count 1 == max 1), further input
// ends the loop.
func TestRunner_SingleFocusSession(t *testing.T) {
	events := make(chan ports.Event, 4)
	clock := newScriptedClock(0, time.Second)
	cfg := domain.Config{FocusDuration: time.Second, BreakDuration: time.Second, MaxFocus: 1}
	r, sess, notifier, renderer := newTestRunner(cfg, events, clock)

	done := runAsync(r)

	first := renderer.waitForFrame(t, phaseIs(domain.PhaseFocus))
	if got := tui.StatusText(first, ""); got != "Focus 1: 00:01" {
		t.Errorf("first frame = %q, want %q", got, "Focus 1: 00:01")
	}

	renderer.waitForFrame(t, phaseIs(domain.PhaseDone))

	events <- key('x')
	if err := waitErr(t, done); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	if sess.Phase != domain.PhaseDone {
		t.Errorf("Phase = %v, want %v", sess.Phase, domain.PhaseDone)
	}
	// Exactly one notification, none for the exit input.
	if got := notifier.all(); len(got) != 1 || got[0] != domain.PhaseDone {
		t.Errorf("notifications = %v, want [Done]", got)
	}
}

// Scenario with two focus intervals: focus, ack, break, ack, focus, done.
func TestRunner_TwoFocusSession(t *testing.T) {
	events := make(chan ports.Event, 8)
	clock := newScriptedClock(0, time.Second)
	cfg := domain.Config{FocusDuration: time.Second, BreakDuration: time.Second, MaxFocus: 2}
	r, sess, notifier, renderer := newTestRunner(cfg, events, clock)

	done := runAsync(r)
	renderer.waitForFrame(t, phaseIs(domain.PhaseFocusEnded))

	events <- key('x') // ack -> break
	breakFrame := renderer.waitForFrame(t, phaseIs(domain.PhaseBreak))
	if got := tui.StatusText(breakFrame, ""); got != "Break 1: 00:01" {
		t.Errorf("break frame = %q, want %q", got, "Break 1: 00:01")
	}
	if breakFrame.FocusCount != 2 {
		t.Errorf("FocusCount = %d, want 2", breakFrame.FocusCount)
	}

	clock.extend(time.Second)
	renderer.waitForFrame(t, phaseIs(domain.PhaseBreakEnded))

	events <- key('x') // ack -> second focus
	focusFrame := renderer.waitForFrame(t, func(s domain.Snapshot) bool {
		return s.Phase == domain.PhaseFocus && s.BreakCount == 2
	})
	if got := tui.StatusText(focusFrame, ""); got != "Focus 2: 00:01" {
		t.Errorf("second focus frame = %q, want %q", got, "Focus 2: 00:01")
	}

	clock.extend(time.Second)
	renderer.waitForFrame(t, phaseIs(domain.PhaseDone))

	events <- key('x')
	if err := waitErr(t, done); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	want := []domain.Phase{domain.PhaseFocusEnded, domain.PhaseBreakEnded, domain.PhaseDone}
	got := notifier.all()
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if sess.CompletedFocusIntervals() != 2 {
		t.Errorf("CompletedFocusIntervals() = %d, want 2", sess.CompletedFocusIntervals())
	}
}

func TestRunner_QuitFromAnyPhase(t *testing.T) {
	tests := []struct {
		name string
		quit ports.Event
	}{
		{"q key", key('q')},
		{"interrupt", ports.KeyEvent{Key: ports.Key{Interrupt: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make(chan ports.Event, 1)
			clock := newScriptedClock()
			cfg := domain.Config{FocusDuration: time.Minute, BreakDuration: time.Minute, MaxFocus: 2}
			r, _, notifier, _ := newTestRunner(cfg, events, clock)

			done := runAsync(r)
			events <- tt.quit

			if err := waitErr(t, done); err != nil {
				t.Fatalf("Run() error = %v, want nil", err)
			}
			if got := notifier.all(); len(got) != 0 {
				t.Errorf("notifications on quit = %v, want none", got)
			}
		})
	}
}

func TestRunner_QuitWhileAwaitingAck(t *testing.T) {
	events := make(chan ports.Event, 2)
	clock := newScriptedClock(time.Second)
	cfg := domain.Config{FocusDuration: time.Second, BreakDuration: time.Second, MaxFocus: 2}
	r, sess, _, renderer := newTestRunner(cfg, events, clock)

	done := runAsync(r)
	renderer.waitForFrame(t, phaseIs(domain.PhaseFocusEnded))

	events <- key('q')
	if err := waitErr(t, done); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if sess.Phase != domain.PhaseFocusEnded {
		t.Errorf("quit acted as acknowledgment: Phase = %v", sess.Phase)
	}
}

func TestRunner_PauseTogglesOncePerKeypress(t *testing.T) {
	events := make(chan ports.Event, 2)
	clock := newScriptedClock()
	cfg := domain.Config{FocusDuration: time.Minute, BreakDuration: time.Minute, MaxFocus: 2}
	r, sess, _, renderer := newTestRunner(cfg, events, clock)

	done := runAsync(r)

	events <- key('p')
	paused := renderer.waitForFrame(t, func(s domain.Snapshot) bool { return s.Paused })
	if got := tui.StatusText(paused, ""); got != "Focus 1: 01:00 (paused)" {
		t.Errorf("paused frame = %q, want %q", got, "Focus 1: 01:00 (paused)")
	}

	events <- key('p')
	renderer.waitForFrame(t, func(s domain.Snapshot) bool { return !s.Paused })

	events <- key('q')
	if err := waitErr(t, done); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if sess.Paused {
		t.Error("two toggles should restore the unpaused state")
	}
}

// Producer drop mid-focus is fatal: report and exit, no hang.
func TestRunner_InputChannelClosed(t *testing.T) {
	events := make(chan ports.Event)
	clock := newScriptedClock()
	cfg := domain.Config{FocusDuration: time.Minute, BreakDuration: time.Minute, MaxFocus: 2}
	r, _, _, _ := newTestRunner(cfg, events, clock)

	done := runAsync(r)
	close(events)

	if err := waitErr(t, done); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Run() error = %v, want ErrInputClosed", err)
	}
}

func TestRunner_ContextCancel(t *testing.T) {
	events := make(chan ports.Event)
	cfg := domain.Config{FocusDuration: time.Minute, BreakDuration: time.Minute, MaxFocus: 2}
	sess := domain.NewSession(cfg)
	r := NewRunner(sess, events, &recordingNotifier{}, &recordingRenderer{})
	r.SetPollTimeout(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	cancel()

	if err := waitErr(t, done); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
}
