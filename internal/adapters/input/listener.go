// Package input provides the raw-terminal key listener feeding the control
// loop, plus the raw-mode helper scoped to the loop's lifetime.
package input

import (
	"context"
	"io"

	"github.com/xvierd/pomo-cli/internal/ports"
)

// Listener blocking-reads raw bytes from the terminal on its own goroutine
// and forwards decoded key events over a channel. It is the single
// producer; the control loop is the single consumer.
type Listener struct {
	in     io.Reader
	events chan ports.Event
}

// NewListener creates a listener over the given input stream.
func NewListener(in io.Reader) *Listener {
	return &Listener{
		in:     in,
		events: make(chan ports.Event, 8),
	}
}

// Events returns the channel the control loop receives from. It is closed
// when the input stream fails, which the loop treats as fatal.
func (l *Listener) Events() <-chan ports.Event {
	return l.events
}

// Start launches the read goroutine. Cancelling ctx releases a listener
// that is blocked on a full channel; a listener parked on the terminal
// read itself terminates on the next read error or byte, or with the
// process.
func (l *Listener) Start(ctx context.Context) {
	go l.readLoop(ctx)
}

func (l *Listener) readLoop(ctx context.Context) {
	defer close(l.events)

	buf := make([]byte, 1)
	for {
		n, err := l.in.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}

		select {
		case l.events <- DecodeKey(buf[0]):
		case <-ctx.Done():
			return
		}
	}
}

// DecodeKey maps one raw input byte to a key event. In raw mode ctrl-c
// arrives as byte 0x03 instead of a signal; everything else is treated as
// a plain rune key. Multi-byte escape sequences decode as a run of rune
// keys, which the loop treats like any other acknowledgment keypress.
func DecodeKey(b byte) ports.KeyEvent {
	const etx = 0x03
	if b == etx {
		return ports.KeyEvent{Key: ports.Key{Interrupt: true}}
	}
	return ports.KeyEvent{Key: ports.Key{Rune: rune(b)}}
}
