// Package ports defines the boundary interfaces between the control loop
// and its collaborators (input, sound, rendering).
package ports

// Event is the payload type carried on the input channel. It is a tagged
// variant: KeyEvent is the only kind today, but the channel type leaves
// room for others (terminal resize, external ticks) without changing the
// loop's receive site.
type Event interface {
	isEvent()
}

// KeyEvent carries one decoded keypress from the terminal.
type KeyEvent struct {
	Key Key
}

func (KeyEvent) isEvent() {}

// Key is a single decoded key.
type Key struct {
	// Rune is the printable character for ordinary keys.
	Rune rune

	// Interrupt is set for the interrupt key (ctrl-c), which raw mode
	// delivers as a byte rather than a signal.
	Interrupt bool
}
