package input

import (
	"fmt"

	"github.com/charmbracelet/x/term"
)

// RawMode puts the terminal into character-at-a-time input mode and
// returns a restore function. Every exit path of the control loop must run
// the restore.
func RawMode(fd uintptr) (restore func() error, err error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}
