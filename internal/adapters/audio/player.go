// Package audio plays the embedded notification chime.
package audio

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

//go:embed assets/chime.wav
var chimeWAV []byte

// playbackCap bounds a single playback so a bad decode can never occupy
// the speaker indefinitely.
const playbackCap = 20 * time.Second

// Player holds the decoded chime and the initialized speaker. A Player
// whose setup failed stays usable: Play becomes a no-op.
type Player struct {
	buffer *beep.Buffer
	format beep.Format
}

// NewPlayer decodes the embedded chime and initializes the audio device.
// Decode and device failures disable sound with a one-time warning; they
// are never fatal.
func NewPlayer() *Player {
	p := &Player{}

	streamer, format, err := wav.Decode(bytes.NewReader(chimeWAV))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return p
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return p
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	p.buffer = buffer
	p.format = format
	return p
}

// Enabled reports whether playback is available.
func (p *Player) Enabled() bool {
	return p.buffer != nil
}

// Play starts asynchronous playback of the chime. The speaker mixes on its
// own goroutine, so this never blocks the control loop, and no completion
// is awaited: playback may still be finishing when the program exits.
func (p *Player) Play() {
	if p.buffer == nil {
		return
	}
	n := p.format.SampleRate.N(playbackCap)
	speaker.Play(beep.Take(n, p.buffer.Streamer(0, p.buffer.Len())))
}
