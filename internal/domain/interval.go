package domain

import (
	"fmt"
	"time"
)

// Interval represents a single timed span: a target duration and the time
// accumulated against it so far.
type Interval struct {
	Duration time.Duration
	Elapsed  time.Duration
}

// NewInterval creates an interval with nothing elapsed yet.
func NewInterval(duration time.Duration) Interval {
	return Interval{Duration: duration}
}

// Advance accumulates elapsed time. Elapsed only ever grows; the caller is
// responsible for not advancing a paused interval.
func (i *Interval) Advance(delta time.Duration) {
	i.Elapsed += delta
}

// Ended reports whether the interval has run its full duration. The boundary
// is inclusive: a zero-duration interval has ended before any time passes.
func (i Interval) Ended() bool {
	return i.Elapsed >= i.Duration
}

// Remaining returns the time left in the interval, floored at zero.
func (i Interval) Remaining() time.Duration {
	if i.Elapsed >= i.Duration {
		return 0
	}
	return i.Duration - i.Elapsed
}

// String formats the remaining time as MM:SS.
func (i Interval) String() string {
	return FormatClock(i.Remaining())
}

// FormatClock formats a duration as MM:SS, flooring sub-second remainders
// and clamping negative values to 00:00.
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
