package wave

import (
	"math"
	"time"
)

// DefaultScrollRate is the forward-scroll speed in samples per second. The
// visualization scrolls on a local elapsed-time clock rather than tracking
// the deck's real transport position, so the rate is a tunable, not a
// calibrated constant.
const DefaultScrollRate = 142

// ScrollClock converts elapsed wall time into whole samples of forward
// scroll, carrying the fractional remainder between ticks so no scroll is
// lost at coarse tick intervals.
type ScrollClock struct {
	Rate float64 // samples per second

	now  func() time.Time
	last time.Time
	rem  float64
}

// NewScrollClock returns a clock advancing at rate samples per second.
func NewScrollClock(rate float64) *ScrollClock {
	return &ScrollClock{Rate: rate, now: time.Now}
}

// Advance returns the number of samples to scroll since the previous call.
// The first call anchors the clock and returns zero.
func (c *ScrollClock) Advance() int {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	elapsed := t.Sub(c.last).Seconds()
	c.last = t
	if elapsed <= 0 || c.Rate <= 0 {
		return 0
	}
	c.rem += elapsed * c.Rate
	n := math.Floor(c.rem)
	c.rem -= n
	return int(n)
}

// Reset drops the anchor so the next Advance returns zero. Used when a new
// track loads and the scroll restarts from the left edge.
func (c *ScrollClock) Reset() {
	c.last = time.Time{}
	c.rem = 0
}
