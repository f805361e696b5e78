package wave

import "math"

const defaultVisibleSeconds = 10

// View tracks the visible window over a composited waveform: how many
// samples are on screen, where the window starts, and where the fixed
// position cursor sits inside it. The cursor offset is derived and kept in
// sync whenever its inputs change.
type View struct {
	VisibleSamples int // window width in samples, > 0
	ScrollOffset   int // leftmost visible sample, >= 0

	markerRelative float64
	markerOffset   int
}

// NewView returns a view showing ten seconds of waveform with the position
// cursor centered.
func NewView() View {
	v := View{VisibleSamples: SampleRate * defaultVisibleSeconds}
	v.SetMarkerRelative(0.5)
	return v
}

// SetVisibleSamples resizes the window and recomputes the cursor offset.
// Values below one sample are ignored.
func (v *View) SetVisibleSamples(n int) {
	if n <= 0 {
		return
	}
	v.VisibleSamples = n
	v.SetMarkerRelative(v.markerRelative)
}

// SetMarkerRelative places the position cursor at a relative horizontal
// location within the window, clamped to [0,1].
func (v *View) SetMarkerRelative(rel float64) {
	if rel < 0 {
		rel = 0
	} else if rel > 1 {
		rel = 1
	}
	v.markerRelative = rel
	v.markerOffset = int(math.Round(rel * float64(v.VisibleSamples)))
}

// MarkerRelative returns the configured relative cursor location.
func (v View) MarkerRelative() float64 {
	return v.markerRelative
}

// MarkerOffset returns the cursor location in samples from the window's
// left edge.
func (v View) MarkerOffset() int {
	return v.markerOffset
}

// Advance scrolls the window forward. Negative deltas are ignored; the
// window only ever moves toward the end of the track.
func (v *View) Advance(samples int) {
	if samples > 0 {
		v.ScrollOffset += samples
	}
}
