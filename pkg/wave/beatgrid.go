package wave

// BeatMarker is one beat onset from a track's beat grid, ordered by time.
type BeatMarker struct {
	TimeMs    int // onset in milliseconds from track start
	BeatInBar int // 1..4, 1 is the downbeat
}

// Downbeat reports whether the marker starts a bar.
func (m BeatMarker) Downbeat() bool {
	return m.BeatInBar == 1
}
