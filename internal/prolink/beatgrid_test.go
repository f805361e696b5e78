package prolink

import (
	"testing"

	"deckwav/pkg/wave"
)

func grid(markers ...wave.BeatMarker) []byte {
	return EncodeBeatgrid(markers, 128)
}

func TestBeatgridRoundTrip(t *testing.T) {
	want := []wave.BeatMarker{
		{TimeMs: 0, BeatInBar: 1},
		{TimeMs: 469, BeatInBar: 2},
		{TimeMs: 938, BeatInBar: 3},
		{TimeMs: 1407, BeatInBar: 4},
		{TimeMs: 1876, BeatInBar: 1},
	}
	got, err := ParseBeatgrid(grid(want...))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("parsed %d markers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("marker %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBeatgridEmptyGrid(t *testing.T) {
	got, err := ParseBeatgrid(grid())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("parsed %d markers from empty grid", len(got))
	}
}

func TestBeatgridTruncatedHeader(t *testing.T) {
	if _, err := ParseBeatgrid(make([]byte, 19)); err == nil {
		t.Errorf("truncated header parsed without error")
	}
	if _, err := ParseBeatgrid(nil); err == nil {
		t.Errorf("nil buffer parsed without error")
	}
}

func TestBeatgridTrailingBytes(t *testing.T) {
	buf := append(grid(wave.BeatMarker{TimeMs: 0, BeatInBar: 1}), 0xff, 0xff, 0xff)
	if _, err := ParseBeatgrid(buf); err == nil {
		t.Errorf("partial trailing entry parsed without error")
	}
}

func TestBeatgridBeatOutOfRange(t *testing.T) {
	for _, beat := range []int{0, 5} {
		buf := grid(wave.BeatMarker{TimeMs: 100, BeatInBar: beat})
		if _, err := ParseBeatgrid(buf); err == nil {
			t.Errorf("beat %d parsed without error", beat)
		}
	}
}

func TestBeatgridTimeRegression(t *testing.T) {
	buf := grid(
		wave.BeatMarker{TimeMs: 1000, BeatInBar: 1},
		wave.BeatMarker{TimeMs: 500, BeatInBar: 2},
	)
	if _, err := ParseBeatgrid(buf); err == nil {
		t.Errorf("backwards onsets parsed without error")
	}
}

func TestBeatgridCorruptGarbage(t *testing.T) {
	buf := make([]byte, 20+16)
	for i := range buf {
		buf[i] = 0xff
	}
	if _, err := ParseBeatgrid(buf); err == nil {
		t.Errorf("garbage buffer parsed without error")
	}
}
