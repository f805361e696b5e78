package prolink

import (
	"encoding/binary"
	"fmt"

	"deckwav/pkg/wave"
)

// Beat grid wire format: a 20-byte header (ignored here, mirrors the
// waveform header) followed by 8-byte entries, little endian:
//
//	uint16 beat-in-bar (1..4)
//	uint16 tempo, BPM * 100
//	uint32 onset, milliseconds from track start
const (
	beatgridHeaderLen = 20
	beatEntryLen      = 8
)

// ParseBeatgrid decodes a beat-grid buffer into ordered markers. Any
// structural problem — short buffer, trailing bytes, beat number out of
// range, onsets running backwards — fails the whole parse; callers render
// without a beat overlay in that case.
func ParseBeatgrid(buf []byte) ([]wave.BeatMarker, error) {
	if len(buf) < beatgridHeaderLen {
		return nil, fmt.Errorf("beatgrid too short: %d bytes", len(buf))
	}
	body := buf[beatgridHeaderLen:]
	if len(body)%beatEntryLen != 0 {
		return nil, fmt.Errorf("beatgrid body not a whole number of entries: %d bytes", len(body))
	}

	markers := make([]wave.BeatMarker, 0, len(body)/beatEntryLen)
	lastTime := -1
	for off := 0; off < len(body); off += beatEntryLen {
		beat := int(binary.LittleEndian.Uint16(body[off:]))
		timeMs := int(binary.LittleEndian.Uint32(body[off+4:]))
		if beat < 1 || beat > 4 {
			return nil, fmt.Errorf("beatgrid entry %d: beat %d out of range", off/beatEntryLen, beat)
		}
		if timeMs < lastTime {
			return nil, fmt.Errorf("beatgrid entry %d: onset %dms precedes previous %dms", off/beatEntryLen, timeMs, lastTime)
		}
		lastTime = timeMs
		markers = append(markers, wave.BeatMarker{TimeMs: timeMs, BeatInBar: beat})
	}
	return markers, nil
}

// EncodeBeatgrid builds a wire buffer from markers, the inverse of
// ParseBeatgrid. Used by the demo source.
func EncodeBeatgrid(markers []wave.BeatMarker, bpm float64) []byte {
	buf := make([]byte, beatgridHeaderLen+len(markers)*beatEntryLen)
	tempo := uint16(bpm * 100)
	for i, m := range markers {
		off := beatgridHeaderLen + i*beatEntryLen
		binary.LittleEndian.PutUint16(buf[off:], uint16(m.BeatInBar))
		binary.LittleEndian.PutUint16(buf[off+2:], tempo)
		binary.LittleEndian.PutUint32(buf[off+4:], uint32(m.TimeMs))
	}
	return buf
}
