package wave

import (
	"bytes"
	"testing"
)

func TestDecodeSampleMasks(t *testing.T) {
	for b := 0; b < 256; b++ {
		s := DecodeSample(byte(b))
		if s.Amplitude != byte(b)&0x1f {
			t.Fatalf("byte %#02x: amplitude = %d, want %d", b, s.Amplitude, byte(b)&0x1f)
		}
		if s.ColorLevel != byte(b)>>5 {
			t.Fatalf("byte %#02x: color = %d, want %d", b, s.ColorLevel, byte(b)>>5)
		}
		if s.Amplitude > 31 || s.ColorLevel > 7 {
			t.Fatalf("byte %#02x: out of range sample %+v", b, s)
		}
	}
}

func TestDecodeWaveformSkipsHeader(t *testing.T) {
	buf := make([]byte, HeaderLen+3)
	buf[HeaderLen] = 0x1f   // amp 31, color 0
	buf[HeaderLen+1] = 0xe0 // amp 0, color 7
	buf[HeaderLen+2] = 0x65 // amp 5, color 3

	samples := DecodeWaveform(buf)
	if len(samples) != 3 {
		t.Fatalf("len = %d, want 3", len(samples))
	}
	want := []Sample{{31, 0}, {0, 7}, {5, 3}}
	for i, s := range samples {
		if s != want[i] {
			t.Errorf("sample %d = %+v, want %+v", i, s, want[i])
		}
	}
}

func TestDecodeWaveformHeaderOnly(t *testing.T) {
	if got := DecodeWaveform(make([]byte, HeaderLen)); got != nil {
		t.Errorf("header-only buffer decoded to %d samples, want none", len(got))
	}
	if got := DecodeWaveform(nil); got != nil {
		t.Errorf("nil buffer decoded to %d samples, want none", len(got))
	}
}

func TestDecodeWaveformIdempotent(t *testing.T) {
	buf := make([]byte, HeaderLen+100)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	a := DecodeWaveform(buf)
	b := DecodeWaveform(buf)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs across decodes: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDecodePreviewPairs(t *testing.T) {
	buf := []byte{10, 2, 23, 5, 2, 0}
	samples := DecodePreview(buf)
	if len(samples) != 3 {
		t.Fatalf("len = %d, want 3", len(samples))
	}
	want := []PreviewSample{{10, 3}, {23, 6}, {2, 1}}
	for i, s := range samples {
		if s != want[i] {
			t.Errorf("sample %d = %+v, want %+v", i, s, want[i])
		}
	}
}

func TestDecodePreviewIgnoresTrailingByte(t *testing.T) {
	buf := bytes.Repeat([]byte{5, 1}, 10)
	buf = append(buf, 99)
	if got := DecodePreview(buf); len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
}
