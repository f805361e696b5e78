package wave

// Constants of the device waveform encodings. The detail waveform runs at a
// fixed temporal resolution; the preview always spans the whole track with
// the same number of samples no matter how long the track is.
const (
	SampleRate    = 150 // detail samples (= native pixels) per second
	HeaderLen     = 20  // metadata bytes preceding the detail samples
	BandHeight    = 75  // detail waveform band height in pixels
	PreviewWidth  = 400 // preview samples per track
	PreviewHeight = 34  // preview strip height in pixels
)

// Sample is one detail-waveform sample, unpacked from a single byte.
type Sample struct {
	Amplitude  uint8 // bar half-height in pixels, 0..31
	ColorLevel uint8 // blue-to-white intensity, 0..7
}

// DecodeSample unpacks one detail byte. Every byte value is valid.
func DecodeSample(b byte) Sample {
	return Sample{
		Amplitude:  b & 0x1f,
		ColorLevel: b >> 5,
	}
}

// DecodeWaveform unpacks a detail waveform buffer as delivered by the
// device, skipping the header. A buffer too short to contain any samples
// decodes to nothing.
func DecodeWaveform(buf []byte) []Sample {
	if len(buf) <= HeaderLen {
		return nil
	}
	samples := make([]Sample, len(buf)-HeaderLen)
	for i, b := range buf[HeaderLen:] {
		samples[i] = DecodeSample(b)
	}
	return samples
}

// PreviewSample is one sample of the whole-track preview strip.
type PreviewSample struct {
	Height     uint8 // bar height in pixels, observed 2..23
	ColorLevel uint8 // intensity, observed 1..6
}

// DecodePreview unpacks a preview buffer: two bytes per sample, height then
// raw color level. The stored color level is the raw value plus one. A
// trailing odd byte is ignored.
func DecodePreview(buf []byte) []PreviewSample {
	samples := make([]PreviewSample, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		samples = append(samples, PreviewSample{
			Height:     buf[i],
			ColorLevel: buf[i+1] + 1,
		})
	}
	return samples
}
