package wave

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary condenses a decoded track into the figures shown on the info
// line: loudest bar, average level with spread, and the track length
// implied by the sample count.
type Summary struct {
	Peak     int
	Mean     float64
	StdDev   float64
	Duration time.Duration
}

// Summarize computes amplitude statistics over a decoded detail waveform.
// An empty slice yields a zero summary.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	amps := make([]float64, len(samples))
	peak := 0
	for i, s := range samples {
		amps[i] = float64(s.Amplitude)
		if int(s.Amplitude) > peak {
			peak = int(s.Amplitude)
		}
	}
	mean, std := stat.MeanStdDev(amps, nil)
	return Summary{
		Peak:     peak,
		Mean:     mean,
		StdDev:   std,
		Duration: time.Duration(len(samples)) * time.Second / SampleRate,
	}
}
