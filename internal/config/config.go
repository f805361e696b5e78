package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Rendering
	TickInterval   time.Duration // refresh cadence of the scroll loop
	ScrollRate     float64       // forward scroll, samples per second
	VisibleSeconds int           // width of the detail window in seconds
	MarkerPosition float64       // relative cursor location in the window, 0..1

	// Diagnostics
	LogFile string

	// Demo deck
	DemoBPM          float64
	DemoTrackSeconds int
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		TickInterval:   time.Duration(envInt("DECKWAV_TICK_MS", 40)) * time.Millisecond,
		ScrollRate:     envFloat("DECKWAV_SCROLL_RATE", 142),
		VisibleSeconds: envInt("DECKWAV_VISIBLE_SECONDS", 10),
		MarkerPosition: envFloat("DECKWAV_MARKER_POSITION", 0.5),

		LogFile: envStr("DECKWAV_LOG", ""),

		DemoBPM:          envFloat("DECKWAV_DEMO_BPM", 128),
		DemoTrackSeconds: envInt("DECKWAV_DEMO_TRACK_SECONDS", 180),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
