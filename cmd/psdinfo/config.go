package main

import (
	"errors"
	"math"
)

// config holds the command-line settings.
type config struct {
	// input is the sample file, "-" reads stdin
	input string
	// sampleRate in samples per second
	sampleRate float64
	// tapers selects sine multitapers per segment (0 keeps the cosine taper)
	tapers int
	// smoothing is the half-width of the frequency smoothing window
	smoothing int
	// gain is a flat velocity sensitivity in counts per m/s
	gain float64
	// acceleration skips the velocity to acceleration conversion
	acceleration bool
	// lowModel and highModel override the built-in Peterson curves
	lowModel  string
	highModel string
	// lowColumn and highColumn select the value field of the model files
	lowColumn  int
	highColumn int
	// verbose enables debug logging
	verbose bool
}

func newDefaultConfig() config {
	return config{
		input:      "-",
		sampleRate: 40,
		smoothing:  5,
		gain:       1,
		lowColumn:  3,
		highColumn: 1,
	}
}

// Sanitize validates the settings.
func (cfg *config) Sanitize() error {
	switch {
	case !(cfg.sampleRate > 0) || math.IsInf(cfg.sampleRate, 0):
		return errors.New("sample rate must be positive")

	case cfg.tapers < 0:
		return errors.New("taper count must not be negative")

	case cfg.smoothing < 0:
		return errors.New("smoothing half-width must not be negative")

	case cfg.gain == 0 || math.IsNaN(cfg.gain):
		return errors.New("gain must be non-zero")

	case cfg.lowColumn < 1 || cfg.highColumn < 1:
		return errors.New("model columns start at 1")
	}

	if cfg.input == "" {
		cfg.input = "-"
	}

	return nil
}
