package main

import (
	"math"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := newDefaultConfig()
	if err := cfg.Sanitize(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config)
		wantErr bool
	}{
		{"zero rate", func(c *config) { c.sampleRate = 0 }, true},
		{"infinite rate", func(c *config) { c.sampleRate = math.Inf(1) }, true},
		{"negative tapers", func(c *config) { c.tapers = -1 }, true},
		{"negative smoothing", func(c *config) { c.smoothing = -2 }, true},
		{"zero gain", func(c *config) { c.gain = 0 }, true},
		{"zero column", func(c *config) { c.highColumn = 0 }, true},
		{"multitaper", func(c *config) { c.tapers = 12 }, false},
		{"negative gain", func(c *config) { c.gain = -800 }, false},
		{"empty input", func(c *config) { c.input = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := newDefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Sanitize()
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tc.wantErr)
			}
			if err == nil && cfg.input == "" {
				t.Fatal("empty input not replaced by stdin")
			}
		})
	}
}
