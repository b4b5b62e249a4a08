package timeseries

import (
	"errors"
	"fmt"
	"time"
)

// TicksPerSecond is the number of interval ticks in one second.
const TicksPerSecond = int64(time.Second)

// ErrInvalidInterval is returned for non-positive sample intervals.
var ErrInvalidInterval = errors.New("timeseries: sample interval must be positive")

// ValidateInterval reports whether interval can describe a sampled record.
func ValidateInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}
	return nil
}

// Period returns the sample period in seconds.
func Period(interval time.Duration) float64 {
	return float64(interval) / float64(TicksPerSecond)
}

// SampleRate returns the sample rate in Hz.
func SampleRate(interval time.Duration) float64 {
	return float64(TicksPerSecond) / float64(interval)
}

// IntervalFromRate converts a sample rate in Hz to the nearest interval.
func IntervalFromRate(rate float64) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(float64(TicksPerSecond)/rate + 0.5)
}
