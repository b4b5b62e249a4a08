// Package timeseries holds the per-record preprocessing shared by the
// spectral estimators: sample-interval conversions, mean removal, linear
// detrending and polarity flips.
//
// Sample intervals are expressed as time.Duration, so one tick is one
// nanosecond and TicksPerSecond converts between intervals and seconds.
package timeseries
