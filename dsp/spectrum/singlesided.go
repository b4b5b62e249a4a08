package spectrum

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-psd/dsp/fft"
	"github.com/cwbudde/algo-psd/dsp/filter"
	"github.com/cwbudde/algo-psd/dsp/timeseries"
	"github.com/cwbudde/algo-psd/dsp/window"
)

// PrefilterCorner is the low-pass corner in Hz used by
// SingleSidedFilteredFFT.
const PrefilterCorner = 0.1

// SingleSidedFFT returns the positive-frequency transform of one record
// with frequencies from 0 Hz to Nyquist. The record is copied, optionally
// sign flipped, demeaned and cosine tapered before the transform. flip is
// used for sensors whose output is inverted.
func SingleSidedFFT(data []float64, sampleRate float64, flip bool) (Result, error) {
	if sampleRate <= 0 {
		return Result{}, fmt.Errorf("spectrum: sample rate must be positive: %v", sampleRate)
	}

	buf := append([]float64(nil), data...)
	if flip {
		buf = timeseries.Flip(buf)
	}
	return singleSided(buf, sampleRate)
}

// SingleSidedFilteredFFT is SingleSidedFFT preceded by a low-pass at
// PrefilterCorner and a linear detrend.
func SingleSidedFilteredFFT(data []float64, interval time.Duration, flip bool) (Result, error) {
	if err := timeseries.ValidateInterval(interval); err != nil {
		return Result{}, fmt.Errorf("spectrum: %w", err)
	}

	buf := data
	if flip {
		buf = timeseries.Flip(buf)
	}

	sampleRate := timeseries.SampleRate(interval)
	filtered, err := filter.LowPassFilter(buf, sampleRate, PrefilterCorner)
	if err != nil {
		return Result{}, fmt.Errorf("spectrum: %w", err)
	}
	timeseries.DetrendInPlace(filtered)

	return singleSided(filtered, sampleRate)
}

// singleSided transforms buf, which it may modify.
func singleSided(buf []float64, sampleRate float64) (Result, error) {
	timeseries.DemeanInPlace(buf)
	window.ApplyCosineTaper(buf, DefaultTaperWidth)

	full, err := fft.Forward(buf)
	if err != nil {
		return Result{}, fmt.Errorf("spectrum: %w", err)
	}

	bins, freqs := fft.SingleSided(full, sampleRate)
	return newResult(bins, freqs), nil
}
