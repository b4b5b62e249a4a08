package spectrum

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when paired slices differ in length.
var ErrLengthMismatch = errors.New("spectrum: length mismatch")

// Result pairs complex spectral bins with their frequencies in Hz.
//
// Freqs is ascending and evenly spaced for results produced by this
// package. The zero Result holds no bins.
type Result struct {
	transform []complex128
	freqs     []float64
}

// NewResult copies transform and freqs into a Result.
func NewResult(transform []complex128, freqs []float64) (Result, error) {
	if len(transform) != len(freqs) {
		return Result{}, fmt.Errorf("%w: transform=%d freqs=%d", ErrLengthMismatch, len(transform), len(freqs))
	}
	return Result{
		transform: append([]complex128(nil), transform...),
		freqs:     append([]float64(nil), freqs...),
	}, nil
}

// newResult takes ownership of both slices.
func newResult(transform []complex128, freqs []float64) Result {
	return Result{transform: transform, freqs: freqs}
}

// Transform returns a copy of the complex bins.
func (r Result) Transform() []complex128 {
	return append([]complex128(nil), r.transform...)
}

// Freqs returns a copy of the frequency axis.
func (r Result) Freqs() []float64 {
	return append([]float64(nil), r.freqs...)
}

// At returns bin i.
func (r Result) At(i int) complex128 { return r.transform[i] }

// Freq returns the frequency of bin i in Hz.
func (r Result) Freq(i int) float64 { return r.freqs[i] }

// Len returns the number of bins.
func (r Result) Len() int { return len(r.transform) }

// DeltaFreq returns the bin spacing in Hz, or 0 with fewer than two bins.
func (r Result) DeltaFreq() float64 {
	if len(r.freqs) < 2 {
		return 0
	}
	return r.freqs[1] - r.freqs[0]
}
