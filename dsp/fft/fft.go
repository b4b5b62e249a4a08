package fft

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Transform errors.
var (
	ErrInvalidSize   = errors.New("fft: transform size must be a power of two >= 2")
	ErrShortSpectrum = errors.New("fft: single-sided spectrum needs at least 2 bins")
	ErrTrimLength    = errors.New("fft: trim length out of range")
)

// NextPowerOfTwo returns the smallest power of two that is >= n, starting
// from 2.
func NextPowerOfTwo(n int) int {
	p := 2
	for p < n {
		p *= 2
	}
	return p
}

func isPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// Transformer holds a reusable plan and scratch buffer for one transform
// size. It is not safe for concurrent use.
type Transformer struct {
	size    int
	plan    *algofft.Plan[complex128]
	scratch []complex128
}

// NewTransformer creates a transformer for the given power-of-two size.
func NewTransformer(size int) (*Transformer, error) {
	if !isPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create FFT plan: %w", err)
	}

	return &Transformer{
		size:    size,
		plan:    plan,
		scratch: make([]complex128, size),
	}, nil
}

// Size returns the transform length.
func (t *Transformer) Size() int { return t.size }

// ForwardReal zero-pads src to Size and writes the full forward spectrum
// into dst, which must have length Size. src must not be longer than Size.
func (t *Transformer) ForwardReal(dst []complex128, src []float64) error {
	if len(src) > t.size || len(dst) != t.size {
		return fmt.Errorf("fft: forward buffers do not match size %d: src=%d dst=%d", t.size, len(src), len(dst))
	}

	for i := range t.scratch {
		if i < len(src) {
			t.scratch[i] = complex(src[i], 0)
		} else {
			t.scratch[i] = 0
		}
	}

	return t.plan.Forward(dst, t.scratch)
}

// Inverse writes the normalized inverse transform of src into dst.
func (t *Transformer) Inverse(dst, src []complex128) error {
	if len(src) != t.size || len(dst) != t.size {
		return fmt.Errorf("fft: inverse buffers do not match size %d: src=%d dst=%d", t.size, len(src), len(dst))
	}
	return t.plan.Inverse(dst, src)
}

// Forward zero-pads x to NextPowerOfTwo(len(x)) and returns the full,
// non-normalized spectrum including the mirrored upper half.
func Forward(x []float64) ([]complex128, error) {
	t, err := NewTransformer(NextPowerOfTwo(len(x)))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, t.size)
	if err := t.ForwardReal(out, x); err != nil {
		return nil, err
	}
	return out, nil
}

// SingleSided keeps bins [0, P/2] of a full length-P spectrum and returns
// them with a linear frequency axis from 0 Hz to Nyquist.
func SingleSided(full []complex128, sampleRate float64) ([]complex128, []float64) {
	if len(full) < 2 {
		bins := append([]complex128(nil), full...)
		return bins, make([]float64, len(bins))
	}

	n := len(full)/2 + 1
	bins := make([]complex128, n)
	copy(bins, full[:n])

	freqs := make([]float64, n)
	delta := (sampleRate / 2) / float64(n-1)
	for i := range freqs {
		freqs[i] = float64(i) * delta
	}

	return bins, freqs
}

// InverseSingleSided rebuilds the full spectrum of a real signal from its
// positive-frequency bins and returns the first trim time-domain samples.
//
// For P = (len(bins)-1)*2, bin P-i is the conjugate of bin i for 0 < i < P/2.
func InverseSingleSided(bins []complex128, trim int) ([]float64, error) {
	if len(bins) < 2 {
		return nil, ErrShortSpectrum
	}

	size := (len(bins) - 1) * 2
	if trim < 0 || trim > size {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrTrimLength, trim, size)
	}

	t, err := NewTransformer(size)
	if err != nil {
		return nil, err
	}

	full := make([]complex128, size)
	copy(full, bins)
	for i := 1; i < size/2; i++ {
		full[size-i] = cmplx.Conj(bins[i])
	}

	timeDomain := make([]complex128, size)
	if err := t.Inverse(timeDomain, full); err != nil {
		return nil, err
	}

	out := make([]float64, trim)
	for i := range out {
		out[i] = real(timeDomain[i])
	}
	return out, nil
}
