package spectrum

import (
	"fmt"
	"math/cmplx"
	"slices"
	"time"

	"github.com/cwbudde/algo-psd/dsp/fft"
	"github.com/cwbudde/algo-psd/dsp/timeseries"
	"github.com/cwbudde/algo-psd/dsp/window"
)

// WelchPlan is the segmentation derived for one record length.
type WelchPlan struct {
	SegmentLen int // samples per segment
	Stride     int // samples between segment starts
	Segments   int // number of segments that fit completely
	FFTSize    int // zero-padded transform length
	Bins       int // single-sided bins, FFTSize/2+1
}

// PlanWelch returns the segmentation WelchCrossPower uses for n samples.
// The segment count follows from n and is not fixed.
func PlanWelch(n int, opts ...Option) WelchPlan {
	return planWelch(n, applyOptions(opts))
}

func planWelch(n int, cfg config) WelchPlan {
	lengthDiv := max(cfg.lengthDiv, 1)
	strideDiv := max(cfg.strideDiv, 1)

	segLen := max(n, 0) / lengthDiv
	p := WelchPlan{
		SegmentLen: segLen,
		Stride:     max(segLen/strideDiv, 1),
		FFTSize:    fft.NextPowerOfTwo(segLen),
	}
	p.Bins = p.FFTSize/2 + 1
	if segLen >= 2 {
		p.Segments = (n-segLen)/p.Stride + 1
	}
	return p
}

// WelchCrossPower estimates the cross-power spectrum of x and y sampled at
// the given interval.
//
// The record is split into segments of len(x)/4 samples that start every
// segmentLen/4 samples. Each segment is demeaned, cosine tapered, zero
// padded to a power of two and transformed. Products (2X)·conj(2Y) are
// summed over segments, normalized by period/padded, the taper power loss
// and the segment count, then smoothed over neighbouring bins.
//
// If x and y hold the same samples the result is the power spectral
// density. Neither input is modified.
func WelchCrossPower(x, y []float64, interval time.Duration, opts ...Option) (Result, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if err := timeseries.ValidateInterval(interval); err != nil {
		return Result{}, fmt.Errorf("spectrum: %w", err)
	}
	if len(x) != len(y) {
		return Result{}, fmt.Errorf("%w: x=%d y=%d", ErrLengthMismatch, len(x), len(y))
	}

	plan := planWelch(len(x), cfg)
	if plan.Segments == 0 {
		return Result{}, fmt.Errorf("%w: %d samples give segment length %d", ErrShortInput, len(x), plan.SegmentLen)
	}

	return estimate(x, y, timeseries.Period(interval), plan, cfg)
}

// MultitaperCrossPower estimates the cross-power spectrum of x and y over
// the whole record with count sine tapers. A count of zero or less uses
// DefaultTaperCount. No frequency smoothing is applied.
func MultitaperCrossPower(x, y []float64, interval time.Duration, count int) (Result, error) {
	if count <= 0 {
		count = DefaultTaperCount
	}
	if err := timeseries.ValidateInterval(interval); err != nil {
		return Result{}, fmt.Errorf("spectrum: %w", err)
	}
	if len(x) != len(y) {
		return Result{}, fmt.Errorf("%w: x=%d y=%d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return Result{}, fmt.Errorf("%w: %d samples", ErrShortInput, len(x))
	}

	cfg := defaultConfig()
	cfg.tapers = count
	cfg.smoothHalf = 0

	fftSize := fft.NextPowerOfTwo(len(x))
	plan := WelchPlan{
		SegmentLen: len(x),
		Stride:     len(x),
		Segments:   1,
		FFTSize:    fftSize,
		Bins:       fftSize/2 + 1,
	}

	return estimate(x, y, timeseries.Period(interval), plan, cfg)
}

func estimate(x, y []float64, period float64, plan WelchPlan, cfg config) (Result, error) {
	auto := cfg.auto || slices.Equal(x, y)

	acc, count, err := accumulate(x, y, plan, cfg, auto)
	if err != nil {
		return Result{}, err
	}

	norm := complex(period/float64(plan.FFTSize)/float64(count), 0)
	for i := range acc {
		acc[i] *= norm
	}

	if cfg.smoothHalf > 0 {
		acc = Smooth(acc, cfg.smoothHalf)
	}

	freqs := binFrequencies(plan.Bins, 1/(float64(plan.FFTSize)*period))
	return newResult(acc, freqs), nil
}

// segmentPair holds the per-segment working buffers for one input.
type segmentPair struct {
	raw      []float64
	tapered  []float64
	spectrum []complex128
}

func newSegmentPair(plan WelchPlan, multitaper bool) *segmentPair {
	s := &segmentPair{
		raw:      make([]float64, plan.SegmentLen),
		spectrum: make([]complex128, plan.FFTSize),
	}
	if multitaper {
		s.tapered = make([]float64, plan.SegmentLen)
	}
	return s
}

func (s *segmentPair) load(src []float64) {
	copy(s.raw, src)
	timeseries.DemeanInPlace(s.raw)
}

// accumulate sums the weighted segment products and returns how many
// tapered segments contributed.
func accumulate(x, y []float64, plan WelchPlan, cfg config, auto bool) ([]complex128, int, error) {
	tr, err := fft.NewTransformer(plan.FFTSize)
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: %w", err)
	}

	multitaper := cfg.tapers > 0
	var (
		tapers window.MultitaperSet
		curve  window.TaperCurve
	)
	if multitaper {
		tapers, err = window.Multitaper(plan.SegmentLen, cfg.tapers)
		if err != nil {
			return nil, 0, fmt.Errorf("spectrum: %w", err)
		}
	} else {
		curve = window.CosineTaperCurve(plan.SegmentLen, cfg.taperWidth)
	}

	first := newSegmentPair(plan, multitaper)
	second := first
	if !auto {
		second = newSegmentPair(plan, multitaper)
	}

	acc := make([]complex128, plan.Bins)
	segLen := float64(plan.SegmentLen)
	count := 0

	for start := 0; start+plan.SegmentLen <= len(x); start += plan.Stride {
		end := start + plan.SegmentLen
		first.load(x[start:end])
		if !auto {
			second.load(y[start:end])
		}

		if !multitaper {
			curve.Apply(first.raw)
			if !auto {
				curve.Apply(second.raw)
			}
			if err := transformPair(tr, first, second, first.raw, second.raw, auto); err != nil {
				return nil, 0, err
			}
			addProducts(acc, first.spectrum, second.spectrum, powerWeight(segLen, curve.Power), auto)
			count++
			continue
		}

		for k := 0; k < tapers.Len(); k++ {
			if err := tapers.Apply(k, first.tapered, first.raw); err != nil {
				return nil, 0, fmt.Errorf("spectrum: %w", err)
			}
			if !auto {
				if err := tapers.Apply(k, second.tapered, second.raw); err != nil {
					return nil, 0, fmt.Errorf("spectrum: %w", err)
				}
			}
			if err := transformPair(tr, first, second, first.tapered, second.tapered, auto); err != nil {
				return nil, 0, err
			}
			addProducts(acc, first.spectrum, second.spectrum, powerWeight(segLen, tapers.Power(k)), auto)
			count++
		}
	}

	return acc, count, nil
}

func transformPair(tr *fft.Transformer, first, second *segmentPair, src1, src2 []float64, auto bool) error {
	if err := tr.ForwardReal(first.spectrum, src1); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	if auto {
		return nil
	}
	if err := tr.ForwardReal(second.spectrum, src2); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	return nil
}

// powerWeight converts a taper's sum of squares into the mean-square
// correction segLen/wss. A taper with no power contributes nothing.
func powerWeight(segLen, wss float64) float64 {
	if wss <= 0 {
		return 0
	}
	return segLen / wss
}

// addProducts accumulates weight·(2a)·conj(2b). Auto-spectra are summed as
// real powers so that no rounding residue appears in the imaginary part.
func addProducts(acc, a, b []complex128, weight float64, auto bool) {
	w := 4 * weight
	if auto {
		for i := range acc {
			re, im := real(a[i]), imag(a[i])
			acc[i] += complex(w*(re*re+im*im), 0)
		}
		return
	}
	for i := range acc {
		acc[i] += complex(w, 0) * a[i] * cmplx.Conj(b[i])
	}
}

func binFrequencies(n int, delta float64) []float64 {
	freqs := make([]float64, n)
	for i := range freqs {
		freqs[i] = float64(i) * delta
	}
	return freqs
}
