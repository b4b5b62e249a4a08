package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-psd/dsp/filter/biquad"
	"github.com/cwbudde/algo-psd/dsp/filter/design/pass"
)

// DefaultOrder is the prototype order used by BandFilter and LowPassFilter.
const DefaultOrder = 2

// ErrInvalidDesign is returned when the requested filter cannot be built at
// the given sample rate.
var ErrInvalidDesign = errors.New("filter: invalid design parameters")

// Filter is a stateful IIR filter. It is not safe for concurrent use.
type Filter struct {
	chain *biquad.Chain
}

// BandPass builds a Butterworth band-pass from an order-n prototype that
// passes center ± width/2 Hz. Callers must derive center and width from
// ordered corners.
func BandPass(order int, sampleRate, center, width float64) (*Filter, error) {
	low := center - width/2
	high := center + width/2
	sections := pass.ButterworthBP(low, high, order, sampleRate)
	if sections == nil {
		return nil, fmt.Errorf("%w: band-pass order=%d fs=%v band=[%v, %v] Hz", ErrInvalidDesign, order, sampleRate, low, high)
	}
	return &Filter{chain: biquad.NewChain(sections)}, nil
}

// LowPass builds an order-n Butterworth low-pass with its -3 dB point at
// corner Hz.
func LowPass(order int, sampleRate, corner float64) (*Filter, error) {
	sections := pass.ButterworthLP(corner, order, sampleRate)
	if sections == nil {
		return nil, fmt.Errorf("%w: low-pass order=%d fs=%v corner=%v Hz", ErrInvalidDesign, order, sampleRate, corner)
	}
	return &Filter{chain: biquad.NewChain(sections)}, nil
}

// Apply filters one sample.
func (f *Filter) Apply(x float64) float64 {
	return f.chain.ProcessSample(x)
}

// ProcessBlock filters buf in place, continuing from the current state.
func (f *Filter) ProcessBlock(buf []float64) {
	f.chain.ProcessBlock(buf)
}

// Reset clears the filter state.
func (f *Filter) Reset() {
	f.chain.Reset()
}

// MagnitudeDB returns the filter gain in dB at freq Hz.
func (f *Filter) MagnitudeDB(freq, sampleRate float64) float64 {
	return f.chain.MagnitudeDB(freq, sampleRate)
}

// BandFilter returns data band-passed between the two corners, in either
// order, with a DefaultOrder prototype. data is not modified.
func BandFilter(data []float64, sampleRate, low, high float64) ([]float64, error) {
	low, high = math.Min(low, high), math.Max(low, high)

	f, err := BandPass(DefaultOrder, sampleRate, (low+high)/2, high-low)
	if err != nil {
		return nil, err
	}
	return f.filtered(data), nil
}

// LowPassFilter returns data low-passed at corner Hz with a DefaultOrder
// design. data is not modified.
func LowPassFilter(data []float64, sampleRate, corner float64) ([]float64, error) {
	f, err := LowPass(DefaultOrder, sampleRate, corner)
	if err != nil {
		return nil, err
	}
	return f.filtered(data), nil
}

func (f *Filter) filtered(data []float64) []float64 {
	out := append([]float64(nil), data...)
	f.ProcessBlock(out)
	return out
}
