// Package response models instrument frequency responses.
//
// A Response evaluates to one complex velocity-domain value per requested
// frequency. PoleZero implements the usual Laplace-domain description of a
// seismometer; Func adapts a plain function.
package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Response evaluates an instrument response at each frequency in Hz. The
// result has the same length and order as freqs.
type Response interface {
	Apply(freqs []float64) []complex128
}

// Func adapts a per-frequency function to Response.
type Func func(freq float64) complex128

// Apply evaluates f at every frequency.
func (f Func) Apply(freqs []float64) []complex128 {
	out := make([]complex128, len(freqs))
	for i, v := range freqs {
		out[i] = f(v)
	}
	return out
}

// Flat returns a response with the same value at every frequency.
func Flat(v complex128) Func {
	return func(float64) complex128 { return v }
}

// Differentiator returns the response i·2πf, which cancels the velocity to
// acceleration conversion applied during deconvolution.
func Differentiator() Func {
	return func(f float64) complex128 { return complex(0, 2*math.Pi*f) }
}

// ErrInvalidPoleZero is returned by Validate for unusable pole/zero sets.
var ErrInvalidPoleZero = errors.New("response: invalid pole/zero description")

// PoleZero is a Laplace-domain response in rad/s:
//
//	H(s) = Normalization · Gain · Π(s - z) / Π(s - p),  s = i·2πf
type PoleZero struct {
	Normalization float64
	Gain          float64
	Zeros         []complex128
	Poles         []complex128
}

// Validate checks that the constants are finite and non-zero and that the
// roots are finite.
func (pz PoleZero) Validate() error {
	for name, v := range map[string]float64{"normalization": pz.Normalization, "gain": pz.Gain} {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidPoleZero, name, v)
		}
	}
	for i, z := range pz.Zeros {
		if cmplx.IsNaN(z) || cmplx.IsInf(z) {
			return fmt.Errorf("%w: zero %d=%v", ErrInvalidPoleZero, i, z)
		}
	}
	for i, p := range pz.Poles {
		if cmplx.IsNaN(p) || cmplx.IsInf(p) {
			return fmt.Errorf("%w: pole %d=%v", ErrInvalidPoleZero, i, p)
		}
	}
	return nil
}

// At evaluates the response at one frequency in Hz.
func (pz PoleZero) At(freq float64) complex128 {
	s := complex(0, 2*math.Pi*freq)
	num := complex(pz.Normalization*pz.Gain, 0)
	for _, z := range pz.Zeros {
		num *= s - z
	}
	den := complex(1, 0)
	for _, p := range pz.Poles {
		den *= s - p
	}
	return num / den
}

// Apply evaluates the response at every frequency.
func (pz PoleZero) Apply(freqs []float64) []complex128 {
	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		out[i] = pz.At(f)
	}
	return out
}

// Normalized returns a copy whose Normalization makes |H(freq)| equal Gain.
func (pz PoleZero) Normalized(freq float64) (PoleZero, error) {
	out := pz
	out.Normalization = 1
	out.Zeros = append([]complex128(nil), pz.Zeros...)
	out.Poles = append([]complex128(nil), pz.Poles...)

	mag := cmplx.Abs(out.At(freq)) / math.Abs(pz.Gain)
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return PoleZero{}, fmt.Errorf("%w: cannot normalize at %v Hz", ErrInvalidPoleZero, freq)
	}
	out.Normalization = 1 / mag
	return out, nil
}
