package pass

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-psd/dsp/filter/biquad"
)

// validEdge reports whether freq lies strictly between 0 and Nyquist.
func validEdge(freq, sampleRate float64) bool {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return false
	}
	return freq > 0 && freq < sampleRate/2
}

// prewarp maps a digital frequency to the analog frequency that the
// bilinear transform z = (2+s)/(2-s) sends back to it.
func prewarp(freq, sampleRate float64) float64 {
	return 2 * math.Tan(math.Pi*freq/sampleRate)
}

// butterworthQ returns the quality factor of biquad section index of an
// order-n Butterworth low-pass.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}

	return 1 / (2 * s)
}

// prototypePoles returns the order poles of the normalized analog
// Butterworth low-pass, all in the left half plane.
func prototypePoles(order int) []complex128 {
	poles := make([]complex128, order)
	for k := range poles {
		theta := math.Pi * float64(2*k+order+1) / float64(2*order)
		poles[k] = cmplx.Exp(complex(0, theta))
	}
	return poles
}

// lowpassRBJ is the bilinear second-order low-pass with quality factor q.
func lowpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	a0 := 1 + alpha
	return biquad.Coefficients{
		B0: (1 - cw) / 2 / a0,
		B1: (1 - cw) / a0,
		B2: (1 - cw) / 2 / a0,
		A1: -2 * cw / a0,
		A2: (1 - alpha) / a0,
	}
}

// firstOrderLP is the bilinear first-order low-pass used for odd orders.
func firstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}
