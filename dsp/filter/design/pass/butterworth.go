package pass

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-psd/dsp/filter/biquad"
)

// ButterworthLP designs an order-n low-pass with its -3 dB point at freq.
// Odd orders end with a first-order section (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validEdge(freq, sampleRate) {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, lowpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthBP designs a band-pass from an order-n Butterworth prototype.
// The result has 2n poles in n sections, -3 dB points at low and high, and
// unity gain at the geometric centre of the prewarped band. Each section
// has zeros at DC and Nyquist.
func ButterworthBP(low, high float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validEdge(low, sampleRate) || !validEdge(high, sampleRate) || !(low < high) {
		return nil
	}

	wl := prewarp(low, sampleRate)
	wh := prewarp(high, sampleRate)
	w0 := math.Sqrt(wl * wh)
	bw := wh - wl

	var (
		upper []complex128
		reals []float64
	)
	for _, p := range prototypePoles(order) {
		half := p * complex(bw/2, 0)
		root := cmplx.Sqrt(half*half - complex(w0*w0, 0))
		for _, s := range []complex128{half + root, half - root} {
			z := (2 + s) / (2 - s)
			switch {
			case imag(z) > 1e-12:
				upper = append(upper, z)
			case imag(z) >= -1e-12:
				reals = append(reals, real(z))
			}
		}
	}

	centre := sampleRate / math.Pi * math.Atan(w0/2)

	sections := make([]biquad.Coefficients, 0, order)
	for _, z := range upper {
		sections = append(sections, bandSection(-2*real(z), real(z)*real(z)+imag(z)*imag(z), centre, sampleRate))
	}

	sort.Float64s(reals)
	for i := 0; i+1 < len(reals); i += 2 {
		z1, z2 := reals[i], reals[i+1]
		sections = append(sections, bandSection(-(z1 + z2), z1*z2, centre, sampleRate))
	}

	return sections
}

// bandSection builds g(1 - z⁻²)/(1 + a1·z⁻¹ + a2·z⁻²) with unity magnitude
// at centre.
func bandSection(a1, a2, centre, sampleRate float64) biquad.Coefficients {
	c := biquad.Coefficients{B0: 1, B2: -1, A1: a1, A2: a2}
	g := 1 / math.Sqrt(c.MagnitudeSquared(centre, sampleRate))
	c.B0 = g
	c.B2 = -g
	return c
}
