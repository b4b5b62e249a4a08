package window

import "math"

// TaperCurve is the leading ramp of a symmetric cosine taper.
//
// The trailing edge of the buffer uses the same values mirrored, and every
// sample between the two ramps is implicitly weighted by 1.
type TaperCurve struct {
	Values []float64

	// Power is the sum of squared weights over the whole buffer (wss). It is
	// the power lost to the taper and normalizes spectral amplitudes.
	Power float64
}

// CosineTaperCurve returns the raised-cosine ramp for a buffer of n samples
// tapered over the fraction width of its length.
//
// The ramp length is int(((n*width)+1)/2) - 1. A ramp of zero or less means
// no taper and Power == n. Short buffers whose integer ramp collapses while
// n*width still spans at least one sample use the fractional ramp n*width
// instead, capped at n/2, so that a requested taper is not silently
// dropped.
func CosineTaperCurve(n int, width float64) TaperCurve {
	if n <= 0 {
		return TaperCurve{}
	}
	if !(width > 0) {
		return TaperCurve{Power: float64(n)}
	}

	span := float64(n) * width
	ramp := int((span+1)/2) - 1
	if ramp > 0 {
		return cosineRamp(n, ramp, float64(ramp))
	}

	if span < 1 {
		return TaperCurve{Power: float64(n)}
	}

	half := float64(n) / 2
	if span > half {
		span = half
	}
	count := int(math.Ceil(span))
	if count > n/2 {
		count = n / 2
	}
	return cosineRamp(n, count, span)
}

func cosineRamp(n, count int, ramp float64) TaperCurve {
	values := make([]float64, count)
	power := float64(n) - 2*ramp

	for i := range values {
		v := 0.5 * (1 - math.Cos(float64(i)*math.Pi/ramp))
		values[i] = v
		power += 2 * v * v
	}

	return TaperCurve{Values: values, Power: power}
}

// Apply multiplies both ends of buf in place by the ramp.
// buf must be the length the curve was built for.
func (c TaperCurve) Apply(buf []float64) {
	last := len(buf) - 1
	for i, v := range c.Values {
		buf[i] *= v
		buf[last-i] *= v
	}
}

// Weights expands the curve into full per-sample weights for a buffer of
// length n.
func (c TaperCurve) Weights(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	c.Apply(out)
	return out
}

// ApplyCosineTaper tapers buf in place with a cosine taper of the given
// width and returns the power-loss factor (wss). Callers that need the
// untapered samples must copy buf first.
func ApplyCosineTaper(buf []float64, width float64) float64 {
	curve := CosineTaperCurve(len(buf), width)
	curve.Apply(buf)
	return curve.Power
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a set of weights.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}
