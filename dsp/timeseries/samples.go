package timeseries

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	// Kahan summation keeps long records accurate.
	var sum, c float64
	for _, v := range x {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(x))
}

// DemeanInPlace subtracts the mean of x from every sample and returns the
// removed mean.
func DemeanInPlace(x []float64) float64 {
	mean := Mean(x)
	if mean == 0 {
		return 0
	}
	for i := range x {
		x[i] -= mean
	}
	return mean
}

// Demean returns a copy of x with its mean removed.
func Demean(x []float64) []float64 {
	out := append([]float64(nil), x...)
	DemeanInPlace(out)
	return out
}

// Detrend returns a copy of x with its least-squares line removed. Records
// shorter than two samples are returned demeaned.
func Detrend(x []float64) []float64 {
	out := append([]float64(nil), x...)
	DetrendInPlace(out)
	return out
}

// DetrendInPlace removes the least-squares line from x.
func DetrendInPlace(x []float64) {
	if len(x) < 2 {
		DemeanInPlace(x)
		return
	}

	idx := make([]float64, len(x))
	for i := range idx {
		idx[i] = float64(i)
	}

	alpha, beta := stat.LinearRegression(idx, x, nil, false)
	for i := range x {
		x[i] -= alpha + beta*idx[i]
	}
}

// Flip returns a copy of x with the polarity inverted.
func Flip(x []float64) []float64 {
	out := make([]float64, len(x))
	vecmath.ScaleBlock(out, x, -1)
	return out
}
