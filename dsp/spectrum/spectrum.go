package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyBand is returned when a frequency band selects no bins.
var ErrEmptyBand = errors.New("spectrum: no bins in band")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// DB returns 10·log10|X[k]| for each bin of a power or cross-power result.
// Zero bins map to -Inf.
func DB(r Result) []float64 {
	out := Magnitude(r.transform)
	for i, v := range out {
		out[i] = 10 * math.Log10(v)
	}
	return out
}

// BandMeanDB averages DB(r) over the bins whose frequency lies in
// [low, high]. Bins at 0 Hz are skipped.
func BandMeanDB(r Result, low, high float64) (float64, error) {
	if low > high {
		low, high = high, low
	}

	i0 := sort.SearchFloat64s(r.freqs, low)
	i1 := sort.Search(len(r.freqs), func(k int) bool { return r.freqs[k] > high })
	if i0 < len(r.freqs) && r.freqs[i0] == 0 {
		i0++
	}
	if i0 >= i1 {
		return 0, fmt.Errorf("%w: [%v, %v] Hz", ErrEmptyBand, low, high)
	}

	band, err := NewResult(r.transform[i0:i1], r.freqs[i0:i1])
	if err != nil {
		return 0, err
	}
	return stat.Mean(DB(band), nil), nil
}

// InterpolateLinear performs piecewise-linear interpolation at queryX.
//
// x must be strictly increasing and have the same length as y. Queries
// outside the range of x are clamped to the end values.
func InterpolateLinear(x, y, queryX []float64) ([]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("interpolate requires non-empty x and y")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("interpolate x/y length mismatch: %d != %d", len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("interpolate x must be strictly increasing at index %d", i)
		}
	}

	out := make([]float64, len(queryX))
	for i, q := range queryX {
		if q <= x[0] {
			out[i] = y[0]
			continue
		}
		if q >= x[len(x)-1] {
			out[i] = y[len(y)-1]
			continue
		}

		j := sort.SearchFloat64s(x, q)
		x0, x1 := x[j-1], x[j]
		t := (q - x0) / (x1 - x0)
		out[i] = y[j-1] + t*(y[j]-y[j-1])
	}
	return out, nil
}
