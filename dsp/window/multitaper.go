package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MultitaperSet holds K sine tapers of a common length. It is immutable once
// built and safe for concurrent use.
type MultitaperSet struct {
	tapers [][]float64
	power  []float64
}

// Multitaper builds count sine tapers of length windowLen:
//
//	taper[k][i] = sqrt(2/(L-1)) * sin(pi*i*(k+1)/(L-1))
//
// Every taper starts at exactly zero; the final sample is zero up to
// rounding.
func Multitaper(windowLen, count int) (MultitaperSet, error) {
	if err := validateMultitaper(windowLen, count); err != nil {
		return MultitaperSet{}, err
	}

	denom := float64(windowLen - 1)
	scale := math.Sqrt(2 / denom)

	set := MultitaperSet{
		tapers: make([][]float64, count),
		power:  make([]float64, count),
	}

	for k := range set.tapers {
		taper := make([]float64, windowLen)
		order := float64(k + 1)
		sumSq := 0.0
		for i := range taper {
			v := scale * math.Sin(math.Pi*float64(i)*order/denom)
			taper[i] = v
			sumSq += v * v
		}
		set.tapers[k] = taper
		set.power[k] = sumSq
	}

	return set, nil
}

// Len returns the number of tapers.
func (s MultitaperSet) Len() int { return len(s.tapers) }

// WindowLen returns the length of each taper.
func (s MultitaperSet) WindowLen() int {
	if len(s.tapers) == 0 {
		return 0
	}
	return len(s.tapers[0])
}

// Taper returns a copy of the k-th taper.
func (s MultitaperSet) Taper(k int) []float64 {
	return append([]float64(nil), s.tapers[k]...)
}

// Power returns the sum of squared weights of the k-th taper.
func (s MultitaperSet) Power(k int) float64 { return s.power[k] }

// Apply writes src multiplied by the k-th taper into dst.
func (s MultitaperSet) Apply(k int, dst, src []float64) error {
	if k < 0 || k >= len(s.tapers) {
		return fmt.Errorf("multitaper index out of range: %d", k)
	}
	taper := s.tapers[k]
	if len(src) != len(taper) || len(dst) != len(taper) {
		return errMismatchedLength
	}

	vecmath.MulBlock(dst, src, taper)
	return nil
}
