package noisemodel

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// MaxPeriod is the longest period, in seconds, kept in a reference series.
const MaxPeriod = 1000.0

// ErrPeriodRange is returned when a model is evaluated outside its domain.
var ErrPeriodRange = errors.New("noisemodel: period outside model range")

// Point is one sample of a reference curve.
type Point struct {
	Period float64 // seconds
	Value  float64 // dB
}

// Frequency returns the point's frequency in Hz.
func (p Point) Frequency() float64 {
	if p.Period == 0 {
		return math.Inf(1)
	}
	return 1 / p.Period
}

// Provider yields a reference curve ordered by increasing period.
type Provider interface {
	Points() []Point
}

// segment is valid for periods in [start, next segment's start) and
// evaluates to a + b*log10(period).
type segment struct {
	start float64
	a, b  float64
}

// Model is a piecewise log-linear noise model.
type Model struct {
	name     string
	segments []segment
	end      float64
}

// Name returns the model's short name.
func (m *Model) Name() string { return m.name }

// Range returns the period domain [min, max) in seconds.
func (m *Model) Range() (float64, float64) {
	return m.segments[0].start, m.end
}

// Value evaluates the model at a period in seconds.
func (m *Model) Value(period float64) (float64, error) {
	lo, hi := m.Range()
	if !(period >= lo && period < hi) {
		return 0, fmt.Errorf("%w: %s at %g s not in [%g,%g)", ErrPeriodRange, m.name, period, lo, hi)
	}

	i, found := slices.BinarySearchFunc(m.segments, period, func(s segment, p float64) int {
		switch {
		case s.start < p:
			return -1
		case s.start > p:
			return 1
		}
		return 0
	})
	if !found {
		i--
	}

	s := m.segments[i]
	return s.a + s.b*math.Log10(period), nil
}

// Points samples the model at its breakpoints and at ten log-spaced
// periods per decade, up to MaxPeriod.
func (m *Model) Points() []Point {
	lo, hi := m.Range()
	hi = math.Min(hi, MaxPeriod)

	periods := make([]float64, 0, len(m.segments)+64)
	for _, s := range m.segments {
		if s.start <= hi {
			periods = append(periods, s.start)
		}
	}
	for k := int(math.Floor(10 * math.Log10(lo))); ; k++ {
		p := math.Pow(10, float64(k)/10)
		if p > hi {
			break
		}
		if p >= lo {
			periods = append(periods, p)
		}
	}

	slices.Sort(periods)
	periods = slices.Compact(periods)

	out := make([]Point, 0, len(periods))
	for _, p := range periods {
		v, err := m.Value(p)
		if err != nil {
			continue
		}
		out = append(out, Point{Period: p, Value: v})
	}
	return out
}

// PetersonLow returns the new low noise model (NLNM).
func PetersonLow() *Model {
	return &Model{
		name: "NLNM",
		end:  100000,
		segments: []segment{
			{0.10, -162.36, 5.64},
			{0.17, -166.70, 0},
			{0.40, -170.00, -8.30},
			{0.80, -166.40, 28.90},
			{1.24, -168.60, 52.48},
			{2.40, -159.98, 29.81},
			{4.30, -141.10, 0},
			{5.00, -71.36, -99.77},
			{6.00, -97.26, -66.49},
			{10.00, -132.18, -31.57},
			{12.00, -205.27, 36.16},
			{15.60, -37.65, -104.33},
			{21.90, -114.37, -47.10},
			{31.60, -160.58, -16.28},
			{45.00, -187.50, 0},
			{70.00, -216.47, 15.70},
			{101.00, -185.00, 0},
			{154.00, -168.34, -7.61},
			{328.00, -217.43, 11.90},
			{600.00, -258.28, 26.60},
			{10000.00, -346.88, 48.75},
		},
	}
}

// PetersonHigh returns the new high noise model (NHNM).
func PetersonHigh() *Model {
	return &Model{
		name: "NHNM",
		end:  100000,
		segments: []segment{
			{0.10, -108.73, -17.23},
			{0.22, -150.34, -80.50},
			{0.32, -122.31, -23.87},
			{0.80, -116.85, 32.51},
			{3.80, -108.48, 18.08},
			{4.60, -74.66, -32.95},
			{6.30, 0.66, -127.18},
			{7.90, -93.37, -22.42},
			{15.40, 73.54, -162.98},
			{20.00, -151.52, 10.01},
			{354.80, -206.66, 31.63},
		},
	}
}
