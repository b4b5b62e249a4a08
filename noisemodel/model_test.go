package noisemodel

import (
	"errors"
	"math"
	"testing"
)

func TestPetersonBreakpointValues(t *testing.T) {
	tests := []struct {
		name   string
		model  *Model
		period float64
		want   float64
	}{
		{"nlnm 1s", PetersonLow(), 1, -166.4},
		{"nlnm 4.3s", PetersonLow(), 4.3, -141.1},
		{"nlnm 45s", PetersonLow(), 45, -187.5},
		{"nlnm 10s", PetersonLow(), 10, -132.18 - 31.57},
		{"nhnm 1s", PetersonHigh(), 1, -116.85},
		{"nhnm 20s", PetersonHigh(), 20, -151.52 + 10.01*math.Log10(20)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.model.Value(tc.period)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Value(%g)=%f want=%f", tc.period, got, tc.want)
			}
		})
	}
}

func TestPetersonHighAboveLow(t *testing.T) {
	low, high := PetersonLow(), PetersonHigh()
	for p := 0.1; p < 1000; p *= 1.1 {
		l, err := low.Value(p)
		if err != nil {
			t.Fatalf("low %g: %v", p, err)
		}
		h, err := high.Value(p)
		if err != nil {
			t.Fatalf("high %g: %v", p, err)
		}
		if h <= l {
			t.Fatalf("period %g: NHNM %f not above NLNM %f", p, h, l)
		}
	}
}

func TestModelRange(t *testing.T) {
	m := PetersonLow()
	for _, p := range []float64{0.05, 100000, math.NaN(), -1} {
		if _, err := m.Value(p); !errors.Is(err, ErrPeriodRange) {
			t.Fatalf("period %g: err=%v want ErrPeriodRange", p, err)
		}
	}
	if m.Name() != "NLNM" || PetersonHigh().Name() != "NHNM" {
		t.Fatal("unexpected model names")
	}
}

func TestModelPoints(t *testing.T) {
	for _, m := range []*Model{PetersonLow(), PetersonHigh()} {
		pts := m.Points()
		if len(pts) < 40 {
			t.Fatalf("%s: only %d points", m.Name(), len(pts))
		}
		if pts[0].Period != 0.1 {
			t.Fatalf("%s: first period %g want 0.1", m.Name(), pts[0].Period)
		}
		if last := pts[len(pts)-1].Period; last > MaxPeriod {
			t.Fatalf("%s: last period %g beyond %g", m.Name(), last, MaxPeriod)
		}
		for i := 1; i < len(pts); i++ {
			if pts[i].Period <= pts[i-1].Period {
				t.Fatalf("%s: periods not increasing at %d", m.Name(), i)
			}
		}
	}

	var p Provider = PetersonLow()
	found := false
	for _, pt := range p.Points() {
		if pt.Period == 1 {
			found = true
			if math.Abs(pt.Value+166.4) > 1e-9 {
				t.Fatalf("1 s point=%f want -166.4", pt.Value)
			}
		}
	}
	if !found {
		t.Fatal("1 s decade point missing")
	}
}

func TestPointFrequency(t *testing.T) {
	if f := (Point{Period: 4}).Frequency(); f != 0.25 {
		t.Fatalf("frequency=%f want 0.25", f)
	}
	if f := (Point{}).Frequency(); !math.IsInf(f, 1) {
		t.Fatalf("zero period frequency=%f want +Inf", f)
	}
}
