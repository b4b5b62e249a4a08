package biquad

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestProcessSampleHandTraced(t *testing.T) {
	// B0=0.25 B1=0.5 B2=0.25 A1=-0.2 A2=0.04 driven by a unit impulse.
	s := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		x := 0.0
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Fatalf("n=%d: got %v want %v", i, y, w)
		}
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.5, A2: 0.2}
	input := []float64{1, -0.5, 0.25, 0, 0.75, -1, 0.1, 0.2}

	ref := NewSection(c)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	s := NewSection(c)
	buf := append([]float64(nil), input...)
	s.ProcessBlock(buf[:3])
	s.ProcessBlock(buf[3:])
	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: got %v want %v", i, buf[i], want[i])
		}
	}
	if s.State() != ref.State() {
		t.Fatalf("state mismatch: %v vs %v", s.State(), ref.State())
	}
}

func TestResetAndState(t *testing.T) {
	s := NewSection(Coefficients{B0: 1, B1: 1, A1: -0.5})
	s.ProcessSample(1)
	saved := s.State()
	if saved == [2]float64{} {
		t.Fatal("state should be non-zero after processing")
	}

	next := s.ProcessSample(0)
	s.SetState(saved)
	if again := s.ProcessSample(0); again != next {
		t.Fatalf("restored state gives %v want %v", again, next)
	}

	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("state after reset: %v", s.State())
	}
}

func TestPolesAndStability(t *testing.T) {
	// Poles at 0.5 and 0.4: (1 - 0.5z⁻¹)(1 - 0.4z⁻¹).
	c := Coefficients{B0: 1, A1: -0.9, A2: 0.2}
	p := c.Poles()
	if !(almostEqual(real(p[0]), 0.5, eps) && almostEqual(real(p[1]), 0.4, eps)) {
		t.Fatalf("poles=%v want 0.5, 0.4", p)
	}
	if !c.Stable() {
		t.Fatal("expected stable section")
	}

	unstable := Coefficients{B0: 1, A1: -2.5, A2: 1}
	if unstable.Stable() {
		t.Fatal("expected unstable section")
	}
}

func TestMagnitudeSquaredMatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.3, A2: 0.1}
	for _, f := range []float64{0, 100, 1000, 5000, 11025} {
		h := c.Response(f, 22050)
		want := real(h)*real(h) + imag(h)*imag(h)
		if got := c.MagnitudeSquared(f, 22050); !almostEqual(got, want, 1e-12) {
			t.Fatalf("f=%v: got %v want %v", f, got, want)
		}
	}
}
