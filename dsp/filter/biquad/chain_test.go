package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func twoSections() []Coefficients {
	return []Coefficients{
		{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.25},
		{B0: 0.3, B1: -0.1, B2: 0.05, A1: 0.1, A2: 0.05},
	}
}

func TestChainMatchesManualCascade(t *testing.T) {
	coeffs := twoSections()
	chain := NewChain(coeffs, WithGain(0.5))
	s1 := NewSection(coeffs[0])
	s2 := NewSection(coeffs[1])

	for i, x := range []float64{1, 0, -0.5, 0.25, 0.75, 0} {
		want := s2.ProcessSample(s1.ProcessSample(0.5 * x))
		if got := chain.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Fatalf("sample %d: got %v want %v", i, got, want)
		}
	}
}

func TestChainProcessBlockMatchesSample(t *testing.T) {
	input := []float64{1, -1, 0.5, 0.5, 0, 0.2, -0.3, 0.9}
	ref := NewChain(twoSections(), WithGain(2))
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	chain := NewChain(twoSections(), WithGain(2))
	buf := append([]float64(nil), input...)
	chain.ProcessBlock(buf)
	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: got %v want %v", i, buf[i], want[i])
		}
	}
}

func TestChainAccessors(t *testing.T) {
	chain := NewChain(twoSections())
	if chain.NumSections() != 2 || chain.Order() != 4 || chain.Gain() != 1 {
		t.Fatalf("sections=%d order=%d gain=%v", chain.NumSections(), chain.Order(), chain.Gain())
	}
	if chain.Section(1).Coefficients != twoSections()[1] {
		t.Fatal("Section(1) returned wrong coefficients")
	}
	if !chain.Stable() {
		t.Fatal("expected stable chain")
	}
}

func TestChainResetAndImpulseResponse(t *testing.T) {
	chain := NewChain(twoSections())
	ir := chain.ImpulseResponse(16)

	chain.ProcessSample(3)
	saved := chain.State()
	again := chain.ImpulseResponse(16)
	for i := range ir {
		if !almostEqual(ir[i], again[i], eps) {
			t.Fatalf("impulse response changed at %d", i)
		}
	}
	if st := chain.State(); st[0] != saved[0] || st[1] != saved[1] {
		t.Fatal("ImpulseResponse did not restore state")
	}

	chain.Reset()
	for _, st := range chain.State() {
		if st != [2]float64{} {
			t.Fatalf("state after reset: %v", st)
		}
	}
	if chain.ImpulseResponse(0) != nil {
		t.Fatal("ImpulseResponse(0) should be nil")
	}
}

func TestChainResponseIsProduct(t *testing.T) {
	coeffs := twoSections()
	chain := NewChain(coeffs, WithGain(3))
	for _, f := range []float64{10, 250, 1000} {
		want := 3 * coeffs[0].Response(f, 8000) * coeffs[1].Response(f, 8000)
		got := chain.Response(f, 8000)
		if cmplx.Abs(got-want) > 1e-12 {
			t.Fatalf("f=%v: got %v want %v", f, got, want)
		}
		if db := chain.MagnitudeDB(f, 8000); !almostEqual(db, 20*math.Log10(cmplx.Abs(want)), 1e-9) {
			t.Fatalf("f=%v: dB=%v", f, db)
		}
	}
}
