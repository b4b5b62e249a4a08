package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestFuncApply(t *testing.T) {
	freqs := []float64{0, 0.5, 1, 2}
	got := Flat(complex(2, -1)).Apply(freqs)
	if len(got) != len(freqs) {
		t.Fatalf("len=%d want %d", len(got), len(freqs))
	}
	for i, v := range got {
		if v != complex(2, -1) {
			t.Fatalf("got[%d]=%v want (2-1i)", i, v)
		}
	}

	diff := Differentiator().Apply(freqs)
	for i, f := range freqs {
		if want := complex(0, 2*math.Pi*f); diff[i] != want {
			t.Fatalf("diff[%d]=%v want %v", i, diff[i], want)
		}
	}
}

// sts2 is a two-pole velocity sensor with a 120 s corner.
func sts2() PoleZero {
	w := 2 * math.Pi / 120
	return PoleZero{
		Normalization: 1,
		Gain:          1500,
		Zeros:         []complex128{0, 0},
		Poles: []complex128{
			complex(-w*math.Sqrt2/2, w*math.Sqrt2/2),
			complex(-w*math.Sqrt2/2, -w*math.Sqrt2/2),
		},
	}
}

func TestPoleZeroFlatPassband(t *testing.T) {
	pz := sts2()
	if err := pz.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp := pz.Apply([]float64{0, 1, 10})
	if resp[0] != 0 {
		t.Fatalf("response at 0 Hz=%v want 0", resp[0])
	}
	for _, v := range resp[1:] {
		if math.Abs(cmplx.Abs(v)-1500) > 1 {
			t.Fatalf("passband magnitude=%v want ~1500", cmplx.Abs(v))
		}
	}

	corner := cmplx.Abs(pz.At(1.0 / 120))
	want := 1500 / math.Sqrt2
	if math.Abs(corner-want) > 1e-6*want {
		t.Fatalf("corner magnitude=%v want %v", corner, want)
	}
}

func TestPoleZeroNormalized(t *testing.T) {
	pz := sts2()
	pz.Normalization = 42
	norm, err := pz.Normalized(1.0 / 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cmplx.Abs(norm.At(1.0 / 120)); math.Abs(got-1500) > 1e-9 {
		t.Fatalf("normalized magnitude=%v want 1500", got)
	}
	if pz.Normalization != 42 {
		t.Fatal("Normalized mutated receiver")
	}

	if _, err := pz.Normalized(0); !errors.Is(err, ErrInvalidPoleZero) {
		t.Fatalf("normalizing at a zero: err=%v", err)
	}
}

func TestPoleZeroValidate(t *testing.T) {
	tests := []struct {
		name string
		pz   PoleZero
	}{
		{"zero gain", PoleZero{Normalization: 1}},
		{"nan normalization", PoleZero{Normalization: math.NaN(), Gain: 1}},
		{"inf pole", PoleZero{Normalization: 1, Gain: 1, Poles: []complex128{cmplx.Inf()}}},
		{"nan zero", PoleZero{Normalization: 1, Gain: 1, Zeros: []complex128{cmplx.NaN()}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.pz.Validate(); !errors.Is(err, ErrInvalidPoleZero) {
				t.Fatalf("err=%v want ErrInvalidPoleZero", err)
			}
		})
	}
}

func TestResponseInterface(t *testing.T) {
	var _ Response = PoleZero{}
	var _ Response = Func(nil)
}
