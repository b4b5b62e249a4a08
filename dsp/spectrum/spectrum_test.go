package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestMagnitudeAndPower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	pow := Power(bins)
	if len(mag) != len(bins) || len(pow) != len(bins) {
		t.Fatalf("lengths mag=%d pow=%d want %d", len(mag), len(pow), len(bins))
	}
	if math.Abs(mag[0]-5) > 1e-12 || math.Abs(mag[1]-math.Sqrt2) > 1e-12 || mag[2] != 0 {
		t.Fatalf("Magnitude=%v", mag)
	}
	if math.Abs(pow[0]-25) > 1e-12 || math.Abs(pow[1]-2) > 1e-12 || pow[2] != 0 {
		t.Fatalf("Power=%v", pow)
	}
	if Magnitude(nil) != nil || Power(nil) != nil {
		t.Fatal("empty input should give nil")
	}
}

func TestDBAndBandMean(t *testing.T) {
	r, err := NewResult(
		[]complex128{1, 10, 100, 1000, 0.1},
		[]float64{0, 1, 2, 3, 4},
	)
	if err != nil {
		t.Fatal(err)
	}

	db := DB(r)
	want := []float64{0, 10, 20, 30, -10}
	for i := range want {
		if math.Abs(db[i]-want[i]) > 1e-12 {
			t.Fatalf("DB[%d]=%v want %v", i, db[i], want[i])
		}
	}

	mean, err := BandMeanDB(r, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mean-20) > 1e-12 {
		t.Fatalf("BandMeanDB(1,3)=%v want 20", mean)
	}

	// Corners are reordered and the 0 Hz bin is skipped.
	mean, err = BandMeanDB(r, 1.5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mean-10) > 1e-12 {
		t.Fatalf("BandMeanDB(0,1.5)=%v want 10", mean)
	}

	if _, err := BandMeanDB(r, 4.5, 9); !errors.Is(err, ErrEmptyBand) {
		t.Fatalf("empty band: err=%v", err)
	}
}

func TestInterpolateLinear(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 10, 0}

	got, err := InterpolateLinear(x, y, []float64{-1, 0.5, 1, 1.25, 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 5, 10, 7.5, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got[%d]=%v want %v", i, got[i], want[i])
		}
	}

	if _, err := InterpolateLinear(nil, nil, []float64{1}); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := InterpolateLinear(x, y[:2], nil); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if _, err := InterpolateLinear([]float64{0, 0}, []float64{1, 2}, nil); err == nil {
		t.Fatal("expected error for non-increasing x")
	}
}
