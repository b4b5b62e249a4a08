package window

import (
	"errors"
	"fmt"
	"math"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and taper must have same length")
)

// ValidateTaperWidth reports whether width is a usable cosine-taper fraction.
func ValidateTaperWidth(width float64) error {
	if math.IsNaN(width) || width <= 0 || width > 1 {
		return fmt.Errorf("taper width must be in (0,1]: %f", width)
	}
	return nil
}

func validateMultitaper(windowLen, count int) error {
	if windowLen < 2 {
		return fmt.Errorf("multitaper window length must be >= 2: %d", windowLen)
	}
	if count < 1 {
		return fmt.Errorf("multitaper count must be >= 1: %d", count)
	}
	return nil
}
