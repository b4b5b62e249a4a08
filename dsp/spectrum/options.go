package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-psd/dsp/window"
)

// Default estimator parameters.
const (
	DefaultTaperWidth    = 0.05
	DefaultSmoothingHalf = 5
	DefaultLengthDivisor = 4
	DefaultStrideDivisor = 4
	DefaultTaperCount    = 12
)

// ErrShortInput is returned when no full segment fits into the record.
var ErrShortInput = errors.New("spectrum: input too short for segmentation")

// Option configures spectral estimation.
type Option func(*config)

type config struct {
	taperWidth float64
	smoothHalf int
	lengthDiv  int
	strideDiv  int
	tapers     int
	auto       bool
	deconv     []DeconvolveOption
}

func defaultConfig() config {
	return config{
		taperWidth: DefaultTaperWidth,
		smoothHalf: DefaultSmoothingHalf,
		lengthDiv:  DefaultLengthDivisor,
		strideDiv:  DefaultStrideDivisor,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c config) validate() error {
	if c.tapers == 0 {
		if err := window.ValidateTaperWidth(c.taperWidth); err != nil {
			return fmt.Errorf("spectrum: %w", err)
		}
	}
	if c.smoothHalf < 0 {
		return fmt.Errorf("spectrum: smoothing half-width must be >= 0: %d", c.smoothHalf)
	}
	if c.lengthDiv < 1 || c.strideDiv < 1 {
		return fmt.Errorf("spectrum: segment divisors must be >= 1: length=%d stride=%d", c.lengthDiv, c.strideDiv)
	}
	if c.tapers < 0 {
		return fmt.Errorf("spectrum: taper count must be >= 0: %d", c.tapers)
	}
	return nil
}

// WithAutoSpectrum declares that both inputs are the same record, so only
// one transform per segment is computed. Identical inputs are detected
// without this option too.
func WithAutoSpectrum() Option {
	return func(c *config) {
		c.auto = true
	}
}

// WithTaperWidth sets the cosine taper width as a fraction of the segment.
func WithTaperWidth(width float64) Option {
	return func(c *config) {
		c.taperWidth = width
	}
}

// WithSmoothing sets the half-width of the frequency smoothing window.
// Zero disables smoothing.
func WithSmoothing(nHalf int) Option {
	return func(c *config) {
		c.smoothHalf = nHalf
	}
}

// WithSegmentDivisors sets segment length to n/lengthDiv and the stride to
// segmentLen/strideDiv.
func WithSegmentDivisors(lengthDiv, strideDiv int) Option {
	return func(c *config) {
		c.lengthDiv = lengthDiv
		c.strideDiv = strideDiv
	}
}

// WithMultitaper replaces the cosine taper by count sine tapers per segment.
func WithMultitaper(count int) Option {
	return func(c *config) {
		c.tapers = count
	}
}

// WithDeconvolution forwards options to the Deconvolve step of CrossPower
// and PSD. The estimators themselves ignore them.
func WithDeconvolution(opts ...DeconvolveOption) Option {
	return func(c *config) {
		c.deconv = append(c.deconv, opts...)
	}
}
