package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"time"

	"github.com/cwbudde/algo-psd/response"
)

// DeconvolveOption configures response removal.
type DeconvolveOption func(*deconvConfig)

type deconvConfig struct {
	waterLevel float64
}

// WithWaterLevel replaces plain division by raw·conj(c)/(|c|²+eps), where c
// is the combined response. It bounds the gain at frequencies where the
// response is close to zero. eps <= 0 keeps plain division.
func WithWaterLevel(eps float64) DeconvolveOption {
	return func(c *deconvConfig) {
		c.waterLevel = eps
	}
}

// Deconvolve removes two instrument responses from a raw cross-power
// estimate.
//
// resp1 and resp2 are velocity responses evaluated on raw's frequency axis.
// Each is converted to acceleration by scaling with -i/(2πf), and raw is
// divided by resp1·conj(resp2). A combined response of zero magnitude is
// replaced by the smallest positive float64. The 0 Hz bin has no
// acceleration equivalent and is returned as zero.
func Deconvolve(raw Result, resp1, resp2 []complex128, opts ...DeconvolveOption) (Result, error) {
	if len(resp1) != raw.Len() || len(resp2) != raw.Len() {
		return Result{}, fmt.Errorf("%w: bins=%d resp1=%d resp2=%d", ErrLengthMismatch, raw.Len(), len(resp1), len(resp2))
	}

	var cfg deconvConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]complex128, raw.Len())
	for i, f := range raw.freqs {
		if f == 0 {
			continue
		}

		scale := complex(0, -1/(2*math.Pi*f))
		combined := (resp1[i] * scale) * cmplx.Conj(resp2[i]*scale)

		if cfg.waterLevel > 0 {
			mag := real(combined)*real(combined) + imag(combined)*imag(combined)
			out[i] = raw.transform[i] * cmplx.Conj(combined) / complex(mag+cfg.waterLevel, 0)
			continue
		}

		if cmplx.Abs(combined) == 0 {
			combined = complex(math.SmallestNonzeroFloat64, 0)
		}
		out[i] = raw.transform[i] / combined
	}

	return newResult(out, raw.Freqs()), nil
}

// CrossPower estimates the response-corrected cross power of x and y with
// WelchCrossPower and Deconvolve. Deconvolution options are passed with
// WithDeconvolution.
func CrossPower(x, y []float64, interval time.Duration, r1, r2 response.Response, opts ...Option) (Result, error) {
	raw, err := WelchCrossPower(x, y, interval, opts...)
	if err != nil {
		return Result{}, err
	}
	return Deconvolve(raw, r1.Apply(raw.Freqs()), r2.Apply(raw.Freqs()), applyOptions(opts).deconv...)
}

// PSD is CrossPower of a record with itself.
func PSD(x []float64, interval time.Duration, r response.Response, opts ...Option) (Result, error) {
	opts = append([]Option{WithAutoSpectrum()}, opts...)
	raw, err := WelchCrossPower(x, x, interval, opts...)
	if err != nil {
		return Result{}, err
	}
	resp := r.Apply(raw.Freqs())
	return Deconvolve(raw, resp, resp, applyOptions(opts).deconv...)
}
