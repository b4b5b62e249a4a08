// Package pass designs Butterworth low-pass and band-pass filters as
// cascades of biquad sections for dsp/filter/biquad.
//
// Designs return nil when the parameters cannot describe a filter at the
// given sample rate.
package pass
