// Package spectrum estimates power and cross-power spectral densities of
// sampled records.
//
// WelchCrossPower averages overlapping tapered segments and smooths the
// result over neighbouring bins. MultitaperCrossPower estimates over the
// whole record with orthogonal sine tapers. Deconvolve removes instrument
// responses from a raw estimate, and CrossPower and PSD combine both steps.
//
// All estimators copy their inputs. A Result is immutable and safe to share
// between goroutines.
package spectrum
