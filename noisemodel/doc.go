// Package noisemodel provides reference ambient-noise curves for seismic
// power spectra, most notably the Peterson (1993) new low and high noise
// models. Curves are expressed as (period, dB) points where the value is
// acceleration power in dB relative to 1 (m/s^2)^2/Hz.
package noisemodel
