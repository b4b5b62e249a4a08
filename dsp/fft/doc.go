// Package fft adapts a power-of-two complex FFT to real-valued records.
//
// Inputs are zero-padded to the next power of two (never below 2) and
// transformed with the standard, non-normalized forward DFT. The inverse
// rebuilds the negative frequencies of a single-sided spectrum from its
// complex conjugates and applies the normalized inverse, so a
// forward/single-sided/inverse round trip reproduces the input samples.
package fft
