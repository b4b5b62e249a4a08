// Package biquad runs second-order IIR sections and cascades of them.
//
// A [Section] filters samples in Direct Form II Transposed using
// [Coefficients]. [Chain] feeds the output of each section into the next,
// which is how the Butterworth designs in dsp/filter/design/pass are run.
// Coefficient design lives in that package.
package biquad
