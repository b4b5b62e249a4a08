// Package filter adapts Butterworth designs from dsp/filter/design/pass to
// a streaming filter with per-sample and block processing, plus one-shot
// helpers that filter a whole record.
package filter
