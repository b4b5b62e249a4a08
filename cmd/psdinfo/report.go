package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-psd/dsp/spectrum"
	"github.com/cwbudde/algo-psd/dsp/window"
	"github.com/cwbudde/algo-psd/noisemodel"
)

// defaultBands are period bands in seconds.
var defaultBands = [][2]float64{
	{0.1, 1},
	{1, 10},
	{10, 100},
	{100, 1000},
}

// header describes the estimate above the band table.
type header struct {
	bins int
	df   float64
	enbw float64 // equivalent noise bandwidth of the segment taper, in bins
}

type bandRow struct {
	shortPeriod float64
	longPeriod  float64
	psd         float64
	low         float64
	high        float64
}

// readSamples parses whitespace-separated numbers.
func readSamples(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var out []float64
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// summarize averages the spectrum over each period band and looks up both
// reference curves at the band's geometric centre. Bands without bins are
// left out.
func summarize(r spectrum.Result, low, high noisemodel.Provider, bands [][2]float64) ([]bandRow, error) {
	lowPts, highPts := low.Points(), high.Points()

	var rows []bandRow
	for _, b := range bands {
		mean, err := spectrum.BandMeanDB(r, 1/b[1], 1/b[0])
		if errors.Is(err, spectrum.ErrEmptyBand) {
			continue
		}
		if err != nil {
			return nil, err
		}

		centre := math.Sqrt(b[0] * b[1])
		lv, err := modelAt(lowPts, centre)
		if err != nil {
			return nil, err
		}
		hv, err := modelAt(highPts, centre)
		if err != nil {
			return nil, err
		}

		rows = append(rows, bandRow{
			shortPeriod: b[0],
			longPeriod:  b[1],
			psd:         mean,
			low:         lv,
			high:        hv,
		})
	}
	return rows, nil
}

// modelAt interpolates a curve linearly in log-period. An empty curve
// gives NaN.
func modelAt(pts []noisemodel.Point, period float64) (float64, error) {
	if len(pts) == 0 {
		return math.NaN(), nil
	}

	x := make([]float64, len(pts))
	y := make([]float64, len(pts))
	for i, p := range pts {
		x[i] = math.Log10(p.Period)
		y[i] = p.Value
	}

	v, err := spectrum.InterpolateLinear(x, y, []float64{math.Log10(period)})
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

// segmentENBW returns the equivalent noise bandwidth of the taper applied
// to each segment of an n-sample record. In multitaper mode the first
// taper is reported.
func segmentENBW(cfg config, n int) (float64, error) {
	plan := spectrum.PlanWelch(n)
	if cfg.tapers > 0 {
		set, err := window.Multitaper(plan.SegmentLen, cfg.tapers)
		if err != nil {
			return 0, err
		}
		return window.EquivalentNoiseBandwidth(set.Taper(0))
	}

	curve := window.CosineTaperCurve(plan.SegmentLen, spectrum.DefaultTaperWidth)
	return window.EquivalentNoiseBandwidth(curve.Weights(plan.SegmentLen))
}

func writeReport(w io.Writer, h header, rows []bandRow) error {
	fmt.Fprintf(w, "bins: %d  df: %.6g Hz  taper ENBW: %.3f bins\n\n", h.bins, h.df, h.enbw)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PERIOD (s)\tPSD (dB)\tNLNM (dB)\tNHNM (dB)\tSTATUS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%g-%g\t%.1f\t%.1f\t%.1f\t%s\n",
			r.shortPeriod, r.longPeriod, r.psd, r.low, r.high, status(r))
	}
	return tw.Flush()
}

func status(r bandRow) string {
	switch {
	case math.IsNaN(r.low) || math.IsNaN(r.high):
		return "-"
	case r.psd < r.low:
		return "below NLNM"
	case r.psd > r.high:
		return "above NHNM"
	}
	return "ok"
}
