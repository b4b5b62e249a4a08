// Command psdinfo estimates the power spectral density of a single-column
// sample record and compares it with the Peterson noise models.
//
// Usage:
//
//	psdinfo [flags]
//
// Examples:
//
//	psdinfo -i record.txt -r 40
//	psdinfo -i record.txt -r 100 -g 1500 -t 12
//	cat record.txt | psdinfo -a
package main

import (
	"io"
	"log"
	"os"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-psd/dsp/spectrum"
	"github.com/cwbudde/algo-psd/dsp/timeseries"
	"github.com/cwbudde/algo-psd/logging"
	"github.com/cwbudde/algo-psd/noisemodel"
	"github.com/cwbudde/algo-psd/response"
)

// AppName is the app name
const AppName = "psdinfo"

// AppDesc is the app description
const AppDesc = "Seismic power spectral density summary"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newDefaultConfig()
	doFlags(&cfg)

	chk(cfg.Sanitize(), "invalid config")
	chk(run(cfg, os.Stdout), "psdinfo failed")
}

func doFlags(cfg *config) {
	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.Version = version

	parser.String(&cfg.input, "i", "input", "sample file, one or more values per line ('-' for stdin)")
	parser.Float64(&cfg.sampleRate, "r", "rate", "sample rate in samples per second")
	parser.Int(&cfg.tapers, "t", "tapers", "sine tapers per segment (0 for the cosine taper)")
	parser.Int(&cfg.smoothing, "s", "smoothing", "frequency smoothing half-width in bins (0 disables)")
	parser.Float64(&cfg.gain, "g", "gain", "flat velocity sensitivity in counts per m/s")
	parser.Bool(&cfg.acceleration, "a", "acceleration", "input is already acceleration")
	parser.String(&cfg.lowModel, "lm", "low-model", "low noise model table (default: built-in NLNM)")
	parser.String(&cfg.highModel, "hm", "high-model", "high noise model table (default: built-in NHNM)")
	parser.Int(&cfg.lowColumn, "lc", "low-column", "value column of the low model table")
	parser.Int(&cfg.highColumn, "hc", "high-column", "value column of the high model table")
	parser.Bool(&cfg.verbose, "v", "verbose", "enable debug logging")

	chk(parser.Parse(), "failed to parse arguments")
}

func run(cfg config, out io.Writer) error {
	level := logging.InfoLevel
	if cfg.verbose {
		level = logging.DebugLevel
	}
	logger := logging.NewLogger(os.Stderr, os.Stderr, level)
	logging.SetDefault(logger)

	samples, err := loadSamples(cfg.input)
	if err != nil {
		return errors.Wrap(err, "failed to read samples")
	}
	logger.Debug("samples loaded", logging.Fields{"count": len(samples), "rate": cfg.sampleRate})

	result, err := estimate(cfg, samples)
	if err != nil {
		return errors.Wrap(err, "failed to estimate spectrum")
	}
	logger.Debug("spectrum ready", logging.Fields{"bins": result.Len(), "df": result.DeltaFreq()})

	enbw, err := segmentENBW(cfg, len(samples))
	if err != nil {
		return errors.Wrap(err, "failed to measure taper bandwidth")
	}

	low, high := providers(cfg, logger)
	rows, err := summarize(result, low, high, defaultBands)
	if err != nil {
		return errors.Wrap(err, "failed to summarize spectrum")
	}

	h := header{bins: result.Len(), df: result.DeltaFreq(), enbw: enbw}
	return errors.Wrap(writeReport(out, h, rows), "failed to write report")
}

func loadSamples(path string) ([]float64, error) {
	if path == "-" {
		return readSamples(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readSamples(f)
}

func estimate(cfg config, samples []float64) (spectrum.Result, error) {
	opts := []spectrum.Option{spectrum.WithSmoothing(cfg.smoothing)}
	if cfg.tapers > 0 {
		opts = append(opts, spectrum.WithMultitaper(cfg.tapers))
	}

	var resp response.Response = response.Flat(complex(cfg.gain, 0))
	if cfg.acceleration {
		resp = response.Differentiator()
	}

	return spectrum.PSD(samples, timeseries.IntervalFromRate(cfg.sampleRate), resp, opts...)
}

func providers(cfg config, logger logging.Logger) (noisemodel.Provider, noisemodel.Provider) {
	var low, high noisemodel.Provider = noisemodel.PetersonLow(), noisemodel.PetersonHigh()
	if cfg.lowModel != "" {
		low = noisemodel.FileProvider{Path: cfg.lowModel, Column: cfg.lowColumn, Logger: logger}
	}
	if cfg.highModel != "" {
		high = noisemodel.FileProvider{Path: cfg.highModel, Column: cfg.highColumn, Logger: logger}
	}
	return low, high
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
