package noisemodel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-psd/logging"
)

// ErrColumn is returned for a column index that a row does not have.
var ErrColumn = errors.New("noisemodel: column out of range")

// ReadTable parses whitespace-separated rows whose first field is a period
// in seconds. column selects the value field, counting the period as field
// 0. Blank lines and lines starting with '#' are skipped. Reading stops at
// the first period beyond MaxPeriod+1 s.
func ReadTable(r io.Reader, column int) ([]Point, error) {
	if column < 1 {
		return nil, fmt.Errorf("%w: %d", ErrColumn, column)
	}

	var out []Point
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		period, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("noisemodel: line %d: period: %w", line, err)
		}
		if period > MaxPeriod+1 {
			break
		}

		if column >= len(fields) {
			return nil, fmt.Errorf("%w: line %d has %d fields, want column %d", ErrColumn, line, len(fields), column)
		}
		value, err := strconv.ParseFloat(fields[column], 64)
		if err != nil {
			return nil, fmt.Errorf("noisemodel: line %d: value: %w", line, err)
		}

		out = append(out, Point{Period: period, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("noisemodel: read table: %w", err)
	}

	return out, nil
}

// FileProvider loads a reference curve from a table file on every call to
// Points. Failures are logged and give an empty series so that a missing
// overlay never stops a spectrum from being produced.
type FileProvider struct {
	Path   string
	Column int
	Logger logging.Logger
}

// Points implements Provider.
func (p FileProvider) Points() []Point {
	log := logging.OrDefault(p.Logger).WithFields(logging.Fields{"path": p.Path, "column": p.Column})

	f, err := os.Open(p.Path)
	if err != nil {
		log.Error(err, "open noise model")
		return nil
	}
	defer f.Close()

	points, err := ReadTable(f, p.Column)
	if err != nil {
		log.Error(err, "read noise model")
		return nil
	}

	log.Debug("loaded noise model", logging.Fields{"points": len(points)})
	return points
}
