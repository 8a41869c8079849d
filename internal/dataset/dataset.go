// Package dataset reads and writes (x, y[, w]) samples as CSV.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-loess/stats/loess"
)

var (
	// ErrNoSamples is returned when the input holds no data rows.
	ErrNoSamples = errors.New("dataset: no samples")
	// ErrColumns is returned for rows with an unsupported column count.
	ErrColumns = errors.New("dataset: rows must have 2 (x,y) or 3 (x,y,w) columns")
)

// Samples holds paired observations. W is nil when no weight column was read.
type Samples struct {
	X []float64
	Y []float64
	W []float64
}

// Len returns the number of samples.
func (s *Samples) Len() int { return len(s.X) }

// Points returns the samples as (x, y) pairs.
func (s *Samples) Points() []loess.Point {
	out := make([]loess.Point, len(s.X))
	for i := range s.X {
		out[i] = loess.Point{X: s.X[i], Y: s.Y[i]}
	}
	return out
}

// IsSorted reports whether X is non-decreasing.
func (s *Samples) IsSorted() bool {
	return slices.IsSorted(s.X)
}

// SortByX reorders all columns so X is non-decreasing. Equal X values keep
// their input order.
func (s *Samples) SortByX() {
	if s.IsSorted() {
		return
	}

	idx := make([]int, len(s.X))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case s.X[a] < s.X[b]:
			return -1
		case s.X[a] > s.X[b]:
			return 1
		default:
			return 0
		}
	})

	s.X = permute(s.X, idx)
	s.Y = permute(s.Y, idx)
	if s.W != nil {
		s.W = permute(s.W, idx)
	}
}

func permute(values []float64, idx []int) []float64 {
	out := make([]float64, len(values))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}

// Read parses CSV samples. Lines starting with '#' are ignored. A first row
// whose leading field is not a number is treated as a header.
func Read(r io.Reader) (*Samples, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	s := &Samples{}
	columns := 0
	first := true

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read: %w", err)
		}

		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if _, perr := parseField(record[0]); perr != nil {
				continue
			}
		}

		if len(record) != 2 && len(record) != 3 {
			return nil, fmt.Errorf("%w: line %d has %d", ErrColumns, line, len(record))
		}
		if columns == 0 {
			columns = len(record)
			if columns == 3 {
				s.W = []float64{}
			}
		} else if len(record) != columns {
			return nil, fmt.Errorf("%w: line %d has %d, expected %d", ErrColumns, line, len(record), columns)
		}

		values := make([]float64, len(record))
		for i, field := range record {
			v, perr := parseField(field)
			if perr != nil {
				return nil, fmt.Errorf("dataset: line %d column %d: %w", line, i+1, perr)
			}
			values[i] = v
		}

		s.X = append(s.X, values[0])
		s.Y = append(s.Y, values[1])
		if columns == 3 {
			s.W = append(s.W, values[2])
		}
	}

	if s.Len() == 0 {
		return nil, ErrNoSamples
	}

	return s, nil
}

func parseField(field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}

// Write emits one CSV row per sample: x, y, smoothed, residual and
// robustness weight, formatted with the given number of decimals (-1 for
// the shortest exact representation).
func Write(w io.Writer, s *Samples, fit *loess.Fit, precision int) error {
	if fit == nil || len(fit.Smoothed) != s.Len() {
		return fmt.Errorf("dataset: fit does not match %d samples", s.Len())
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "smoothed", "residual", "robustness_weight"}); err != nil {
		return err
	}

	for i := range s.X {
		row := []string{
			FormatFloat(s.X[i], precision),
			FormatFloat(s.Y[i], precision),
			FormatFloat(fit.Smoothed[i], precision),
			FormatFloat(fit.Residuals[i], precision),
			FormatFloat(fit.RobustnessWeights[i], precision),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatFloat formats v with prec decimals, or the shortest representation
// when prec is negative.
func FormatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
