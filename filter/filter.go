package filter

import (
	"encoding/csv"
	"errors"
	"io"
	"sort"
	"strconv"

	"github.com/gonum/stat"
)

// Sample is one row of a raw measurement trace: elapsed time, yellow laser
// frequency and gate voltage.
type Sample struct {
	Time   float64
	Yellow float64
	Gate   float64
}

// Jump is a detected charge-jump event: the settings change across a gap in
// the trace where the instrument paused between measurement runs.
type Jump struct {
	Time   float64
	Gate   float64
	Yellow float64
	Index  int
}

// ReadTrace reads a raw trace. column maps the time, yellow and gate fields
// to CSV columns; a nil column uses 0, 1, 2. comma overrides the default
// tab separator.
func ReadTrace(reader io.Reader, column []int, comma string) ([]Sample, error) {
	var colTime, colYellow, colGate = 0, 1, 2
	if len(column) != 0 {
		colTime, colYellow, colGate = column[0], column[1], column[2]
	}
	r := csv.NewReader(reader)
	r.Comma = '\t'
	if comma != "" {
		r.Comma = []rune(comma)[0]
	}
	trace := make([]Sample, 0)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		var s Sample
		if s.Time, err = strconv.ParseFloat(rec[colTime], 64); err != nil {
			return nil, err
		}
		if s.Yellow, err = strconv.ParseFloat(rec[colYellow], 64); err != nil {
			return nil, err
		}
		if s.Gate, err = strconv.ParseFloat(rec[colGate], 64); err != nil {
			return nil, err
		}
		trace = append(trace, s)
	}
	return trace, nil
}

const maxGap = 30 * 60 // seconds

// Jumps selects the positions where the time between samples exceeds three
// times the median sampling interval but stays under thirty minutes. Longer
// gaps are separate measurement sessions, not jumps. Each event carries the
// gate and yellow deltas across the gap and the index of the sample after
// it.
func Jumps(trace []Sample) ([]Jump, error) {
	if len(trace) < 2 {
		return nil, errors.New("trace too short to detect jumps")
	}
	diffs := make([]float64, len(trace)-1)
	for i := range diffs {
		diffs[i] = trace[i+1].Time - trace[i].Time
	}
	sorted := make([]float64, len(diffs))
	copy(sorted, diffs)
	sort.Float64s(sorted)
	dt := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	jumps := make([]Jump, 0)
	for i, d := range diffs {
		if d > 3*dt && d < maxGap {
			jumps = append(jumps, Jump{
				Time:   trace[i+1].Time,
				Gate:   trace[i+1].Gate - trace[i].Gate,
				Yellow: trace[i+1].Yellow - trace[i].Yellow,
				Index:  i + 1,
			})
		}
	}
	return jumps, nil
}

// WriteJumps writes one event per line: time, gate delta, yellow delta and
// source row index, tab separated.
func WriteJumps(w io.Writer, jumps []Jump) error {
	for _, j := range jumps {
		line := strconv.FormatFloat(j.Time, 'g', -1, 64) + "\t" +
			strconv.FormatFloat(j.Gate, 'g', -1, 64) + "\t" +
			strconv.FormatFloat(j.Yellow, 'g', -1, 64) + "\t" +
			strconv.Itoa(j.Index) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
