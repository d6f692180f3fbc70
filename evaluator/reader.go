package evaluator

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

var (
	configs     configList
	configJSONs configJSONList
)

func readConfigs(reader io.Reader) {
	dec := json.NewDecoder(reader)
	for dec.More() {
		err := dec.Decode(&configJSONs)
		if err != nil {
			panic(err)
		}
	}
	configs = configJSONs.toConfig()
}

// readLabels reads one label per row from the given column.
func readLabels(reader io.Reader, column int, comma string) []int {
	r := csv.NewReader(reader)
	r.Comma = '\t'
	if comma != "" {
		r.Comma = []rune(comma)[0]
	}
	labels := make([]int, 0)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}

		l, err := strconv.Atoi(rec[column])
		if err != nil {
			panic(err)
		}
		labels = append(labels, l)
	}
	return labels
}

// readJumps reads jump events as (gate delta, yellow delta) points. column
// maps the two fields; a nil column uses 1, 2, matching the filter output
// layout of time, gate, yellow, index.
func readJumps(reader io.Reader, column []int, comma string) [][]float64 {
	var colGate, colYellow = 1, 2
	if len(column) != 0 {
		colGate, colYellow = column[0], column[1]
	}
	r := csv.NewReader(reader)
	r.Comma = '\t'
	if comma != "" {
		r.Comma = []rune(comma)[0]
	}
	points := make([][]float64, 0)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}

		g, err := strconv.ParseFloat(rec[colGate], 64)
		if err != nil {
			panic(err)
		}
		y, err := strconv.ParseFloat(rec[colYellow], 64)
		if err != nil {
			panic(err)
		}
		points = append(points, []float64{g, y})
	}
	return points
}
