package sequence

import (
	"errors"
	"fmt"
	"sort"
)

// Encoder maps raw label values onto the compact symbol indices the
// prediction models work with. The alphabet is the sorted set of distinct
// labels seen by Fit; the symbol index of a label is its position in that
// order.
type Encoder struct {
	classes []int
	index   map[int]int
}

func (e *Encoder) Fit(labels []int) error {
	if len(labels) == 0 {
		return errors.New("no labels to fit")
	}
	seen := make(map[int]bool)
	for _, l := range labels {
		seen[l] = true
	}
	e.classes = make([]int, 0, len(seen))
	for l := range seen {
		e.classes = append(e.classes, l)
	}
	sort.Ints(e.classes)
	e.index = make(map[int]int, len(e.classes))
	for i, l := range e.classes {
		e.index[l] = i
	}
	return nil
}

func (e *Encoder) Transform(labels []int) ([]int, error) {
	if e.index == nil {
		return nil, errors.New("encoder not fitted")
	}
	out := make([]int, len(labels))
	for i, l := range labels {
		s, ok := e.index[l]
		if !ok {
			return nil, fmt.Errorf("unknown label %d", l)
		}
		out[i] = s
	}
	return out, nil
}

func (e *Encoder) Inverse(symbols []int) ([]int, error) {
	if e.classes == nil {
		return nil, errors.New("encoder not fitted")
	}
	out := make([]int, len(symbols))
	for i, s := range symbols {
		if s < 0 || s >= len(e.classes) {
			return nil, fmt.Errorf("symbol %d outside alphabet of size %d", s, len(e.classes))
		}
		out[i] = e.classes[s]
	}
	return out, nil
}

// Classes returns the alphabet in symbol-index order.
func (e *Encoder) Classes() []int {
	classes := make([]int, len(e.classes))
	copy(classes, e.classes)
	return classes
}
