package predictor

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports malformed input: an empty sequence, a symbol
// outside the alphabet, mismatched lengths or a broken probability
// distribution. Every operation validates its full input before computing.
var ErrInvalidInput = errors.New("invalid input")

type predictor struct {
	name string
	k    int
}

// Predictors produce, for every position of a label sequence, the
// probability distribution over the alphabet the model holds before that
// label is revealed. Labels are symbol indices in [0, k).
type Predictors interface {
	Name() string
	Predict(labels []int) ([][]float64, error)
}

func (p *predictor) Name() string {
	return p.name
}

func checkLabels(labels []int, k int) error {
	if k < 1 {
		return fmt.Errorf("%w: alphabet size %d", ErrInvalidInput, k)
	}
	if len(labels) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	for i, l := range labels {
		if l < 0 || l >= k {
			return fmt.Errorf("%w: symbol %d at position %d outside alphabet of size %d", ErrInvalidInput, l, i, k)
		}
	}
	return nil
}
