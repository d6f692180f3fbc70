package predictor

import (
	"fmt"
	"math"
	"sort"

	"github.com/gonum/stat"
)

// Ranks returns, for every position, the 1-based rank of the true label
// within the predicted distribution sorted by probability descending. Equal
// probabilities rank the lower symbol index first so the result is
// deterministic. A rank is the number of guesses a greedy guesser, always
// naming the most probable remaining symbol, needs to land on the true one.
func Ranks(trueLabels []int, predicted [][]float64) ([]float64, error) {
	if len(trueLabels) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	if len(trueLabels) != len(predicted) {
		return nil, fmt.Errorf("%w: %d labels but %d predicted distributions", ErrInvalidInput, len(trueLabels), len(predicted))
	}
	for i, dist := range predicted {
		if err := checkDistribution(dist); err != nil {
			return nil, fmt.Errorf("%w at position %d", err, i)
		}
		if l := trueLabels[i]; l < 0 || l >= len(dist) {
			return nil, fmt.Errorf("%w: symbol %d at position %d outside alphabet of size %d", ErrInvalidInput, l, i, len(dist))
		}
	}

	ranks := make([]float64, len(trueLabels))
	for i, dist := range predicted {
		order := make([]int, len(dist))
		for s := range order {
			order[s] = s
		}
		sort.SliceStable(order, func(a, b int) bool {
			return dist[order[a]] > dist[order[b]]
		})
		for pos, s := range order {
			if s == trueLabels[i] {
				ranks[i] = float64(pos + 1)
				break
			}
		}
	}
	return ranks, nil
}

// AverageSteps scores a model by the mean rank over all positions: the
// expected number of ranked guesses needed to predict each label. A perfect
// predictor scores exactly 1; a uniform guesser over k symbols tends to
// (k+1)/2 on long sequences.
func AverageSteps(trueLabels []int, predicted [][]float64) (float64, error) {
	ranks, err := Ranks(trueLabels, predicted)
	if err != nil {
		return 0, err
	}
	return stat.Mean(ranks, nil), nil
}

func checkDistribution(dist []float64) error {
	if len(dist) == 0 {
		return fmt.Errorf("%w: empty distribution", ErrInvalidInput)
	}
	for _, p := range dist {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: malformed probability %v", ErrInvalidInput, p)
		}
	}
	return nil
}
