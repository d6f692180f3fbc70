package predictor

// ClassProbabilities estimates the zeroth-order model: the empirical
// relative frequency of each of the k symbols in labels. The result is
// indexed by symbol and sums to 1.
func ClassProbabilities(labels []int, k int) ([]float64, error) {
	if err := checkLabels(labels, k); err != nil {
		return nil, err
	}
	prob := make([]float64, k)
	for _, l := range labels {
		prob[l]++
	}
	for i := range prob {
		prob[i] /= float64(len(labels))
	}
	return prob, nil
}
