package predictor

type unigram struct {
	predictor
}

// NewUnigram returns the 1-gram model: every position is predicted with the
// global class frequencies of the sequence, ignoring context.
func NewUnigram(name string, k int) *unigram {
	u := new(unigram)
	u.name = name
	u.k = k

	return u
}

func (p *unigram) Predict(labels []int) ([][]float64, error) {
	prob, err := ClassProbabilities(labels, p.k)
	if err != nil {
		return nil, err
	}

	output := make([][]float64, len(labels))
	for i := range output {
		dist := make([]float64, p.k)
		copy(dist, prob)
		output[i] = dist
	}

	return output, nil
}
