package predictor

type bigram struct {
	predictor
}

// NewBigram returns the 2-gram model: each position is predicted from the
// transition distribution of the preceding symbol, estimated over the whole
// sequence. The first position, and any symbol never observed as "current",
// fall back to the global class frequencies.
func NewBigram(name string, k int) *bigram {
	b := new(bigram)
	b.name = name
	b.k = k

	return b
}

func (p *bigram) Predict(labels []int) ([][]float64, error) {
	prob, err := ClassProbabilities(labels, p.k)
	if err != nil {
		return nil, err
	}
	counts, err := TransitionCounts(p.k, labels)
	if err != nil {
		return nil, err
	}

	output := make([][]float64, len(labels))
	output[0] = prob
	for i := 1; i < len(labels); i++ {
		if dist, ok := column(counts, labels[i-1]); ok {
			output[i] = dist
		} else {
			output[i] = prob
		}
	}

	return output, nil
}
