package predictor

type uniform struct {
	predictor
}

// NewUniform returns the 0-gram baseline: every symbol is equally likely at
// every position.
func NewUniform(name string, k int) *uniform {
	u := new(uniform)
	u.name = name
	u.k = k

	return u
}

func (p *uniform) Predict(labels []int) ([][]float64, error) {
	if err := checkLabels(labels, p.k); err != nil {
		return nil, err
	}

	output := make([][]float64, len(labels))
	for i := range output {
		dist := make([]float64, p.k)
		for s := range dist {
			dist[s] = 1 / float64(p.k)
		}
		output[i] = dist
	}

	return output, nil
}
