package predictor

// TransitionCounts counts the observed bigrams of labels. The matrix is
// indexed [next][current]: column c holds the counts of the symbols seen
// immediately after symbol c, so slicing a column gives the unnormalized
// predicted distribution for a fixed current symbol. Counts are returned
// raw; normalize a column before using it as a distribution, and fall back
// to ClassProbabilities for a column that sums to zero.
func TransitionCounts(k int, labels []int) ([][]int, error) {
	if err := checkLabels(labels, k); err != nil {
		return nil, err
	}
	counts := make([][]int, k)
	for i := range counts {
		counts[i] = make([]int, k)
	}
	for i := 0; i+1 < len(labels); i++ {
		counts[labels[i+1]][labels[i]]++
	}
	return counts, nil
}

// column normalizes column c of a transition count matrix into a
// probability distribution over next symbols. ok is false when the column
// is all zero and no distribution exists.
func column(counts [][]int, c int) (dist []float64, ok bool) {
	sum := 0
	for next := range counts {
		sum += counts[next][c]
	}
	if sum == 0 {
		return nil, false
	}
	dist = make([]float64, len(counts))
	for next := range counts {
		dist[next] = float64(counts[next][c]) / float64(sum)
	}
	return dist, true
}
