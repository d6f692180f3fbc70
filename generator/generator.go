package generator

import (
	"io"
	"math/rand"
	"strconv"
)

// DoubleTwoLevel simulates two independent two-level systems observed as one
// four-valued signal. At each step, with probability p system A flips (XOR
// with 1) and otherwise system B flips (XOR with 2), so consecutive labels
// always differ in exactly one of the two bits. Labels lie in {0, 1, 2, 3}.
func DoubleTwoLevel(n int, p float64, seed int64) []int {
	ran := rand.New(rand.NewSource(seed))

	x := make([]int, n)
	for i := 0; i < n-1; i++ {
		if ran.Float64() <= p {
			x[i+1] = x[i] ^ 1
		} else {
			x[i+1] = x[i] ^ 2
		}
	}
	return x
}

// WriteLabels writes one step index and label per line, tab separated.
func WriteLabels(w io.Writer, labels []int) error {
	for i, l := range labels {
		_, err := io.WriteString(w, strconv.Itoa(i)+"\t"+strconv.Itoa(l)+"\n")
		if err != nil {
			return err
		}
	}
	return nil
}
