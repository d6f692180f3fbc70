package predictor

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestClassProbabilities(t *testing.T) {
	prob, err := ClassProbabilities([]int{0, 0, 1, 1, 0, 1}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if prob[0] != 0.5 || prob[1] != 0.5 {
		t.Error("ClassProbabilities wrong:", prob)
	}
}

func TestClassProbabilitiesSum(t *testing.T) {
	ran := rand.New(rand.NewSource(1))
	labels := make([]int, 1000)
	for i := range labels {
		labels[i] = ran.Intn(5)
	}
	prob, err := ClassProbabilities(labels, 5)
	if err != nil {
		t.Fatal(err)
	}
	sum := 0.0
	for _, p := range prob {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Error("probabilities do not sum to 1:", sum)
	}
}

func TestClassProbabilitiesEmpty(t *testing.T) {
	if _, err := ClassProbabilities(nil, 2); !errors.Is(err, ErrInvalidInput) {
		t.Error("empty sequence not rejected:", err)
	}
}

func TestClassProbabilitiesOutOfRange(t *testing.T) {
	if _, err := ClassProbabilities([]int{0, 3}, 2); !errors.Is(err, ErrInvalidInput) {
		t.Error("out of range symbol not rejected:", err)
	}
}

func TestClassProbabilitiesIdempotent(t *testing.T) {
	labels := []int{2, 0, 1, 1, 2, 0, 0}
	a, err := ClassProbabilities(labels, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ClassProbabilities(labels, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Error("results differ between calls:", a, b)
		}
	}
}
