package evaluator

import (
	"strings"
	"testing"

	"github.com/jsaez8/nvpredict/generator"
	"github.com/jsaez8/nvpredict/sequence"
)

func TestToConfig(t *testing.T) {
	cjl := configJSONList{{LabelsFile: "labels.csv", LabelsColumn: 1}}
	cl := cjl.toConfig()
	c := cl[0]
	if c.LabelsFile != "labels.csv" || c.LabelsColumn != 1 {
		t.Error("config conversion wrong:", c)
	}
	if c.ClusterNumber != 4 {
		t.Error("default cluster number wrong:", c.ClusterNumber)
	}
	if len(c.Models) != 3 || c.Models[2] != "bigram" {
		t.Error("default models wrong:", c.Models)
	}
}

func TestReadLabels(t *testing.T) {
	in := "0\t3\n1\t1\n2\t0\n"
	labels := readLabels(strings.NewReader(in), 1, "")
	if len(labels) != 3 || labels[0] != 3 || labels[2] != 0 {
		t.Error("labels read wrong:", labels)
	}
}

func TestReadJumps(t *testing.T) {
	in := "10\t0.5\t-0.25\t3\n12\t-0.5\t0.25\t7\n"
	points := readJumps(strings.NewReader(in), nil, "")
	if len(points) != 2 {
		t.Fatal("jumps read wrong:", points)
	}
	if points[0][0] != 0.5 || points[0][1] != -0.25 {
		t.Error("jump point wrong:", points[0])
	}
}

func TestClassify(t *testing.T) {
	points := [][]float64{
		{1, 0.01}, {1, 0.02}, {1, -0.01},
		{0.01, 1}, {0.02, 1}, {-0.01, 1},
	}
	guesses := classify(points, 2)
	if len(guesses) != len(points) {
		t.Fatal("classify length wrong:", guesses)
	}
	for _, g := range guesses {
		if g < 0 || g >= 2 {
			t.Error("class outside range:", g)
		}
	}
	t.Log("classify:", guesses)
}

func TestEvaluate(t *testing.T) {
	labels := generator.DoubleTwoLevel(5000, 0.35, 1)
	e := new(sequence.Encoder)
	if err := e.Fit(labels); err != nil {
		t.Fatal(err)
	}
	lx, err := e.Transform(labels)
	if err != nil {
		t.Fatal(err)
	}

	results := evaluate(lx, len(e.Classes()), []string{"uniform", "unigram", "bigram"})
	if len(results) != 3 {
		t.Fatal("result count wrong:", results)
	}
	uniform, unigram, bigram := results[0].steps, results[1].steps, results[2].steps
	t.Log("uniform:", uniform, "unigram:", unigram, "bigram:", bigram)

	// The flip structure makes the preceding symbol informative: a bigram
	// model narrows four candidates down to two.
	if bigram >= unigram {
		t.Error("bigram model should beat the context-free model:", bigram, unigram)
	}
	if bigram > 1.6 || unigram < 2.0 || uniform < 2.0 {
		t.Error("scores off:", uniform, unigram, bigram)
	}
}
