package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/jsaez8/nvpredict/predictor"
	"github.com/jsaez8/nvpredict/sequence"
)

type result struct {
	name  string
	steps float64
}

// Evaluate runs every configuration in the config file: load or derive a
// label sequence, fit the configured models on it and report the average
// number of ranked guesses each model needs per label.
func Evaluate(path string) {
	if path == "" {
		path = "configs.json"
	}
	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	readConfigs(f)

	for _, c := range configs {
		labels := loadLabels(c)

		e := new(sequence.Encoder)
		if err := e.Fit(labels); err != nil {
			panic(err)
		}
		lx, err := e.Transform(labels)
		if err != nil {
			panic(err)
		}
		fmt.Println("Classes:", e.Classes())

		results := evaluate(lx, len(e.Classes()), c.Models)
		report(c, results)
	}
}

// loadLabels returns the label sequence for a configuration: read directly
// from a labels file, or derived by clustering the jump events of a jumps
// file into classes.
func loadLabels(c config) []int {
	if c.LabelsFile != "" {
		f, err := os.Open(c.LabelsFile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		return readLabels(f, c.LabelsColumn, c.Comma)
	}

	f, err := os.Open(c.JumpsFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	points := readJumps(f, c.JumpsColumn, c.Comma)
	return classify(points, c.ClusterNumber)
}

func evaluate(lx []int, k int, names []string) []result {
	results := make([]result, 0, len(names))
	for _, name := range names {
		m := newModel(name, k)
		if m == nil {
			panic("unknown model: " + name)
		}
		predicted, err := m.Predict(lx)
		if err != nil {
			panic(err)
		}
		steps, err := predictor.AverageSteps(lx, predicted)
		if err != nil {
			panic(err)
		}
		results = append(results, result{m.Name(), steps})
	}
	return results
}

func newModel(name string, k int) predictor.Predictors {
	switch name {
	case "uniform":
		return predictor.NewUniform(name, k)
	case "unigram":
		return predictor.NewUnigram(name, k)
	case "bigram":
		return predictor.NewBigram(name, k)
	}
	return nil
}

func report(c config, results []result) {
	var w io.Writer = os.Stdout
	if c.ResultFileName != "" {
		f, err := os.Create(c.ResultFileName)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		w = io.MultiWriter(os.Stdout, f)
	}
	for _, r := range results {
		fmt.Fprintf(w, "avg number of steps (%s): %.5f\n", r.name, r.steps)
	}
}
