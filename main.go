package main

import (
	"os"
	"strconv"
	"time"

	"github.com/jsaez8/nvpredict/evaluator"
	"github.com/jsaez8/nvpredict/filter"
	"github.com/jsaez8/nvpredict/generator"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		return
	}
	switch args[1] {
	case "eval":
		var path string
		if len(args) < 3 {
			path = ""
		} else {
			path = args[2]
		}
		evaluator.Evaluate(path)
	case "gen":
		if len(args) < 5 {
			return
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			panic(err)
		}
		p, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			panic(err)
		}
		f, err := os.Create(args[4])
		if err != nil {
			panic(err)
		}
		defer f.Close()
		if err := generator.WriteLabels(f, generator.DoubleTwoLevel(n, p, time.Now().UnixNano())); err != nil {
			panic(err)
		}
	case "jumps":
		if len(args) < 4 {
			return
		}
		in, err := os.Open(args[2])
		if err != nil {
			panic(err)
		}
		defer in.Close()
		trace, err := filter.ReadTrace(in, nil, "")
		if err != nil {
			panic(err)
		}
		jumps, err := filter.Jumps(trace)
		if err != nil {
			panic(err)
		}
		out, err := os.Create(args[3])
		if err != nil {
			panic(err)
		}
		defer out.Close()
		if err := filter.WriteJumps(out, jumps); err != nil {
			panic(err)
		}
	default:
		return
	}
}
