package evaluator

import (
	"github.com/cdipaolo/goml/base"
	"github.com/cdipaolo/goml/cluster"
)

const maxIterations = 50

var clusteringModel *cluster.KMeans

// classify clusters jump events into discrete label classes. The points are
// (gate delta, yellow delta) pairs; the class of each event is the index of
// its cluster.
func classify(points [][]float64, clusterNum int) []int {
	base.Normalize(points)
	clusteringModel = cluster.NewKMeans(clusterNum, maxIterations, points)
	if clusteringModel.Learn() != nil {
		panic("Clustering error!")
	}
	return clusteringModel.Guesses()
}
