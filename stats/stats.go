// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"github.com/katalvlaran/crimenet/bfs"
	"github.com/katalvlaran/crimenet/core"
	"github.com/katalvlaran/crimenet/dataset"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the shape of a graph.
type Summary struct {
	Nodes            int
	Edges            int
	TotalWeight      int64
	AverageDegree    float64 // 2m/n, 0 for an empty graph
	Density          float64 // 2m/(n(n-1)), 0 for n < 2
	Clustering       float64 // mean local clustering coefficient
	Isolated         int
	Components       int
	LargestComponent int
}

// Bin is one histogram bucket.
type Bin struct {
	Value int64
	Count int
}

// Summarize computes a Summary of g. A nil graph yields the zero Summary.
func Summarize(g *core.Graph) Summary {
	if g == nil {
		return Summary{}
	}
	gs := g.Stats()
	s := Summary{
		Nodes:       gs.VertexCount,
		Edges:       gs.EdgeCount,
		TotalWeight: gs.TotalWeight,
		Isolated:    gs.IsolatedCount,
	}
	n, m := float64(s.Nodes), float64(s.Edges)
	if s.Nodes > 0 {
		s.AverageDegree = 2 * m / n
	}
	if s.Nodes > 1 {
		s.Density = 2 * m / (n * (n - 1))
	}
	s.Clustering = AverageClustering(g)

	comps := bfs.Components(g)
	s.Components = len(comps)
	if len(comps) > 0 {
		s.LargestComponent = len(comps[0])
	}

	return s
}

// LocalClustering returns the fraction of pairs of id's neighbors that are
// themselves adjacent. Vertices with fewer than two neighbors score 0.
// Weights are ignored.
func LocalClustering(g *core.Graph, id int64) (float64, error) {
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return 0, err
	}
	k := len(nbrs)
	if k < 2 {
		return 0, nil
	}
	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				links++
			}
		}
	}

	return 2 * float64(links) / float64(k*(k-1)), nil
}

// AverageClustering averages LocalClustering over every vertex, isolated
// ones included. 0 for an empty graph.
func AverageClustering(g *core.Graph) float64 {
	ids := g.Vertices()
	if len(ids) == 0 {
		return 0
	}
	var sum float64
	for _, id := range ids {
		c, _ := LocalClustering(g, id)
		sum += c
	}

	return sum / float64(len(ids))
}

// DegreeHistogram counts vertices per degree.
func DegreeHistogram(g *core.Graph) []Bin {
	counts := make(map[int64]int)
	for _, id := range g.Vertices() {
		d, _ := g.Degree(id)
		counts[int64(d)]++
	}

	return bins(counts)
}

// WeightDistribution counts edges per weight (number of shared cases).
func WeightDistribution(g *core.Graph) []Bin {
	counts := make(map[int64]int)
	for _, e := range g.Edges() {
		counts[e.Weight]++
	}

	return bins(counts)
}

// CaseSizeDistribution counts cases per number of distinct participants.
func CaseSizeDistribution(ds *dataset.Dataset) []Bin {
	counts := make(map[int64]int)
	for _, c := range ds.Cases() {
		counts[int64(len(ds.CriminalsIn(c)))]++
	}

	return bins(counts)
}

// AverageCriminalsPerCase is the mean number of distinct criminals per
// case, 0 for a dataset without cases.
func AverageCriminalsPerCase(ds *dataset.Dataset) float64 {
	cases := ds.Cases()
	if len(cases) == 0 {
		return 0
	}
	sizes := make([]float64, len(cases))
	for i, c := range cases {
		sizes[i] = float64(len(ds.CriminalsIn(c)))
	}

	return stat.Mean(sizes, nil)
}

// MeanStdDev returns the mean and sample standard deviation of a histogram
// treated as a weighted sample. Empty input yields (0, 0); a single
// observation has standard deviation 0.
func MeanStdDev(hist []Bin) (mean, std float64) {
	if len(hist) == 0 {
		return 0, 0
	}
	x := make([]float64, len(hist))
	w := make([]float64, len(hist))
	var total float64
	for i, b := range hist {
		x[i], w[i] = float64(b.Value), float64(b.Count)
		total += w[i]
	}
	if total <= 1 {
		return stat.Mean(x, w), 0
	}

	return stat.MeanStdDev(x, w)
}

func bins(counts map[int64]int) []Bin {
	out := make([]Bin, 0, len(counts))
	for v, c := range counts {
		out = append(out, Bin{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })

	return out
}
