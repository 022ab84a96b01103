package stats_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/crimenet/builder"
	"github.com/katalvlaran/crimenet/core"
	"github.com/katalvlaran/crimenet/dataset"
	"github.com/katalvlaran/crimenet/stats"
	"github.com/stretchr/testify/require"
)

// case 10: {1,2,3}, case 11: {3,4}, case 12: {1,2}, case 20: {5}
const sample = "1 10\n2 10\n3 10\n3 11\n4 11\n1 12\n2 12\n5 20\n"

func load(t *testing.T) (*dataset.Dataset, *core.Graph) {
	t.Helper()
	ds, err := dataset.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	g, err := builder.BuildGraph(ds)
	require.NoError(t, err)

	return ds, g
}

func TestSummarize(t *testing.T) {
	_, g := load(t)
	s := stats.Summarize(g)
	require.Equal(t, 5, s.Nodes)
	require.Equal(t, 4, s.Edges)
	require.Equal(t, int64(5), s.TotalWeight)
	require.InDelta(t, 1.6, s.AverageDegree, 1e-12)
	require.InDelta(t, 0.4, s.Density, 1e-12)
	require.InDelta(t, 7.0/15.0, s.Clustering, 1e-12)
	require.Equal(t, 1, s.Isolated)
	require.Equal(t, 2, s.Components)
	require.Equal(t, 4, s.LargestComponent)
}

func TestSummarize_Degenerate(t *testing.T) {
	require.Equal(t, stats.Summary{}, stats.Summarize(nil))
	require.Equal(t, stats.Summary{}, stats.Summarize(core.NewGraph()))

	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1, 1))
	s := stats.Summarize(g)
	require.Equal(t, 1, s.Nodes)
	require.Zero(t, s.Density)
	require.Zero(t, s.AverageDegree)
	require.Equal(t, 1, s.Components)
}

func TestLocalClustering(t *testing.T) {
	_, g := load(t)
	for id, want := range map[int64]float64{1: 1, 2: 1, 3: 1.0 / 3.0, 4: 0, 5: 0} {
		c, err := stats.LocalClustering(g, id)
		require.NoError(t, err)
		require.InDelta(t, want, c, 1e-12, "vertex %d", id)
	}
	_, err := stats.LocalClustering(g, 99)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDistributions(t *testing.T) {
	ds, g := load(t)
	require.Equal(t, []stats.Bin{{0, 1}, {1, 1}, {2, 2}, {3, 1}}, stats.DegreeHistogram(g))
	require.Equal(t, []stats.Bin{{1, 3}, {2, 1}}, stats.WeightDistribution(g))
	require.Equal(t, []stats.Bin{{1, 1}, {2, 2}, {3, 1}}, stats.CaseSizeDistribution(ds))
	require.InDelta(t, 2.0, stats.AverageCriminalsPerCase(ds), 1e-12)

	require.Empty(t, stats.CaseSizeDistribution(dataset.New()))
	require.Zero(t, stats.AverageCriminalsPerCase(dataset.New()))
}

func TestMeanStdDev(t *testing.T) {
	ds, _ := load(t)
	mean, std := stats.MeanStdDev(stats.CaseSizeDistribution(ds))
	require.InDelta(t, 2.0, mean, 1e-12)
	require.InDelta(t, math.Sqrt(2.0/3.0), std, 1e-12)

	mean, std = stats.MeanStdDev(nil)
	require.Zero(t, mean)
	require.Zero(t, std)

	mean, std = stats.MeanStdDev([]stats.Bin{{Value: 4, Count: 1}})
	require.Equal(t, 4.0, mean)
	require.Zero(t, std)
}
