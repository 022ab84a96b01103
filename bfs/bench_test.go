package bfs_test

import (
	"testing"

	"github.com/katalvlaran/crimenet/bfs"
	"github.com/katalvlaran/crimenet/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 criminals.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	pairs := make([][2]int64, N)
	for i := range pairs {
		pairs[i] = [2]int64{int64(i), int64(i + 1)}
	}
	g := build(b, pairs)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkComponents measures decomposition of many disjoint pairs.
func BenchmarkComponents(b *testing.B) {
	const N = 5000
	g := core.NewGraph()
	for i := int64(0); i < N; i++ {
		_ = g.AddVertex(2*i, 1)
		_ = g.AddVertex(2*i+1, 1)
		_ = g.AddEdge(2*i, 2*i+1, 1)
	}
	g.Seal()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.Components(g)
	}
}
