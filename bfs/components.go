// SPDX-License-Identifier: MIT

package bfs

import (
	"sort"

	"github.com/katalvlaran/crimenet/core"
)

// Components partitions g into connected components, one BFS per
// undiscovered vertex. Each component lists its members ascending;
// components are ordered by size descending, then by smallest member.
// Isolated criminals form singleton components. A nil or empty graph
// yields nil.
func Components(g *core.Graph) [][]int64 {
	if g == nil {
		return nil
	}
	seen := make(map[int64]bool, g.VertexCount())
	var out [][]int64
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			// v came from g.Vertices, so BFS cannot reject it
			continue
		}
		comp := append([]int64(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		out = append(out, comp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i][0] < out[j][0]
	})

	return out
}

// Largest returns the biggest component of g, or nil for an empty graph.
func Largest(g *core.Graph) []int64 {
	comps := Components(g)
	if len(comps) == 0 {
		return nil
	}

	return comps[0]
}
