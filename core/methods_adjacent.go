// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighbourhood queries.
// Determinism:
//   - NeighborIDs() and Neighbors() are sorted by neighbour ID ascending.
package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the sorted IDs of every vertex sharing a case with id.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	row := g.adjacency[id]
	out := make([]int64, 0, len(row))
	for v := range row {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Neighbors returns the incident edges of id with From == id, sorted by To.
func (g *Graph) Neighbors(id int64) ([]Edge, error) {
	ids, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, len(ids))
	for i, v := range ids {
		out[i] = Edge{From: id, To: v, Weight: g.adjacency[id][v]}
	}

	return out, nil
}
