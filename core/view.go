// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read locks on source; result is a fresh, sealed graph instance.

package core

// InducedSubgraph returns a new sealed Graph that contains only the vertices v
// with keep[v] == true and the edges whose endpoints are both kept. Case counts
// and edge weights are copied unchanged. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[int64]bool) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, CaseCount: v.CaseCount}
			out.adjacency[id] = make(map[int64]int64)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for u, row := range g.adjacency {
		if !keep[u] {
			continue
		}
		for v, w := range row {
			if !keep[v] {
				continue
			}
			out.adjacency[u][v] = w
			if u < v {
				out.edgeCount++
				out.totalWeight += w
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	out.sealed = true

	return out
}
