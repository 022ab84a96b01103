// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Sealing and snapshot getters.

package core

// Seal freezes the graph. Every mutator called afterwards returns ErrSealed.
// Sealing is idempotent.
func (g *Graph) Seal() {
	g.muVert.Lock()
	g.sealed = true
	g.muVert.Unlock()
}

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.sealed
}

// GraphStats is an O(V+E) snapshot of the graph sizes.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	TotalWeight   int64
	IsolatedCount int // vertices without any edge
	Sealed        bool
}

// Stats returns a consistent snapshot of counts.
//
// Complexity: O(V).
// Concurrency: read locks on both guards (muVert -> muEdgeAdj).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
		TotalWeight: g.totalWeight,
		Sealed:      g.sealed,
	}
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			s.IsolatedCount++
		}
	}

	return s
}
