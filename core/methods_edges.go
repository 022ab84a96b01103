// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge accumulation & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) with From < To.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import (
	"fmt"
	"sort"
)

// AddEdge adds weight to the undirected edge {from,to}, creating it on first
// use. Repeated calls accumulate, so calling it once per shared case leaves the
// number of shared cases as the edge weight.
//
// Steps:
//  1. Validate weight and loops.
//  2. Check that the graph is not sealed and both endpoints exist.
//  3. Lock muEdgeAdj, update both mirror cells.
//
// Errors:
//   - ErrBadWeight: weight <= 0.
//   - ErrLoopNotAllowed: from == to.
//   - ErrSealed: the graph has been sealed.
//   - ErrVertexNotFound: an endpoint was never added.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int64, weight int64) error {
	if weight <= 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	if from == to {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	g.muVert.RLock()
	sealed := g.sealed
	_, okFrom := g.vertices[from]
	_, okTo := g.vertices[to]
	g.muVert.RUnlock()

	if sealed {
		return ErrSealed
	}
	if !okFrom {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !okTo {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; !exists {
		g.edgeCount++
	}
	g.adjacency[from][to] += weight
	g.adjacency[to][from] += weight
	g.totalWeight += weight

	return nil
}

// HasEdge reports whether from and to share at least one case.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int64) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of edge {from,to}, or ErrEdgeNotFound.
func (g *Graph) Weight(from, to int64) (int64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: {%d,%d}", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Edges returns every undirected edge once, as From < To, sorted by
// (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, row := range g.adjacency {
		for v, w := range row {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(1).
func (g *Graph) TotalWeight() int64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.totalWeight
}
