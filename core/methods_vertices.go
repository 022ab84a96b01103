// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a criminal with its case count. Adding an existing ID is a
// no-op and keeps the first case count.
//
// Errors:
//   - ErrSealed: the graph has been sealed.
//   - ErrBadCaseCount: caseCount < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64, caseCount int) error {
	if caseCount < 0 {
		return fmt.Errorf("%w: vertex %d has %d cases", ErrBadCaseCount, id, caseCount)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if g.sealed {
		return ErrSealed
	}
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, CaseCount: caseCount}

	// Bootstrap the adjacency bucket so isolated vertices still enumerate.
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int64]int64)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record for id.
func (g *Graph) Vertex(id int64) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return *v, nil
}

// CaseCount returns the number of distinct cases of criminal id.
func (g *Graph) CaseCount(id int64) (int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return 0, err
	}

	return v.CaseCount, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct neighbours of id. There are no loops,
// so every edge counts once.
func (g *Graph) Degree(id int64) (int, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// Strength returns the weighted degree of id: the sum of the weights of its
// incident edges.
func (g *Graph) Strength(id int64) (int64, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var sum int64
	for _, w := range g.adjacency[id] {
		sum += w
	}

	return sum, nil
}
