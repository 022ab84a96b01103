// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/crimenet/core"
	"gonum.org/v1/gonum/mat"
)

// AdjacencyMatrix is the dense symmetric weight matrix of a co-occurrence
// graph. Row/column i belongs to vertex VertexAt(i); vertices are indexed in
// ascending id order.
type AdjacencyMatrix struct {
	// Mat holds Mat[i][j] = weight of edge {i,j}, 0 if absent. Diagonal is 0.
	Mat *mat.Dense

	// VertexIndex maps vertex id → row/col in Mat, O(1) lookup.
	VertexIndex map[int64]int

	vertexByIndex []int64
}

// NewAdjacencyMatrix builds the n×n weight matrix of g.
//
// Stage 1 (Validate): g non-nil and non-empty.
// Stage 2 (Prepare): dense index from the sorted vertex list.
// Stage 3 (Execute): write each edge into both mirror cells.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
// Complexity: O(V² + E) time, O(V²) memory.
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	idx := make(map[int64]int, n)
	for i, id := range vertices {
		idx[id] = i
	}

	m := mat.NewDense(n, n, nil)
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		w := float64(e.Weight)
		m.Set(i, j, w)
		m.Set(j, i, w)
	}

	return &AdjacencyMatrix{Mat: m, VertexIndex: idx, vertexByIndex: vertices}, nil
}

// VertexCount returns the matrix dimension.
func (am *AdjacencyMatrix) VertexCount() int { return len(am.vertexByIndex) }

// Index returns the row of vertex id.
func (am *AdjacencyMatrix) Index(id int64) (int, error) {
	i, ok := am.VertexIndex[id]
	if !ok {
		return 0, fmt.Errorf("Index: vertex %d: %w", id, ErrUnknownVertex)
	}

	return i, nil
}

// VertexAt returns the vertex id of row i.
func (am *AdjacencyMatrix) VertexAt(i int) (int64, error) {
	if i < 0 || i >= len(am.vertexByIndex) {
		return 0, fmt.Errorf("VertexAt: %d of %d: %w", i, len(am.vertexByIndex), ErrOutOfRange)
	}

	return am.vertexByIndex[i], nil
}

// Vertices returns the index → id table. The slice must be treated as
// read-only.
func (am *AdjacencyMatrix) Vertices() []int64 { return am.vertexByIndex }
