// SPDX-License-Identifier: MIT

package matrix

import (
	"sort"

	"github.com/katalvlaran/crimenet/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Transition is the row-stochastic random-walk matrix of a graph:
// P[i][j] = w(i,j) / Σ_k w(i,k).
//
// Rows of dangling vertices (no incident weight) stay all-zero. Mass that
// reaches such a vertex is not redistributed, so Pᵀp can lose probability.
type Transition struct {
	*AdjacencyMatrix

	// P is the normalised transition matrix.
	P *mat.Dense

	dangling []int
}

// NewTransition builds the adjacency matrix of g and normalises each row.
// Errors: ErrGraphNil, ErrEmptyGraph.
func NewTransition(g *core.Graph) (*Transition, error) {
	am, err := NewAdjacencyMatrix(g)
	if err != nil {
		return nil, err
	}

	return am.Transition(), nil
}

// Transition derives the row-stochastic matrix from am. am.Mat is not
// modified.
// Complexity: O(V²).
func (am *AdjacencyMatrix) Transition() *Transition {
	n := am.VertexCount()
	p := mat.NewDense(n, n, nil)
	p.Copy(am.Mat)

	var dangling []int
	for i := 0; i < n; i++ {
		row := p.RawRowView(i)
		sum := floats.Sum(row)
		if sum <= 0 {
			dangling = append(dangling, i)
			continue
		}
		floats.Scale(1/sum, row)
	}

	return &Transition{AdjacencyMatrix: am, P: p, dangling: dangling}
}

// Dangling returns the ids of vertices whose row is all-zero, ascending.
func (t *Transition) Dangling() []int64 {
	out := make([]int64, len(t.dangling))
	for k, i := range t.dangling {
		out[k] = t.vertexByIndex[i]
	}

	return out
}

// IsDangling reports whether vertex row i is all-zero.
func (t *Transition) IsDangling(i int) bool {
	k := sort.SearchInts(t.dangling, i)

	return k < len(t.dangling) && t.dangling[k] == i
}
