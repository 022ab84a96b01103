// SPDX-License-Identifier: MIT

package rwr

import (
	"fmt"

	"github.com/katalvlaran/crimenet/core"
	"github.com/katalvlaran/crimenet/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Walker runs repeated walks over one graph, reusing its transition matrix.
type Walker struct {
	tr *matrix.Transition
}

// NewWalker builds the transition matrix of g once.
// Errors: ErrGraphNil, matrix.ErrEmptyGraph.
func NewWalker(g *core.Graph) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	tr, err := matrix.NewTransition(g)
	if err != nil {
		return nil, fmt.Errorf("rwr: transition matrix: %w", err)
	}

	return &Walker{tr: tr}, nil
}

// Transition exposes the underlying transition matrix (read-only).
func (w *Walker) Transition() *matrix.Transition { return w.tr }

// RandomWalkWithRestart is the one-shot form of NewWalker(g).Walk(start).
// The start vertex is checked before any matrix is built.
func RandomWalkWithRestart(g *core.Graph, start int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	w, err := NewWalker(g)
	if err != nil {
		return nil, err
	}

	return w.Walk(start, opts...)
}

// Walk computes the RWR distribution from start:
//
//	p₀ = e_s
//	p' = α·e_s + (1-α)·Pᵀp      until ‖p' − p‖₁ < ε
//
// Returns:
//   - (*Result, nil) on convergence.
//   - (*Result, ErrNotConverged) with the last iterate when MaxIterations is hit.
//   - (nil, ErrStartVertexNotFound) if start is not a vertex.
//   - (nil, ErrOptionViolation) for invalid options.
//   - (nil, ctx.Err()) on cancellation.
func (w *Walker) Walk(start int64, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	s, ok := w.tr.VertexIndex[start]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := w.tr.VertexCount()
	alpha := o.RestartProbability
	pT := w.tr.P.T()

	p := mat.NewVecDense(n, nil)
	p.SetVec(s, 1)
	next := mat.NewVecDense(n, nil)

	var (
		iter      int
		delta     float64
		converged bool
	)
	for o.MaxIterations == 0 || iter < o.MaxIterations {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		next.MulVec(pT, p)
		next.ScaleVec(1-alpha, next)
		next.SetVec(s, next.AtVec(s)+alpha)
		iter++

		delta = floats.Distance(next.RawVector().Data, p.RawVector().Data, 1)
		p, next = next, p
		if delta < o.Tolerance {
			converged = true
			break
		}
	}

	res := &Result{
		Start:      start,
		Scores:     make(map[int64]float64, n),
		Iterations: iter,
		Delta:      delta,
		Converged:  converged,
	}
	for i, id := range w.tr.Vertices() {
		res.Scores[id] = p.AtVec(i)
	}

	o.Logger.Debug().
		Int64("start", start).
		Int("iterations", iter).
		Float64("delta", delta).
		Bool("converged", converged).
		Float64("mass", floats.Sum(p.RawVector().Data)).
		Msg("random walk with restart")

	if !converged {
		return res, fmt.Errorf("%w: %d iterations, delta %g", ErrNotConverged, iter, delta)
	}

	return res, nil
}
