// SPDX-License-Identifier: MIT
// Package rwr provides tunable options, error definitions and result types
// for Random Walk with Restart over a core.Graph.
package rwr

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
)

// Sentinel errors for RWR execution.
var (
	// ErrStartVertexNotFound is returned when the start id is absent; no
	// computation is performed.
	ErrStartVertexNotFound = errors.New("rwr: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("rwr: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rwr: invalid option supplied")

	// ErrNotConverged is returned together with the last iterate when the
	// iteration cap is reached before the tolerance.
	ErrNotConverged = errors.New("rwr: did not converge within max iterations")

	// ErrCaseNotFound is returned by CaseCohesion for an unknown case.
	ErrCaseNotFound = errors.New("rwr: case not found")

	// ErrSingleParticipant is returned by CaseCohesion when a case has fewer
	// than two criminals, so there is no pair to average over.
	ErrSingleParticipant = errors.New("rwr: case has a single participant")
)

// Defaults.
const (
	// DefaultRestartProbability is α, the per-step teleport probability.
	DefaultRestartProbability = 0.15

	// DefaultTolerance is ε for the L1 change between iterates.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the power iteration. With α = 0.15 the L1
	// change shrinks by at least 0.85 per step, so ~100 steps reach 1e-6.
	DefaultMaxIterations = 10000
)

// Option configures RWR behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// walk is invoked.
type Option func(*Options)

// Options holds the RWR parameters.
type Options struct {
	// Ctx allows cancellation; checked once per iteration.
	Ctx context.Context

	// RestartProbability α ∈ [0,1].
	RestartProbability float64

	// Tolerance ε > 0.
	Tolerance float64

	// MaxIterations > 0 caps the iteration; 0 explicitly disables the cap.
	MaxIterations int

	// Logger receives per-walk debug summaries.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns α=0.15, ε=1e-6, a 10000-iteration cap, a background
// context and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		RestartProbability: DefaultRestartProbability,
		Tolerance:          DefaultTolerance,
		MaxIterations:      DefaultMaxIterations,
		Logger:             zerolog.Nop(),
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRestartProbability sets α. Values outside [0,1] or NaN are violations.
func WithRestartProbability(alpha float64) Option {
	return func(o *Options) {
		if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
			o.err = fmt.Errorf("%w: restart probability must be in [0,1] (%v)", ErrOptionViolation, alpha)
			return
		}
		o.RestartProbability = alpha
	}
}

// WithTolerance sets ε. Non-positive or non-finite values are violations.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be finite and > 0 (%v)", ErrOptionViolation, eps)
			return
		}
		o.Tolerance = eps
	}
}

// WithMaxIterations caps the iteration count.
//
//	n > 0: at most n iterations
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Score is one vertex with its stationary visit probability.
type Score struct {
	ID    int64
	Value float64
}

// Result holds the outcome of one walk:
//   - Scores: vertex id → stationary visit probability.
//   - Iterations: number of update steps performed.
//   - Delta: L1 change of the final step.
//   - Converged: Delta < Tolerance.
type Result struct {
	Start      int64
	Scores     map[int64]float64
	Iterations int
	Delta      float64
	Converged  bool
}

// Mass returns Σ Scores. It is 1 on graphs without dangling vertices and less
// when mass leaks through dangling vertices.
func (r *Result) Mass() float64 {
	var sum float64
	for _, v := range r.Scores {
		sum += v
	}

	return sum
}

// Ranked returns every score sorted by probability descending, ties by id
// ascending.
func (r *Result) Ranked() []Score {
	out := make([]Score, 0, len(r.Scores))
	for id, v := range r.Scores {
		out = append(out, Score{ID: id, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// Top returns the k highest-scoring vertices other than the start vertex.
// k <= 0 yields an empty slice; k larger than the graph yields all others.
func (r *Result) Top(k int) []Score {
	if k <= 0 {
		return []Score{}
	}
	out := make([]Score, 0, k)
	for _, s := range r.Ranked() {
		if s.ID == r.Start {
			continue
		}
		out = append(out, s)
		if len(out) == k {
			break
		}
	}

	return out
}
