// SPDX-License-Identifier: MIT

package coverage

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/crimenet/dataset"
	"github.com/rs/zerolog"
)

// DefaultThreshold is the target case coverage fraction.
const DefaultThreshold = 0.8

var (
	// ErrNilDataset indicates Select was called without a dataset.
	ErrNilDataset = errors.New("coverage: dataset is nil")

	// ErrNoCases indicates a dataset without cases; coverage is undefined.
	ErrNoCases = errors.New("coverage: dataset has no cases")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coverage: invalid option supplied")
)

// Option configures Select.
type Option func(*options)

type options struct {
	threshold float64
	logger    zerolog.Logger
	err       error
}

// WithThreshold sets the target fraction, 0 < f ≤ 1.
func WithThreshold(f float64) Option {
	return func(o *options) {
		if math.IsNaN(f) || f <= 0 || f > 1 {
			o.err = fmt.Errorf("%w: threshold must be in (0,1] (%v)", ErrOptionViolation, f)
			return
		}
		o.threshold = f
	}
}

// WithLogger sets the logger used for the selection summary.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Result is the outcome of Select.
type Result struct {
	// Selected criminals in selection order.
	Selected []int64

	// Covered is the number of distinct cases covered by Selected.
	Covered int

	// Total is the number of distinct cases in the dataset.
	Total int

	// Coverage is Covered / Total.
	Coverage float64

	// Threshold is the target fraction used.
	Threshold float64

	set map[int64]bool
}

// Contains reports whether criminal was selected.
func (r *Result) Contains(criminal int64) bool { return r.set[criminal] }

// Set returns a fresh membership map of the selection, suitable for
// core.InducedSubgraph or highlighting.
func (r *Result) Set() map[int64]bool {
	out := make(map[int64]bool, len(r.Selected))
	for _, id := range r.Selected {
		out[id] = true
	}

	return out
}

type ranked struct {
	id    int64
	cases []int64
}

// Select runs the greedy selection over ds.
// Errors: ErrNilDataset, ErrNoCases, ErrOptionViolation.
func Select(ds *dataset.Dataset, opts ...Option) (*Result, error) {
	o := options{threshold: DefaultThreshold, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ds == nil {
		return nil, ErrNilDataset
	}
	total := ds.CaseCount()
	if total == 0 {
		return nil, ErrNoCases
	}
	needed := float64(total) * o.threshold

	criminals := ds.Criminals()
	order := make([]ranked, len(criminals))
	for i, id := range criminals {
		order[i] = ranked{id: id, cases: ds.CasesOf(id)}
	}
	// criminals is ascending, so a stable sort keeps id order among ties
	sort.SliceStable(order, func(i, j int) bool { return len(order[i].cases) > len(order[j].cases) })

	res := &Result{Total: total, Threshold: o.threshold, set: make(map[int64]bool)}
	covered := make(map[int64]struct{}, total)
	for _, c := range order {
		if float64(len(covered)) >= needed {
			break
		}
		gain := 0
		for _, caseID := range c.cases {
			if _, ok := covered[caseID]; !ok {
				gain++
			}
		}
		if gain == 0 {
			continue
		}
		for _, caseID := range c.cases {
			covered[caseID] = struct{}{}
		}
		res.Selected = append(res.Selected, c.id)
		res.set[c.id] = true
	}
	res.Covered = len(covered)
	res.Coverage = float64(res.Covered) / float64(total)

	o.logger.Debug().
		Int("selected", len(res.Selected)).
		Int("covered", res.Covered).
		Int("total", total).
		Float64("threshold", o.threshold).
		Msg("coverage selection")

	return res, nil
}
