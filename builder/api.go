// SPDX-License-Identifier: MIT
// Package: crimenet/builder
//
// api.go - public entry-points for the builder package.
//
// Contract:
//   - BuildGraph projects a dataset onto criminals and seals the result.
//   - LoadGraph = dataset.Load + BuildGraph, the single pipeline every
//     analysis starts from.
//   - Determinism: vertices are inserted by ascending criminal id, cases are
//     visited by ascending case id, pairs by ascending (i, j).

package builder

import (
	"fmt"
	"time"

	"github.com/katalvlaran/crimenet/core"
	"github.com/katalvlaran/crimenet/dataset"
	"github.com/rs/zerolog"
)

// File-local method tags used in wrapped errors.
const (
	methodBuildGraph = "BuildGraph"
	methodLoadGraph  = "LoadGraph"
)

// unitCaseWeight is the weight contributed by one shared case.
const unitCaseWeight int64 = 1

// BuilderOption configures BuildGraph.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	logger zerolog.Logger
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the logger used for the build summary.
func WithLogger(l zerolog.Logger) BuilderOption {
	return func(c *builderConfig) { c.logger = l }
}

// BuildGraph returns the sealed co-occurrence graph of ds:
//   - one vertex per criminal with CaseCount = |cases(criminal)|;
//   - for every case and every unordered pair of distinct criminals in it,
//     the pair's edge weight grows by one.
//
// After BuildGraph returns, Weight(u,v) equals the number of cases u and v
// share. An empty dataset yields an empty graph.
//
// Complexity: O(C + Σ_case k²) where k is the number of criminals in a case.
func BuildGraph(ds *dataset.Dataset, opts ...BuilderOption) (*core.Graph, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	cfg := newBuilderConfig(opts...)
	started := time.Now()

	g := core.NewGraph()
	for _, criminal := range ds.Criminals() {
		if err := g.AddVertex(criminal, ds.CaseCountOf(criminal)); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%d): %w: %w", methodBuildGraph, criminal, ErrConstructFailed, err)
		}
	}

	for _, caseID := range ds.Cases() {
		members := ds.CriminalsIn(caseID)
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				if err := g.AddEdge(members[i], members[j], unitCaseWeight); err != nil {
					return nil, fmt.Errorf("%s: case %d AddEdge(%d,%d): %w: %w",
						methodBuildGraph, caseID, members[i], members[j], ErrConstructFailed, err)
				}
			}
		}
	}
	g.Seal()

	cfg.logger.Debug().
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Int("cases", ds.CaseCount()).
		Dur("elapsed", time.Since(started)).
		Msg("co-occurrence graph built")

	return g, nil
}

// LoadGraph parses path and builds its graph. Parse failures are returned
// unchanged in meaning (errors.Is dataset.ErrMalformedLine / fs.ErrNotExist).
func LoadGraph(path string, parseOpts []dataset.Option, opts ...BuilderOption) (*dataset.Dataset, *core.Graph, error) {
	ds, err := dataset.Load(path, parseOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodLoadGraph, err)
	}
	g, err := BuildGraph(ds, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodLoadGraph, err)
	}

	return ds, g, nil
}
