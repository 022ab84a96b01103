// SPDX-License-Identifier: MIT
// Package coverage selects a small set of criminals whose cases together
// cover a target fraction of all cases (greedy set cover).
//
// Algorithm
//
//  1. Rank criminals by number of distinct cases, descending; ties by id
//     ascending.
//  2. Walk the ranking. Stop as soon as covered ≥ threshold × total.
//  3. Select a criminal only if it adds at least one uncovered case.
//
// The ranking is fixed up front, so the selection for a lower threshold is a
// prefix of the selection for a higher one.
//
// Usage
//
//	res, err := coverage.Select(ds, coverage.WithThreshold(0.8))
//	sub := core.InducedSubgraph(g, res.Set())
//
// Errors
//
//   - ErrNilDataset       if ds is nil.
//   - ErrNoCases          if ds holds no cases.
//   - ErrOptionViolation  for a threshold outside (0,1].
package coverage
