// SPDX-License-Identifier: MIT
// Package rwr computes Random Walk with Restart proximities on the criminal
// co-occurrence graph.
//
// What
//
//   - Walk from a start criminal s with restart probability α: every step the
//     walker teleports back to s with probability α, otherwise follows an edge
//     chosen proportionally to its weight (shared cases).
//   - The stationary distribution p solves p = α·e_s + (1-α)·Pᵀp and is found
//     by power iteration until the L1 change drops below ε.
//   - Result.Top(k) lists the k criminals most closely associated with s.
//   - CaseCohesion averages, over the members of a case, the probability each
//     member's walk assigns to the other members.
//
// Dangling vertices
//
//	Criminals that never share a case have an all-zero transition row. Mass
//	that reaches them is dropped rather than redistributed, so Result.Mass()
//	is below 1 whenever a dangling vertex is reachable (in particular when s
//	itself is isolated, where the fixed point is α·e_s).
//
// Termination
//
//	The iteration stops on tolerance or after MaxIterations steps
//	(default 10000, 0 = no cap). Hitting the cap returns the last iterate and
//	ErrNotConverged. With α == 1 the first step already returns e_s.
//
// Usage
//
//	w, err := rwr.NewWalker(g)
//	res, err := w.Walk(100, rwr.WithRestartProbability(0.15))
//	for _, s := range res.Top(5) { ... }
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist (no work is done).
//   - ErrOptionViolation      for α ∉ [0,1], ε ≤ 0, negative MaxIterations.
//   - ErrNotConverged         when the cap is reached first.
//   - ErrCaseNotFound, ErrSingleParticipant from CaseCohesion.
package rwr
