// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over the criminal co-occurrence
// graph, returning hop distances, parent links and visit order, plus
// connected-component decomposition built on top of it.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start.
//   - Result holds Order (visit sequence), Depth (hops from start) and
//     Parent (BFS-tree predecessor); PathTo rebuilds a shortest path.
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds depth.
//   - Components and Largest partition the graph into connected groups of
//     criminals.
//
// Edge weights (shared case counts) are ignored; only adjacency matters.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors ascending, and BFS enqueues in
//	that order, so Order is reproducible across runs.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 100, bfs.WithMaxDepth(2))
//	path, err := res.PathTo(250)
//	comps := bfs.Components(g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for a negative MaxDepth.
//   - ErrNeighbors            if neighbor lookup fails.
//   - ErrNoPath               from PathTo for unreached vertices.
//   - Wrapped OnVisit errors and context errors.
package bfs
