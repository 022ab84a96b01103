// SPDX-License-Identifier: MIT
// Package core provides the thread-safe in-memory co-occurrence Graph used by
// every analysis in crimenet.
//
// The Graph G = (V,E) is fixed in shape:
//
//   - Undirected; adjacency is mirrored so HasEdge(u,v) == HasEdge(v,u).
//   - Weighted by accumulation: AddEdge(u,v,1) once per shared case leaves
//     Weight(u,v) == number of cases both criminals appear in.
//   - No self-loops (ErrLoopNotAllowed), no parallel edges.
//   - Vertices carry CaseCount, the size of the criminal's case set.
//   - Sealable: builder.BuildGraph seals the graph it returns, after which
//     AddVertex/AddEdge return ErrSealed. Views (InducedSubgraph) return
//     fresh sealed graphs instead of annotating the source.
//
// Deterministic iteration:
//
//	Vertices()       sorted by ID
//	Edges()          sorted by (From, To), From < To
//	NeighborIDs(id)  sorted by ID
//
// Core Methods:
//
//	AddVertex(id int64, caseCount int) error     // O(1)
//	AddEdge(from, to int64, weight int64) error  // O(1), accumulates
//	HasVertex(id) / HasEdge(u,v)                 // O(1)
//	Weight(u,v) (int64, error)                   // O(1)
//	Degree(id) / Strength(id)                    // O(1) / O(d)
//	Vertices() / Edges() / NeighborIDs(id)       // sorted
//	VertexCount() / EdgeCount() / TotalWeight()  // O(1)
//	Seal() / Sealed() / Stats()
//
// Errors:
//
//	ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight, ErrBadCaseCount,
//	ErrLoopNotAllowed, ErrSealed
package core
