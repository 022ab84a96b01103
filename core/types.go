// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types of the
// criminal co-occurrence network, and provides the thread-safe primitives used
// to build, seal, and query it.
//
// This file declares Vertex, Edge, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrBadWeight      - non-positive edge weight.
//	ErrBadCaseCount   - negative case count on a vertex.
//	ErrLoopNotAllowed - self-loop; two criminals must be distinct.
//	ErrSealed         - mutation attempted after Seal.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a zero or negative weight increment.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrBadCaseCount indicates a negative case count on AddVertex.
	ErrBadCaseCount = errors.New("core: case count must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrSealed indicates a mutator was called on a sealed graph.
	ErrSealed = errors.New("core: graph is sealed")
)

// Vertex is one criminal of the network.
type Vertex struct {
	// ID is the criminal identifier taken from the dataset.
	ID int64

	// CaseCount is the number of distinct cases the criminal appears in.
	CaseCount int
}

// Edge is an undirected co-occurrence link between two distinct criminals.
//
// Edges returned by the Graph are canonical: From < To for Edges(), and
// From == the queried vertex for Neighbors().
type Edge struct {
	// From is one endpoint.
	From int64

	// To is the other endpoint.
	To int64

	// Weight is the number of cases both endpoints appear in.
	Weight int64
}

// Graph is an undirected, vertex-labelled, edge-weighted co-occurrence graph.
//
// Adjacency is stored symmetrically: adjacency[u][v] == adjacency[v][u] for
// every edge, which makes HasEdge/Weight O(1) in both directions.
// muVert protects vertices; muEdgeAdj protects adjacency and the counters.
// Once Seal has been called every mutator returns ErrSealed, so a sealed graph
// can be shared freely between readers.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and sealed
	muEdgeAdj sync.RWMutex // guards adjacency, edgeCount, totalWeight

	sealed bool

	vertices map[int64]*Vertex // vertex ID → Vertex

	// adjacency[u][v] = accumulated weight of edge {u,v}
	adjacency map[int64]map[int64]int64

	edgeCount   int   // number of undirected edges
	totalWeight int64 // sum of all edge weights
}

// NewGraph creates an empty, unsealed Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[int64]*Vertex),
		adjacency: make(map[int64]map[int64]int64),
	}
}
