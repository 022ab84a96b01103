// SPDX-License-Identifier: MIT
// Package matrix offers dense matrix views of a co-occurrence graph, backed by
// gonum's mat.Dense.
//
// The matrix package provides:
//
//   - AdjacencyMatrix: symmetric weight matrix with an O(1) id → row index.
//   - Transition: row-stochastic random-walk matrix derived from the weights,
//     with all-zero rows for dangling (isolated) vertices.
//
// Matrices cost O(V²) memory and O(V² + E) build time, which is fine for
// case datasets of a few thousand criminals.
package matrix
