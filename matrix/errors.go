// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates a graph without vertices; a 0×0 dense matrix
	// cannot be allocated.
	ErrEmptyGraph = errors.New("matrix: graph has no vertices")

	// ErrUnknownVertex indicates that a referenced vertex id is not present
	// in the vertex index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrOutOfRange indicates a row/column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
