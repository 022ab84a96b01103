// SPDX-License-Identifier: MIT
// Package: crimenet/builder
//
// Sentinel errors for the builder package.
//
// Callers use errors.Is(err, ErrX); lower-level core and dataset errors are
// wrapped with the method tag via %w.

package builder

import "errors"

// ErrNilDataset indicates BuildGraph was called without a dataset.
var ErrNilDataset = errors.New("builder: dataset is nil")

// ErrConstructFailed indicates the projection could not be written into the
// graph (a core invariant rejected a vertex or edge).
var ErrConstructFailed = errors.New("builder: construction failed")
