// SPDX-License-Identifier: MIT
// Package stats summarises a criminal co-occurrence graph and its source
// dataset: size, degree and weight distributions, clustering, components
// and case sizes.
//
// All functions are read-only and deterministic; bins are sorted by value.
package stats
