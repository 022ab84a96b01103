// SPDX-License-Identifier: MIT
// Package builder turns a bipartite dataset into the one-mode criminal
// co-occurrence graph shared by every analysis.
//
//	ds, g, err := builder.LoadGraph("out.moreno_crime_crime", nil)
//
// The returned *core.Graph is sealed: analyses receive it as an explicit value
// and cannot change its structure.
package builder
