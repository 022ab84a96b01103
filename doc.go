// SPDX-License-Identifier: MIT
// Package crimenet analyses criminal co-offending networks built from a
// bipartite criminal/case involvement list.
//
// Two criminals are linked when they appear in the same case; the link
// weight counts the cases they share. On top of that graph crimenet offers:
//
//	dataset/  - parsing of whitespace-separated "criminal case" lines
//	builder/  - construction of the weighted co-occurrence graph
//	core/     - the sealed, thread-safe undirected graph
//	matrix/   - dense adjacency and row-stochastic transition matrices (gonum)
//	rwr/      - Random Walk with Restart proximity and case cohesion
//	coverage/ - greedy selection of criminals covering most cases
//	bfs/      - breadth-first traversal and connected components
//	stats/    - degree, weight, clustering and case-size statistics
//	config/   - viper-backed settings and zerolog logger construction
//
// The crimenet command in cmd/crimenet wires these together.
package crimenet
