// SPDX-License-Identifier: MIT
// Package dataset parses bipartite criminal/case edge lists and keeps the two
// intermediate mappings every analysis starts from: criminal → cases and
// case → criminals.
//
// Input format (KONECT moreno_crime style):
//
//	% bip unweighted
//	% 1476 829 551
//	1 1
//	1 2
//	2 2 ignored trailing fields
//
// Malformed data lines abort the parse with a *ParseError by default;
// WithSkipMalformed(true) skips and counts them instead (SkippedLines).
package dataset
