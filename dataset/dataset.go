// SPDX-License-Identifier: MIT

package dataset

import "sort"

// Record is one (criminal, case) participation.
type Record struct {
	Criminal int64
	Case     int64
}

// Dataset is the bipartite criminal/case incidence: criminal → set of cases
// and case → set of criminals. Duplicate records collapse.
type Dataset struct {
	casesByCriminal map[int64]map[int64]struct{}
	criminalsByCase map[int64]map[int64]struct{}
	records         int
	skipped         int
}

// New returns an empty Dataset.
func New() *Dataset {
	return &Dataset{
		casesByCriminal: make(map[int64]map[int64]struct{}),
		criminalsByCase: make(map[int64]map[int64]struct{}),
	}
}

// Add registers one participation in both mappings.
func (d *Dataset) Add(r Record) {
	d.records++

	cases, ok := d.casesByCriminal[r.Criminal]
	if !ok {
		cases = make(map[int64]struct{})
		d.casesByCriminal[r.Criminal] = cases
	}
	cases[r.Case] = struct{}{}

	members, ok := d.criminalsByCase[r.Case]
	if !ok {
		members = make(map[int64]struct{})
		d.criminalsByCase[r.Case] = members
	}
	members[r.Criminal] = struct{}{}
}

// Criminals returns every criminal id, ascending.
func (d *Dataset) Criminals() []int64 { return sortedKeys(d.casesByCriminal) }

// Cases returns every case id, ascending.
func (d *Dataset) Cases() []int64 { return sortedKeys(d.criminalsByCase) }

// CasesOf returns the cases of criminal, ascending; nil if unknown.
func (d *Dataset) CasesOf(criminal int64) []int64 {
	return sortedSet(d.casesByCriminal[criminal])
}

// CriminalsIn returns the criminals of a case, ascending; nil if unknown.
func (d *Dataset) CriminalsIn(caseID int64) []int64 {
	return sortedSet(d.criminalsByCase[caseID])
}

// CaseCountOf returns the number of distinct cases of criminal.
func (d *Dataset) CaseCountOf(criminal int64) int { return len(d.casesByCriminal[criminal]) }

// HasCriminal reports whether criminal appears in any record.
func (d *Dataset) HasCriminal(criminal int64) bool {
	_, ok := d.casesByCriminal[criminal]
	return ok
}

// HasCase reports whether caseID appears in any record.
func (d *Dataset) HasCase(caseID int64) bool {
	_, ok := d.criminalsByCase[caseID]
	return ok
}

// CriminalCount returns the number of distinct criminals.
func (d *Dataset) CriminalCount() int { return len(d.casesByCriminal) }

// CaseCount returns the number of distinct cases.
func (d *Dataset) CaseCount() int { return len(d.criminalsByCase) }

// RecordCount returns the number of accepted records, duplicates included.
func (d *Dataset) RecordCount() int { return d.records }

// SkippedLines returns the number of malformed lines skipped by Parse.
func (d *Dataset) SkippedLines() int { return d.skipped }

func sortedKeys(m map[int64]map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func sortedSet(s map[int64]struct{}) []int64 {
	if s == nil {
		return nil
	}
	out := make([]int64, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
