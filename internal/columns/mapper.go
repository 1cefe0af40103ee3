// Package columns resolves logical survey fields to concrete dataset
// columns using normalized text matching.
//
// Resolution is a two-phase process per field: an exact match of any
// candidate fragment against the normalized column names, then a
// substring-containment fallback. Candidate order is significant and
// preserved for determinism. Ranked multi-column questions (Rank-1,
// Rank-2, ... spread across columns) are detected after the base
// fragment resolves and ordered by the trailing rank number in each
// column name.
package columns

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fieldlearn/personas/internal/domain"
)

// candidate pairs a logical field with its name fragments, tried in
// order. First match wins within each phase.
type candidate struct {
	field     domain.Field
	fragments []string

	// ranked marks questions that may be spread across Rank-N columns.
	ranked bool
}

// candidates is the fixed detection table. Order within each fragment
// list encodes precedence; do not reorder without adjusting tests.
var candidates = []candidate{
	{field: domain.FieldCluster, fragments: []string{"cluster"}},
	{field: domain.FieldDivision, fragments: []string{"sub dept 2", "subdept2", "sub_dept_2", "sub dept2"}},
	{field: domain.FieldRole, fragments: []string{"role", "designation"}},
	{field: domain.FieldMetro, fragments: []string{"metro", "metro/non metro", "metro_nonmetro"}},
	{field: domain.FieldEmpStatus, fragments: []string{"employee status", "emp status", "empstatus", "status"}},
	{field: domain.FieldMotivation, fragments: []string{"learning motivation", "motivation", "what motivates"}, ranked: true},
	{field: domain.FieldFormat, fragments: []string{"preferred content format", "content format", "format preference"}, ranked: true},
	{field: domain.FieldStyle, fragments: []string{"learning style", "style preference"}, ranked: true},
	{field: domain.FieldTime, fragments: []string{"time willing", "time available", "hours per week", "time_willing"}},
	{field: domain.FieldFrequency, fragments: []string{"digital platform frequency", "frequency", "how often"}},
	{field: domain.FieldChallenges, fragments: []string{"challenges", "access challenge", "digital learning challenge"}},
	{field: domain.FieldDevNeeds, fragments: []string{"professional development", "dev needs", "development need"}},
	{field: domain.FieldParticipation, fragments: []string{"participation", "would you participate"}},
	{field: domain.FieldExperience, fragments: []string{"experience", "years in role", "time in current role"}},
	{field: domain.FieldEducation, fragments: []string{"education", "qualification"}},
}

var trailingInt = regexp.MustCompile(`(\d+)\s*$`)

// normalize collapses internal whitespace, trims, and casefolds a column
// identifier so that cosmetic export differences do not break detection.
func normalize(col string) string {
	return strings.ToLower(strings.Join(strings.Fields(col), " "))
}

// namedCol pairs a normalized column identifier with its original form.
type namedCol struct{ norm, orig string }

// Resolve maps every detectable logical field onto the given dataset
// columns. Fields with no match are simply absent from the mapping;
// callers degrade the dependent computations to empty results.
func Resolve(cols []string) domain.Mapping {
	normed := make([]namedCol, 0, len(cols))
	for _, c := range cols {
		normed = append(normed, namedCol{norm: normalize(c), orig: c})
	}

	mapping := make(domain.Mapping, len(candidates))
	for _, cand := range candidates {
		matched, fragment, ok := resolveOne(cand, normed)
		if !ok {
			continue
		}
		res := domain.Resolved{Column: matched, Ok: true}
		if cand.ranked {
			if ranked := collectRanked(fragment, normed); len(ranked) > 1 {
				res.Ranked = ranked
				res.Column = ranked[0]
			}
		}
		mapping[cand.field] = res
	}
	return mapping
}

// resolveOne runs the two matching phases for a single field and returns
// the original column name plus the fragment that matched it.
func resolveOne(cand candidate, normed []namedCol) (string, string, bool) {
	// Phase 1: exact normalized match, fragments in declared order.
	for _, frag := range cand.fragments {
		for _, c := range normed {
			if c.norm == frag {
				return c.orig, frag, true
			}
		}
	}
	// Phase 2: substring containment, first fragment that appears in any
	// column wins; column order breaks ties within a fragment.
	for _, frag := range cand.fragments {
		for _, c := range normed {
			if strings.Contains(c.norm, frag) {
				return c.orig, frag, true
			}
		}
	}
	return "", "", false
}

// collectRanked gathers every column containing the matched fragment and
// orders them by the trailing rank number in the identifier. Columns
// without a trailing number sort after numbered ones; dataset order
// breaks remaining ties.
func collectRanked(fragment string, normed []namedCol) []string {
	type rankedCol struct {
		orig string
		rank int
	}
	var found []rankedCol
	for _, c := range normed {
		if !strings.Contains(c.norm, fragment) {
			continue
		}
		rank := int(^uint(0) >> 1) // unnumbered columns sort last
		if m := trailingInt.FindStringSubmatch(c.norm); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				rank = n
			}
		}
		found = append(found, rankedCol{orig: c.orig, rank: rank})
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].rank < found[j].rank })

	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.orig
	}
	return out
}
