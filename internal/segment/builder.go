// Package segment computes the full statistical summary for one
// respondent subset: archetype mix, response distributions, demographic
// splits, and the generated narrative.
package segment

import (
	"math"
	"sort"
	"strings"

	"github.com/fieldlearn/personas/internal/aggregation"
	"github.com/fieldlearn/personas/internal/domain"
	"github.com/fieldlearn/personas/internal/narrative"
)

// Build computes the segment summary over the given subset. The second
// return is false for an empty subset: the caller omits the segment from
// its output rather than treating absence as an error.
//
// Every percentage is rounded independently against its own denominator;
// distributions are deliberately not renormalized to sum to 100.
func Build(resps []domain.Respondent, m domain.Mapping, opts domain.Options) (*domain.Segment, bool) {
	n := len(resps)
	if n == 0 {
		return nil, false
	}
	rows := domain.RowsOf(resps)

	personas := personaDistribution(resps)

	motiv := aggregation.RankOne(rows, m.Lookup(domain.FieldMotivation), opts.TopMotivations)
	format := aggregation.RankOne(rows, m.Lookup(domain.FieldFormat), opts.TopFormats)
	style := aggregation.RankOne(rows, m.Lookup(domain.FieldStyle), opts.TopStyles)
	timeCounts := aggregation.RankOne(rows, m.Lookup(domain.FieldTime), opts.TopTimeBrackets)
	chall := aggregation.MultiSelect(rows, m.Lookup(domain.FieldChallenges), opts.TopChallenges)
	devNeeds := aggregation.MultiSelect(rows, m.Lookup(domain.FieldDevNeeds), opts.TopDevNeeds)
	participation := aggregation.MultiSelect(rows, m.Lookup(domain.FieldParticipation), opts.TopParticipation)

	// Without a detected metro column the whole split degrades to zero,
	// not to an all-non-metro claim.
	metroN, nonMetroN := 0, 0
	if metroRes := m.Lookup(domain.FieldMetro); metroRes.Ok {
		metroN = countMetro(rows, metroRes)
		nonMetroN = n - metroN
	}

	seg := &domain.Segment{
		N:           n,
		MetroN:      metroN,
		NonMetroN:   nonMetroN,
		MetroPct:    pctOf(metroN, n),
		NonMetroPct: pctOf(nonMetroN, n),
		EmpStatus:   statusHistogram(rows, m.Lookup(domain.FieldEmpStatus)),
		Personas:    personas,
		Graphs: domain.Graphs{
			Motivation:    motiv,
			Format:        format,
			Style:         style,
			Challenges:    domain.DecorateChallenges(chall),
			DevNeeds:      devNeeds,
			Participation: participation,
		},
		Insight: narrative.Insight(personas, motiv, format, timeCounts, chall, n),
	}
	return seg, true
}

// personaDistribution tabulates the archetype mix with the full
// five-archetype catalog always present, zero counts included, sorted
// descending by percentage. The sort is stable, so equal percentages
// keep catalog declaration order.
func personaDistribution(resps []domain.Respondent) []domain.ArchetypeShare {
	n := len(resps)
	counts := make(map[domain.Archetype]int, len(domain.Archetypes))
	for _, r := range resps {
		counts[r.Archetype]++
	}

	shares := make([]domain.ArchetypeShare, 0, len(domain.Archetypes))
	for _, a := range domain.Archetypes {
		info := a.Info()
		shares = append(shares, domain.ArchetypeShare{
			Name:        a.String(),
			Count:       counts[a],
			Pct:         pctOf(counts[a], n),
			Emoji:       info.Emoji,
			Color:       info.Color,
			Tagline:     info.Tagline,
			Description: info.Description,
		})
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Pct > shares[j].Pct })
	return shares
}

// countMetro counts rows whose metro value normalizes to the literal
// label "Metro". Everything else, blanks included, is non-metro.
func countMetro(rows []domain.Row, res domain.Resolved) int {
	if !res.Ok {
		return 0
	}
	n := 0
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row[res.Column]), "Metro") {
			n++
		}
	}
	return n
}

func statusHistogram(rows []domain.Row, res domain.Resolved) map[string]int {
	hist := make(map[string]int)
	if !res.Ok {
		return hist
	}
	for _, row := range rows {
		if v := strings.TrimSpace(row[res.Column]); v != "" {
			hist[v]++
		}
	}
	return hist
}

func pctOf(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
