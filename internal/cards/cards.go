// Package cards builds the detailed persona profile for one
// (role, archetype) pair: modal demographics, top-ranked responses, and
// the composed two-part "about" narrative.
package cards

import (
	"fmt"
	"math"
	"strings"

	"github.com/fieldlearn/personas/internal/aggregation"
	"github.com/fieldlearn/personas/internal/domain"
)

// Card-level fallbacks used when a demographic column is absent or the
// subset left it blank.
const (
	defaultEducation  = "Graduate"
	defaultExperience = "1–3 years"
	defaultFrequency  = "Weekly"
	defaultTime       = "1–2 hrs / week"
	defaultRoleColor  = "#3b82f6"
	defaultRoleEmoji  = "👤"
)

// Build filters the classified rows down to one (role, archetype) pair
// and computes its profile. The second return is false when the pair has
// no respondents; the caller omits the card.
//
// The role filter only applies when roleKey actually occurs among the
// respondents' roles, so a card request for a role absent from the data
// degrades to an archetype-wide profile instead of an empty one.
func Build(resps []domain.Respondent, m domain.Mapping, roleKey string, a domain.Archetype, opts domain.Options) (*domain.Card, bool) {
	subset := resps
	if roleKey != "" && rolePresent(resps, roleKey) {
		subset = filterRole(subset, roleKey)
	}
	subset = filterArchetype(subset, a)

	n := len(subset)
	if n == 0 {
		return nil, false
	}
	rows := domain.RowsOf(subset)
	info := a.Info()

	motiv := aggregation.RankOne(rows, m.Lookup(domain.FieldMotivation), opts.TopMotivations)
	format := aggregation.RankOne(rows, m.Lookup(domain.FieldFormat), opts.TopFormats)
	style := aggregation.RankOne(rows, m.Lookup(domain.FieldStyle), opts.TopStyles)
	chall := aggregation.MultiSelect(rows, m.Lookup(domain.FieldChallenges), opts.TopChallenges)
	devNeeds := aggregation.MultiSelect(rows, m.Lookup(domain.FieldDevNeeds), opts.TopDevNeeds)

	location, metroPct := modalLocation(rows, m.Lookup(domain.FieldMetro))

	topFormat := firstLabel(format, "Short Videos")
	esDist := statusHistogram(rows, m.Lookup(domain.FieldEmpStatus))

	narrative, ok := domain.RoleAbout[roleKey]
	if !ok {
		narrative = domain.DefaultRoleNarrative
	}

	card := &domain.Card{
		N:              n,
		RoleKey:        roleKey,
		RoleDisplay:    displayFor(roleKey),
		RoleColor:      lookupOr(domain.RoleColors, roleKey, defaultRoleColor),
		RoleEmoji:      lookupOr(domain.RoleEmojis, roleKey, defaultRoleEmoji),
		PersonaName:    a.String(),
		PersonaEmoji:   info.Emoji,
		PersonaColor:   info.Color,
		PersonaTagline: info.Tagline,
		Education:      aggregation.Mode(rows, m.Lookup(domain.FieldEducation), defaultEducation),
		Experience:     aggregation.Mode(rows, m.Lookup(domain.FieldExperience), defaultExperience),
		Location:       fmt.Sprintf("%s (%d%% Metro)", location, metroPct),
		Frequency:      aggregation.Mode(rows, m.Lookup(domain.FieldFrequency), defaultFrequency),
		About:          aboutText(narrative, a, n),
		Focus:          narrative.Focus,
		Attitude:       info.Attitude,
		LearnPref: domain.LearnPref{
			Format:   topFormat,
			Duration: durationFor(topFormat),
			Category: firstLabel(motiv, "Career advancement"),
			Time:     timeBracket(rows, m),
		},
		TopNeeds:       labels(devNeeds, 3),
		Motivations:    labels(motiv, 4),
		Challenges:     labels(chall, 4),
		EmpStatus:      esDist,
		DominantStatus: dominantStatus(esDist),
		MetroPct:       metroPct,
		Graphs: domain.Graphs{
			Motivation: motiv,
			Format:     format,
			Style:      style,
			Challenges: domain.DecorateChallenges(chall),
			DevNeeds:   devNeeds,
		},
	}
	return card, true
}

func rolePresent(resps []domain.Respondent, roleKey string) bool {
	for _, r := range resps {
		if r.Role == roleKey {
			return true
		}
	}
	return false
}

func filterRole(resps []domain.Respondent, roleKey string) []domain.Respondent {
	var out []domain.Respondent
	for _, r := range resps {
		if r.Role == roleKey {
			out = append(out, r)
		}
	}
	return out
}

func filterArchetype(resps []domain.Respondent, a domain.Archetype) []domain.Respondent {
	var out []domain.Respondent
	for _, r := range resps {
		if r.Archetype == a {
			out = append(out, r)
		}
	}
	return out
}

// modalLocation reports "Metro" when at least half the subset is metro,
// "Non-Metro" otherwise, and "Mixed" when no metro column was detected.
func modalLocation(rows []domain.Row, res domain.Resolved) (string, int) {
	if !res.Ok {
		return "Mixed", 0
	}
	metroN := 0
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row[res.Column]), "Metro") {
			metroN++
		}
	}
	pct := int(math.Round(float64(metroN) / float64(len(rows)) * 100))
	if pct >= 50 {
		return "Metro", pct
	}
	return "Non-Metro", pct
}

// aboutText composes the card narrative from the role description and
// the archetype tagline.
func aboutText(narrative domain.RoleNarrative, a domain.Archetype, n int) string {
	return fmt.Sprintf(
		"This learner is %s As a %s, they are characterised by a drive to %s. They represent %d of the learners in this filtered view.",
		narrative.About, a, strings.ToLower(a.Info().Tagline), n)
}

// durationFor recommends a module length bracket from the top format.
func durationFor(topFormat string) string {
	l := strings.ToLower(topFormat)
	if strings.Contains(l, "video") || strings.Contains(l, "short") {
		return "Short < 5 min"
	}
	return "Flexible"
}

func timeBracket(rows []domain.Row, m domain.Mapping) string {
	counts := aggregation.RankOne(rows, m.Lookup(domain.FieldTime), 1)
	if len(counts) == 0 {
		return defaultTime
	}
	return counts[0].Label
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

// dominantStatus picks the most frequent employee-status code; map
// iteration ties are broken lexicographically for determinism.
func dominantStatus(hist map[string]int) string {
	best, bestCount := "—", 0
	for code, count := range hist {
		if count > bestCount || (count == bestCount && bestCount > 0 && code < best) {
			best, bestCount = code, count
		}
	}
	return best
}

func firstLabel(entries []domain.Entry, fallback string) string {
	if len(entries) == 0 {
		return fallback
	}
	return entries[0].Label
}

func labels(entries []domain.Entry, n int) []string {
	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func displayFor(roleKey string) string {
	if d, ok := domain.RoleDisplay[roleKey]; ok {
		return d
	}
	return roleKey
}

func lookupOr(m map[string]string, key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
