// Package classify assigns each respondent one of the five learner
// archetypes using a fixed additive scoring rule.
//
// The rule evaluates six independent dimensions (primary motivation,
// primary format preference, primary learning style, platform usage
// frequency, weekly time availability, employee status code) with
// case-insensitive substring tests against a fixed vocabulary, summing
// integer deltas into one score per archetype. The archetype with the
// maximum total wins; ties break to the first archetype in catalog
// declaration order. Absent or blank dimensions contribute zero, so
// classification always terminates with exactly one archetype.
package classify

import (
	"strings"

	"github.com/fieldlearn/personas/internal/domain"
)

// scores indexes by catalog position so the winner scan doubles as the
// tie-break rule.
type scores [len(domain.Archetypes)]int

func (s *scores) bump(a domain.Archetype, delta int) {
	for i, name := range domain.Archetypes {
		if name == a {
			s[i] += delta
			return
		}
	}
}

// Classify scores one respondent row against the archetype vocabulary
// and returns the winning archetype. Pure function: same row and mapping
// always yield the same result.
func Classify(row domain.Row, m domain.Mapping) domain.Archetype {
	var s scores

	scoreMotivation(rankOneLower(row, m.Lookup(domain.FieldMotivation)), &s)
	scoreFormat(rankOneLower(row, m.Lookup(domain.FieldFormat)), &s)
	scoreStyle(rankOneLower(row, m.Lookup(domain.FieldStyle)), &s)
	scoreFrequency(wholeLower(row, m.Lookup(domain.FieldFrequency)), &s)
	scoreTime(wholeLower(row, m.Lookup(domain.FieldTime)), &s)
	scoreEmpStatus(wholeUpper(row, m.Lookup(domain.FieldEmpStatus)), &s)

	winner := 0
	for i := 1; i < len(s); i++ {
		if s[i] > s[winner] {
			winner = i
		}
	}
	return domain.Archetypes[winner]
}

// rankOneLower extracts the lowercased first preference of a ranked
// answer; "" when the field is absent or blank.
func rankOneLower(row domain.Row, res domain.Resolved) string {
	if !res.Ok {
		return ""
	}
	var item string
	if len(res.Ranked) > 0 {
		item = strings.TrimSpace(row[res.Ranked[0]])
	} else {
		item = domain.FirstChoice(row[res.Column])
	}
	return strings.ToLower(item)
}

func wholeLower(row domain.Row, res domain.Resolved) string {
	if !res.Ok {
		return ""
	}
	return strings.ToLower(row[res.Column])
}

func wholeUpper(row domain.Row, res domain.Resolved) string {
	if !res.Ok {
		return ""
	}
	return strings.ToUpper(row[res.Column])
}

// The dimension rules below reproduce the production scoring vocabulary
// exactly. Each rule is a first-match-wins chain: once a branch fires,
// the remaining branches of that dimension are skipped.

func scoreMotivation(motiv string, s *scores) {
	switch {
	case motiv == "":
	case strings.Contains(motiv, "career"):
		s.bump(domain.ArchetypePathfinder, 3)
	case strings.Contains(motiv, "growth") || strings.Contains(motiv, "personal"):
		s.bump(domain.ArchetypeInquirer, 2)
		s.bump(domain.ArchetypePathfinder, 1)
	case strings.Contains(motiv, "performance") || strings.Contains(motiv, "job"):
		s.bump(domain.ArchetypeNavigator, 3)
		s.bump(domain.ArchetypePragmatist, 1)
	case strings.Contains(motiv, "trend") || strings.Contains(motiv, "industry"):
		s.bump(domain.ArchetypeInquirer, 2)
	}
}

func scoreFormat(format string, s *scores) {
	switch {
	case format == "":
	case strings.Contains(format, "video") || strings.Contains(format, "short"):
		s.bump(domain.ArchetypePragmatist, 2)
		s.bump(domain.ArchetypePathfinder, 1)
	case strings.Contains(format, "game") || strings.Contains(format, "gamif") || strings.Contains(format, "interact"):
		s.bump(domain.ArchetypeConnector, 2)
		s.bump(domain.ArchetypePathfinder, 1)
	case strings.Contains(format, "case") || strings.Contains(format, "scenario"):
		s.bump(domain.ArchetypeInquirer, 2)
		s.bump(domain.ArchetypeConnector, 1)
	case strings.Contains(format, "book") || strings.Contains(format, "article") || strings.Contains(format, "read"):
		s.bump(domain.ArchetypeInquirer, 3)
	case strings.Contains(format, "podcast") || strings.Contains(format, "audio"):
		s.bump(domain.ArchetypeNavigator, 2)
	}
}

func scoreStyle(style string, s *scores) {
	switch {
	case style == "":
	case strings.Contains(style, "visual"):
		s.bump(domain.ArchetypePathfinder, 1)
		s.bump(domain.ArchetypePragmatist, 1)
	case strings.Contains(style, "simulation") || strings.Contains(style, "game"):
		s.bump(domain.ArchetypeConnector, 2)
	case strings.Contains(style, "reading") || strings.Contains(style, "writing"):
		s.bump(domain.ArchetypeInquirer, 2)
	case strings.Contains(style, "audio"):
		s.bump(domain.ArchetypeNavigator, 1)
	}
}

func scoreFrequency(freq string, s *scores) {
	switch {
	case freq == "":
	case strings.Contains(freq, "daily"):
		s.bump(domain.ArchetypePathfinder, 2)
	case strings.Contains(freq, "weekly"):
		s.bump(domain.ArchetypePragmatist, 1)
		s.bump(domain.ArchetypeConnector, 1)
	case strings.Contains(freq, "monthly") || strings.Contains(freq, "occasional"):
		s.bump(domain.ArchetypeNavigator, 2)
	}
}

func scoreTime(timeVal string, s *scores) {
	switch {
	case timeVal == "":
	case strings.Contains(timeVal, "<1") || strings.Contains(timeVal, "less than 1") || strings.Contains(timeVal, "30"):
		s.bump(domain.ArchetypePragmatist, 2)
	case strings.Contains(timeVal, "1-2") || strings.Contains(timeVal, "1 to 2") ||
		strings.Contains(timeVal, "60") || strings.Contains(timeVal, "90"):
		s.bump(domain.ArchetypePathfinder, 1)
		s.bump(domain.ArchetypePragmatist, 1)
	case strings.Contains(timeVal, "3") || strings.Contains(timeVal, "more") || strings.Contains(timeVal, ">3"):
		s.bump(domain.ArchetypeInquirer, 1)
		s.bump(domain.ArchetypeNavigator, 1)
	}
}

// Employee status codes blend engagement and performance (for example
// HELP = high engagement, low performance). They act as a light final
// nudge rather than a dominant signal.
func scoreEmpStatus(emp string, s *scores) {
	switch {
	case emp == "":
	case strings.Contains(emp, "HELP"):
		s.bump(domain.ArchetypePragmatist, 1)
	case strings.Contains(emp, "HEHP"):
		s.bump(domain.ArchetypePathfinder, 1)
	case strings.Contains(emp, "LELP"):
		s.bump(domain.ArchetypeConnector, 1)
	case strings.Contains(emp, "LEHP"):
		s.bump(domain.ArchetypeNavigator, 1)
	}
}
