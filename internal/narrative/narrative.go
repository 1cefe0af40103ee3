// Package narrative turns segment aggregates into the six-paragraph
// trainer insight text. This is deterministic template filling over
// fixed prose: no randomness, no external calls. Every segment receives
// exactly six paragraphs; empty distributions substitute fixed default
// labels instead of dropping a paragraph.
package narrative

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fieldlearn/personas/internal/domain"
)

// Per-archetype guidance used inside the format paragraph.
var formatGuidance = map[domain.Archetype]string{
	domain.ArchetypePathfinder: "keep videos punchy and tie every module explicitly to role progression milestones.",
	domain.ArchetypePragmatist: "ruthlessly edit for length — if it runs past 5 minutes, break it into two modules.",
	domain.ArchetypeInquirer:   "pair short videos with supplementary reading and clinical case discussions.",
	domain.ArchetypeNavigator:  "offer a curated playlist they can self-navigate rather than a linear mandatory path.",
	domain.ArchetypeConnector:  "anchor each video to a team discussion prompt or coaching scenario.",
}

// Guidance keyed by the coarse motivation category derived from the
// winning motivation label.
var motivationGuidance = map[string]string{
	"career":      "Frame every module with explicit career progression language — 'What this means for your next role.' Badges and completion certificates amplify this group's motivation significantly.",
	"growth":      "Lead with the personal development angle — 'What you will be able to do differently.' This group responds to mastery, not just completion.",
	"performance": "Connect content directly to daily KPIs and field metrics. 'How this will change your next doctor call' is more powerful than any career promise.",
	"trends":      "Position learning as staying ahead of the market. Competitive intelligence, therapy updates, and industry context energise this group.",
}

// Guidance keyed by the coarse challenge category derived from the top
// engagement barrier.
var challengeGuidance = map[string]string{
	"time":      "Combat this by pushing content proactively before field days and designing offline-capable modules. Never require connectivity at the point of learning.",
	"technical": "Prioritise mobile-first, low-bandwidth design. Test every module on a 3G connection before launch. Offer downloadable offline versions.",
	"engaging":  "Invest in production quality — this group has seen enough generic slides. Scenario-based, visual, gamified formats are the minimum bar.",
	"relevance": "Every module must open with a clear 'this is for you because...' statement. Generic pharma content will be abandoned in the first 60 seconds.",
	"access":    "Ensure modules work across device types. Build an SMS or WhatsApp nudge system for Non-Metro users with limited smartphone time.",
}

// secondaryFormats suggests layered formats for the runner-up archetypes
// in the closing paragraph.
var secondaryFormats = map[domain.Archetype]string{
	domain.ArchetypePathfinder: "structured learning paths with visible progression tracking",
	domain.ArchetypePragmatist: "micro-assessments that prove competency quickly without lengthy modules",
	domain.ArchetypeInquirer:   "downloadable clinical summaries, white papers, and annotated evidence reviews",
	domain.ArchetypeNavigator:  "self-paced playlists and on-demand expert sessions",
	domain.ArchetypeConnector:  "peer cohort challenges, coaching simulations, and team-based gamification",
}

// Fixed fallbacks substituted when an underlying distribution is empty.
var (
	defaultFormats     = [2]domain.Entry{{Label: "short videos"}, {Label: "interactive modules"}}
	defaultMotivations = [2]domain.Entry{{Label: "career advancement"}, {Label: "personal growth"}}
	defaultChallenges  = [2]domain.Entry{{Label: "time constraint"}, {Label: "technical difficulties"}}
)

const (
	defaultTimeBracket = "1–2 hours"
	defaultTimePct     = 52
)

// Insight renders the six-paragraph narrative from a segment's computed
// aggregates. personas must be the pct-descending archetype distribution;
// the remaining arguments are the corresponding response distributions.
func Insight(personas []domain.ArchetypeShare, motiv, format, timeCounts, chall []domain.Entry, totalN int) domain.Insight {
	if len(personas) == 0 || totalN == 0 {
		return domain.Insight{Paragraphs: []string{
			"Insufficient data to generate insights for this filter combination.",
		}}
	}

	top1, top2, top3 := topThree(personas)
	fmt1, fmt2 := firstTwo(format, defaultFormats)
	mot1, mot2 := firstTwo(motiv, defaultMotivations)
	ch1, ch2 := firstTwo(chall, defaultChallenges)

	bracket, timePct := defaultTimeBracket, defaultTimePct
	if len(timeCounts) > 0 {
		bracket, timePct = timeCounts[0].Label, timeCounts[0].Pct
	}
	chunk, rhythm := chunkAndRhythm(bracket)

	paragraphs := []string{
		fmt.Sprintf(
			"This group of %d learners is shaped by %ss (%d%%), %ss (%d%%), and %ss (%d%%) as the three dominant profiles. Any learning journey must serve this blend — design for the majority but do not ignore the other two.",
			totalN, top1.Name, top1.Pct, top2.Name, top2.Pct, top3.Name, top3.Pct),
		fmt.Sprintf(
			"%s is the clear first-choice format (%d%% ranked it #1), followed by %s (%d%%). Given the %s majority, %s",
			fmt1.Label, fmt1.Pct, fmt2.Label, fmt2.Pct, top1.Name,
			guidanceFor(formatGuidance, top1.Name, formatGuidance[domain.ArchetypePragmatist])),
		fmt.Sprintf(
			"Time is a real design constraint — %d%% of this group can commit only %s per week. Build every module to a maximum of %s minutes, batched into a %s rhythm. Longer modules should offer clear pause-and-resume points.",
			timePct, bracket, chunk, rhythm),
		fmt.Sprintf(
			"The primary motivator is %s (%d%% rank it #1), with %s close behind (%d%%). %s",
			mot1.Label, mot1.Pct, mot2.Label, mot2.Pct,
			motivationGuidance[motivationKey(mot1.Label)]),
		fmt.Sprintf(
			"The biggest barrier to engagement is %s (%d%% flagged it), followed by %s (%d%%). %s",
			ch1.Label, ch1.Pct, ch2.Label, ch2.Pct,
			challengeGuidance[challengeKey(ch1.Label)]),
		fmt.Sprintf(
			"For the %s (%d%%) and %s (%d%%) segments, layer in %s. %s",
			top2.Name, top2.Pct, top3.Name, top3.Pct,
			guidanceFor(secondaryFormats, top2.Name, "peer-based and scenario-driven formats"),
			relevanceNote(chall)),
	}
	return domain.Insight{Paragraphs: paragraphs}
}

// topThree pads the distribution with placeholder shares so segments
// with fewer than three archetypes present still render.
func topThree(personas []domain.ArchetypeShare) (a, b, c domain.ArchetypeShare) {
	placeholder := domain.ArchetypeShare{Name: "—"}
	a, b, c = placeholder, placeholder, placeholder
	if len(personas) > 0 {
		a = personas[0]
	}
	if len(personas) > 1 {
		b = personas[1]
	}
	if len(personas) > 2 {
		c = personas[2]
	}
	return a, b, c
}

func firstTwo(entries []domain.Entry, defaults [2]domain.Entry) (domain.Entry, domain.Entry) {
	first, second := defaults[0], defaults[1]
	if len(entries) > 0 {
		first = entries[0]
	}
	if len(entries) > 1 {
		second = entries[1]
	}
	return first, second
}

// chunkAndRhythm derives the recommended module length and batching
// cadence from the winning time bracket label.
func chunkAndRhythm(bracket string) (string, string) {
	switch {
	case strings.Contains(bracket, "<1") || strings.Contains(bracket, "30"):
		return "10", "twice-weekly"
	case strings.Contains(bracket, "3") || strings.Contains(bracket, "more"):
		return "20", "bi-weekly"
	default:
		return "15", "weekly"
	}
}

func motivationKey(label string) string {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "career"):
		return "career"
	case strings.Contains(l, "performance"):
		return "performance"
	case strings.Contains(l, "growth"):
		return "growth"
	default:
		return "trends"
	}
}

func challengeKey(label string) string {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "time"):
		return "time"
	case strings.Contains(l, "tech"):
		return "technical"
	case strings.Contains(l, "engag"):
		return "engaging"
	case strings.Contains(l, "relev"):
		return "relevance"
	default:
		return "access"
	}
}

// relevanceNote closes the narrative with the share of the group that
// flagged relevance as a barrier, defaulting to 40 when the challenge
// distribution carries no relevance entry.
func relevanceNote(chall []domain.Entry) string {
	pct := "40"
	for _, e := range chall {
		if strings.Contains(strings.ToLower(e.Label), "relev") {
			pct = strconv.Itoa(e.Pct)
			break
		}
	}
	return fmt.Sprintf(
		"relevance is flagged by %s%% of this group — every module must open with a clear 'this is for you because' statement.",
		pct)
}

// guidanceFor looks up archetype-keyed guidance by display name.
func guidanceFor(table map[domain.Archetype]string, name, fallback string) string {
	if g, ok := table[domain.Archetype(name)]; ok {
		return g
	}
	return fallback
}
