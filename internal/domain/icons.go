package domain

import "strings"

// challengeIcons maps coarse challenge categories, matched by substring
// against the label, to the icon the report renders. First matching
// fragment wins.
var challengeIcons = []struct{ fragment, icon string }{
	{"time", "⏰"},
	{"technical", "📶"},
	{"engag", "😐"},
	{"relev", "🎯"},
	{"access", "🔒"},
}

// ChallengeIcon returns the display icon for one engagement-barrier
// label, a bullet when no category matches.
func ChallengeIcon(label string) string {
	l := strings.ToLower(label)
	for _, ci := range challengeIcons {
		if strings.Contains(l, ci.fragment) {
			return ci.icon
		}
	}
	return "•"
}

// DecorateChallenges pairs each challenge entry with its icon for the
// graphs block.
func DecorateChallenges(entries []Entry) []ChallengeEntry {
	out := make([]ChallengeEntry, len(entries))
	for i, e := range entries {
		out[i] = ChallengeEntry{Label: e.Label, Pct: e.Pct, Icon: ChallengeIcon(e.Label)}
	}
	return out
}
