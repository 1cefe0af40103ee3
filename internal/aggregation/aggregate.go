// Package aggregation counts categorical survey responses and turns the
// counts into percentage distributions.
//
// Two modes exist. Rank-1 counts only each respondent's first preference
// and divides by the number of respondents with a non-empty first
// preference. Multi-select counts every distinct item a respondent
// mentioned and divides by the number of respondents who mentioned at
// least one item, so a respondent weighs into the denominator exactly
// once however many items they picked. The two denominators legitimately
// differ per question and are never the segment's total row count.
//
// Ordering policy: labels sort by count descending; ties keep
// first-encountered insertion order. This is a deliberate, documented
// rule (not an accident of map iteration) so distributions are
// deterministic across runs.
package aggregation

import (
	"math"
	"sort"
	"strings"

	"github.com/fieldlearn/personas/internal/domain"
)

// counter accumulates label counts while remembering first-encountered
// order for deterministic tie-breaking.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, seen := c.counts[label]; !seen {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// distribution renders the counter as rounded percentages of denom,
// sorted by count descending (stable) and truncated to topN. A zero
// denominator yields an empty distribution, never a division. The
// result is always non-nil so it marshals as a JSON array, not null.
func (c *counter) distribution(topN, denom int) []domain.Entry {
	if denom == 0 || len(c.order) == 0 {
		return []domain.Entry{}
	}
	labels := make([]string, len(c.order))
	copy(labels, c.order)
	sort.SliceStable(labels, func(i, j int) bool {
		return c.counts[labels[i]] > c.counts[labels[j]]
	})
	if topN > 0 && len(labels) > topN {
		labels = labels[:topN]
	}
	out := make([]domain.Entry, len(labels))
	for i, l := range labels {
		out[i] = domain.Entry{
			Label: l,
			Pct:   roundPct(c.counts[l], denom),
		}
	}
	return out
}

func roundPct(count, denom int) int {
	return int(math.Round(float64(count) / float64(denom) * 100))
}

// RankOne builds the first-preference distribution for one question.
// For ranked multi-column questions the designated rank-1 column's value
// is the preference; otherwise the first delimited item of the single
// column. Respondents with a blank first preference contribute nothing,
// to the numerator or the denominator.
func RankOne(rows []domain.Row, res domain.Resolved, topN int) []domain.Entry {
	if !res.Ok {
		return []domain.Entry{}
	}
	c := newCounter()
	answered := 0
	for _, row := range rows {
		var item string
		if len(res.Ranked) > 0 {
			item = strings.TrimSpace(row[res.Ranked[0]])
		} else {
			item = domain.FirstChoice(row[res.Column])
		}
		if item == "" {
			continue
		}
		answered++
		c.add(item)
	}
	return c.distribution(topN, answered)
}

// MultiSelect builds the any-mention distribution for one question,
// taking every distinct item across the full answer: all delimited parts
// of a single column, or the union across all rank columns for ranked
// questions.
func MultiSelect(rows []domain.Row, res domain.Resolved, topN int) []domain.Entry {
	if !res.Ok {
		return []domain.Entry{}
	}
	c := newCounter()
	answered := 0
	for _, row := range rows {
		seen := make(map[string]struct{})
		for _, col := range res.All() {
			for _, item := range domain.SplitMulti(row[col]) {
				if _, dup := seen[item]; dup {
					continue
				}
				seen[item] = struct{}{}
				c.add(item)
			}
		}
		if len(seen) > 0 {
			answered++
		}
	}
	return c.distribution(topN, answered)
}

// Mode returns the most frequent raw value of a single column within the
// subset, ignoring blanks. Ties keep first-encountered order. Used for
// the modal demographics on persona cards; returns fallback when the
// column is absent or entirely blank.
func Mode(rows []domain.Row, res domain.Resolved, fallback string) string {
	if !res.Ok {
		return fallback
	}
	c := newCounter()
	for _, row := range rows {
		if v := strings.TrimSpace(row[res.Column]); v != "" {
			c.add(v)
		}
	}
	best, bestCount := fallback, 0
	for _, label := range c.order {
		if c.counts[label] > bestCount {
			best, bestCount = label, c.counts[label]
		}
	}
	return best
}
