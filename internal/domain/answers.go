package domain

import "strings"

// Ranked answers arrive as one delimited string, first preference first.
// Semicolons and newlines both act as delimiters; commas do not, because
// individual choice labels legitimately contain commas.
func SplitRanked(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ';' || r == '\n'
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FirstChoice extracts the rank-1 item from a ranked answer string.
// Returns "" when the cell is blank.
func FirstChoice(cell string) string {
	parts := SplitRanked(cell)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// SplitMulti extracts every item from a multi-select answer, which may be
// semicolon or comma separated. Single-character fragments are noise from
// sloppy comma usage and are dropped.
func SplitMulti(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ';' || r == ',' || r == '\n'
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); len(p) > 1 {
			out = append(out, p)
		}
	}
	return out
}
