package analysis

import "strings"

// BestOption matches a free-text value against a fixed option list and
// returns the best-scoring option, or the empty string when nothing
// scores above zero. The scoring function, from strongest to weakest:
// exact match, case-insensitive match, token subset (every token of the
// value appears in the option or vice versa), substring containment.
func BestOption(value string, options []string) string {
	value = strings.TrimSpace(value)
	if value == "" || len(options) == 0 {
		return ""
	}

	best := ""
	bestScore := 0
	for _, opt := range options {
		score := optionScore(value, opt)
		if score > bestScore {
			best = opt
			bestScore = score
		}
	}
	return best
}

// Canonical snaps a free-text value onto the best-matching option,
// keeping the raw value when nothing on the list matches. Extractor
// output like "1-3 years" lands on its canonical band this way instead
// of leaking free text into downstream comparisons.
func Canonical(value string, options []string) string {
	if match := BestOption(value, options); match != "" {
		return match
	}
	return value
}

func optionScore(value, option string) int {
	if value == option {
		return 4
	}
	lv, lo := strings.ToLower(value), strings.ToLower(strings.TrimSpace(option))
	if lv == lo {
		return 3
	}
	if tokenSubset(lv, lo) || tokenSubset(lo, lv) {
		return 2
	}
	if strings.Contains(lo, lv) || strings.Contains(lv, lo) {
		return 1
	}
	return 0
}

// tokenSubset reports whether every whitespace token of sub occurs as a
// token of full.
func tokenSubset(sub, full string) bool {
	subTokens := strings.Fields(sub)
	if len(subTokens) == 0 {
		return false
	}
	fullTokens := make(map[string]bool)
	for _, t := range strings.Fields(full) {
		fullTokens[t] = true
	}
	for _, t := range subTokens {
		if !fullTokens[t] {
			return false
		}
	}
	return true
}
