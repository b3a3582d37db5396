// Package skills provides skill-token normalization and overlap matching
// between job-seeker skill sets and posting requirement sets.
package skills

import (
	"sort"
	"strings"
)

// Normalize canonicalizes free-text skill strings into comparable
// tokens: each entry is split on commas, trimmed, lower-cased, empty
// tokens are dropped and duplicates removed. The result is sorted
// lexicographically so repeated runs produce identical output.
// Normalizing already-normalized tokens is a no-op.
func Normalize(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, token := range strings.Split(entry, ",") {
			token = strings.ToLower(strings.TrimSpace(token))
			if token == "" || seen[token] {
				continue
			}
			seen[token] = true
			out = append(out, token)
		}
	}
	sort.Strings(out)
	return out
}

// NormalizeList splits a single comma-delimited string into normalized
// tokens. An empty input yields an empty set.
func NormalizeList(delimited string) []string {
	if strings.TrimSpace(delimited) == "" {
		return []string{}
	}
	return Normalize([]string{delimited})
}
