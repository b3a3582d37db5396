package skills

import "sort"

// Overlap is the result of matching a profile's skill set against a
// posting's required-skill set.
type Overlap struct {
	Percentage   float64  `json:"percentage"`
	MatchedCount int      `json:"matched_count"`
	Matched      []string `json:"matched"`
	Missing      []string `json:"missing"`
}

// Match computes the exact overlap between profile skills and required
// skills on normalized tokens. Percentage is |profile ∩ required| /
// |required| * 100. An empty requirement set yields 0, not 100: a
// posting with unspecified requirements must not score as a full match.
// Matched and Missing are sorted lexicographically.
func Match(profileSkills, requiredSkills []string) Overlap {
	profile := Normalize(profileSkills)
	required := Normalize(requiredSkills)

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))

	if len(required) == 0 {
		return Overlap{Matched: matched, Missing: missing}
	}

	have := make(map[string]bool, len(profile))
	for _, s := range profile {
		have[s] = true
	}

	for _, req := range required {
		if have[req] {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return Overlap{
		Percentage:   float64(len(matched)) / float64(len(required)) * 100,
		MatchedCount: len(matched),
		Matched:      matched,
		Missing:      missing,
	}
}
