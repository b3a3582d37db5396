// Package explain derives human-readable match explanations from a
// single profile-posting pair. All functions are pure and deterministic.
package explain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// Tier labels. Every score-to-label mapping in the system goes through
// TierFor so UI coloring and explanations can never diverge.
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierFair      = "fair"
)

// maxListedSkills caps how many skills appear in strengths and gaps.
const maxListedSkills = 5

// TierFor maps a 0-100 score to its tier: >= 80 excellent, >= 60 good,
// otherwise fair.
func TierFor(score float64) string {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 60:
		return TierGood
	default:
		return TierFair
	}
}

// Explain builds the explanation bundle for one profile-posting pair
// given its combined match score.
func Explain(profile *types.Profile, posting *types.Posting, matchScore float64) *types.Explanation {
	overlap := skills.Match(profile.HardSkills, posting.RequiredSkills)

	return &types.Explanation{
		MatchTier:      TierFor(matchScore),
		SalaryMatch:    salaryMatch(profile, posting),
		CultureFit:     cultureFit(profile, posting),
		KeyStrengths:   keyStrengths(profile, posting, overlap),
		PotentialGaps:  potentialGaps(profile, posting, overlap),
		Recommendation: recommendation(matchScore, posting),
	}
}

var firstNumber = regexp.MustCompile(`\d[\d,]*`)

// parseExpectation extracts the first numeric amount from a free-text
// salary expectation. Returns 0 when no amount is present.
func parseExpectation(expectation string) int {
	m := firstNumber.FindString(expectation)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0
	}
	// Shorthand like "30k" means thousands.
	if strings.Contains(strings.ToLower(expectation), strconv.Itoa(n)+"k") {
		n *= 1000
	}
	return n
}

func salaryMatch(profile *types.Profile, posting *types.Posting) string {
	expected := parseExpectation(profile.SalaryExpectation)
	if expected == 0 {
		return TierFair
	}
	if posting.Salary.Contains(expected) {
		return TierExcellent
	}
	if expected < posting.Salary.Min {
		return TierGood
	}
	return TierFair
}

func cultureFit(profile *types.Profile, posting *types.Posting) string {
	hits := 0
	if profile.IndustryPreference != "" &&
		strings.EqualFold(strings.TrimSpace(profile.IndustryPreference), strings.TrimSpace(posting.Industry)) {
		hits++
	}
	if profile.LocationPreference != "" && locationCompatible(profile.LocationPreference, posting) {
		hits++
	}
	switch hits {
	case 2:
		return TierExcellent
	case 1:
		return TierGood
	default:
		return TierFair
	}
}

func locationCompatible(preference string, posting *types.Posting) bool {
	pref := strings.ToLower(strings.TrimSpace(preference))
	if strings.EqualFold(posting.WorkArrangement, "remote") {
		return true
	}
	return strings.Contains(strings.ToLower(posting.WorkLocation), pref) ||
		strings.Contains(pref, strings.ToLower(strings.TrimSpace(posting.WorkLocation)))
}

func keyStrengths(profile *types.Profile, posting *types.Posting, overlap skills.Overlap) []string {
	strengths := make([]string, 0, 3)

	if overlap.MatchedCount > 0 {
		listed := overlap.Matched
		if len(listed) > maxListedSkills {
			listed = listed[:maxListedSkills]
		}
		strengths = append(strengths,
			fmt.Sprintf("Has %d of %d required skills: %s",
				overlap.MatchedCount, overlap.MatchedCount+len(overlap.Missing), strings.Join(listed, ", ")))
	}

	profileRank := profile.ExperienceRank()
	requiredRank := types.ExperienceBandRank(posting.ExperienceLevel)
	if profileRank >= 0 && requiredRank >= 0 && profileRank >= requiredRank {
		strengths = append(strengths,
			fmt.Sprintf("Experience band %s meets the %s requirement", profile.WorkExperience, posting.ExperienceLevel))
	}

	if len(profile.SoftSkills) > 0 {
		listed := profile.SoftSkills
		if len(listed) > maxListedSkills {
			listed = listed[:maxListedSkills]
		}
		strengths = append(strengths, "Core strengths: "+strings.Join(listed, ", "))
	}

	return strengths
}

func potentialGaps(profile *types.Profile, posting *types.Posting, overlap skills.Overlap) []string {
	gaps := make([]string, 0, 2)

	if len(overlap.Missing) > 0 {
		listed := overlap.Missing
		if len(listed) > maxListedSkills {
			listed = listed[:maxListedSkills]
		}
		gaps = append(gaps, "Missing required skills: "+strings.Join(listed, ", "))
	}

	profileRank := profile.ExperienceRank()
	requiredRank := types.ExperienceBandRank(posting.ExperienceLevel)
	if profileRank >= 0 && requiredRank >= 0 && profileRank < requiredRank {
		gaps = append(gaps,
			fmt.Sprintf("Experience band %s is below the %s requirement", profile.WorkExperience, posting.ExperienceLevel))
	}

	return gaps
}

func recommendation(matchScore float64, posting *types.Posting) string {
	switch TierFor(matchScore) {
	case TierExcellent:
		return fmt.Sprintf("Strong candidate for %s; recommend proceeding to interview.", posting.Title)
	case TierGood:
		return fmt.Sprintf("Good fit for %s; worth a screening conversation.", posting.Title)
	default:
		return fmt.Sprintf("Limited fit for %s; consider only if the pipeline is thin.", posting.Title)
	}
}
