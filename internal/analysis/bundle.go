// Package analysis decodes the untyped resume-analysis bundle produced
// by the upstream extractor into typed profile input, tolerating absent
// or empty fields for every key it reads.
package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// Bundle is the structured view of the extractor's output. Every field
// is optional; missing keys decode to the zero value and are replaced
// by documented defaults in ToProfile.
type Bundle struct {
	EducationLevel      string   `mapstructure:"education_level"`
	Major               string   `mapstructure:"major"`
	GraduationStatus    string   `mapstructure:"graduation_status"`
	Languages           []string `mapstructure:"languages"`
	Certificates        []string `mapstructure:"certificates"`
	Skills              []string `mapstructure:"skills"`
	SoftSkills          []string `mapstructure:"soft_skills"`
	WorkExperience      string   `mapstructure:"work_experience"`
	ProjectExperience   string   `mapstructure:"project_experience"`
	LocationPreference  string   `mapstructure:"location_preference"`
	IndustryPreference  string   `mapstructure:"industry_preference"`
	SalaryExpectation   string   `mapstructure:"salary_expectation"`
	BenefitsExpectation string   `mapstructure:"benefits_expectation"`
	PrimaryRole         string   `mapstructure:"primary_role"`
	SearchTerms         string   `mapstructure:"simple_search_terms"`
	Confidence          float64  `mapstructure:"confidence"`
}

// Decode converts the extractor's raw key-value output into a Bundle.
// List fields accept either a slice or a comma-delimited string.
func Decode(raw map[string]any) (*Bundle, error) {
	var b Bundle
	cfg := &mapstructure.DecoderConfig{
		Result:           &b,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build bundle decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode analysis bundle: %w", err)
	}
	return &b, nil
}

// ToProfile converts the bundle into a Profile draft. Skill lists are
// normalized, other list fields are comma-split, and free-text values
// for fields with fixed option lists are snapped onto their canonical
// option. It does not validate; callers run Profile.Validate at the
// persistence boundary.
func (b *Bundle) ToProfile(now time.Time) *types.Profile {
	return &types.Profile{
		EducationLevel:      Canonical(b.EducationLevel, types.EducationLevels),
		Major:               b.Major,
		GraduationStatus:    Canonical(b.GraduationStatus, types.GraduationStatuses),
		Languages:           splitTrim(b.Languages),
		Certificates:        splitTrim(b.Certificates),
		HardSkills:          skills.Normalize(b.Skills),
		SoftSkills:          skills.Normalize(b.SoftSkills),
		WorkExperience:      Canonical(b.WorkExperience, types.ExperienceBands),
		ProjectExperience:   b.ProjectExperience,
		LocationPreference:  b.LocationPreference,
		IndustryPreference:  b.IndustryPreference,
		SalaryExpectation:   b.SalaryExpectation,
		BenefitsExpectation: b.BenefitsExpectation,
		PrimaryRole:         b.PrimaryRole,
		SearchTerms:         b.SearchTerms,
		CreatedAt:           now,
	}
}

// splitTrim comma-splits and trims list entries without lower-casing,
// so languages and certificates keep their display casing. A nil input
// yields an empty, non-nil slice.
func splitTrim(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, token := range strings.Split(entry, ",") {
			token = strings.TrimSpace(token)
			if token != "" {
				out = append(out, token)
			}
		}
	}
	return out
}
