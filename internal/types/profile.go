// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExperienceBands lists the recognized work-experience bands in ascending order.
var ExperienceBands = []string{"0-1", "1-3", "3-5", "5-10", "10+"}

// EducationLevels lists the recognized education levels in ascending order.
var EducationLevels = []string{"High School", "Associate Degree", "Bachelor Degree", "Master Degree", "Doctorate"}

// GraduationStatuses lists the recognized graduation statuses.
var GraduationStatuses = []string{"Student", "Graduating Soon", "Graduated"}

// Profile represents a job seeker's structured attributes used for matching.
// Profiles are immutable once persisted.
type Profile struct {
	ID                  uuid.UUID `json:"id"`
	EducationLevel      string    `json:"education_level" validate:"required"`
	Major               string    `json:"major"`
	GraduationStatus    string    `json:"graduation_status" validate:"required"`
	Languages           []string  `json:"languages"`
	Certificates        []string  `json:"certificates"`
	HardSkills          []string  `json:"hard_skills"`
	SoftSkills          []string  `json:"soft_skills"`
	WorkExperience      string    `json:"work_experience" validate:"required"`
	ProjectExperience   string    `json:"project_experience"`
	LocationPreference  string    `json:"location_preference" validate:"required"`
	IndustryPreference  string    `json:"industry_preference"`
	SalaryExpectation   string    `json:"salary_expectation"`
	BenefitsExpectation string    `json:"benefits_expectation"`
	PrimaryRole         string    `json:"primary_role" validate:"required"`
	SearchTerms         string    `json:"search_terms" validate:"required"`
	CreatedAt           time.Time `json:"created_at"`
}

// Validate checks the required-field invariants before persistence.
func (p *Profile) Validate() error {
	return validateStruct(p)
}

// MatchText builds the descriptive text used for semantic comparison
// against a posting's descriptive text.
func (p *Profile) MatchText() string {
	parts := []string{p.PrimaryRole, p.SearchTerms, p.ProjectExperience, p.IndustryPreference}
	if len(p.HardSkills) > 0 {
		parts = append(parts, strings.Join(p.HardSkills, ", "))
	}
	if len(p.SoftSkills) > 0 {
		parts = append(parts, strings.Join(p.SoftSkills, ", "))
	}
	return joinNonEmpty(parts, ". ")
}

// SearchKeywords builds the keyword string handed to the external
// job-search provider.
func (p *Profile) SearchKeywords() string {
	parts := []string{p.PrimaryRole, p.SearchTerms}
	if len(p.HardSkills) > 0 {
		parts = append(parts, strings.Join(p.HardSkills, ", "))
	}
	kw := joinNonEmpty(parts, ", ")
	if kw == "" {
		kw = "General"
	}
	return kw
}

// ExperienceRank returns the ordinal position of the profile's
// work-experience band, or -1 when the band is unrecognized.
func (p *Profile) ExperienceRank() int {
	return ExperienceBandRank(p.WorkExperience)
}

// ExperienceBandRank maps a band label to its ordinal position, -1 if unknown.
func ExperienceBandRank(band string) int {
	band = strings.TrimSpace(band)
	for i, b := range ExperienceBands {
		if strings.EqualFold(band, b) {
			return i
		}
	}
	return -1
}

func joinNonEmpty(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, sep)
}
