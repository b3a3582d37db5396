package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SalaryRange represents a posting's offered salary band.
// Min must be strictly less than Max.
type SalaryRange struct {
	Min      int    `json:"min" validate:"gte=0"`
	Max      int    `json:"max" validate:"gte=0"`
	Currency string `json:"currency"`
}

// Midpoint returns the middle of the salary band.
func (s SalaryRange) Midpoint() float64 {
	return float64(s.Min+s.Max) / 2
}

// Contains reports whether the amount falls inside the band.
func (s SalaryRange) Contains(amount int) bool {
	return amount >= s.Min && amount <= s.Max
}

// Posting represents a recruiter's published job opening.
// Postings are immutable once persisted; expiry is derived from
// ValidUntil at read time, never stored.
type Posting struct {
	ID                uuid.UUID   `json:"id"`
	Title             string      `json:"title" validate:"required"`
	Description       string      `json:"description" validate:"required"`
	Responsibilities  []string    `json:"responsibilities"`
	RequiredSkills    []string    `json:"required_skills"`
	ClientCompany     string      `json:"client_company" validate:"required"`
	Industry          string      `json:"industry" validate:"required"`
	WorkLocation      string      `json:"work_location" validate:"required"`
	WorkArrangement   string      `json:"work_arrangement" validate:"required"`
	CompanySize       string      `json:"company_size"`
	EmploymentType    string      `json:"employment_type" validate:"required"`
	ExperienceLevel   string      `json:"experience_level" validate:"required"`
	VisaSupport       string      `json:"visa_support"`
	Salary            SalaryRange `json:"salary"`
	Benefits          string      `json:"benefits"`
	ApplicationMethod string      `json:"application_method" validate:"required"`
	ValidUntil        time.Time   `json:"valid_until"`
	CreatedAt         time.Time   `json:"created_at"`
}

// Validate checks the posting's boundary invariants, including the
// salary Min < Max rule.
func (p *Posting) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.Salary.Min >= p.Salary.Max {
		return &ValidationError{Field: "salary", Message: "max salary must be greater than min salary"}
	}
	if p.ValidUntil.IsZero() {
		return &ValidationError{Field: "valid_until", Message: "validity end date is required"}
	}
	return nil
}

// IsExpired reports whether the posting's validity window has passed at
// the given instant. Freshness filtering is a caller concern; stores
// always return expired postings.
func (p *Posting) IsExpired(now time.Time) bool {
	return now.After(p.ValidUntil)
}

// MatchText builds the descriptive text used for semantic comparison
// against a profile's descriptive text.
func (p *Posting) MatchText() string {
	parts := []string{p.Title, p.Description}
	if len(p.Responsibilities) > 0 {
		parts = append(parts, strings.Join(p.Responsibilities, ". "))
	}
	if len(p.RequiredSkills) > 0 {
		parts = append(parts, strings.Join(p.RequiredSkills, ", "))
	}
	parts = append(parts, p.Industry)
	return joinNonEmpty(parts, ". ")
}
