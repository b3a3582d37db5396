package types

// MatchResult is the outcome of scoring one subject against one
// candidate. Results are ephemeral: computed on demand, owned by the
// caller, never persisted.
type MatchResult struct {
	SubjectID            string       `json:"subject_id"`
	CandidateID          string       `json:"candidate_id"`
	CandidateTitle       string       `json:"candidate_title,omitempty"`
	CandidateCompany     string       `json:"candidate_company,omitempty"`
	SemanticScore        float64      `json:"semantic_score"`
	SkillMatchPercentage float64      `json:"skill_match_percentage"`
	MatchedSkillsCount   int          `json:"matched_skills_count"`
	MatchedSkills        []string     `json:"matched_skills"`
	MissingSkills        []string     `json:"missing_skills"`
	CombinedScore        float64      `json:"combined_score"`
	SemanticFallback     bool         `json:"semantic_fallback,omitempty"`
	Explanation          *Explanation `json:"explanation,omitempty"`
}

// Explanation is the human-readable bundle derived from a single
// profile-posting pair, independent of ranking.
type Explanation struct {
	MatchTier      string   `json:"match_tier"`
	SalaryMatch    string   `json:"salary_match"`
	CultureFit     string   `json:"culture_fit"`
	KeyStrengths   []string `json:"key_strengths"`
	PotentialGaps  []string `json:"potential_gaps"`
	Recommendation string   `json:"recommendation"`
}

// Listing is a job listing returned by the external search provider.
// Listings are best-effort data and never persisted.
type Listing struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	URL            string   `json:"url,omitempty"`
	PostedDate     string   `json:"posted_date,omitempty"`
}

// MatchText builds the listing's descriptive text for semantic comparison.
func (l *Listing) MatchText() string {
	return joinNonEmpty([]string{l.Title, l.Company, l.Description}, ". ")
}
