package engine

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/types"
)

// fakeStore keeps profiles and postings in memory in insertion order.
type fakeStore struct {
	profiles []types.Profile
	postings []types.Posting
}

func (s *fakeStore) SaveProfile(_ context.Context, p *types.Profile) (uuid.UUID, error) {
	p.ID = uuid.New()
	s.profiles = append(s.profiles, *p)
	return p.ID, nil
}

func (s *fakeStore) GetProfileByID(_ context.Context, id uuid.UUID) (*types.Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, db.ErrNotFound
}

func (s *fakeStore) GetLatestProfile(_ context.Context) (*types.Profile, error) {
	if len(s.profiles) == 0 {
		return nil, db.ErrNotFound
	}
	p := s.profiles[len(s.profiles)-1]
	return &p, nil
}

func (s *fakeStore) ListProfiles(_ context.Context) ([]types.Profile, error) {
	return append([]types.Profile(nil), s.profiles...), nil
}

func (s *fakeStore) SavePosting(_ context.Context, p *types.Posting) (uuid.UUID, error) {
	p.ID = uuid.New()
	s.postings = append(s.postings, *p)
	return p.ID, nil
}

func (s *fakeStore) GetPostingByID(_ context.Context, id uuid.UUID) (*types.Posting, error) {
	for i := range s.postings {
		if s.postings[i].ID == id {
			p := s.postings[i]
			return &p, nil
		}
	}
	return nil, db.ErrNotFound
}

func (s *fakeStore) ListPostings(_ context.Context) ([]types.Posting, error) {
	return append([]types.Posting(nil), s.postings...), nil
}

// fakeProvider returns a fixed vector for every text so semantic scores
// are identical across candidates and ordering falls to skill overlap.
type fakeProvider struct {
	vec []float32
}

func (p *fakeProvider) Embed(_ context.Context, _ string) ([]float32, error) {
	return p.vec, nil
}

func (p *fakeProvider) Close() error { return nil }

// fakeSearcher returns canned listings.
type fakeSearcher struct {
	listings []types.Listing
}

func (s *fakeSearcher) Search(_ context.Context, _, _ string, _ int) []types.Listing {
	return s.listings
}

func validProfile() *types.Profile {
	return &types.Profile{
		EducationLevel:     "Bachelor",
		GraduationStatus:   "Graduated",
		HardSkills:         []string{"python", "sql"},
		WorkExperience:     "1-3",
		LocationPreference: "Hong Kong",
		PrimaryRole:        "Data Analyst",
		SearchTerms:        "data analyst",
	}
}

func validPosting(title string, required []string) *types.Posting {
	return &types.Posting{
		Title:             title,
		Description:       "Role description",
		RequiredSkills:    required,
		ClientCompany:     "Acme",
		Industry:          "Technology",
		WorkLocation:      "Hong Kong",
		WorkArrangement:   "onsite",
		EmploymentType:    "full-time",
		ExperienceLevel:   "1-3",
		Salary:            types.SalaryRange{Min: 20000, Max: 40000, Currency: "HKD"},
		ValidUntil:        time.Now().Add(30 * 24 * time.Hour),
		ApplicationMethod: "platform",
	}
}

func newTestEngine(store *fakeStore, searcher Searcher) *Engine {
	ranker := matching.NewRanker(&fakeProvider{vec: []float32{1, 0, 0}}, nil)
	return New(store, store, searcher, ranker, nil)
}

func TestCreateProfile_RejectsInvalid(t *testing.T) {
	e := newTestEngine(&fakeStore{}, nil)

	p := validProfile()
	p.PrimaryRole = ""
	_, err := e.CreateProfile(context.Background(), p)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "primaryrole", verr.Field)
}

func TestCreateProfile_PersistsAndReturnsID(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, nil)

	submitted := validProfile()
	submitted.CreatedAt = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	id, err := e.CreateProfile(context.Background(), submitted)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := e.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst", got.PrimaryRole)
	// Stores persist the caller's creation timestamp, not their own.
	assert.Equal(t, submitted.CreatedAt, got.CreatedAt)
}

func TestPublishPosting_RejectsInvertedSalary(t *testing.T) {
	e := newTestEngine(&fakeStore{}, nil)

	p := validPosting("Analyst", []string{"python"})
	p.Salary = types.SalaryRange{Min: 50000, Max: 20000, Currency: "HKD"}
	_, err := e.PublishPosting(context.Background(), p)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestGetProfileOrLatest(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, nil)
	ctx := context.Background()

	_, err := e.GetProfileOrLatest(ctx, uuid.Nil)
	assert.ErrorIs(t, err, db.ErrNotFound)

	first, err := e.CreateProfile(ctx, validProfile())
	require.NoError(t, err)
	second := validProfile()
	second.PrimaryRole = "Data Engineer"
	_, err = e.CreateProfile(ctx, second)
	require.NoError(t, err)

	latest, err := e.GetProfileOrLatest(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", latest.PrimaryRole)

	byID, err := e.GetProfileOrLatest(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst", byID.PrimaryRole)
}

func TestRecommendPostings_RanksBySkillOverlap(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, nil)
	ctx := context.Background()

	profileID, err := e.CreateProfile(ctx, validProfile())
	require.NoError(t, err)

	_, err = e.PublishPosting(ctx, validPosting("Partial Fit", []string{"python", "docker"}))
	require.NoError(t, err)
	_, err = e.PublishPosting(ctx, validPosting("Full Fit", []string{"python", "sql"}))
	require.NoError(t, err)

	outcome, err := e.RecommendPostings(ctx, profileID, Options{NumToSearch: 10, NumToShow: 10})
	require.NoError(t, err)
	require.Len(t, outcome.Results, 2)

	assert.Equal(t, "Full Fit", outcome.Results[0].CandidateTitle)
	assert.Equal(t, "Partial Fit", outcome.Results[1].CandidateTitle)
	assert.InDelta(t, 100.0, outcome.Results[0].SkillMatchPercentage, 0.01)
	assert.InDelta(t, 50.0, outcome.Results[1].SkillMatchPercentage, 0.01)
}

func TestRecommendPostings_UnknownProfile(t *testing.T) {
	e := newTestEngine(&fakeStore{}, nil)

	_, err := e.RecommendPostings(context.Background(), uuid.New(), Options{})
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestRecommendPostings_EmptyPool(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, nil)
	ctx := context.Background()

	profileID, err := e.CreateProfile(ctx, validProfile())
	require.NoError(t, err)

	outcome, err := e.RecommendPostings(ctx, profileID, Options{})
	require.NoError(t, err)
	assert.Empty(t, outcome.Results)
}

func TestMatchCandidates_FiltersByMinScoreAndExplains(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, nil)
	ctx := context.Background()

	strong := validProfile()
	_, err := e.CreateProfile(ctx, strong)
	require.NoError(t, err)

	weak := validProfile()
	weak.HardSkills = []string{"photoshop"}
	weak.PrimaryRole = "Designer"
	_, err = e.CreateProfile(ctx, weak)
	require.NoError(t, err)

	postingID, err := e.PublishPosting(ctx, validPosting("Analyst", []string{"python", "sql"}))
	require.NoError(t, err)

	// Identical vectors give every candidate semantic 100; combined is
	// 60 + 0.4*skillPct. The weak profile lands at 60, the strong at 100.
	outcome, err := e.MatchCandidates(ctx, postingID, Options{NumToSearch: 10, NumToShow: 10, MinScore: 80})
	require.NoError(t, err)
	require.Len(t, outcome.Results, 1)

	r := outcome.Results[0]
	assert.InDelta(t, 100.0, r.CombinedScore, 0.01)
	require.NotNil(t, r.Explanation)
	assert.Equal(t, "excellent", r.Explanation.MatchTier)
}

func TestSimpleMatch_ReturnsExplainedResult(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, nil)
	ctx := context.Background()

	profileID, err := e.CreateProfile(ctx, validProfile())
	require.NoError(t, err)
	postingID, err := e.PublishPosting(ctx, validPosting("Analyst", []string{"python", "sql", "docker"}))
	require.NoError(t, err)

	result, err := e.SimpleMatch(ctx, profileID, postingID)
	require.NoError(t, err)

	assert.InDelta(t, 66.67, result.SkillMatchPercentage, 0.01)
	require.NotNil(t, result.Explanation)
	assert.NotEmpty(t, result.Explanation.Recommendation)
}

func TestSearchExternal_NilSearcherWarns(t *testing.T) {
	e := newTestEngine(&fakeStore{}, nil)

	outcome, err := e.SearchExternal(context.Background(), validProfile(), Options{})
	require.NoError(t, err)
	assert.Empty(t, outcome.Results)
	require.Len(t, outcome.Warnings, 1)
	assert.Contains(t, outcome.Warnings[0], "not configured")
}

func TestSearchExternal_NoListingsWarns(t *testing.T) {
	e := newTestEngine(&fakeStore{}, &fakeSearcher{})

	outcome, err := e.SearchExternal(context.Background(), validProfile(), Options{})
	require.NoError(t, err)
	assert.Empty(t, outcome.Results)
	require.Len(t, outcome.Warnings, 1)
}

func TestSearchExternal_RanksListings(t *testing.T) {
	searcher := &fakeSearcher{listings: []types.Listing{
		{ID: "ext-1", Title: "Data Analyst", Company: "Acme", Description: "Python and SQL analytics", RequiredSkills: []string{"python", "sql"}},
		{ID: "ext-2", Title: "Platform Engineer", Company: "Globex", Description: "Kubernetes platform work", RequiredSkills: []string{"kubernetes"}},
	}}
	e := newTestEngine(&fakeStore{}, searcher)

	outcome, err := e.SearchExternal(context.Background(), validProfile(), Options{NumToSearch: 10, NumToShow: 10})
	require.NoError(t, err)
	require.Len(t, outcome.Results, 2)

	assert.Equal(t, "ext-1", outcome.Results[0].CandidateID)
	assert.InDelta(t, 100.0, outcome.Results[0].SkillMatchPercentage, 0.01)
	assert.InDelta(t, 0.0, outcome.Results[1].SkillMatchPercentage, 0.01)
}

func TestPostingStats(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, nil)
	ctx := context.Background()
	now := time.Now()

	active := validPosting("Active", []string{"python"})
	_, err := e.PublishPosting(ctx, active)
	require.NoError(t, err)

	expired := validPosting("Expired", []string{"sql"})
	expired.ValidUntil = now.Add(-24 * time.Hour)
	expired.Industry = "Finance"
	_, err = e.PublishPosting(ctx, expired)
	require.NoError(t, err)

	stats, err := e.PostingStats(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalPostings)
	assert.Equal(t, 1, stats.ActivePostings)
	assert.Equal(t, 1, stats.ExpiredPostings)
	assert.InDelta(t, 30000.0, stats.AverageSalary, 0.01)
	assert.Equal(t, map[string]int{"Technology": 1, "Finance": 1}, stats.ByIndustry)
	assert.Equal(t, 2, stats.ByLocation["Hong Kong"])
}

func TestPostingStats_EmptyPool(t *testing.T) {
	e := newTestEngine(&fakeStore{}, nil)

	stats, err := e.PostingStats(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalPostings)
	assert.Zero(t, stats.AverageSalary)
}
