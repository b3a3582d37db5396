package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/explain"
	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/types"
)

// MatchCandidates ranks the stored profile pool against a posting and
// attaches an explanation bundle to each result. Results below
// opts.MinScore are filtered after the full pool is ranked.
func (e *Engine) MatchCandidates(ctx context.Context, postingID uuid.UUID, opts Options) (*matching.Outcome, error) {
	posting, err := e.postings.GetPostingByID(ctx, postingID)
	if err != nil {
		return nil, err
	}

	profiles, err := e.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile pool: %w", err)
	}

	pool := make([]matching.Candidate, 0, len(profiles))
	byID := make(map[string]*types.Profile, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		byID[p.ID.String()] = p
		pool = append(pool, matching.Candidate{
			ID:             p.ID.String(),
			Title:          p.PrimaryRole,
			Text:           p.MatchText(),
			ProfileSkills:  p.HardSkills,
			RequiredSkills: posting.RequiredSkills,
		})
	}

	outcome, err := e.ranker.Rank(ctx, matching.Subject{
		ID:   posting.ID.String(),
		Text: posting.MatchText(),
	}, pool, rankOptions(opts))
	if err != nil {
		return nil, err
	}

	kept := outcome.Results[:0]
	for i := range outcome.Results {
		r := &outcome.Results[i]
		if r.CombinedScore < opts.MinScore {
			continue
		}
		if p, ok := byID[r.CandidateID]; ok {
			r.Explanation = explain.Explain(p, posting, r.CombinedScore)
		}
		kept = append(kept, *r)
	}
	outcome.Results = kept

	e.logger.Info("candidates matched",
		zap.String("posting_id", posting.ID.String()),
		zap.Int("pool", len(pool)),
		zap.Int("results", len(outcome.Results)),
		zap.Float64("min_score", opts.MinScore))
	return outcome, nil
}

// SimpleMatch scores a single profile against a single posting and
// returns the result with its explanation bundle. profileID may be
// uuid.Nil to use the latest stored profile.
func (e *Engine) SimpleMatch(ctx context.Context, profileID, postingID uuid.UUID) (*types.MatchResult, error) {
	profile, err := e.GetProfileOrLatest(ctx, profileID)
	if err != nil {
		return nil, err
	}
	posting, err := e.postings.GetPostingByID(ctx, postingID)
	if err != nil {
		return nil, err
	}

	outcome, err := e.ranker.Rank(ctx, matching.Subject{
		ID:   profile.ID.String(),
		Text: profile.MatchText(),
	}, []matching.Candidate{postingCandidate(posting, profile)}, matching.Options{})
	if err != nil {
		return nil, err
	}
	if len(outcome.Results) == 0 {
		return nil, fmt.Errorf("match produced no result for posting %s", posting.ID)
	}

	result := outcome.Results[0]
	result.Explanation = explain.Explain(profile, posting, result.CombinedScore)
	return &result, nil
}
