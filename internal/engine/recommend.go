package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/types"
)

// RecommendPostings ranks the stored posting pool for a profile. This
// is the authoritative recommendation path; the external-provider path
// (SearchExternal) is a separate, independent operation.
func (e *Engine) RecommendPostings(ctx context.Context, profileID uuid.UUID, opts Options) (*matching.Outcome, error) {
	profile, err := e.GetProfileOrLatest(ctx, profileID)
	if err != nil {
		return nil, err
	}

	postings, err := e.postings.ListPostings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posting pool: %w", err)
	}

	pool := make([]matching.Candidate, 0, len(postings))
	for i := range postings {
		pool = append(pool, postingCandidate(&postings[i], profile))
	}

	outcome, err := e.ranker.Rank(ctx, matching.Subject{
		ID:   profile.ID.String(),
		Text: profile.MatchText(),
	}, pool, rankOptions(opts))
	if err != nil {
		return nil, err
	}

	e.logger.Info("posting recommendations ranked",
		zap.String("profile_id", profile.ID.String()),
		zap.Int("pool", len(pool)),
		zap.Int("results", len(outcome.Results)),
		zap.Int("skipped", outcome.Skipped),
		zap.Int("fallbacks", outcome.Fallbacks))
	return outcome, nil
}

// SearchExternal queries the external provider with the profile's
// keywords and ranks the returned listings the same way the stored pool
// is ranked. Provider absence or failure yields an empty, warned
// outcome rather than an error.
func (e *Engine) SearchExternal(ctx context.Context, profile *types.Profile, opts Options) (*matching.Outcome, error) {
	if e.searcher == nil {
		return &matching.Outcome{
			Results:  []types.MatchResult{},
			Warnings: []string{"external job search is not configured"},
		}, nil
	}

	limit := opts.NumToSearch
	listings := e.searcher.Search(ctx, profile.SearchKeywords(), profile.LocationPreference, limit)
	if len(listings) == 0 {
		return &matching.Outcome{
			Results:  []types.MatchResult{},
			Warnings: []string{"external job search returned no listings"},
		}, nil
	}

	pool := make([]matching.Candidate, 0, len(listings))
	for i := range listings {
		l := &listings[i]
		pool = append(pool, matching.Candidate{
			ID:             l.ID,
			Title:          l.Title,
			Company:        l.Company,
			Text:           l.MatchText(),
			ProfileSkills:  profile.HardSkills,
			RequiredSkills: l.RequiredSkills,
		})
	}

	outcome, err := e.ranker.Rank(ctx, matching.Subject{
		ID:   profile.ID.String(),
		Text: profile.MatchText(),
	}, pool, rankOptions(opts))
	if err != nil {
		return nil, err
	}

	e.logger.Info("external listings ranked",
		zap.String("profile_id", profile.ID.String()),
		zap.Int("listings", len(listings)),
		zap.Int("results", len(outcome.Results)))
	return outcome, nil
}

func postingCandidate(posting *types.Posting, profile *types.Profile) matching.Candidate {
	return matching.Candidate{
		ID:             posting.ID.String(),
		Title:          posting.Title,
		Company:        posting.ClientCompany,
		Text:           posting.MatchText(),
		ProfileSkills:  profile.HardSkills,
		RequiredSkills: posting.RequiredSkills,
	}
}

func rankOptions(opts Options) matching.Options {
	return matching.Options{
		NumToSearch: opts.NumToSearch,
		NumToShow:   opts.NumToShow,
		Concurrency: opts.Concurrency,
	}
}
