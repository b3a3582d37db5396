package matching

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// Subject is the fixed side of a ranking pass: the profile when ranking
// postings, or the posting when ranking seekers.
type Subject struct {
	ID   string
	Text string
}

// Candidate is one member of the pool being ranked. It carries both
// sides of the skill comparison so the ranker stays direction-agnostic:
// ProfileSkills are the seeker-side skills, RequiredSkills the
// posting-side requirements.
type Candidate struct {
	ID             string
	Title          string
	Company        string
	Text           string
	ProfileSkills  []string
	RequiredSkills []string
}

// Options controls a ranking pass. NumToSearch bounds how much of the
// pool is evaluated; NumToShow truncates the ranked output. The two are
// independent: the full evaluated pool is ranked before truncation.
type Options struct {
	NumToSearch int
	NumToShow   int
	Weights     Weights
	Concurrency int
}

// Outcome is the result envelope of a ranking pass. Partial results
// with explicit skip and fallback counts are preferred over
// all-or-nothing failure.
type Outcome struct {
	Results   []types.MatchResult `json:"results"`
	Evaluated int                 `json:"evaluated"`
	Skipped   int                 `json:"skipped"`
	Fallbacks int                 `json:"fallbacks"`
	Warnings  []string            `json:"warnings,omitempty"`
}

// Ranker scores candidate pools against a subject using the embedding
// provider for the semantic component. Rankers hold no per-call state
// and are safe for concurrent use.
type Ranker struct {
	provider embedding.Provider
	logger   *zap.Logger
}

// NewRanker creates a Ranker. A nil logger disables ranking logs.
func NewRanker(provider embedding.Provider, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{provider: provider, logger: logger}
}

// Rank evaluates the pool against the subject and returns candidates
// ordered by combined score descending, tie-broken by skill percentage
// descending then candidate ID ascending. A candidate whose semantic
// scoring fails gets the neutral fallback score instead of failing the
// pass; a candidate failing consistency checks is skipped and counted.
// An empty pool yields an empty result list, not an error.
func (r *Ranker) Rank(ctx context.Context, subject Subject, pool []Candidate, opts Options) (*Outcome, error) {
	weights := opts.Weights
	if weights.Semantic == 0 && weights.Skill == 0 {
		weights = DefaultWeights
	}

	if opts.NumToSearch > 0 && len(pool) > opts.NumToSearch {
		pool = pool[:opts.NumToSearch]
	}

	outcome := &Outcome{Results: make([]types.MatchResult, 0, len(pool))}
	if len(pool) == 0 {
		return outcome, nil
	}

	// Embed the subject once; if the provider is down for the subject
	// itself, the whole pass degrades to neutral semantic scores.
	subjectVec, err := r.provider.Embed(ctx, subject.Text)
	if err != nil {
		subjectVec = nil
		outcome.Warnings = append(outcome.Warnings,
			"semantic scoring degraded: subject embedding unavailable, using neutral scores")
		r.logger.Warn("subject embedding failed, degrading to neutral semantic scores",
			zap.String("subject_id", subject.ID), zap.Error(err))
	}

	type slot struct {
		result  *types.MatchResult
		skipped bool
		warning string
	}
	slots := make([]slot, len(pool))

	g, gCtx := errgroup.WithContext(ctx)
	if opts.Concurrency > 1 {
		g.SetLimit(opts.Concurrency)
	} else {
		g.SetLimit(1)
	}

	for i := range pool {
		g.Go(func() error {
			c := &pool[i]

			// A candidate demanding skills but carrying no title is
			// malformed input from a store or provider; skip it rather
			// than crash the batch.
			if len(c.RequiredSkills) > 0 && c.Title == "" {
				slots[i] = slot{
					skipped: true,
					warning: fmt.Sprintf("skipped candidate %s: required skills present but no title", c.ID),
				}
				r.logger.Warn("skipping inconsistent candidate", zap.String("candidate_id", c.ID))
				return nil
			}

			overlap := skills.Match(c.ProfileSkills, c.RequiredSkills)

			semantic := NeutralSemanticScore
			fallback := true
			if subjectVec != nil {
				vec, embedErr := r.provider.Embed(gCtx, c.Text)
				if embedErr != nil {
					slots[i].warning = fmt.Sprintf("candidate %s: semantic score unavailable, using neutral fallback", c.ID)
					r.logger.Warn("candidate embedding failed, using neutral fallback",
						zap.String("candidate_id", c.ID), zap.Error(embedErr))
				} else {
					semantic = SemanticScore(embedding.Cosine(subjectVec, vec))
					fallback = false
				}
			}

			slots[i].result = &types.MatchResult{
				SubjectID:            subject.ID,
				CandidateID:          c.ID,
				CandidateTitle:       c.Title,
				CandidateCompany:     c.Company,
				SemanticScore:        semantic,
				SkillMatchPercentage: overlap.Percentage,
				MatchedSkillsCount:   overlap.MatchedCount,
				MatchedSkills:        overlap.Matched,
				MissingSkills:        overlap.Missing,
				CombinedScore:        weights.Combine(semantic, overlap.Percentage),
				SemanticFallback:     fallback,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking pass failed: %w", err)
	}

	for i := range slots {
		if slots[i].warning != "" {
			outcome.Warnings = append(outcome.Warnings, slots[i].warning)
		}
		if slots[i].skipped {
			outcome.Skipped++
			continue
		}
		if slots[i].result == nil {
			continue
		}
		if slots[i].result.SemanticFallback && subjectVec != nil {
			outcome.Fallbacks++
		}
		outcome.Evaluated++
		outcome.Results = append(outcome.Results, *slots[i].result)
	}

	// Ordering is determined solely by this sort, never by completion
	// order of the concurrent evaluations.
	sort.SliceStable(outcome.Results, func(a, b int) bool {
		ra, rb := outcome.Results[a], outcome.Results[b]
		if ra.CombinedScore != rb.CombinedScore {
			return ra.CombinedScore > rb.CombinedScore
		}
		if ra.SkillMatchPercentage != rb.SkillMatchPercentage {
			return ra.SkillMatchPercentage > rb.SkillMatchPercentage
		}
		return ra.CandidateID < rb.CandidateID
	})

	if opts.NumToShow > 0 && len(outcome.Results) > opts.NumToShow {
		outcome.Results = outcome.Results[:opts.NumToShow]
	}

	return outcome, nil
}
