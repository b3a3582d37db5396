// Package engine orchestrates the matching core: it wires the stores,
// the external search provider and the ranker into the operations the
// presentation layer calls. The engine is stateless between calls; all
// session context arrives as parameters.
package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/types"
)

// ProfileStore is the persistence capability for job-seeker profiles.
type ProfileStore interface {
	SaveProfile(ctx context.Context, profile *types.Profile) (uuid.UUID, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*types.Profile, error)
	GetLatestProfile(ctx context.Context) (*types.Profile, error)
	ListProfiles(ctx context.Context) ([]types.Profile, error)
}

// PostingStore is the persistence capability for recruiter postings.
type PostingStore interface {
	SavePosting(ctx context.Context, posting *types.Posting) (uuid.UUID, error)
	GetPostingByID(ctx context.Context, id uuid.UUID) (*types.Posting, error)
	ListPostings(ctx context.Context) ([]types.Posting, error)
}

// Searcher is the external job-search capability. Implementations are
// best-effort and return an empty slice on any failure.
type Searcher interface {
	Search(ctx context.Context, keywords, location string, limit int) []types.Listing
}

// Options controls one matching operation.
type Options struct {
	NumToSearch int
	NumToShow   int
	MinScore    float64
	Concurrency int
}

// Engine exposes the matching operations.
type Engine struct {
	profiles ProfileStore
	postings PostingStore
	searcher Searcher
	ranker   *matching.Ranker
	logger   *zap.Logger
}

// New creates an Engine. searcher may be nil when no external provider
// is configured; SearchExternal then returns empty results with a
// warning. A nil logger disables engine logs.
func New(profiles ProfileStore, postings PostingStore, searcher Searcher, ranker *matching.Ranker, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		profiles: profiles,
		postings: postings,
		searcher: searcher,
		ranker:   ranker,
		logger:   logger,
	}
}

// CreateProfile validates and persists a profile, returning its
// generated identifier.
func (e *Engine) CreateProfile(ctx context.Context, profile *types.Profile) (uuid.UUID, error) {
	if err := profile.Validate(); err != nil {
		return uuid.Nil, err
	}
	id, err := e.profiles.SaveProfile(ctx, profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create profile: %w", err)
	}
	e.logger.Info("profile created", zap.String("profile_id", id.String()))
	return id, nil
}

// PublishPosting validates and persists a posting, returning its
// generated identifier.
func (e *Engine) PublishPosting(ctx context.Context, posting *types.Posting) (uuid.UUID, error) {
	if err := posting.Validate(); err != nil {
		return uuid.Nil, err
	}
	id, err := e.postings.SavePosting(ctx, posting)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to publish posting: %w", err)
	}
	e.logger.Info("posting published",
		zap.String("posting_id", id.String()), zap.String("title", posting.Title))
	return id, nil
}

// GetProfile retrieves a stored profile by its identifier.
func (e *Engine) GetProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	return e.profiles.GetProfileByID(ctx, id)
}

// ListProfiles retrieves all stored profiles.
func (e *Engine) ListProfiles(ctx context.Context) ([]types.Profile, error) {
	return e.profiles.ListProfiles(ctx)
}

// GetPosting retrieves a stored posting by its identifier.
func (e *Engine) GetPosting(ctx context.Context, id uuid.UUID) (*types.Posting, error) {
	return e.postings.GetPostingByID(ctx, id)
}

// ListPostings retrieves all stored postings, expired included.
func (e *Engine) ListPostings(ctx context.Context) ([]types.Posting, error) {
	return e.postings.ListPostings(ctx)
}

// GetProfileOrLatest fetches the profile by id, or the latest profile
// when id is uuid.Nil. The "current profile" of the original session
// state arrives here as an explicit parameter; the engine keeps no
// ambient session.
func (e *Engine) GetProfileOrLatest(ctx context.Context, profileID uuid.UUID) (*types.Profile, error) {
	if profileID == uuid.Nil {
		return e.profiles.GetLatestProfile(ctx)
	}
	return e.profiles.GetProfileByID(ctx, profileID)
}
