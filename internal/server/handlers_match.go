package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/job-matcher/internal/engine"
	"github.com/jonathan/job-matcher/internal/matching"
)

// RecommendationsRequest selects the profile and pool sizes for a
// recommendation pass. ProfileID may be empty to use the latest stored
// profile. IncludeExternal additionally runs the external-provider
// path; its results are reported separately and never replace the
// stored-pool ranking.
type RecommendationsRequest struct {
	ProfileID       string `json:"profile_id,omitempty"`
	NumToSearch     int    `json:"num_to_search,omitempty"`
	NumToShow       int    `json:"num_to_show,omitempty"`
	IncludeExternal bool   `json:"include_external,omitempty"`
}

// RecommendationsResponse carries both ranking paths.
type RecommendationsResponse struct {
	Stored   *matching.Outcome `json:"stored"`
	External *matching.Outcome `json:"external,omitempty"`
}

// handleRecommendations ranks stored postings for a profile and
// optionally the external provider's listings.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	profileID, ok := s.parseOptionalID(w, req.ProfileID)
	if !ok {
		return
	}
	opts := s.rankOptions(req.NumToSearch, req.NumToShow, 0)

	stored, err := s.engine.RecommendPostings(r.Context(), profileID, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := RecommendationsResponse{Stored: stored}

	if req.IncludeExternal {
		profile, err := s.engine.GetProfileOrLatest(r.Context(), profileID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		external, err := s.engine.SearchExternal(r.Context(), profile, opts)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.External = external
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// CandidateSearchRequest selects the posting and filters for a
// candidate-matching pass.
type CandidateSearchRequest struct {
	PostingID   string  `json:"posting_id"`
	MinScore    float64 `json:"min_score,omitempty"`
	NumToSearch int     `json:"num_to_search,omitempty"`
	NumToShow   int     `json:"num_to_show,omitempty"`
}

// handleCandidateSearch ranks stored profiles against a posting.
func (s *Server) handleCandidateSearch(w http.ResponseWriter, r *http.Request) {
	var req CandidateSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	postingID, err := uuid.Parse(req.PostingID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid posting_id")
		return
	}

	opts := s.rankOptions(req.NumToSearch, req.NumToShow, req.MinScore)
	outcome, err := s.engine.MatchCandidates(r.Context(), postingID, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, outcome)
}

// SimpleMatchRequest selects one profile-posting pair. ProfileID may be
// empty to use the latest stored profile.
type SimpleMatchRequest struct {
	ProfileID string `json:"profile_id,omitempty"`
	PostingID string `json:"posting_id"`
}

// handleSimpleMatch scores a single pair and returns the result with
// its explanation bundle.
func (s *Server) handleSimpleMatch(w http.ResponseWriter, r *http.Request) {
	var req SimpleMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	profileID, ok := s.parseOptionalID(w, req.ProfileID)
	if !ok {
		return
	}
	postingID, err := uuid.Parse(req.PostingID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid posting_id")
		return
	}

	result, err := s.engine.SimpleMatch(r.Context(), profileID, postingID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// parseOptionalID parses an optional UUID string; empty means uuid.Nil
// (latest profile). Writes a 400 and returns false on a malformed value.
func (s *Server) parseOptionalID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	if raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile_id")
		return uuid.Nil, false
	}
	return id, true
}

// rankOptions merges request values over the server defaults.
func (s *Server) rankOptions(numToSearch, numToShow int, minScore float64) engine.Options {
	opts := s.defaults
	if numToSearch > 0 {
		opts.NumToSearch = numToSearch
	}
	if numToShow > 0 {
		opts.NumToShow = numToShow
	}
	opts.MinScore = minScore
	return opts
}
