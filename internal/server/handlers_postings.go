package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-matcher/internal/types"
)

// PublishPostingResponse returns the generated posting identifier.
type PublishPostingResponse struct {
	ID string `json:"id"`
}

// handlePublishPosting validates and stores a posting submitted as JSON.
func (s *Server) handlePublishPosting(w http.ResponseWriter, r *http.Request) {
	var posting types.Posting
	if err := json.NewDecoder(r.Body).Decode(&posting); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := s.engine.PublishPosting(r.Context(), &posting)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, PublishPostingResponse{ID: id.String()})
}

// handleGetPosting retrieves a posting by its ID.
func (s *Server) handleGetPosting(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid posting ID")
		return
	}

	posting, err := s.engine.GetPosting(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, posting)
}

// ListPostingsResponse wraps the stored posting list. Expired reports
// how many of the returned postings have passed their validity date.
type ListPostingsResponse struct {
	Postings []types.Posting `json:"postings"`
	Count    int             `json:"count"`
	Expired  int             `json:"expired"`
}

// handleListPostings lists all stored postings, expired included.
func (s *Server) handleListPostings(w http.ResponseWriter, r *http.Request) {
	postings, err := s.engine.ListPostings(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	now := time.Now()
	expired := 0
	for i := range postings {
		if postings[i].IsExpired(now) {
			expired++
		}
	}
	s.jsonResponse(w, http.StatusOK, ListPostingsResponse{
		Postings: postings,
		Count:    len(postings),
		Expired:  expired,
	})
}

// handlePostingStats reports pool statistics as of now.
func (s *Server) handlePostingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.engine.PostingStats(r.Context(), time.Now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}
