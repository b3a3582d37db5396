package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-matcher/internal/analysis"
	"github.com/jonathan/job-matcher/internal/types"
)

// CreateProfileResponse returns the generated profile identifier.
type CreateProfileResponse struct {
	ID string `json:"id"`
}

// handleCreateProfile validates and stores a profile submitted as JSON.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile types.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := s.engine.CreateProfile(r.Context(), &profile)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, CreateProfileResponse{ID: id.String()})
}

// handleCreateProfileFromAnalysis accepts the extractor's untyped
// analysis bundle, decodes it with documented defaults, and stores the
// resulting profile.
func (s *Server) handleCreateProfileFromAnalysis(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	bundle, err := analysis.Decode(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile := bundle.ToProfile(time.Now())
	id, err := s.engine.CreateProfile(r.Context(), profile)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, CreateProfileResponse{ID: id.String()})
}

// handleGetProfile retrieves a profile by its ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile ID")
		return
	}

	profile, err := s.engine.GetProfile(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// ListProfilesResponse wraps the stored profile list.
type ListProfilesResponse struct {
	Profiles []types.Profile `json:"profiles"`
	Count    int             `json:"count"`
}

// handleListProfiles lists all stored profiles.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.engine.ListProfiles(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ListProfilesResponse{Profiles: profiles, Count: len(profiles)})
}
