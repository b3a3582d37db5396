package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/types"
)

// HTTPStatus maps the error taxonomy to response codes: validation
// failures are 400, absent identifiers 404, everything else 500.
// Provider degradation never reaches here; it surfaces as warnings on a
// 200 response envelope.
func HTTPStatus(err error) int {
	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders an error using the taxonomy mapping.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
