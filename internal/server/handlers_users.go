package server

import (
	"net/http"

	"github.com/jonathan/resume-insight/internal/server/middleware"
)

// handleGetCurrentUser returns the authenticated user's profile.
func (s *Server) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	user, err := s.userService.GetByID(r.Context(), userID)
	if err != nil {
		status := HTTPStatus(err)
		s.errorResponse(w, status, errorCode(status), "Failed to load user")
		return
	}

	s.jsonResponse(w, http.StatusOK, user)
}
