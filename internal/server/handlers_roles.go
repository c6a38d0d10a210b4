package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/jonathan/resume-insight/internal/ingestion"
)

// IngestRoleRequest is the body for harvesting skills from a job posting URL.
type IngestRoleRequest struct {
	URL        string `json:"url"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// handleIngestRole fetches a job posting and returns the requirements it
// mentions, ready to feed back into an analyze call.
func (s *Server) handleIngestRole(w http.ResponseWriter, r *http.Request) {
	var req IngestRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}

	parsed, err := url.Parse(strings.TrimSpace(req.URL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		s.errorResponse(w, http.StatusBadRequest, "bad_request", "url must be an absolute http(s) URL")
		return
	}

	requirements, metadata, err := ingestion.IngestRole(r.Context(), parsed.String(), req.UseBrowser)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"requirements": requirements,
		"metadata":     metadata,
	})
}
