package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-insight/internal/extraction"
	"github.com/jonathan/resume-insight/internal/roles"
	"github.com/jonathan/resume-insight/internal/types"
)

// AnalyzeRequest is the body for the stateless analyze endpoint. Callers
// send either plain text or a base64 document plus its file type.
type AnalyzeRequest struct {
	Text           string   `json:"text,omitempty"`
	FileBase64     string   `json:"file_base64,omitempty"`
	FileType       string   `json:"file_type,omitempty"`
	JobRole        string   `json:"job_role,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// handleAnalyze runs the deterministic analyzer over the submitted document
// and returns the report without persisting anything.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}

	text := req.Text
	if req.FileBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(req.FileBase64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "bad_request", "file_base64 is not valid base64")
			return
		}
		text, err = extraction.ExtractText(data, req.FileType)
		if err != nil {
			s.domainError(w, err)
			return
		}
	}

	requirements := types.JobRequirements{
		RequiredSkills: roles.Resolve(req.JobRole, req.RequiredSkills),
	}

	report, err := s.analyzer.Analyze(text, requirements)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
