package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-insight/internal/types"
)

// AIAnalyzeRequest is the optional body for an AI analysis run. An empty
// body analyzes against the resume's stored job role.
type AIAnalyzeRequest struct {
	JobRole string `json:"job_role,omitempty"`
}

// AIAnalysisResponse pairs the persisted row ID with the model's verdict.
type AIAnalysisResponse struct {
	ID       uuid.UUID         `json:"id"`
	ResumeID uuid.UUID         `json:"resume_id"`
	JobRole  string            `json:"job_role,omitempty"`
	Analysis *types.AIAnalysis `json:"analysis"`
}

// handleCreateAIAnalysis sends a stored resume to the language model and
// persists the scored verdict.
func (s *Server) handleCreateAIAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.llmClient == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "ai_unavailable", "AI analysis is not configured")
		return
	}

	resume, ok := s.ownedResume(w, r)
	if !ok {
		return
	}

	var req AIAnalyzeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
			return
		}
	}

	jobRole := req.JobRole
	if jobRole == "" {
		jobRole = resume.JobRole
	}

	text, err := flattenResumeContent(resume.Content)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "unprocessable", err.Error())
		return
	}

	analysis, err := s.llmClient.AnalyzeResume(r.Context(), text, jobRole)
	if err != nil {
		s.domainError(w, err)
		return
	}

	modelUsed := analysis.ModelUsed
	if modelUsed == "" {
		modelUsed = s.llmClient.Model()
	}

	analysisID, err := s.store.SaveAIAnalysis(r.Context(), resume.ID, modelUsed, analysis.ResumeScore, jobRole)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, AIAnalysisResponse{
		ID:       analysisID,
		ResumeID: resume.ID,
		JobRole:  jobRole,
		Analysis: analysis,
	})
}
