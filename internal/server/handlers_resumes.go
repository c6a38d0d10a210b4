package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-insight/internal/db"
	"github.com/jonathan/resume-insight/internal/roles"
	"github.com/jonathan/resume-insight/internal/server/middleware"
	"github.com/jonathan/resume-insight/internal/types"
)

// SaveResumeRequest is the body for creating a stored resume.
type SaveResumeRequest struct {
	JobRole string          `json:"job_role,omitempty"`
	Content json.RawMessage `json:"content"`
}

// AnalysisResponse is one persisted deterministic analysis.
type AnalysisResponse struct {
	ID       uuid.UUID       `json:"id"`
	ResumeID uuid.UUID       `json:"resume_id"`
	Report   json.RawMessage `json:"report"`
}

// handleSaveResume stores a resume document for the authenticated user.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req SaveResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if len(req.Content) == 0 || !json.Valid(req.Content) {
		s.errorResponse(w, http.StatusBadRequest, "bad_request", "content must be a JSON document")
		return
	}

	resumeID, err := s.store.SaveResume(r.Context(), userID, req.JobRole, req.Content)
	if err != nil {
		s.domainError(w, err)
		return
	}

	resume, err := s.store.GetResume(r.Context(), resumeID)
	if err != nil || resume == nil {
		s.errorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to load saved resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

// handleListResumes lists the authenticated user's resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	resumes, err := s.store.ListUserResumes(r.Context(), userID)
	if err != nil {
		s.domainError(w, err)
		return
	}
	if resumes == nil {
		resumes = []db.Resume{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes, "count": len(resumes)})
}

// handleGetResume returns one of the authenticated user's resumes.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.ownedResume(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleCreateAnalysis runs the deterministic analyzer over a stored resume
// and persists the report.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.ownedResume(w, r)
	if !ok {
		return
	}

	text, err := flattenResumeContent(resume.Content)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "unprocessable", err.Error())
		return
	}

	requirements := types.JobRequirements{RequiredSkills: roles.Resolve(resume.JobRole, nil)}
	report, err := s.analyzer.Analyze(text, requirements)
	if err != nil {
		s.domainError(w, err)
		return
	}

	reportData, err := json.Marshal(report)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to encode report")
		return
	}

	analysisID, err := s.store.SaveAnalysis(r.Context(), resume.ID, reportData)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, AnalysisResponse{
		ID:       analysisID,
		ResumeID: resume.ID,
		Report:   reportData,
	})
}

// handleListAnalyses lists the persisted reports for a stored resume.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.ownedResume(w, r)
	if !ok {
		return
	}

	rows, err := s.store.ListResumeAnalyses(r.Context(), resume.ID)
	if err != nil {
		s.domainError(w, err)
		return
	}

	analyses := make([]AnalysisResponse, 0, len(rows))
	for _, row := range rows {
		analyses = append(analyses, AnalysisResponse{
			ID:       row.ID,
			ResumeID: row.ResumeID,
			Report:   row.AnalysisData,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": analyses, "count": len(analyses)})
}

// ownedResume loads the {id} resume and checks it belongs to the
// authenticated user. Resumes of other users read as not found rather than
// forbidden, so IDs cannot be probed.
func (s *Server) ownedResume(w http.ResponseWriter, r *http.Request) (*db.Resume, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return nil, false
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "bad_request", "Invalid resume ID")
		return nil, false
	}

	resume, err := s.store.GetResume(r.Context(), resumeID)
	if err != nil {
		s.domainError(w, err)
		return nil, false
	}
	if resume == nil || resume.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "not_found", "Resume not found")
		return nil, false
	}
	return resume, true
}

// resumeDocument is the lenient shape of stored resume content: either a
// raw text payload or a full builder form.
type resumeDocument struct {
	Text string `json:"text"`
	types.ResumeForm
}

// flattenResumeContent turns stored resume content into the plain text the
// analyzer expects. A "text" field wins; otherwise the builder form is
// rendered section by section.
func flattenResumeContent(content []byte) (string, error) {
	var doc resumeDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("failed to decode resume content: %w", err)
	}
	if strings.TrimSpace(doc.Text) != "" {
		return doc.Text, nil
	}
	return flattenForm(doc.ResumeForm), nil
}

func flattenForm(form types.ResumeForm) string {
	var lines []string

	p := form.PersonalDetails
	if p.FullName != "" {
		lines = append(lines, p.FullName)
	}
	if contact := nonEmptyJoin(" | ", p.Email, p.Phone, p.Location, p.LinkedIn); contact != "" {
		lines = append(lines, contact)
	}

	if form.Summary != "" {
		lines = append(lines, "", "Summary", form.Summary)
	}

	if len(form.Experience) > 0 {
		lines = append(lines, "", "Experience")
		for _, e := range form.Experience {
			heading := nonEmptyJoin(" - ", e.Company, e.Position)
			if dates := nonEmptyJoin(" to ", e.StartDate, e.EndDate); dates != "" {
				heading = nonEmptyJoin(", ", heading, dates)
			}
			if heading != "" {
				lines = append(lines, heading)
			}
			if e.Description != "" {
				lines = append(lines, e.Description)
			}
		}
	}

	if len(form.Education) > 0 {
		lines = append(lines, "", "Education")
		for _, e := range form.Education {
			entry := nonEmptyJoin(", ", e.School, e.Degree, e.Field, e.GraduationDate)
			if entry != "" {
				lines = append(lines, entry)
			}
		}
	}

	if len(form.Projects) > 0 {
		lines = append(lines, "", "Projects")
		for _, pr := range form.Projects {
			entry := nonEmptyJoin(" - ", pr.Name, pr.Technologies)
			if entry != "" {
				lines = append(lines, entry)
			}
			if pr.Description != "" {
				lines = append(lines, pr.Description)
			}
		}
	}

	var skills []string
	skills = append(skills, form.Skills.Technical...)
	skills = append(skills, form.Skills.Soft...)
	skills = append(skills, form.Skills.Languages...)
	skills = append(skills, form.Skills.Tools...)
	if len(skills) > 0 {
		lines = append(lines, "", "Skills", strings.Join(skills, ", "))
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func nonEmptyJoin(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
