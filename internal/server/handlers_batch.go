package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-insight/internal/batch"
	"github.com/jonathan/resume-insight/internal/logger"
	"github.com/jonathan/resume-insight/internal/roles"
	"github.com/jonathan/resume-insight/internal/types"
)

// BatchAnalyzeRequest is the body for a streaming batch run. Requirements
// resolve the same way as single analyze calls: explicit skills win over the
// job role catalog.
type BatchAnalyzeRequest struct {
	Documents      []batch.Document `json:"documents"`
	JobRole        string           `json:"job_role,omitempty"`
	RequiredSkills []string         `json:"required_skills,omitempty"`
	Concurrency    int              `json:"concurrency,omitempty"`
}

// maxBatchDocuments bounds a single streaming request.
const maxBatchDocuments = 100

// handleBatchStream analyzes a set of documents concurrently and streams
// each report back as a server-sent event the moment it is ready.
func (s *Server) handleBatchStream(w http.ResponseWriter, r *http.Request) {
	var req BatchAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if len(req.Documents) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "bad_request", "documents must not be empty")
		return
	}
	if len(req.Documents) > maxBatchDocuments {
		s.errorResponse(w, http.StatusBadRequest, "bad_request",
			fmt.Sprintf("documents is capped at %d per request", maxBatchDocuments))
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	requirements := types.JobRequirements{
		RequiredSkills: roles.Resolve(req.JobRole, req.RequiredSkills),
	}

	// Workers push finished reports through the channel; the handler
	// goroutine owns the response writer. Sends select on the request
	// context so a dropped client cannot strand a worker.
	results := make(chan batch.Result)
	errCh := make(chan error, 1)
	go func() {
		defer close(results)
		_, runErr := batch.Analyze(r.Context(), s.analyzer, req.Documents, requirements, &batch.Options{
			Concurrency: req.Concurrency,
			OnResult: func(res batch.Result) {
				select {
				case results <- res:
				case <-r.Context().Done():
				}
			},
		})
		errCh <- runErr
	}()

	count := 0
	for res := range results {
		if err := sse.WriteEvent("report", res); err != nil {
			logger.Warn().Err(err).Msg("batch stream client went away")
			return
		}
		count++
	}

	if runErr := <-errCh; runErr != nil {
		sse.WriteError(runErr.Error())
		return
	}
	sse.WriteComplete(count)
}
