package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Resume represents a stored resume. Content holds the structured resume
// document as JSON and round-trips untouched through API responses.
type Resume struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	JobRole   string          `json:"job_role"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Analysis represents a stored deterministic analysis report. AnalysisData
// holds the full report as JSON.
type Analysis struct {
	ID           uuid.UUID       `json:"id"`
	ResumeID     uuid.UUID       `json:"resume_id"`
	AnalysisData json.RawMessage `json:"analysis_data"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AIAnalysis represents a stored model-backed analysis. Only the fields the
// dashboard aggregates are persisted as columns.
type AIAnalysis struct {
	ID          uuid.UUID `json:"id"`
	ResumeID    uuid.UUID `json:"resume_id"`
	ModelUsed   string    `json:"model_used"`
	ResumeScore int       `json:"resume_score"`
	JobRole     string    `json:"job_role"`
	CreatedAt   time.Time `json:"created_at"`
}
