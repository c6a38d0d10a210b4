package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResumeType(t *testing.T) {
	userID := uuid.New()
	resume := Resume{
		UserID:  userID,
		JobRole: "Software Engineer",
		Content: []byte(`{"summary":"builds things"}`),
	}

	assert.Equal(t, userID, resume.UserID)
	assert.Equal(t, "Software Engineer", resume.JobRole)
	assert.JSONEq(t, `{"summary":"builds things"}`, string(resume.Content))
}

func TestAIAnalysisType(t *testing.T) {
	analysis := AIAnalysis{
		ModelUsed:   "gemini-2.5-flash",
		ResumeScore: 82,
		JobRole:     "Data Scientist",
	}

	assert.Equal(t, "gemini-2.5-flash", analysis.ModelUsed)
	assert.Equal(t, 82, analysis.ResumeScore)
	assert.Equal(t, "Data Scientist", analysis.JobRole)
}

func TestSchemaStatementsNotEmpty(t *testing.T) {
	assert.NotEmpty(t, schema)
	for _, stmt := range schema {
		assert.NotEmpty(t, stmt)
	}
}
