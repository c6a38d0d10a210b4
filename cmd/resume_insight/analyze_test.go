package main

import (
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/extraction"
)

func TestReadDocument_PlainText(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "Jane Doe\r\nSoftware Engineer\r\n")

	text, err := readDocument(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.NotContains(t, text, "\r", "line endings should be normalized")
}

func TestReadDocument_UnknownExtensionTreatedAsText(t *testing.T) {
	path := writeTempFile(t, "resume.md", "# Jane Doe\nEngineer with Go experience")

	text, err := readDocument(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, err := readDocument("/nonexistent/resume.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestReadDocument_CorruptPDF(t *testing.T) {
	path := writeTempFile(t, "resume.pdf", "this is not a pdf")

	_, err := readDocument(path)
	require.Error(t, err)

	var extractionErr *extraction.ExtractionError
	assert.True(t, errors.As(err, &extractionErr), "expected ExtractionError, got %T", err)
}

func TestResolveRequirements_ExplicitSkillsWin(t *testing.T) {
	req, err := resolveRequirements(context.Background(), "devops engineer", []string{"golang", "Python"}, "", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Python"}, req.RequiredSkills)
}

func TestResolveRequirements_RoleFromCatalog(t *testing.T) {
	req, err := resolveRequirements(context.Background(), "DevOps Engineer", nil, "", false)
	require.NoError(t, err)
	assert.Contains(t, req.RequiredSkills, "Docker")
	assert.Contains(t, req.RequiredSkills, "Kubernetes")
	assert.Contains(t, req.RequiredSkills, "CI/CD")
}

func TestResolveRequirements_UnknownRole(t *testing.T) {
	_, err := resolveRequirements(context.Background(), "astronaut", nil, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown role "astronaut"`)
	assert.Contains(t, err.Error(), "devops engineer", "error should list the built-in roles")
}

func TestResolveRequirements_UnknownRoleWithExplicitSkills(t *testing.T) {
	req, err := resolveRequirements(context.Background(), "astronaut", []string{"Python"}, "", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python"}, req.RequiredSkills)
}

func TestResolveRequirements_InvalidURL(t *testing.T) {
	_, err := resolveRequirements(context.Background(), "", nil, "not-a-url", false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ingest job posting")
}

func TestRequestAIAnalysis_MissingKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := requestAIAnalysis(context.Background(), "some resume text", "backend developer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestAnalyzeCommand_MutuallyExclusiveFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	path := writeTempFile(t, "resume.txt", "Jane Doe\nPython developer")

	cmd := exec.Command(binaryPath, "analyze", path, "--url", "https://example.com/job", "--role", "backend developer")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestAnalyzeCommand_JSONOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	path := writeTempFile(t, "resume.txt", "Jane Doe\njane@example.com\n\nExperience\nBuilt services in Python.")

	cmd := exec.Command(binaryPath, "analyze", path, "--json", "--skills", "Python")
	stdout, err := cmd.Output()
	require.NoError(t, err, "analyze should succeed: %s", string(stdout))

	var report map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(stdout, &report))
	assert.Contains(t, report, "ats_score")
	assert.Contains(t, report, "keyword_match")
	assert.Contains(t, string(report["keyword_match"]), `"score": 100`)
}

func TestAnalyzeCommand_EmptyInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	path := writeTempFile(t, "resume.txt", "   \n\t\n")

	cmd := exec.Command(binaryPath, "analyze", path)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no text content")
}
