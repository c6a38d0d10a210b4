// Package llm wraps the Gemini API for model-backed resume analysis.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-insight/internal/logger"
	"github.com/jonathan/resume-insight/internal/schemas"
	"github.com/jonathan/resume-insight/internal/types"
	schemadefs "github.com/jonathan/resume-insight/schemas"
)

// Client calls Gemini to produce resume analyses.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed client. model selects the generative
// model used for every request.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Close releases resources held by the client
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// AnalyzeResume asks the model to score a resume against a target role. The
// response is validated against the bundled analysis schema before being
// returned; anything malformed surfaces as an LLMError.
func (c *Client) AnalyzeResume(ctx context.Context, resumeText, jobRole string) (*types.AIAnalysis, error) {
	logger.Ctx(ctx).Debug().
		Str("model", c.model).
		Str("job_role", jobRole).
		Int("resume_chars", len(resumeText)).
		Msg("requesting resume analysis")

	prompt := BuildAnalysisPrompt(resumeText, jobRole)

	raw, err := c.generateJSON(ctx, prompt)
	if err != nil {
		return nil, &LLMError{Message: "analysis request failed", Cause: err}
	}

	analysis, err := parseAnalysisPayload(raw)
	if err != nil {
		return nil, err
	}

	analysis.ModelUsed = c.model
	return analysis, nil
}

// generateJSON runs a prompt in JSON mode and returns the cleaned response
// text.
func (c *Client) generateJSON(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	return CleanJSONBlock(text), nil
}

// parseAnalysisPayload turns raw model output into a validated AIAnalysis.
func parseAnalysisPayload(raw string) (*types.AIAnalysis, error) {
	payload := extractJSONObject(raw)
	if payload == "" {
		return nil, &LLMError{Message: "response contains no JSON object"}
	}

	if err := schemas.ValidateJSONString(schemadefs.AIAnalysis(), payload); err != nil {
		return nil, &LLMError{Message: "response failed schema validation", Cause: err}
	}

	var analysis types.AIAnalysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		return nil, &LLMError{Message: "failed to decode analysis payload", Cause: err}
	}

	analysis.FullResponse = payload
	return &analysis, nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
