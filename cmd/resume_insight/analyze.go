package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/analyzer"
	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/extraction"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/roles"
	"github.com/jonathan/resume-insight/internal/types"
)

var (
	analyzeRole    string
	analyzeSkills  []string
	analyzeURL     string
	analyzeBrowser bool
	analyzeJSON    bool
	analyzeAI      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a resume and print its scored report",
	Long:  "Analyze a resume from a PDF, DOCX, or plain text file (or stdin) and print section, format, and ATS scores plus keyword coverage against a target role. With --ai, a Gemini assessment is appended.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Job role to match skills against (built-in catalog)")
	analyzeCmd.Flags().StringSliceVarP(&analyzeSkills, "skills", "s", nil, "Required skills (comma-separated, overrides --role)")
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "Job posting URL to harvest required skills from")
	analyzeCmd.Flags().BoolVar(&analyzeBrowser, "browser", false, "Render the posting in a headless browser when static HTML is too thin")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeAI, "ai", false, "Request a Gemini assessment alongside the local report (needs GEMINI_API_KEY)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	if analyzeURL != "" && analyzeRole != "" {
		return fmt.Errorf("--url and --role are mutually exclusive; provide only one")
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	requirements, err := resolveRequirements(ctx, analyzeRole, analyzeSkills, analyzeURL, analyzeBrowser)
	if err != nil {
		return err
	}

	report, err := analyzer.New().Analyze(text, requirements)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	var verdict *types.AIAnalysis
	if analyzeAI {
		verdict, err = requestAIAnalysis(ctx, text, analyzeRole)
		if err != nil {
			return err
		}
	}

	if analyzeJSON {
		if verdict != nil {
			return printJSON(os.Stdout, struct {
				Report     *types.Report     `json:"report"`
				AIAnalysis *types.AIAnalysis `json:"ai_analysis"`
			}{report, verdict})
		}
		return printJSON(os.Stdout, report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReport(report)
	printer.PrintFormatIssues(report.FormatDetail)
	printer.PrintAIAnalysis(verdict)
	return nil
}

// requestAIAnalysis sends the resume text to the configured Gemini model and
// returns its verdict.
func requestAIAnalysis(ctx context.Context, text, jobRole string) (*types.AIAnalysis, error) {
	cfg, err := config.NewAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.RequireGemini(); err != nil {
		return nil, err
	}

	client, err := llm.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	return client.AnalyzeResume(ctx, text, jobRole)
}

// readInput resolves the resume text: from a file when a path is given,
// otherwise from stdin.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return readDocument(args[0])
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return extraction.NormalizeText(string(data)), nil
}

// readDocument loads a resume file and extracts its plain text. PDF and
// DOCX files go through the binary extractors; anything else is treated
// as plain text.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "pdf", "docx":
		return extraction.ExtractText(data, ext)
	default:
		return extraction.NormalizeText(string(data)), nil
	}
}

// resolveRequirements builds the skill list a resume is matched against.
// A job posting URL is harvested into skills first; explicit --skills are
// merged on top. Without a URL the role catalog and explicit skills apply;
// a role the catalog does not know is rejected unless skills are given.
func resolveRequirements(ctx context.Context, role string, skills []string, urlStr string, useBrowser bool) (types.JobRequirements, error) {
	if urlStr == "" {
		if role != "" && len(skills) == 0 {
			if _, ok := roles.Lookup(role); !ok {
				return types.JobRequirements{}, fmt.Errorf("unknown role %q; built-in roles: %s", role, strings.Join(roles.Roles(), ", "))
			}
		}
		return types.JobRequirements{RequiredSkills: roles.Resolve(role, skills)}, nil
	}

	harvested, _, err := ingestion.IngestRole(ctx, urlStr, useBrowser)
	if err != nil {
		return types.JobRequirements{}, fmt.Errorf("failed to ingest job posting: %w", err)
	}
	return types.JobRequirements{
		RequiredSkills: roles.Merge(harvested.RequiredSkills, skills),
	}, nil
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
