// Package main provides the resume_insight CLI: resume analysis, text
// extraction, document building, and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "resume_insight",
	Short: "Resume analysis and scoring toolkit",
	Long:  "Resume Insight segments resume text into labeled sections, scores ATS compatibility, formatting, and keyword coverage against a target role, and serves the same analysis over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	initLogging("console")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initLogging configures the global logger from LOG_LEVEL and LOG_FORMAT.
// defaultFormat applies when LOG_FORMAT is unset so interactive commands
// stay readable while serve defaults to JSON.
func initLogging(defaultFormat string) {
	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = defaultFormat
	}
	logger.Init(logger.Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: format,
	})
}
