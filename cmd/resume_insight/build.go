package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/rendering"
	"github.com/jonathan/resume-insight/internal/schemas"
	"github.com/jonathan/resume-insight/internal/types"
	schemadefs "github.com/jonathan/resume-insight/schemas"
)

var buildOutputFile string

var buildCmd = &cobra.Command{
	Use:   "build [form.json]",
	Short: "Build a LaTeX resume from structured form data",
	Long:  "Render a ResumeForm JSON file into a complete LaTeX document ready for compilation.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutputFile, "output", "o", "", "Write the LaTeX document to a file instead of stdout")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read form file: %w", err)
	}

	var form types.ResumeForm
	if err := json.Unmarshal(data, &form); err != nil {
		return fmt.Errorf("failed to parse form JSON: %w", err)
	}

	// Schema validation catches misspelled or misplaced fields that
	// json.Unmarshal would silently drop.
	if err := schemas.ValidateJSONString(schemadefs.ResumeForm(), string(data)); err != nil {
		return fmt.Errorf("form validation failed: %w", err)
	}

	latex, err := rendering.RenderResume(form)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if buildOutputFile == "" {
		fmt.Fprint(os.Stdout, latex)
		return nil
	}

	if err := writeOutputFile(buildOutputFile, latex); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "LaTeX resume written to %s\n", buildOutputFile)
	return nil
}
