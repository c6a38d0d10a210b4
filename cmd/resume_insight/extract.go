package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var extractOutputFile string

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract plain text from a resume document",
	Long:  "Extract the plain text content of a PDF or DOCX resume, normalized for downstream analysis.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutputFile, "output", "o", "", "Write extracted text to a file instead of stdout")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	text, err := readDocument(args[0])
	if err != nil {
		return err
	}

	if extractOutputFile == "" {
		fmt.Fprintln(os.Stdout, text)
		return nil
	}

	if err := writeOutputFile(extractOutputFile, text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Extracted text written to %s\n", extractOutputFile)
	return nil
}

// writeOutputFile writes content to path, creating parent directories as
// needed.
func writeOutputFile(path, content string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
