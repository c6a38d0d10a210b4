package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/logger"
	"github.com/jonathan/resume-insight/internal/roles"
	"github.com/jonathan/resume-insight/internal/types"
)

var (
	ingestRoleBrowser bool
	ingestRoleFile    string
	ingestRoleOut     string
)

var ingestRoleCmd = &cobra.Command{
	Use:   "ingest-role [url]",
	Short: "Harvest required skills from a job posting",
	Long:  "Fetch a job posting from a URL (or read a saved posting with --file), strip the page noise, and print the harvested skill requirements as JSON. With --out, the cleaned posting and its metadata are saved for later runs.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIngestRole,
}

func init() {
	ingestRoleCmd.Flags().BoolVar(&ingestRoleBrowser, "browser", false, "Render the posting in a headless browser when static HTML is too thin")
	ingestRoleCmd.Flags().StringVarP(&ingestRoleFile, "file", "f", "", "Path to a saved job posting text file")
	ingestRoleCmd.Flags().StringVarP(&ingestRoleOut, "out", "o", "", "Directory to save the cleaned posting and metadata to")
	rootCmd.AddCommand(ingestRoleCmd)
}

func runIngestRole(_ *cobra.Command, args []string) error {
	if ingestRoleFile == "" && len(args) == 0 {
		return fmt.Errorf("either a posting URL or --file must be provided")
	}
	if ingestRoleFile != "" && len(args) > 0 {
		return fmt.Errorf("a posting URL and --file are mutually exclusive; provide only one")
	}

	var (
		cleanedText string
		metadata    *ingestion.Metadata
		err         error
	)
	if ingestRoleFile != "" {
		cleanedText, metadata, err = ingestion.IngestFromFile(ingestRoleFile)
	} else {
		cleanedText, metadata, err = ingestion.IngestFromURL(context.Background(), args[0], ingestRoleBrowser)
	}
	if err != nil {
		return fmt.Errorf("failed to ingest job posting: %w", err)
	}

	requirements := &types.JobRequirements{RequiredSkills: roles.HarvestSkills(cleanedText)}

	if ingestRoleOut != "" {
		if err := ingestion.WriteArtifacts(ingestRoleOut, cleanedText, metadata); err != nil {
			return fmt.Errorf("failed to save posting artifacts: %w", err)
		}
		logger.Info().Str("dir", ingestRoleOut).Msg("saved posting artifacts")
	}

	logger.Info().
		Str("platform", metadata.Platform).
		Str("hash", metadata.Hash).
		Int("skills", len(requirements.RequiredSkills)).
		Msg("harvested job posting")

	return printJSON(os.Stdout, requirements)
}
