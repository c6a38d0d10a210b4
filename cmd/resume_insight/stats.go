package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/db"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/types"
)

var (
	statsLimit int
	statsJSON  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dashboard statistics for stored AI analyses",
	Long:  "Aggregate stored AI analyses into totals, average score, model and role usage, and the most recent runs. Requires DATABASE_URL.",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsLimit, "limit", 10, "Number of recent analyses to show")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := config.NewAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	stats, err := database.GetAIAnalysisStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load statistics: %w", err)
	}

	recent, err := database.ListRecentAIAnalyses(ctx, statsLimit)
	if err != nil {
		return fmt.Errorf("failed to load recent analyses: %w", err)
	}

	if statsJSON {
		return printJSON(os.Stdout, struct {
			Stats  *types.AIAnalysisStats `json:"stats"`
			Recent []types.RecentAnalysis `json:"recent"`
		}{Stats: stats, Recent: recent})
	}

	observability.NewPrinter(os.Stdout).PrintStats(stats, recent)
	return nil
}
