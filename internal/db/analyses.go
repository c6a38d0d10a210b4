package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-insight/internal/types"
)

// SaveAnalysis stores a deterministic analysis report for a resume and
// returns its ID. analysisData must be valid JSON.
func (db *DB) SaveAnalysis(ctx context.Context, resumeID uuid.UUID, analysisData []byte) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (resume_id, analysis_data)
		 VALUES ($1, $2)
		 RETURNING id`,
		resumeID, analysisData,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves an analysis by ID. Returns nil, nil when no analysis
// exists.
func (db *DB) GetAnalysis(ctx context.Context, analysisID uuid.UUID) (*Analysis, error) {
	var analysis Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, analysis_data, created_at
		 FROM analyses WHERE id = $1`,
		analysisID,
	).Scan(&analysis.ID, &analysis.ResumeID, &analysis.AnalysisData, &analysis.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &analysis, nil
}

// ListResumeAnalyses retrieves all analyses for a resume, most recent first.
func (db *DB) ListResumeAnalyses(ctx context.Context, resumeID uuid.UUID) ([]Analysis, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, analysis_data, created_at
		 FROM analyses WHERE resume_id = $1 ORDER BY created_at DESC`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var analysis Analysis
		if err := rows.Scan(&analysis.ID, &analysis.ResumeID, &analysis.AnalysisData, &analysis.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}

// SaveAIAnalysis stores the aggregate fields of a model-backed analysis and
// returns its ID.
func (db *DB) SaveAIAnalysis(ctx context.Context, resumeID uuid.UUID, modelUsed string, resumeScore int, jobRole string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO ai_analyses (resume_id, model_used, resume_score, job_role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		resumeID, modelUsed, resumeScore, jobRole,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save ai analysis: %w", err)
	}
	return id, nil
}

// GetAIAnalysisStats aggregates stored AI analyses: the total count, the
// average resume score, and per-model and per-role usage counts.
func (db *DB) GetAIAnalysisStats(ctx context.Context) (*types.AIAnalysisStats, error) {
	stats := &types.AIAnalysisStats{
		ModelUsage: make(map[string]int),
		JobRoles:   make(map[string]int),
	}

	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(resume_score), 0) FROM ai_analyses`,
	).Scan(&stats.TotalAnalyses, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ai analyses: %w", err)
	}

	if err := db.scanCounts(ctx,
		`SELECT model_used, COUNT(*) FROM ai_analyses GROUP BY model_used`,
		stats.ModelUsage,
	); err != nil {
		return nil, err
	}

	if err := db.scanCounts(ctx,
		`SELECT job_role, COUNT(*) FROM ai_analyses GROUP BY job_role`,
		stats.JobRoles,
	); err != nil {
		return nil, err
	}

	return stats, nil
}

// scanCounts runs a two-column (label, count) query into dest.
func (db *DB) scanCounts(ctx context.Context, query string, dest map[string]int) error {
	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return fmt.Errorf("failed to scan count: %w", err)
		}
		dest[label] = count
	}
	return nil
}

// ListRecentAIAnalyses retrieves the most recent AI analyses for the
// dashboard's activity feed.
func (db *DB) ListRecentAIAnalyses(ctx context.Context, limit int) ([]types.RecentAnalysis, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := db.pool.Query(ctx,
		`SELECT job_role, resume_score, model_used, created_at
		 FROM ai_analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent ai analyses: %w", err)
	}
	defer rows.Close()

	var recent []types.RecentAnalysis
	for rows.Next() {
		var r types.RecentAnalysis
		if err := rows.Scan(&r.JobRole, &r.ResumeScore, &r.ModelUsed, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent analysis: %w", err)
		}
		recent = append(recent, r)
	}
	return recent, nil
}
