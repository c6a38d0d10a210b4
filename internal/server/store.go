package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-insight/internal/db"
	"github.com/jonathan/resume-insight/internal/types"
)

// DBClient is the storage surface the server depends on. *db.DB satisfies
// it; handler tests substitute in-memory fakes.
type DBClient interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)

	SaveResume(ctx context.Context, userID uuid.UUID, jobRole string, content []byte) (uuid.UUID, error)
	GetResume(ctx context.Context, resumeID uuid.UUID) (*db.Resume, error)
	ListUserResumes(ctx context.Context, userID uuid.UUID) ([]db.Resume, error)

	SaveAnalysis(ctx context.Context, resumeID uuid.UUID, analysisData []byte) (uuid.UUID, error)
	ListResumeAnalyses(ctx context.Context, resumeID uuid.UUID) ([]db.Analysis, error)
	SaveAIAnalysis(ctx context.Context, resumeID uuid.UUID, modelUsed string, resumeScore int, jobRole string) (uuid.UUID, error)

	GetAIAnalysisStats(ctx context.Context) (*types.AIAnalysisStats, error)
	ListRecentAIAnalyses(ctx context.Context, limit int) ([]types.RecentAnalysis, error)
}

// AIClient is the slice of the Gemini client the handlers use. *llm.Client
// satisfies it; handler tests substitute canned responders.
type AIClient interface {
	AnalyzeResume(ctx context.Context, resumeText, jobRole string) (*types.AIAnalysis, error)
	Model() string
	Close() error
}
