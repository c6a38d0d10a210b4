package types

import "time"

// AIAnalysisStats aggregates stored AI analyses for the dashboard.
type AIAnalysisStats struct {
	TotalAnalyses int            `json:"total_analyses"`
	AverageScore  float64        `json:"average_score"`
	ModelUsage    map[string]int `json:"model_usage"`
	JobRoles      map[string]int `json:"job_roles"`
}

// RecentAnalysis is a single row in the dashboard's recent activity feed.
type RecentAnalysis struct {
	JobRole     string    `json:"job_role"`
	ResumeScore int       `json:"resume_score"`
	ModelUsed   string    `json:"model_used"`
	CreatedAt   time.Time `json:"created_at"`
}
