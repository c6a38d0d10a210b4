package server

import (
	"net/http"

	"github.com/jonathan/resume-insight/internal/types"
)

// recentAnalysesLimit caps the dashboard's activity feed.
const recentAnalysesLimit = 10

// handleDashboardStats returns aggregate AI analysis statistics plus the
// most recent runs.
func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetAIAnalysisStats(r.Context())
	if err != nil {
		s.domainError(w, err)
		return
	}

	recent, err := s.store.ListRecentAIAnalyses(r.Context(), recentAnalysesLimit)
	if err != nil {
		s.domainError(w, err)
		return
	}
	if recent == nil {
		recent = []types.RecentAnalysis{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"stats":  stats,
		"recent": recent,
	})
}
