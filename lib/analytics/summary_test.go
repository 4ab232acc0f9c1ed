package analytics

import (
	"testing"
	"time"

	"interview-prep-backend/lib/confidence"
	"interview-prep-backend/models"
	dbmodels "interview-prep-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := []dbmodels.PracticeSession{
		{
			BaseModel:   dbmodels.BaseModel{ID: "s1"},
			Category:    "behavioral",
			Status:      models.SessionCompleted,
			Score:       70,
			CompletedAt: base.Add(time.Hour),
		},
		{
			BaseModel:   dbmodels.BaseModel{ID: "s2"},
			Category:    "technical",
			Status:      models.SessionCompleted,
			Score:       80,
			CompletedAt: base,
		},
		{
			BaseModel: dbmodels.BaseModel{ID: "s3"},
			Category:  "technical",
			Status:    models.SessionActive,
		},
	}
	answers := []dbmodels.SessionAnswer{
		{SessionID: "s1", SelfRating: 3, AnalysisStatus: models.AnalysisDone, ConfidenceScore: 60, ConfidenceLevel: confidence.LevelModeratelyConfident},
		{SessionID: "s1", SelfRating: 4, AnalysisStatus: models.AnalysisDone, ConfidenceScore: 80, ConfidenceLevel: confidence.LevelVeryConfident},
		{SessionID: "s2", SelfRating: 5, AnalysisStatus: models.AnalysisDone, ConfidenceScore: 85, ConfidenceLevel: confidence.LevelVeryConfident},
		// not analyzed yet, counts as an answer but not towards score stats
		{SessionID: "s2", SelfRating: 4, AnalysisStatus: models.AnalysisPending},
	}

	summary := BuildSummary(sessions, answers)

	require.Equal(t, 3, summary.SessionCount)
	require.Equal(t, 2, summary.CompletedSessions)
	require.Equal(t, 4, summary.AnswerCount)
	require.Equal(t, 75.0, summary.AverageScore)
	require.Equal(t, 4.0, summary.AverageSelfRating)
	require.Equal(t, map[string]int{
		confidence.LevelVeryConfident:       2,
		confidence.LevelModeratelyConfident: 1,
	}, summary.LevelDistribution)

	require.Len(t, summary.Categories, 2)
	require.Equal(t, "behavioral", summary.Categories[0].Category)
	require.Equal(t, 2, summary.Categories[0].AnswerCount)
	require.Equal(t, 70.0, summary.Categories[0].AverageScore)
	require.Equal(t, "technical", summary.Categories[1].Category)
	require.Equal(t, 85.0, summary.Categories[1].AverageScore)

	// trend holds completed sessions only, in chronological order
	require.Len(t, summary.Trend, 2)
	require.Equal(t, "s2", summary.Trend[0].SessionID)
	require.Equal(t, 80, summary.Trend[0].Score)
	require.Equal(t, "s1", summary.Trend[1].SessionID)
}

func TestBuildSummaryEmpty(t *testing.T) {
	summary := BuildSummary(nil, nil)
	require.Equal(t, 0, summary.SessionCount)
	require.Equal(t, 0, summary.AnswerCount)
	require.Equal(t, 0.0, summary.AverageScore)
	require.Empty(t, summary.Categories)
	require.Empty(t, summary.Trend)
}

func TestBuildSummaryTrendLimit(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	var sessions []dbmodels.PracticeSession
	for i := 0; i < trendLength+3; i++ {
		sessions = append(sessions, dbmodels.PracticeSession{
			BaseModel:   dbmodels.BaseModel{ID: string(rune('a' + i))},
			Category:    "behavioral",
			Status:      models.SessionCompleted,
			Score:       50 + i,
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	summary := BuildSummary(sessions, nil)

	require.Len(t, summary.Trend, trendLength)
	// the oldest sessions fall off, the newest stays last
	require.Equal(t, 53, summary.Trend[0].Score)
	require.Equal(t, 50+trendLength+2, summary.Trend[len(summary.Trend)-1].Score)
}
