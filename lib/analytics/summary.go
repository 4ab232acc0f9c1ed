package analytics

import (
	"interview-prep-backend/models"
	analyticsapimodels "interview-prep-backend/models/api/analytics"
	dbmodels "interview-prep-backend/models/db"
	"math"
	"sort"
)

const trendLength = 10

// BuildSummary folds a user's sessions and analyzed answers into the
// performance report. Pure function over the fetched rows.
func BuildSummary(sessions []dbmodels.PracticeSession, answers []dbmodels.SessionAnswer) analyticsapimodels.PerformanceSummary {
	summary := analyticsapimodels.PerformanceSummary{
		SessionCount:      len(sessions),
		LevelDistribution: map[string]int{},
	}

	categoryBySession := make(map[string]string, len(sessions))
	for _, s := range sessions {
		categoryBySession[s.ID] = s.Category
		if s.Status == models.SessionCompleted {
			summary.CompletedSessions++
		}
	}

	// answer totals and self ratings cover every answer, score averages and
	// the level distribution only the analyzed ones
	var scoreSum, ratingSum float64
	var analyzedCount int
	categoryTotals := map[string]*analyticsapimodels.CategoryStat{}
	for _, a := range answers {
		summary.AnswerCount++
		ratingSum += float64(a.SelfRating)
		if a.AnalysisStatus != models.AnalysisDone {
			continue
		}
		analyzedCount++
		scoreSum += float64(a.ConfidenceScore)
		if a.ConfidenceLevel != "" {
			summary.LevelDistribution[a.ConfidenceLevel]++
		}
		category, ok := categoryBySession[a.SessionID]
		if !ok {
			continue
		}
		stat, ok := categoryTotals[category]
		if !ok {
			stat = &analyticsapimodels.CategoryStat{Category: category}
			categoryTotals[category] = stat
		}
		stat.AnswerCount++
		stat.AverageScore += float64(a.ConfidenceScore)
	}
	if summary.AnswerCount > 0 {
		summary.AverageSelfRating = round2(ratingSum / float64(summary.AnswerCount))
	}
	if analyzedCount > 0 {
		summary.AverageScore = round2(scoreSum / float64(analyzedCount))
	}

	for _, stat := range categoryTotals {
		stat.AverageScore = round2(stat.AverageScore / float64(stat.AnswerCount))
		summary.Categories = append(summary.Categories, *stat)
	}
	sort.Slice(summary.Categories, func(a, b int) bool {
		return summary.Categories[a].Category < summary.Categories[b].Category
	})

	summary.Trend = buildTrend(sessions)
	return summary
}

// last completed sessions in chronological order
func buildTrend(sessions []dbmodels.PracticeSession) []analyticsapimodels.TrendPoint {
	var completed []dbmodels.PracticeSession
	for _, s := range sessions {
		if s.Status == models.SessionCompleted {
			completed = append(completed, s)
		}
	}
	sort.Slice(completed, func(a, b int) bool {
		return completed[a].CompletedAt.Before(completed[b].CompletedAt)
	})
	if len(completed) > trendLength {
		completed = completed[len(completed)-trendLength:]
	}
	var trend []analyticsapimodels.TrendPoint
	for _, s := range completed {
		trend = append(trend, analyticsapimodels.TrendPoint{
			SessionID:   s.ID,
			CompletedAt: s.CompletedAt,
			Score:       s.Score,
		})
	}
	return trend
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
