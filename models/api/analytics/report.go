package analyticsapimodels

import "time"

type CategoryStat struct {
	Category     string  `json:"category"`
	AnswerCount  int     `json:"answer_count"`
	AverageScore float64 `json:"average_score"`
}

type TrendPoint struct {
	SessionID   string    `json:"session_id"`
	CompletedAt time.Time `json:"completed_at"`
	Score       int       `json:"score"`
}

type PerformanceSummary struct {
	SessionCount      int            `json:"session_count"`
	CompletedSessions int            `json:"completed_sessions"`
	AnswerCount       int            `json:"answer_count"`
	AverageScore      float64        `json:"average_score"`
	AverageSelfRating float64        `json:"average_self_rating"`
	LevelDistribution map[string]int `json:"level_distribution"`
	Categories        []CategoryStat `json:"categories"`
	Trend             []TrendPoint   `json:"trend"`
}
