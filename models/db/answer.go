package dbmodels

import (
	"interview-prep-backend/models"
	sessionapimodels "interview-prep-backend/models/api/session"
)

type SessionAnswer struct {
	BaseModel
	SessionID     string `gorm:"type:varchar(36);index"`
	QuestionID    string `gorm:"type:varchar(36)"`
	UserID        string `gorm:"type:varchar(36);index"`
	AnswerText    string
	SelfRating    int
	DurationInSec int
	RecordingID   string `gorm:"type:varchar(36)"` // file storage row, optional
	Transcript    string

	AnalysisStatus models.AnswerAnalysisStatus `gorm:"type:varchar(20);index"`

	// raw analysis metrics, persisted as produced by the analysis providers
	VoiceVolume        float64
	VoiceStability     float64
	PauseFrequency     float64
	FacialConfidence   float64
	EmotionPositivity  float64
	AnswerQuality      float64
	AnswerCompleteness float64
	Feedback           string

	ConfidenceScore int
	ConfidenceLevel string `gorm:"type:varchar(50)"`
}

func (r SessionAnswer) ToModel() sessionapimodels.Answer {
	return sessionapimodels.Answer{
		ID:              r.ID,
		QuestionID:      r.QuestionID,
		AnswerText:      r.AnswerText,
		SelfRating:      r.SelfRating,
		DurationInSec:   r.DurationInSec,
		RecordingID:     r.RecordingID,
		Transcript:      r.Transcript,
		AnalysisStatus:  r.AnalysisStatus,
		Feedback:        r.Feedback,
		ConfidenceScore: r.ConfidenceScore,
		ConfidenceLevel: r.ConfidenceLevel,
	}
}
