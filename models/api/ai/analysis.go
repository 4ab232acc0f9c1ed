package aiapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

// VoiceMetrics are the acoustic measurements derived from a recording.
type VoiceMetrics struct {
	Volume         float64 `json:"volume"`          // 0..100
	Stability      float64 `json:"stability"`       // 0..100
	PauseFrequency float64 `json:"pause_frequency"` // 0..100, lower is better
}

type TranscriptionRequest struct {
	RecordingID string `json:"recording_id"`
}

func (r TranscriptionRequest) Validate() error {
	if r.RecordingID == "" {
		return errors.New("recording is not set")
	}
	return nil
}

type TranscriptionResponse struct {
	Transcript string       `json:"transcript"`
	Voice      VoiceMetrics `json:"voice"`
	IsMock     bool         `json:"is_mock"`
}

type FacialAnalysisRequest struct {
	RecordingID string `json:"recording_id"`
}

func (r FacialAnalysisRequest) Validate() error {
	if r.RecordingID == "" {
		return errors.New("recording is not set")
	}
	return nil
}

type FacialAnalysisResponse struct {
	FacialConfidence  float64 `json:"facial_confidence"`  // 0..100
	EmotionPositivity float64 `json:"emotion_positivity"` // -100..100
	DominantEmotion   string  `json:"dominant_emotion"`
	IsMock            bool    `json:"is_mock"`
}

type EvaluationRequest struct {
	QuestionText string `json:"question_text"`
	AnswerText   string `json:"answer_text"`
}

func (r EvaluationRequest) Validate() error {
	if len(strings.TrimSpace(r.QuestionText)) == 0 {
		return errors.New("question text must not be empty")
	}
	if len(strings.TrimSpace(r.AnswerText)) == 0 {
		return errors.New("answer text must not be empty")
	}
	return nil
}

type EvaluationResponse struct {
	Quality      float64 `json:"quality"`      // 0..100
	Completeness float64 `json:"completeness"` // 0..100
	Feedback     string  `json:"feedback"`
	IsMock       bool    `json:"is_mock"`
}

type ConfidenceRequest struct {
	VoiceVolume        float64 `json:"voice_volume"`
	VoiceStability     float64 `json:"voice_stability"`
	PauseFrequency     float64 `json:"pause_frequency"`
	FacialConfidence   float64 `json:"facial_confidence"`
	EmotionPositivity  float64 `json:"emotion_positivity"`
	AnswerQuality      float64 `json:"answer_quality"`
	AnswerCompleteness float64 `json:"answer_completeness"`
}

type ConfidenceResponse struct {
	Score     int                `json:"score"`
	Level     string             `json:"level"`
	Breakdown map[string]float64 `json:"breakdown"`
}
