package sessionapimodels

import (
	"interview-prep-backend/models"
	"strings"

	"github.com/pkg/errors"
)

type SubmitAnswerRequest struct {
	QuestionID    string `json:"question_id"`
	AnswerText    string `json:"answer_text"`
	SelfRating    int    `json:"self_rating"`
	DurationInSec int    `json:"duration_in_sec"`
	RecordingID   string `json:"recording_id,omitempty"`
}

func (r SubmitAnswerRequest) Validate() error {
	if r.QuestionID == "" {
		return errors.New("question is not set")
	}
	if len(strings.TrimSpace(r.AnswerText)) == 0 {
		return errors.New("answer text must not be empty")
	}
	if r.SelfRating < models.SelfRatingMin || r.SelfRating > models.SelfRatingMax {
		return errors.New("self rating must be between 1 and 5")
	}
	if r.DurationInSec < 0 {
		return errors.New("duration must not be negative")
	}
	return nil
}

type Answer struct {
	ID              string                      `json:"id"`
	QuestionID      string                      `json:"question_id"`
	AnswerText      string                      `json:"answer_text"`
	SelfRating      int                         `json:"self_rating"`
	DurationInSec   int                         `json:"duration_in_sec"`
	RecordingID     string                      `json:"recording_id,omitempty"`
	Transcript      string                      `json:"transcript,omitempty"`
	AnalysisStatus  models.AnswerAnalysisStatus `json:"analysis_status"`
	Feedback        string                      `json:"feedback,omitempty"`
	ConfidenceScore int                         `json:"confidence_score"`
	ConfidenceLevel string                      `json:"confidence_level,omitempty"`
}
