package sessionapimodels

import (
	"interview-prep-backend/models"
	"time"

	"github.com/pkg/errors"
)

type StartSessionRequest struct {
	Category      string                    `json:"category"`
	Difficulty    models.QuestionDifficulty `json:"difficulty"`
	QuestionCount int                       `json:"question_count"`
}

func (r StartSessionRequest) Validate() error {
	if r.Category == "" {
		return errors.New("category is not set")
	}
	if !r.Difficulty.IsValid() {
		return errors.New("unknown difficulty")
	}
	if r.QuestionCount < 0 {
		return errors.New("question count must not be negative")
	}
	return nil
}

type SessionQuestion struct {
	QuestionID     string `json:"question_id"`
	OrderNum       int    `json:"order_num"`
	Text           string `json:"text"`
	TimeLimitInSec int    `json:"time_limit_in_sec"`
}

type Session struct {
	ID            string                    `json:"id"`
	Category      string                    `json:"category"`
	Difficulty    models.QuestionDifficulty `json:"difficulty"`
	Status        models.SessionStatus      `json:"status"`
	StatusName    string                    `json:"status_name"`
	QuestionCount int                       `json:"question_count"`
	Score         int                       `json:"score"`
	StartedAt     time.Time                 `json:"started_at"`
	Deadline      time.Time                 `json:"deadline"`
	CompletedAt   *time.Time                `json:"completed_at,omitempty"`
	Questions     []SessionQuestion         `json:"questions,omitempty"`
	Answers       []Answer                  `json:"answers,omitempty"`
}

type SessionFilter struct {
	Status models.SessionStatus `json:"status"`
	Page   int                  `json:"page"`
	Limit  int                  `json:"limit"`
}
