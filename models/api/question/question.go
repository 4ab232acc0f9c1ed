package questionapimodels

import (
	"interview-prep-backend/models"
	apimodels "interview-prep-backend/models/api"

	"github.com/pkg/errors"
)

type QuestionData struct {
	Category       string                    `json:"category"`
	Difficulty     models.QuestionDifficulty `json:"difficulty"`
	Text           string                    `json:"text"`
	Guidance       string                    `json:"guidance,omitempty"`
	TimeLimitInSec int                       `json:"time_limit_in_sec"`
	IsActive       bool                      `json:"is_active"`
}

func (r QuestionData) Validate() error {
	if r.Category == "" {
		return errors.New("category is not set")
	}
	if !r.Difficulty.IsValid() {
		return errors.New("unknown difficulty")
	}
	if r.Text == "" {
		return errors.New("question text is not set")
	}
	if r.TimeLimitInSec < 0 {
		return errors.New("time limit must not be negative")
	}
	return nil
}

type Question struct {
	ID string `json:"id"`
	QuestionData
}

type QuestionFilter struct {
	apimodels.Pagination
	Category   string                    `json:"category"`
	Difficulty models.QuestionDifficulty `json:"difficulty"`
	Search     string                    `json:"search"`
}

func (r QuestionFilter) Validate() error {
	if r.Difficulty != "" && !r.Difficulty.IsValid() {
		return errors.New("unknown difficulty")
	}
	return nil
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
