package dbmodels

import (
	"interview-prep-backend/models"
	questionapimodels "interview-prep-backend/models/api/question"
)

type Question struct {
	BaseModel
	Category       string                    `gorm:"type:varchar(100);index"`
	Difficulty     models.QuestionDifficulty `gorm:"type:varchar(20);index"`
	Text           string
	Guidance       string // what a strong answer should cover
	TimeLimitInSec int
	IsActive       bool
}

func (r Question) ToModel() questionapimodels.Question {
	return questionapimodels.Question{
		ID: r.ID,
		QuestionData: questionapimodels.QuestionData{
			Category:       r.Category,
			Difficulty:     r.Difficulty,
			Text:           r.Text,
			Guidance:       r.Guidance,
			TimeLimitInSec: r.TimeLimitInSec,
			IsActive:       r.IsActive,
		},
	}
}
