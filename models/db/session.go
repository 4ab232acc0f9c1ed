package dbmodels

import (
	"interview-prep-backend/models"
	sessionapimodels "interview-prep-backend/models/api/session"
	"time"
)

type PracticeSession struct {
	BaseModel
	UserID        string                    `gorm:"type:varchar(36);index"`
	Category      string                    `gorm:"type:varchar(100)"`
	Difficulty    models.QuestionDifficulty `gorm:"type:varchar(20)"`
	Status        models.SessionStatus      `gorm:"type:varchar(20);index"`
	QuestionCount int
	Score         int // mean of per-answer confidence scores, set on completion
	StartedAt     time.Time
	Deadline      time.Time
	CompletedAt   time.Time
	Questions     []SessionQuestion `gorm:"foreignKey:SessionID"`
	Answers       []SessionAnswer   `gorm:"foreignKey:SessionID"`
}

// SessionQuestion pins the questions picked for a session in their asked order.
type SessionQuestion struct {
	BaseModel
	SessionID  string `gorm:"type:varchar(36);index"`
	QuestionID string `gorm:"type:varchar(36)"`
	OrderNum   int
	Question   Question `gorm:"foreignKey:QuestionID"`
}

func (r PracticeSession) ToModel() sessionapimodels.Session {
	item := sessionapimodels.Session{
		ID:            r.ID,
		Category:      r.Category,
		Difficulty:    r.Difficulty,
		Status:        r.Status,
		StatusName:    r.Status.ToHuman(),
		QuestionCount: r.QuestionCount,
		Score:         r.Score,
		StartedAt:     r.StartedAt,
		Deadline:      r.Deadline,
	}
	if !r.CompletedAt.IsZero() {
		item.CompletedAt = &r.CompletedAt
	}
	for _, q := range r.Questions {
		item.Questions = append(item.Questions, sessionapimodels.SessionQuestion{
			QuestionID:     q.QuestionID,
			OrderNum:       q.OrderNum,
			Text:           q.Question.Text,
			TimeLimitInSec: q.Question.TimeLimitInSec,
		})
	}
	for _, a := range r.Answers {
		item.Answers = append(item.Answers, a.ToModel())
	}
	return item
}
