package answerstore

import (
	"interview-prep-backend/models"
	dbmodels "interview-prep-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.SessionAnswer) (string, error)
	Update(answerID string, updMap map[string]interface{}) error
	GetByID(answerID string) (rec *dbmodels.SessionAnswer, err error)
	GetBySession(sessionID string) (list []dbmodels.SessionAnswer, err error)
	ExistForQuestion(sessionID, questionID string) (bool, error)
	GetPendingAnalysis(limit int) (list []dbmodels.SessionAnswer, err error)
	GetByUser(userID string) (list []dbmodels.SessionAnswer, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SessionAnswer) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(answerID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.SessionAnswer{}).
		Where("id = ?", answerID).
		Updates(updMap).
		Error
}

func (i impl) GetByID(answerID string) (rec *dbmodels.SessionAnswer, err error) {
	err = i.db.Model(dbmodels.SessionAnswer{}).
		Where("id = ?", answerID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetBySession(sessionID string) (list []dbmodels.SessionAnswer, err error) {
	err = i.db.Model(dbmodels.SessionAnswer{}).
		Where("session_id = ?", sessionID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ExistForQuestion(sessionID, questionID string) (bool, error) {
	err := i.db.
		Where("session_id = ?", sessionID).
		Where("question_id = ?", questionID).
		First(&dbmodels.SessionAnswer{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) GetPendingAnalysis(limit int) (list []dbmodels.SessionAnswer, err error) {
	err = i.db.Model(dbmodels.SessionAnswer{}).
		Where("analysis_status = ?", models.AnalysisPending).
		Order("created_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) GetByUser(userID string) (list []dbmodels.SessionAnswer, err error) {
	err = i.db.Model(dbmodels.SessionAnswer{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
