package sessionstore

import (
	"interview-prep-backend/models"
	dbmodels "interview-prep-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.PracticeSession) (string, error)
	Update(sessionID string, updMap map[string]interface{}) error
	GetByID(sessionID string) (rec *dbmodels.PracticeSession, err error)
	GetActiveByUser(userID string) (rec *dbmodels.PracticeSession, err error)
	GetListByUser(userID string, status models.SessionStatus, page, limit int) (list []dbmodels.PracticeSession, rowCount int64, err error)
	GetOverdue(now time.Time) (list []dbmodels.PracticeSession, err error)
	GetAllByUser(userID string) (list []dbmodels.PracticeSession, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PracticeSession) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(sessionID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.PracticeSession{}).
		Where("id = ?", sessionID).
		Updates(updMap).
		Error
}

func (i impl) GetByID(sessionID string) (rec *dbmodels.PracticeSession, err error) {
	err = i.db.Model(dbmodels.PracticeSession{}).
		Where("id = ?", sessionID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("session_questions.order_num")
		}).
		Preload("Questions.Question").
		Preload("Answers").
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

func (i impl) GetActiveByUser(userID string) (rec *dbmodels.PracticeSession, err error) {
	err = i.db.Model(dbmodels.PracticeSession{}).
		Where("user_id = ?", userID).
		Where("status = ?", models.SessionActive).
		Preload(clause.Associations).
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

func (i impl) GetListByUser(userID string, status models.SessionStatus, page, limit int) (list []dbmodels.PracticeSession, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.PracticeSession{}).
		Where("user_id = ?", userID)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Limit(limit).
		Offset((page - 1) * limit).
		Order("started_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) GetOverdue(now time.Time) (list []dbmodels.PracticeSession, err error) {
	err = i.db.Model(dbmodels.PracticeSession{}).
		Where("status = ?", models.SessionActive).
		Where("deadline < ?", now).
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

func (i impl) GetAllByUser(userID string) (list []dbmodels.PracticeSession, err error) {
	err = i.db.Model(dbmodels.PracticeSession{}).
		Where("user_id = ?", userID).
		Order("started_at").
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
