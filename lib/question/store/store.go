package questionstore

import (
	"interview-prep-backend/models"
	questionapimodels "interview-prep-backend/models/api/question"
	dbmodels "interview-prep-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Question) (string, error)
	Update(questionID string, updMap map[string]interface{}) error
	Delete(questionID string) error
	GetByID(questionID string) (rec *dbmodels.Question, err error)
	GetList(filter questionapimodels.QuestionFilter) (list []dbmodels.Question, rowCount int64, err error)
	PickRandom(category string, difficulty models.QuestionDifficulty, count int) (list []dbmodels.Question, err error)
	GetCategories() (list []questionapimodels.CategoryCount, err error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Question) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(questionID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Question{}).
		Where("id = ?", questionID).
		Updates(updMap).
		Error
}

func (i impl) Delete(questionID string) error {
	return i.db.
		Where("id = ?", questionID).
		Delete(&dbmodels.Question{}).
		Error
}

func (i impl) GetByID(questionID string) (rec *dbmodels.Question, err error) {
	err = i.db.Model(dbmodels.Question{}).
		Where("id = ?", questionID).
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

func (i impl) GetList(filter questionapimodels.QuestionFilter) (list []dbmodels.Question, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Question{})
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		tx = tx.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Search != "" {
		tx = tx.Where("LOWER(text) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Limit(limit).
		Offset((page - 1) * limit).
		Order("created_at").
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

func (i impl) PickRandom(category string, difficulty models.QuestionDifficulty, count int) (list []dbmodels.Question, err error) {
	err = i.db.Model(dbmodels.Question{}).
		Where("category = ?", category).
		Where("difficulty = ?", difficulty).
		Where("is_active = true").
		Order("RANDOM()").
		Limit(count).
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

func (i impl) GetCategories() (list []questionapimodels.CategoryCount, err error) {
	err = i.db.Model(dbmodels.Question{}).
		Select("category, count(*) as count").
		Where("is_active = true").
		Group("category").
		Order("category").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (count int64, err error) {
	err = i.db.Model(dbmodels.Question{}).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
