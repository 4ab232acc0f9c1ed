package questionhandler

import (
	"interview-prep-backend/db"
	questionstore "interview-prep-backend/lib/question/store"
	questionapimodels "interview-prep-backend/models/api/question"
	dbmodels "interview-prep-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(request questionapimodels.QuestionData) (id string, err error)
	Update(questionID string, request questionapimodels.QuestionData) error
	Delete(questionID string) error
	GetByID(questionID string) (question questionapimodels.Question, err error)
	GetList(filter questionapimodels.QuestionFilter) (list []questionapimodels.Question, rowCount int64, err error)
	GetCategories() (list []questionapimodels.CategoryCount, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		questionStore: questionstore.NewInstance(db.DB),
	}
}

type impl struct {
	questionStore questionstore.Provider
}

func (i impl) Create(request questionapimodels.QuestionData) (id string, err error) {
	rec := dbmodels.Question{
		Category:       request.Category,
		Difficulty:     request.Difficulty,
		Text:           request.Text,
		Guidance:       request.Guidance,
		TimeLimitInSec: request.TimeLimitInSec,
		IsActive:       request.IsActive,
	}
	id, err = i.questionStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("error creating question")
		return "", err
	}
	return id, nil
}

func (i impl) Update(questionID string, request questionapimodels.QuestionData) error {
	existed, err := i.questionStore.GetByID(questionID)
	if err != nil {
		log.WithField("question_id", questionID).WithError(err).Error("error looking up question")
		return err
	}
	if existed == nil {
		return errors.New("question not found")
	}
	updMap := map[string]interface{}{
		"category":          request.Category,
		"difficulty":        request.Difficulty,
		"text":              request.Text,
		"guidance":          request.Guidance,
		"time_limit_in_sec": request.TimeLimitInSec,
		"is_active":         request.IsActive,
	}
	err = i.questionStore.Update(questionID, updMap)
	if err != nil {
		log.WithField("question_id", questionID).WithError(err).Error("error updating question")
		return err
	}
	return nil
}

func (i impl) Delete(questionID string) error {
	err := i.questionStore.Delete(questionID)
	if err != nil {
		log.WithField("question_id", questionID).WithError(err).Error("error deleting question")
		return err
	}
	return nil
}

func (i impl) GetByID(questionID string) (question questionapimodels.Question, err error) {
	rec, err := i.questionStore.GetByID(questionID)
	if err != nil {
		log.WithField("question_id", questionID).WithError(err).Error("error looking up question")
		return questionapimodels.Question{}, err
	}
	if rec == nil {
		return questionapimodels.Question{}, errors.New("question not found")
	}
	return rec.ToModel(), nil
}

func (i impl) GetList(filter questionapimodels.QuestionFilter) (list []questionapimodels.Question, rowCount int64, err error) {
	recList, rowCount, err := i.questionStore.GetList(filter)
	if err != nil {
		log.WithError(err).Error("error fetching question list")
		return nil, 0, err
	}
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) GetCategories() (list []questionapimodels.CategoryCount, err error) {
	list, err = i.questionStore.GetCategories()
	if err != nil {
		log.WithError(err).Error("error fetching categories")
		return nil, err
	}
	return list, nil
}
