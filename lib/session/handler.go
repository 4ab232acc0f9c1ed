package sessionhandler

import (
	"interview-prep-backend/config"
	"interview-prep-backend/db"
	questionstore "interview-prep-backend/lib/question/store"
	answerstore "interview-prep-backend/lib/session/answer-store"
	sessionstore "interview-prep-backend/lib/session/store"
	"interview-prep-backend/models"
	sessionapimodels "interview-prep-backend/models/api/session"
	dbmodels "interview-prep-backend/models/db"
	"math"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	StartSession(userID string, request sessionapimodels.StartSessionRequest) (session sessionapimodels.Session, err error)
	GetSession(userID, sessionID string) (session sessionapimodels.Session, err error)
	GetList(userID string, filter sessionapimodels.SessionFilter) (list []sessionapimodels.Session, rowCount int64, err error)
	SubmitAnswer(userID, sessionID string, request sessionapimodels.SubmitAnswerRequest) (answerID string, err error)
	CompleteSession(userID, sessionID string) (session sessionapimodels.Session, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		sessionStore:  sessionstore.NewInstance(db.DB),
		answerStore:   answerstore.NewInstance(db.DB),
		questionStore: questionstore.NewInstance(db.DB),
	}
}

type impl struct {
	sessionStore  sessionstore.Provider
	answerStore   answerstore.Provider
	questionStore questionstore.Provider
}

func (i impl) StartSession(userID string, request sessionapimodels.StartSessionRequest) (session sessionapimodels.Session, err error) {
	logger := log.WithField("user_id", userID)
	active, err := i.sessionStore.GetActiveByUser(userID)
	if err != nil {
		logger.WithError(err).Error("error checking for active session")
		return sessionapimodels.Session{}, err
	}
	if active != nil {
		return sessionapimodels.Session{}, errors.New("an active session already exists, complete it first")
	}

	questionCount := request.QuestionCount
	if questionCount == 0 {
		questionCount = config.Conf.Session.DefaultQuestionCount
	}
	questions, err := i.questionStore.PickRandom(request.Category, request.Difficulty, questionCount)
	if err != nil {
		logger.WithError(err).Error("error picking session questions")
		return sessionapimodels.Session{}, err
	}
	if len(questions) == 0 {
		return sessionapimodels.Session{}, errors.New("no questions for this category and difficulty")
	}

	now := time.Now()
	totalLimit := 0
	for _, q := range questions {
		limit := q.TimeLimitInSec
		if limit == 0 {
			limit = config.Conf.Session.DefaultTimeLimitInSec
		}
		totalLimit += limit
	}

	var sessionID string
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		sessionStore := sessionstore.NewInstance(tx)
		rec := dbmodels.PracticeSession{
			UserID:        userID,
			Category:      request.Category,
			Difficulty:    request.Difficulty,
			Status:        models.SessionActive,
			QuestionCount: len(questions),
			StartedAt:     now,
			Deadline:      now.Add(time.Second * time.Duration(totalLimit)),
		}
		for idx, q := range questions {
			rec.Questions = append(rec.Questions, dbmodels.SessionQuestion{
				QuestionID: q.ID,
				OrderNum:   idx + 1,
			})
		}
		id, err := sessionStore.Create(rec)
		if err != nil {
			return err
		}
		sessionID = id
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("error creating session")
		return sessionapimodels.Session{}, err
	}
	return i.GetSession(userID, sessionID)
}

func (i impl) GetSession(userID, sessionID string) (session sessionapimodels.Session, err error) {
	rec, err := i.getOwned(userID, sessionID)
	if err != nil {
		return sessionapimodels.Session{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) GetList(userID string, filter sessionapimodels.SessionFilter) (list []sessionapimodels.Session, rowCount int64, err error) {
	page, limit := 1, 10
	if filter.Page > 0 {
		page = filter.Page
	}
	if filter.Limit > 0 && filter.Limit <= 100 {
		limit = filter.Limit
	}
	recList, rowCount, err := i.sessionStore.GetListByUser(userID, filter.Status, page, limit)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("error fetching session list")
		return nil, 0, err
	}
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) SubmitAnswer(userID, sessionID string, request sessionapimodels.SubmitAnswerRequest) (answerID string, err error) {
	logger := log.
		WithField("user_id", userID).
		WithField("session_id", sessionID)
	rec, err := i.getOwned(userID, sessionID)
	if err != nil {
		return "", err
	}
	if rec.Status != models.SessionActive {
		return "", errors.New("session is closed")
	}
	if time.Now().After(rec.Deadline) {
		return "", errors.New("session deadline has passed")
	}
	if !sessionHasQuestion(*rec, request.QuestionID) {
		return "", errors.New("question does not belong to this session")
	}
	exist, err := i.answerStore.ExistForQuestion(sessionID, request.QuestionID)
	if err != nil {
		logger.WithError(err).Error("error checking for existing answer")
		return "", err
	}
	if exist {
		return "", errors.New("this question is already answered")
	}

	answer := dbmodels.SessionAnswer{
		SessionID:      sessionID,
		QuestionID:     request.QuestionID,
		UserID:         userID,
		AnswerText:     request.AnswerText,
		SelfRating:     request.SelfRating,
		DurationInSec:  request.DurationInSec,
		RecordingID:    request.RecordingID,
		AnalysisStatus: models.AnalysisPending,
	}
	answerID, err = i.answerStore.Create(answer)
	if err != nil {
		logger.WithError(err).Error("error saving answer")
		return "", err
	}
	return answerID, nil
}

func (i impl) CompleteSession(userID, sessionID string) (session sessionapimodels.Session, err error) {
	logger := log.
		WithField("user_id", userID).
		WithField("session_id", sessionID)
	rec, err := i.getOwned(userID, sessionID)
	if err != nil {
		return sessionapimodels.Session{}, err
	}
	if rec.Status != models.SessionActive {
		return sessionapimodels.Session{}, errors.New("session is closed")
	}
	answers, err := i.answerStore.GetBySession(sessionID)
	if err != nil {
		logger.WithError(err).Error("error fetching session answers")
		return sessionapimodels.Session{}, err
	}
	updMap := map[string]interface{}{
		"status":       models.SessionCompleted,
		"completed_at": time.Now(),
		"score":        SessionScore(answers),
	}
	err = i.sessionStore.Update(sessionID, updMap)
	if err != nil {
		logger.WithError(err).Error("error completing session")
		return sessionapimodels.Session{}, err
	}
	return i.GetSession(userID, sessionID)
}

func (i impl) getOwned(userID, sessionID string) (rec *dbmodels.PracticeSession, err error) {
	rec, err = i.sessionStore.GetByID(sessionID)
	if err != nil {
		log.WithField("session_id", sessionID).WithError(err).Error("error looking up session")
		return nil, err
	}
	if rec == nil || rec.UserID != userID {
		return nil, errors.New("session not found")
	}
	return rec, nil
}

func sessionHasQuestion(rec dbmodels.PracticeSession, questionID string) bool {
	for _, q := range rec.Questions {
		if q.QuestionID == questionID {
			return true
		}
	}
	return false
}

// SessionScore is the mean of the analyzed answers' confidence scores,
// rounded to the nearest integer. Answers still pending analysis are skipped.
func SessionScore(answers []dbmodels.SessionAnswer) int {
	var sum, count int
	for _, a := range answers {
		if a.AnalysisStatus != models.AnalysisDone {
			continue
		}
		sum += a.ConfidenceScore
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
