package sessionexpireworker

import (
	"context"
	"interview-prep-backend/db"
	sessionhandler "interview-prep-backend/lib/session"
	answerstore "interview-prep-backend/lib/session/answer-store"
	sessionstore "interview-prep-backend/lib/session/store"
	baseworker "interview-prep-backend/lib/utils/base-worker"
	"interview-prep-backend/models"
	"time"
)

const (
	firstRunDelay = 10 * time.Second
	handlePeriod  = 1 * time.Minute
)

// closes ACTIVE sessions whose deadline has passed
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:     *baseworker.NewInstance("SessionExpireWorker", firstRunDelay, handlePeriod),
		sessionStore: sessionstore.NewInstance(db.DB),
		answerStore:  answerstore.NewInstance(db.DB),
	}
	go i.Run(ctx, func(ctx context.Context) { i.handle() })
}

type impl struct {
	baseworker.BaseImpl
	sessionStore sessionstore.Provider
	answerStore  answerstore.Provider
}

func (i impl) handle() {
	logger := i.GetLogger()
	list, err := i.sessionStore.GetOverdue(time.Now())
	if err != nil {
		logger.WithError(err).Error("error fetching overdue sessions")
		return
	}
	for _, session := range list {
		answers, err := i.answerStore.GetBySession(session.ID)
		if err != nil {
			logger.WithError(err).
				WithField("session_id", session.ID).
				Error("error fetching session answers")
			continue
		}
		updMap := map[string]interface{}{
			"status":       models.SessionExpired,
			"completed_at": time.Now(),
			"score":        sessionhandler.SessionScore(answers),
		}
		err = i.sessionStore.Update(session.ID, updMap)
		if err != nil {
			logger.WithError(err).
				WithField("session_id", session.ID).
				Error("error expiring session")
			continue
		}
		logger.
			WithField("session_id", session.ID).
			Info("session expired")
	}
}
