package analytics

import (
	"bytes"
	"interview-prep-backend/db"
	pdfexport "interview-prep-backend/lib/export/pdf"
	xlsexport "interview-prep-backend/lib/export/xls"
	answerstore "interview-prep-backend/lib/session/answer-store"
	sessionstore "interview-prep-backend/lib/session/store"
	initchecker "interview-prep-backend/lib/utils/init-checker"
	analyticsapimodels "interview-prep-backend/models/api/analytics"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Summary(userID string) (analyticsapimodels.PerformanceSummary, error)
	SummaryExportToXls(userID string) (*bytes.Buffer, error)
	SessionReportPdf(userID, sessionID string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		sessionStore: sessionstore.NewInstance(db.DB),
		answerStore:  answerstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"sessionStore", instance.sessionStore,
		"answerStore", instance.answerStore,
	)
	Instance = instance
}

type impl struct {
	sessionStore sessionstore.Provider
	answerStore  answerstore.Provider
}

func (i impl) Summary(userID string) (analyticsapimodels.PerformanceSummary, error) {
	logger := log.WithField("user_id", userID)
	sessions, err := i.sessionStore.GetAllByUser(userID)
	if err != nil {
		logger.WithError(err).Error("error fetching user sessions")
		return analyticsapimodels.PerformanceSummary{}, err
	}
	answers, err := i.answerStore.GetByUser(userID)
	if err != nil {
		logger.WithError(err).Error("error fetching user answers")
		return analyticsapimodels.PerformanceSummary{}, err
	}
	return BuildSummary(sessions, answers), nil
}

func (i impl) SummaryExportToXls(userID string) (*bytes.Buffer, error) {
	summary, err := i.Summary(userID)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportSummary(summary)
}

func (i impl) SessionReportPdf(userID, sessionID string) ([]byte, error) {
	rec, err := i.sessionStore.GetByID(sessionID)
	if err != nil {
		log.WithField("session_id", sessionID).WithError(err).Error("error looking up session")
		return nil, err
	}
	if rec == nil || rec.UserID != userID {
		return nil, errors.New("session not found")
	}
	return pdfexport.GenerateSessionReport(rec.ToModel())
}
