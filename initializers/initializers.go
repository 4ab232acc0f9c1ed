package initializers

import (
	"context"
	"interview-prep-backend/config"
	"interview-prep-backend/fiberlog"
	analysisworker "interview-prep-backend/lib/ai/analysis-worker"
	aievaluation "interview-prep-backend/lib/ai/evaluation"
	aifacial "interview-prep-backend/lib/ai/facial"
	aitranscription "interview-prep-backend/lib/ai/transcription"
	"interview-prep-backend/lib/analytics"
	authhandler "interview-prep-backend/lib/auth"
	emailverify "interview-prep-backend/lib/email-verify"
	xlsexport "interview-prep-backend/lib/export/xls"
	filestorage "interview-prep-backend/lib/file-storage"
	questionhandler "interview-prep-backend/lib/question"
	sessionhandler "interview-prep-backend/lib/session"
	expireworker "interview-prep-backend/lib/session/expire-worker"
	usershandler "interview-prep-backend/lib/users/handler"
	"time"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	emailverify.Instance = emailverify.NewInstance(config.Conf.Smtp.EmailSendVerification)
	authhandler.NewHandler()
	usershandler.NewHandler()
	questionhandler.NewHandler()
	sessionhandler.NewHandler()
	filestorage.NewHandler()
	aitranscription.NewHandler()
	aifacial.NewHandler()
	aievaluation.NewHandler()
	xlsexport.NewHandler()
	analytics.NewHandler()
	go initWorkers(ctx)
}

// workers start with a gap to spread the load
func initWorkers(ctx context.Context) {
	analysisworker.StartWorker(ctx)

	if makeTimeGap(ctx) {
		expireworker.StartWorker(ctx)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
