package initializers

import (
	"context"
	s3client "interview-prep-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("error initializing s3 client")
		return
	}
	if err := client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("error preparing recordings bucket")
	}

	s3client.Instance = client
	log.Info("s3 client ready")
}
