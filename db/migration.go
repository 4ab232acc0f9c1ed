package db

import (
	dbmodels "interview-prep-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration error for User")
	}
	if err := DB.AutoMigrate(&dbmodels.EmailVerify{}); err != nil {
		return errors.Wrap(err, "migration error for EmailVerify")
	}
	if err := DB.AutoMigrate(&dbmodels.Question{}); err != nil {
		return errors.Wrap(err, "migration error for Question")
	}
	if err := DB.AutoMigrate(&dbmodels.PracticeSession{}); err != nil {
		return errors.Wrap(err, "migration error for PracticeSession")
	}
	if err := DB.AutoMigrate(&dbmodels.SessionQuestion{}); err != nil {
		return errors.Wrap(err, "migration error for SessionQuestion")
	}
	if err := DB.AutoMigrate(&dbmodels.SessionAnswer{}); err != nil {
		return errors.Wrap(err, "migration error for SessionAnswer")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "migration error for FileStorage")
	}
	log.Info("migrations finished")
	return nil
}
