package filestorage

import (
	"context"
	"fmt"
	"interview-prep-backend/db"
	filesdbstorage "interview-prep-backend/lib/file-storage/store"
	s3client "interview-prep-backend/s3"
	dbmodels "interview-prep-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	UploadRecording(ctx context.Context, userID, fileName, contentType string, file []byte) (fileID string, err error)
	GetRecording(ctx context.Context, userID, fileID string) (file []byte, rec *dbmodels.FileStorage, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		fileStore: filesdbstorage.NewInstance(db.DB),
		s3:        s3client.Instance,
	}
}

type impl struct {
	fileStore filesdbstorage.Provider
	s3        s3client.Provider
}

func (i impl) UploadRecording(ctx context.Context, userID, fileName, contentType string, file []byte) (fileID string, err error) {
	logger := log.WithField("user_id", userID)
	rec := dbmodels.FileStorage{
		UserID:      userID,
		FileType:    dbmodels.RecordingFileType,
		FileName:    fileName,
		ContentType: contentType,
	}
	fileID, err = i.fileStore.SaveFile(rec)
	if err != nil {
		logger.WithError(err).Error("error saving file record")
		return "", err
	}
	err = i.s3.PutObject(ctx, objectName(userID, fileID), contentType, file)
	if err != nil {
		logger.WithError(err).Error("error uploading recording")
		return "", err
	}
	return fileID, nil
}

func (i impl) GetRecording(ctx context.Context, userID, fileID string) (file []byte, rec *dbmodels.FileStorage, err error) {
	rec, err = i.fileStore.GetByID(fileID)
	if err != nil {
		log.WithField("file_id", fileID).WithError(err).Error("error looking up file record")
		return nil, nil, err
	}
	if rec == nil || rec.UserID != userID {
		return nil, nil, errors.New("file not found")
	}
	file, err = i.s3.GetObject(ctx, objectName(userID, fileID))
	if err != nil {
		log.WithField("file_id", fileID).WithError(err).Error("error downloading recording")
		return nil, nil, err
	}
	return file, rec, nil
}

func objectName(userID, fileID string) string {
	return fmt.Sprintf("%s/%s", userID, fileID)
}
