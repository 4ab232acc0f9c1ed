package usershandler

import (
	"fmt"
	"interview-prep-backend/db"
	emailverify "interview-prep-backend/lib/email-verify"
	"interview-prep-backend/lib/smtp"
	usersstore "interview-prep-backend/lib/users/store"
	userapimodels "interview-prep-backend/models/api/user"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	GetByID(userID string) (user userapimodels.User, err error)
	UpdateProfile(userID string, request userapimodels.UpdateUser) error
	GetList(page, limit int) (usersList []userapimodels.User, err error)
	Deactivate(userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore usersstore.Provider
}

func (i impl) GetByID(userID string) (user userapimodels.User, err error) {
	userDB, err := i.userStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("error looking up user")
		return userapimodels.User{}, err
	}
	if userDB == nil {
		return userapimodels.User{}, errors.New("user not found")
	}
	return userDB.ToModel(), nil
}

func (i impl) UpdateProfile(userID string, request userapimodels.UpdateUser) error {
	user, err := i.GetByID(userID)
	if err != nil {
		return err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		updMap := map[string]interface{}{
			"first_name": request.FirstName,
			"last_name":  request.LastName,
		}
		isEmailChanged := user.Email != request.Email
		if isEmailChanged {
			if smtp.Instance.IsConfigured() {
				updMap["new_email"] = request.Email
			} else {
				updMap["email"] = request.Email
				updMap["is_email_verified"] = true
			}
		}
		userStore := usersstore.NewInstance(tx)
		err := userStore.Update(userID, updMap)
		if err != nil {
			log.
				WithField("request", fmt.Sprintf("%+v", request)).
				WithError(err).
				Error("error updating user profile")
			return err
		}

		if isEmailChanged && smtp.Instance.IsConfigured() {
			// confirm the new address before switching to it
			err := emailverify.Instance.SendVerifyCode(request.Email)
			if err != nil {
				return err
			}
		}
		return nil
	})

	return err
}

func (i impl) GetList(page, limit int) (usersList []userapimodels.User, err error) {
	list, err := i.userStore.GetList(page, limit)
	if err != nil {
		log.WithError(err).Error("error fetching user list")
		return nil, err
	}
	for _, user := range list {
		usersList = append(usersList, user.ToModel())
	}
	return usersList, nil
}

func (i impl) Deactivate(userID string) error {
	err := i.userStore.Update(userID, map[string]interface{}{"is_active": false})
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("error deactivating user")
		return err
	}
	return nil
}
