package emailverify

import (
	"fmt"
	"interview-prep-backend/config"
	"interview-prep-backend/db"
	emailverifystore "interview-prep-backend/lib/email-verify/store"
	"interview-prep-backend/lib/smtp"
	usersstore "interview-prep-backend/lib/users/store"
	dbmodels "interview-prep-backend/models/db"
	"math/rand"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pkg/errors"
)

const daysToExpires = 14
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

type Provider interface {
	SendVerifyCode(email string) error
	VerifyCode(code string) error
}

var Instance Provider

func NewInstance(emailFrom string) Provider {
	return &impl{
		verifyStore: emailverifystore.NewInstance(db.DB),
		emailFrom:   emailFrom,
	}
}

type impl struct {
	verifyStore emailverifystore.Provider
	emailFrom   string
}

func (i impl) SendVerifyCode(email string) error {
	exist, err := i.verifyStore.Exist(email)
	if err != nil {
		return err
	}
	if exist {
		return errors.New("a verification code for this email already exists")
	}
	verifyData := dbmodels.EmailVerify{
		Email:         email,
		Code:          i.generateCode(),
		DateGenerated: time.Now(),
		DateExpires:   time.Now().Add(time.Hour * 24 * daysToExpires),
	}
	err = i.verifyStore.Create(verifyData)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Follow the link to confirm your email: %s/api/v1/auth/verify-email?code=%s", config.Conf.Smtp.DomainForVerifyLink, verifyData.Code)
	err = smtp.Instance.SendEMail(i.emailFrom, email, message, "EMail Confirm")
	if err != nil {
		return err
	}
	return nil
}

func (i impl) VerifyCode(code string) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		verifyStore := emailverifystore.NewInstance(tx)
		userStore := usersstore.NewInstance(tx)

		email, err := applyCode(code, verifyStore)
		if err != nil {
			return err
		}
		return updateUser(email, userStore)
	})
	return err
}

func applyCode(code string, verifyStore emailverifystore.Provider) (email string, err error) {
	verifyData, err := verifyStore.GetByCode(code)
	if err != nil {
		return "", err
	}
	if verifyData == nil {
		return "", errors.New("code not found")
	}
	if !verifyData.DateUsed.IsZero() {
		return "", errors.New("code already used")
	}
	if verifyData.DateExpires.Before(time.Now()) {
		return "", errors.New("code expired")
	}
	logger := log.WithField("email", verifyData.Email)

	updMap := map[string]interface{}{
		"date_used": time.Now(),
	}
	err = verifyStore.UpdateByCode(code, updMap)
	if err != nil {
		logger.WithError(err).Error("email not verified, error updating EmailVerify record")
		return "", errors.New("error applying code")
	}
	return verifyData.Email, nil
}

func updateUser(email string, userStore usersstore.Provider) error {
	logger := log.WithField("email", email)

	user, err := userStore.FindByEmail(email, true)
	if err != nil {
		logger.WithError(err).Error("email not verified, error fetching user")
		return errors.New("error fetching user")
	}
	if user == nil {
		logger.Error("email not verified, user not found")
		return errors.New("user not found")
	}
	updMap := map[string]interface{}{
		"is_email_verified": true,
	}
	if user.NewEmail == email {
		// confirmed a changed email
		updMap["email"] = user.NewEmail
		updMap["new_email"] = ""
	}
	err = userStore.Update(user.ID, updMap)
	if err != nil {
		log.
			WithError(err).
			Error("error updating user email")
		return err
	}
	return nil
}

func (i impl) generateCode() string {
	sb := strings.Builder{}
	sb.Grow(24)
	for i := 0; i < 24; i++ {
		idx := rand.Int63() % int64(len(letterBytes))
		sb.WriteByte(letterBytes[idx])
	}
	return sb.String()
}
