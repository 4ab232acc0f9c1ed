package authhandler

import (
	"fmt"
	"interview-prep-backend/config"
	"interview-prep-backend/db"
	emailverify "interview-prep-backend/lib/email-verify"
	"interview-prep-backend/lib/smtp"
	usersstore "interview-prep-backend/lib/users/store"
	authutils "interview-prep-backend/lib/utils/auth-utils"
	"interview-prep-backend/models"
	authapimodels "interview-prep-backend/models/api/auth"
	userapimodels "interview-prep-backend/models/api/user"
	dbmodels "interview-prep-backend/models/db"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) error
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error)
	Me(ctx *fiber.Ctx) (user userapimodels.User, err error)
	VerifyEmail(code string) error
	SendPasswordRecovery(email string) error
	ResetPassword(resetCode, newPassword string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		emailVerify: emailverify.NewInstance(config.Conf.Smtp.EmailSendVerification),
		userStore:   usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	emailVerify emailverify.Provider
	userStore   usersstore.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) error {
	logger := log.WithField("email", request.Email)
	userExist, err := i.userStore.ExistByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("error checking for existing user")
		return err
	}
	if userExist {
		return errors.New("a user with this email already exists")
	}
	rec := dbmodels.User{
		Password:        authutils.GetMD5Hash(request.Password),
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		Email:           request.Email,
		IsActive:        true,
		Role:            models.CandidateRole,
		IsEmailVerified: !smtp.Instance.IsConfigured(),
	}
	_, err = i.userStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("error creating user")
		return err
	}
	if smtp.Instance.IsConfigured() {
		err = i.emailVerify.SendVerifyCode(request.Email)
		if err != nil {
			logger.WithError(err).Error("error sending verification email")
			return err
		}
	}
	return nil
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.userStore.FindByEmail(email, false)
	if err != nil {
		logger.
			WithError(err).
			Error("error looking up user by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("user with this email not found")
		return authapimodels.JWTResponse{}, errors.New("user with this email not found")
	}
	if !user.IsActive {
		logger.Debug("user is deactivated")
		return authapimodels.JWTResponse{}, errors.New("user is deactivated")
	}
	if !user.IsEmailVerified {
		logger.Debug("email is not verified")
		return authapimodels.JWTResponse{}, errors.New("email is not verified")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("password check failed")
	}
	response, err = i.makeTokenPair(*user)
	if err != nil {
		logger.WithError(err).Error("error generating JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.userStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("error updating last login date")
	}
	return response, nil
}

func (i impl) RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("error looking up user")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, errors.New("user not found")
	}
	return i.makeTokenPair(*user)
}

func (i impl) Me(ctx *fiber.Ctx) (user userapimodels.User, err error) {
	userID := authutils.GetUserID(ctx)
	if userID == "" {
		return userapimodels.User{}, errors.New("user not found")
	}
	rec, err := i.userStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("error looking up user")
		return userapimodels.User{}, err
	}
	if rec == nil {
		return userapimodels.User{}, errors.New("user not found")
	}
	return rec.ToModel(), nil
}

func (i impl) VerifyEmail(code string) error {
	return i.emailVerify.VerifyCode(code)
}

func (i impl) SendPasswordRecovery(email string) error {
	logger := log.WithField("email", email)
	user, err := i.userStore.FindByEmail(email, false)
	if err != nil {
		logger.WithError(err).Error("error looking up user by email")
		return err
	}
	if user == nil {
		// do not leak account existence
		return nil
	}
	resetCode := uuid.NewString()
	err = i.userStore.Update(user.ID, map[string]interface{}{"reset_code": resetCode})
	if err != nil {
		logger.WithError(err).Error("error saving reset code")
		return err
	}
	message := fmt.Sprintf("Follow the link to reset your password: %s/reset-password?code=%s", config.Conf.Smtp.DomainForVerifyLink, resetCode)
	return smtp.Instance.SendEMail(config.Conf.Smtp.EmailSendVerification, email, message, "Password Recovery")
}

func (i impl) ResetPassword(resetCode, newPassword string) error {
	user, err := i.userStore.GetByResetCode(resetCode)
	if err != nil {
		log.WithError(err).Error("error looking up user by reset code")
		return err
	}
	if user == nil {
		return errors.New("invalid reset code")
	}
	updMap := map[string]interface{}{
		"password":   authutils.GetMD5Hash(newPassword),
		"reset_code": "",
	}
	return i.userStore.Update(user.ID, updMap)
}

func (i impl) makeTokenPair(user dbmodels.User) (response authapimodels.JWTResponse, err error) {
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
	}, nil
}
