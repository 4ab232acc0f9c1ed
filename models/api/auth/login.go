package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("email has an invalid format")
	}
	return nil
}

type PasswordRecovery struct {
	Email string `json:"email"` // login email, recovery instructions are sent there
}

func (r PasswordRecovery) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("email has an invalid format")
	}
	return nil
}

type PasswordResetRequest struct {
	ResetCode   string `json:"reset_code"`
	NewPassword string `json:"new_password"`
}

func (r PasswordResetRequest) Validate() error {
	if r.ResetCode == "" {
		return errors.New("invalid reset code")
	}
	if r.NewPassword == "" {
		return errors.New("new password is not set")
	}
	return nil
}
