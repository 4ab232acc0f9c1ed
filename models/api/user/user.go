package userapimodels

import "github.com/pkg/errors"

type UserCommonData struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
	Role      string `json:"role"`
}

type User struct {
	ID string `json:"id"`
	UserCommonData
}

type UpdateUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (r UpdateUser) Validate() error {
	if r.FirstName == "" {
		return errors.New("first name is not set")
	}
	if r.Email == "" {
		return errors.New("email is not set")
	}
	return nil
}
