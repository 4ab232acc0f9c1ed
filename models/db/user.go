package dbmodels

import (
	"fmt"
	"interview-prep-backend/models"
	userapimodels "interview-prep-backend/models/api/user"
	"time"
)

type User struct {
	BaseModel
	Password        string `gorm:"type:varchar(128)"`
	FirstName       string `gorm:"type:varchar(150)"`
	LastName        string `gorm:"type:varchar(150)"`
	Email           string `gorm:"type:varchar(255);index"`
	NewEmail        string `gorm:"type:varchar(255)"`
	IsActive        bool
	IsEmailVerified bool
	ResetCode       string `gorm:"type:varchar(36)"`
	Role            models.UserRole `gorm:"type:varchar(50)"`
	LastLogin       time.Time
}

func (r User) ToModel() userapimodels.User {
	return userapimodels.User{
		ID: r.ID,
		UserCommonData: userapimodels.UserCommonData{
			Email:     r.Email,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			IsAdmin:   r.Role.IsAdmin(),
			Role:      r.Role.ToHuman(),
		},
	}
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
