package dbmodels

import "time"

// EmailVerify is a one-shot confirmation code sent to an address.
type EmailVerify struct {
	Email         string `gorm:"type:varchar(255)"`
	Code          string `gorm:"type:varchar(24);index"`
	DateGenerated time.Time
	DateExpires   time.Time
	DateUsed      time.Time
}
