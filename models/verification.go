package models

import "time"

const (
	PurposeVerification  = "verification"
	PurposePasswordReset = "password_reset"

	// OTPValidity is how long an emailed code stays usable.
	OTPValidity = 15 * time.Minute
)

type EmailVerification struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	OTP       string `gorm:"size:6"`
	Purpose   string `gorm:"size:20"` // "verification" | "password_reset"
	IsUsed    bool
	CreatedAt time.Time
}

func (v *EmailVerification) Expired(now time.Time) bool {
	return now.Sub(v.CreatedAt) > OTPValidity
}

// RevokedToken denylists a bearer token after logout. Rows past
// ExpiresAt are harmless; the token wouldn't validate anyway.
type RevokedToken struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"uniqueIndex;size:512"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
