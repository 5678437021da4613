package users

import "time"

// VerificationToken backs both email verification and password reset.
type VerificationToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Token     string `gorm:"not null;uniqueIndex:idx_verification_tokens_token"`
	Type      string `gorm:"type:varchar(30);not null;default:'email_verify'"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

const (
	TokenTypeEmailVerify   = "email_verify"
	TokenTypePasswordReset = "password_reset"
)
