package users

import (
	"strconv"
	"time"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"not null;default:'user'"`
	IsVerified   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubjectID is the identifier handed to the token service and the
// entitlement engine.
func (u User) SubjectID() string {
	return strconv.FormatUint(uint64(u.ID), 10)
}
