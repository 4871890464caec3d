package domain

import "time"

const ROLE_SUPERADMIN = "superadmin"

type Users struct {
	Model
	UUID      string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	FirstName string `gorm:"size:64"`
	LastName  string `gorm:"size:64"`
	Role      string `gorm:"size:32"` // empty or ROLE_SUPERADMIN
}

func (u *Users) IsSuperadmin() bool {
	return u.Role == ROLE_SUPERADMIN
}

// Sessions are the opaque tokens handed out after a sign-in code exchange.
// The token is the only thing the browser ever sees.
type Sessions struct {
	Model
	Token     string    `gorm:"primaryKey;size:36"`
	UserUUID  string    `gorm:"size:36;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (s *Sessions) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
