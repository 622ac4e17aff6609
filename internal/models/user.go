// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// AnonymousName is the display name used when a user has no stored name.
const AnonymousName = "Anônimo"

// User represents a registered forum user.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"default:'Anônimo'" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the user's name or the anonymous fallback.
func (u *User) DisplayName() string {
	if u == nil || u.Name == "" {
		return AnonymousName
	}
	return u.Name
}
