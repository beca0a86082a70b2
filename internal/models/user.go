// Package models contains data models for the dictionary service.
package models

import "time"

// Roles recognized by the service.
const (
	RoleAdmin       = "admin"
	RoleContributor = "contributor"
)

// User represents a registered account in the system.
//
// EmailVerificationToken is set only while EmailVerified is false; verifying
// the address clears the token in the same update.
type User struct {
	ID                     string    `json:"id" gorm:"primaryKey;size:36"`
	Username               string    `json:"username" gorm:"uniqueIndex;not null"`
	Email                  string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash           string    `json:"-" gorm:"not null"`
	Role                   string    `json:"role" gorm:"not null;default:contributor"`
	EmailVerified          bool      `json:"emailVerified" gorm:"not null;default:false"`
	EmailVerificationToken *string   `json:"emailVerificationToken,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// HasRole reports whether the user's role is one of the given roles.
func (u *User) HasRole(roles ...string) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}

// ValidRole reports whether role is a recognized role name.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleContributor
}
