package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	FirstName    string    `json:"firstName" db:"first_name"`  // First name
	LastName     string    `json:"lastName" db:"last_name"`    // Last name
	Email        string    `json:"email" db:"email"`           // Unique email, matched case-sensitively
	Phone        string    `json:"phone" db:"phone"`           // Phone number
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserProfile is the public projection of a user returned by the API.
type UserProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Profile returns the public projection of the user.
func (u *UserDB) Profile() UserProfile {
	return UserProfile{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}
