package models

import (
	"time"
)

// UserRole defines the coarse access class attached to a user.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleUser      UserRole = "user"
	RoleApplicant UserRole = "applicant"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             int64     `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"` // excluded from JSON
	FullName       string    `json:"full_name" db:"full_name"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	Role           UserRole  `json:"role" db:"role"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
