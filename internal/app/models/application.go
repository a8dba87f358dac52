package models

import (
	"time"
)

// ApplicationStatus is the review state of an application. Transitions are
// deliberately unconstrained; any status may follow any other.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusApproved    ApplicationStatus = "approved"
	StatusRejected    ApplicationStatus = "rejected"
	StatusUnderReview ApplicationStatus = "under_review"
)

// ValidApplicationStatus reports whether s is one of the known status values.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusUnderReview:
		return true
	}
	return false
}

// Application defines the application model based on the 'applications' table
type Application struct {
	ID              int64             `json:"id" db:"id"`
	FullName        string            `json:"full_name" db:"full_name"`
	Email           string            `json:"email" db:"email"`
	Phone           string            `json:"phone" db:"phone"`
	Country         string            `json:"country" db:"country"`
	FieldOfInterest string            `json:"field_of_interest" db:"field_of_interest"`
	EducationLevel  string            `json:"education_level" db:"education_level"`
	Message         *string           `json:"message,omitempty" db:"message"`
	Status          ApplicationStatus `json:"status" db:"status"`
	AdminNotes      *string           `json:"admin_notes,omitempty" db:"admin_notes"`
	UserID          *int64            `json:"user_id,omitempty" db:"user_id"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty" db:"reviewed_at"`
	ReviewedBy      *int64            `json:"reviewed_by,omitempty" db:"reviewed_by"`
}
