package models

import (
	"time"
)

// Scholarship defines the scholarship model based on the 'scholarships' table.
// Amount, when present, must be non-negative.
type Scholarship struct {
	ID                  int64      `json:"id" db:"id"`
	Title               string     `json:"title" db:"title"`
	Description         string     `json:"description" db:"description"`
	EligibilityCriteria string     `json:"eligibility_criteria" db:"eligibility_criteria"`
	Amount              *float64   `json:"amount,omitempty" db:"amount"`
	Deadline            *time.Time `json:"deadline,omitempty" db:"deadline"`
	ApplicationURL      *string    `json:"application_url,omitempty" db:"application_url"`
	IsActive            bool       `json:"is_active" db:"is_active"`
	Country             *string    `json:"country,omitempty" db:"country"`
	FieldOfStudy        *string    `json:"field_of_study,omitempty" db:"field_of_study"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}
