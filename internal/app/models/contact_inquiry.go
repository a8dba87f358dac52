package models

import (
	"time"
)

// ContactInquiry defines the contact inquiry model based on the
// 'contact_inquiries' table. ResolvedAt and ResolvedBy are set only when
// IsResolved is true.
type ContactInquiry struct {
	ID         int64      `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Email      string     `json:"email" db:"email"`
	Subject    string     `json:"subject" db:"subject"`
	Message    string     `json:"message" db:"message"`
	IsResolved bool       `json:"is_resolved" db:"is_resolved"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
	ResolvedBy *int64     `json:"resolved_by,omitempty" db:"resolved_by"`
}
