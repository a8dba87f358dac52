package models

import (
	"time"
)

// TeamMember defines the team member model based on the 'team_members' table
type TeamMember struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Position    string    `json:"position" db:"position"`
	Bio         *string   `json:"bio,omitempty" db:"bio"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	Email       *string   `json:"email,omitempty" db:"email"`
	LinkedinURL *string   `json:"linkedin_url,omitempty" db:"linkedin_url"`
	TwitterURL  *string   `json:"twitter_url,omitempty" db:"twitter_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	SortOrder   int       `json:"sort_order" db:"sort_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
