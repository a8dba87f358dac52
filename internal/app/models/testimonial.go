package models

import (
	"time"
)

// Testimonial defines the testimonial model based on the 'testimonials' table.
// Rating is bounded to [1,5].
type Testimonial struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	Company   *string   `json:"company,omitempty" db:"company"`
	Content   string    `json:"content" db:"content"`
	Rating    int       `json:"rating" db:"rating"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
