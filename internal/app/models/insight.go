package models

import (
	"time"
)

// Insight defines the insight article model based on the 'insights' table
type Insight struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Category    string    `json:"category" db:"category"`
	IsFeatured  bool      `json:"is_featured" db:"is_featured"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	AuthorID    int64     `json:"author_id" db:"author_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
