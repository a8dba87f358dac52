package models

import (
	"time"
)

// BlogPost defines the blog post model based on the 'blog_posts' table.
// Slug is unique; when not supplied it is derived from the title.
type BlogPost struct {
	ID               int64      `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Slug             string     `json:"slug" db:"slug"`
	Excerpt          *string    `json:"excerpt,omitempty" db:"excerpt"`
	Content          string     `json:"content" db:"content"`
	FeaturedImageURL *string    `json:"featured_image_url,omitempty" db:"featured_image_url"`
	IsPublished      bool       `json:"is_published" db:"is_published"`
	MetaDescription  *string    `json:"meta_description,omitempty" db:"meta_description"`
	Tags             *string    `json:"tags,omitempty" db:"tags"` // comma-separated
	AuthorID         int64      `json:"author_id" db:"author_id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
	PublishedAt      *time.Time `json:"published_at,omitempty" db:"published_at"`
}
