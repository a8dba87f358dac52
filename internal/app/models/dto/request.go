package dto

import (
	"time"

	"github.com/mtendere/educonsult-admin/internal/app/models"
)

// LoginRequest carries admin login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --- Users ---

// CreateUserRequest is the payload for creating a user
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	FullName string  `json:"full_name" binding:"required"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// UpdateUserRequest merges provided fields over the stored user.
// Nil fields keep their previous value.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// --- Blog posts ---

// CreateBlogPostRequest is the payload for creating a blog post.
// Slug is optional; it is derived from the title when absent.
type CreateBlogPostRequest struct {
	Title            string  `json:"title" binding:"required"`
	Slug             string  `json:"slug"`
	Excerpt          *string `json:"excerpt"`
	Content          string  `json:"content" binding:"required"`
	FeaturedImageURL *string `json:"featured_image_url"`
	IsPublished      *bool   `json:"is_published"`
	MetaDescription  *string `json:"meta_description"`
	Tags             *string `json:"tags"`
}

// UpdateBlogPostRequest merges provided fields over the stored post
type UpdateBlogPostRequest struct {
	Title            *string `json:"title"`
	Excerpt          *string `json:"excerpt"`
	Content          *string `json:"content"`
	FeaturedImageURL *string `json:"featured_image_url"`
	IsPublished      *bool   `json:"is_published"`
	MetaDescription  *string `json:"meta_description"`
	Tags             *string `json:"tags"`
}

// --- Testimonials ---

// CreateTestimonialRequest is the payload for creating a testimonial
type CreateTestimonialRequest struct {
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	Company  *string `json:"company"`
	Content  string  `json:"content" binding:"required"`
	Rating   int     `json:"rating" binding:"required"`
	ImageURL *string `json:"image_url"`
	IsActive *bool   `json:"is_active"`
}

// UpdateTestimonialRequest merges provided fields over the stored testimonial
type UpdateTestimonialRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Company  *string `json:"company"`
	Content  *string `json:"content"`
	Rating   *int    `json:"rating"`
	ImageURL *string `json:"image_url"`
	IsActive *bool   `json:"is_active"`
}

// --- Team members ---

// CreateTeamMemberRequest is the payload for creating a team member
type CreateTeamMemberRequest struct {
	Name        string  `json:"name" binding:"required"`
	Position    string  `json:"position" binding:"required"`
	Bio         *string `json:"bio"`
	ImageURL    *string `json:"image_url"`
	Email       *string `json:"email"`
	LinkedinURL *string `json:"linkedin_url"`
	TwitterURL  *string `json:"twitter_url"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

// UpdateTeamMemberRequest merges provided fields over the stored team member
type UpdateTeamMemberRequest struct {
	Name        *string `json:"name"`
	Position    *string `json:"position"`
	Bio         *string `json:"bio"`
	ImageURL    *string `json:"image_url"`
	Email       *string `json:"email"`
	LinkedinURL *string `json:"linkedin_url"`
	TwitterURL  *string `json:"twitter_url"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

// --- Scholarships ---

// CreateScholarshipRequest is the payload for creating a scholarship
type CreateScholarshipRequest struct {
	Title               string     `json:"title" binding:"required"`
	Description         string     `json:"description" binding:"required"`
	EligibilityCriteria string     `json:"eligibility_criteria"`
	Amount              *float64   `json:"amount"`
	Deadline            *time.Time `json:"deadline"`
	ApplicationURL      *string    `json:"application_url"`
	IsActive            *bool      `json:"is_active"`
	Country             *string    `json:"country"`
	FieldOfStudy        *string    `json:"field_of_study"`
}

// UpdateScholarshipRequest merges provided fields over the stored scholarship
type UpdateScholarshipRequest struct {
	Title               *string    `json:"title"`
	Description         *string    `json:"description"`
	EligibilityCriteria *string    `json:"eligibility_criteria"`
	Amount              *float64   `json:"amount"`
	Deadline            *time.Time `json:"deadline"`
	ApplicationURL      *string    `json:"application_url"`
	IsActive            *bool      `json:"is_active"`
	Country             *string    `json:"country"`
	FieldOfStudy        *string    `json:"field_of_study"`
}

// --- Insights ---

// CreateInsightRequest is the payload for creating an insight article
type CreateInsightRequest struct {
	Title       string  `json:"title" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	IsFeatured  *bool   `json:"is_featured"`
	IsPublished *bool   `json:"is_published"`
	ImageURL    *string `json:"image_url"`
}

// UpdateInsightRequest merges provided fields over the stored insight
type UpdateInsightRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	IsFeatured  *bool   `json:"is_featured"`
	IsPublished *bool   `json:"is_published"`
	ImageURL    *string `json:"image_url"`
}

// --- Applications ---

// CreateApplicationRequest is the website intake payload for an application
type CreateApplicationRequest struct {
	FullName        string  `json:"full_name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required"`
	Country         string  `json:"country" binding:"required"`
	FieldOfInterest string  `json:"field_of_interest" binding:"required"`
	EducationLevel  string  `json:"education_level" binding:"required"`
	Message         *string `json:"message"`
}

// UpdateApplicationStatusRequest is the narrow review operation: only the
// status and admin notes may change through it.
type UpdateApplicationStatusRequest struct {
	Status     models.ApplicationStatus `json:"status" binding:"required"`
	AdminNotes *string                  `json:"admin_notes"`
}

// --- Contact inquiries ---

// CreateContactInquiryRequest is the website intake payload for an inquiry
type CreateContactInquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateContactInquiryRequest merges provided fields over the stored inquiry
type UpdateContactInquiryRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Subject    *string `json:"subject"`
	Message    *string `json:"message"`
	IsResolved *bool   `json:"is_resolved"`
}

// RespondContactInquiryRequest carries the response sent to the inquirer
type RespondContactInquiryRequest struct {
	Message string `json:"message" binding:"required"`
}

// --- Newsletter subscriptions ---

// SubscribeRequest is the payload for subscribing to the newsletter
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateSubscriptionRequest toggles a subscription's active flag
type UpdateSubscriptionRequest struct {
	IsActive *bool `json:"is_active"`
}
