package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned from create endpoints with the new identity
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// HealthResponse is the payload of the health check endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// UploadResponse is returned after a successful file upload
type UploadResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// AnalyticsResponse aggregates dashboard counts across entities
type AnalyticsResponse struct {
	Visitors     VisitorStats     `json:"visitors"`
	Applications ApplicationStats `json:"applications"`
	Content      ContentStats     `json:"content"`
}

// VisitorStats holds visitor-log aggregates
type VisitorStats struct {
	Total  int64 `json:"total"`
	Unique int64 `json:"unique"`
}

// ApplicationStats holds application counts by status
type ApplicationStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
	UnderReview int64 `json:"under_review"`
}

// ContentStats holds content-entity counts
type ContentStats struct {
	BlogPosts    PublishedStats `json:"blog_posts"`
	TeamMembers  ActiveStats    `json:"team_members"`
	Testimonials ActiveStats    `json:"testimonials"`
	Scholarships ActiveStats    `json:"scholarships"`
}

// PublishedStats counts rows by published state
type PublishedStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
}

// ActiveStats counts rows by active flag
type ActiveStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}
