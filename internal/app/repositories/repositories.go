package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a referenced identity is absent. Callers map
// it to a not-found outcome distinct from validation failures.
var ErrNotFound = errors.New("record not found")

// Repositories bundles all entity repositories for dependency wiring.
type Repositories struct {
	User       *UserRepository
	BlogPost   *BlogPostRepository
	Testimonial *TestimonialRepository
	TeamMember *TeamMemberRepository
	Scholarship *ScholarshipRepository
	Insight    *InsightRepository
	Application *ApplicationRepository
	VisitorLog *VisitorLogRepository
	ContactInquiry *ContactInquiryRepository
	Newsletter *NewsletterRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:           NewUserRepository(db),
		BlogPost:       NewBlogPostRepository(db),
		Testimonial:    NewTestimonialRepository(db),
		TeamMember:     NewTeamMemberRepository(db),
		Scholarship:    NewScholarshipRepository(db),
		Insight:        NewInsightRepository(db),
		Application:    NewApplicationRepository(db),
		VisitorLog:     NewVisitorLogRepository(db),
		ContactInquiry: NewContactInquiryRepository(db),
		Newsletter:     NewNewsletterRepository(db),
	}
}

// statementBuilder returns a squirrel builder using Postgres placeholders.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation.
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
