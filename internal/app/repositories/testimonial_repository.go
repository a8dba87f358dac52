package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/pkg/logger"
)

// TestimonialRepository handles testimonial database operations
type TestimonialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(db *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var testimonialColumns = []string{
	"id", "name", "role", "company", "content", "rating", "image_url",
	"is_active", "created_at", "updated_at",
}

func scanTestimonial(row pgx.Row) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	err := row.Scan(
		&t.ID, &t.Name, &t.Role, &t.Company, &t.Content, &t.Rating,
		&t.ImageURL, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new testimonial and returns its identity
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("testimonials").
		Columns("name", "role", "company", "content", "rating", "image_url", "is_active", "created_at", "updated_at").
		Values(t.Name, t.Role, t.Company, t.Content, t.Rating, t.ImageURL, t.IsActive, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create testimonial query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create testimonial query")
		return 0, fmt.Errorf("error creating testimonial: %w", err)
	}

	return id, nil
}

// GetByID retrieves a testimonial by ID
func (r *TestimonialRepository) GetByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	sql, args, err := r.sb.Select(testimonialColumns...).
		From("testimonials").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get testimonial query: %w", err)
	}

	t, err := scanTestimonial(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("testimonialID", id).Msg("Error scanning testimonial row")
		return nil, fmt.Errorf("error getting testimonial by ID: %w", err)
	}

	return t, nil
}

// GetAll retrieves all testimonials
func (r *TestimonialRepository) GetAll(ctx context.Context) ([]*models.Testimonial, error) {
	sql, args, err := r.sb.Select(testimonialColumns...).
		From("testimonials").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all testimonials query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all testimonials query")
		return nil, fmt.Errorf("error querying testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []*models.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning testimonial row: %w", err)
		}
		testimonials = append(testimonials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating testimonial rows: %w", err)
	}

	return testimonials, nil
}

// Update persists an existing testimonial
func (r *TestimonialRepository) Update(ctx context.Context, t *models.Testimonial) error {
	sql, args, err := r.sb.Update("testimonials").
		SetMap(map[string]interface{}{
			"name":       t.Name,
			"role":       t.Role,
			"company":    t.Company,
			"content":    t.Content,
			"rating":     t.Rating,
			"image_url":  t.ImageURL,
			"is_active":  t.IsActive,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update testimonial query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("testimonialID", t.ID).Msg("Error executing update testimonial query")
		return fmt.Errorf("error updating testimonial: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a testimonial by ID
func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("testimonials").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete testimonial query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("testimonialID", id).Msg("Error executing delete testimonial query")
		return fmt.Errorf("error deleting testimonial: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the total number of testimonials
func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

// CountActive returns the number of active testimonials
func (r *TestimonialRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, squirrel.Eq{"is_active": true})
}

func (r *TestimonialRepository) count(ctx context.Context, where interface{}) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("testimonials")
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count testimonials query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting testimonials: %w", err)
	}

	return count, nil
}
