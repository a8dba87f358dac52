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

// ScholarshipRepository handles scholarship database operations
type ScholarshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScholarshipRepository creates a new ScholarshipRepository
func NewScholarshipRepository(db *pgxpool.Pool) *ScholarshipRepository {
	return &ScholarshipRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var scholarshipColumns = []string{
	"id", "title", "description", "eligibility_criteria", "amount", "deadline",
	"application_url", "is_active", "country", "field_of_study", "created_at", "updated_at",
}

func scanScholarship(row pgx.Row) (*models.Scholarship, error) {
	s := &models.Scholarship{}
	err := row.Scan(
		&s.ID, &s.Title, &s.Description, &s.EligibilityCriteria, &s.Amount,
		&s.Deadline, &s.ApplicationURL, &s.IsActive, &s.Country, &s.FieldOfStudy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new scholarship and returns its identity
func (r *ScholarshipRepository) Create(ctx context.Context, s *models.Scholarship) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("scholarships").
		Columns("title", "description", "eligibility_criteria", "amount", "deadline",
			"application_url", "is_active", "country", "field_of_study", "created_at", "updated_at").
		Values(s.Title, s.Description, s.EligibilityCriteria, s.Amount, s.Deadline,
			s.ApplicationURL, s.IsActive, s.Country, s.FieldOfStudy, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create scholarship query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create scholarship query")
		return 0, fmt.Errorf("error creating scholarship: %w", err)
	}

	return id, nil
}

// GetByID retrieves a scholarship by ID
func (r *ScholarshipRepository) GetByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	sql, args, err := r.sb.Select(scholarshipColumns...).
		From("scholarships").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get scholarship query: %w", err)
	}

	s, err := scanScholarship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("scholarshipID", id).Msg("Error scanning scholarship row")
		return nil, fmt.Errorf("error getting scholarship by ID: %w", err)
	}

	return s, nil
}

// GetAll retrieves all scholarships, newest first
func (r *ScholarshipRepository) GetAll(ctx context.Context) ([]*models.Scholarship, error) {
	sql, args, err := r.sb.Select(scholarshipColumns...).
		From("scholarships").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all scholarships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all scholarships query")
		return nil, fmt.Errorf("error querying scholarships: %w", err)
	}
	defer rows.Close()

	scholarships := []*models.Scholarship{}
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning scholarship row: %w", err)
		}
		scholarships = append(scholarships, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scholarship rows: %w", err)
	}

	return scholarships, nil
}

// Update persists an existing scholarship
func (r *ScholarshipRepository) Update(ctx context.Context, s *models.Scholarship) error {
	sql, args, err := r.sb.Update("scholarships").
		SetMap(map[string]interface{}{
			"title":                s.Title,
			"description":          s.Description,
			"eligibility_criteria": s.EligibilityCriteria,
			"amount":               s.Amount,
			"deadline":             s.Deadline,
			"application_url":      s.ApplicationURL,
			"is_active":            s.IsActive,
			"country":              s.Country,
			"field_of_study":       s.FieldOfStudy,
			"updated_at":           time.Now(),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update scholarship query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scholarshipID", s.ID).Msg("Error executing update scholarship query")
		return fmt.Errorf("error updating scholarship: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a scholarship by ID
func (r *ScholarshipRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("scholarships").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete scholarship query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scholarshipID", id).Msg("Error executing delete scholarship query")
		return fmt.Errorf("error deleting scholarship: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the total number of scholarships
func (r *ScholarshipRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

// CountActive returns the number of active scholarships
func (r *ScholarshipRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, squirrel.Eq{"is_active": true})
}

func (r *ScholarshipRepository) count(ctx context.Context, where interface{}) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("scholarships")
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count scholarships query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting scholarships: %w", err)
	}

	return count, nil
}
