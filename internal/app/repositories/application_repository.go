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

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var applicationColumns = []string{
	"id", "full_name", "email", "phone", "country", "field_of_interest",
	"education_level", "message", "status", "admin_notes", "user_id",
	"created_at", "updated_at", "reviewed_at", "reviewed_by",
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	a := &models.Application{}
	err := row.Scan(
		&a.ID, &a.FullName, &a.Email, &a.Phone, &a.Country, &a.FieldOfInterest,
		&a.EducationLevel, &a.Message, &a.Status, &a.AdminNotes, &a.UserID,
		&a.CreatedAt, &a.UpdatedAt, &a.ReviewedAt, &a.ReviewedBy,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new application and returns its identity
func (r *ApplicationRepository) Create(ctx context.Context, a *models.Application) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("applications").
		Columns("full_name", "email", "phone", "country", "field_of_interest",
			"education_level", "message", "status", "admin_notes", "user_id",
			"created_at", "updated_at").
		Values(a.FullName, a.Email, a.Phone, a.Country, a.FieldOfInterest,
			a.EducationLevel, a.Message, a.Status, a.AdminNotes, a.UserID, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create application query")
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return id, nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	a, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error scanning application row")
		return nil, fmt.Errorf("error getting application by ID: %w", err)
	}

	return a, nil
}

// GetAll retrieves all applications, newest first
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("applications").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all applications query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	applications := []*models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return applications, nil
}

// Update persists an existing application
func (r *ApplicationRepository) Update(ctx context.Context, a *models.Application) error {
	sql, args, err := r.sb.Update("applications").
		SetMap(map[string]interface{}{
			"full_name":         a.FullName,
			"email":             a.Email,
			"phone":             a.Phone,
			"country":           a.Country,
			"field_of_interest": a.FieldOfInterest,
			"education_level":   a.EducationLevel,
			"message":           a.Message,
			"status":            a.Status,
			"admin_notes":       a.AdminNotes,
			"reviewed_at":       a.ReviewedAt,
			"reviewed_by":       a.ReviewedBy,
			"updated_at":        time.Now(),
		}).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update application query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", a.ID).Msg("Error executing update application query")
		return fmt.Errorf("error updating application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an application by ID
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete application query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing delete application query")
		return fmt.Errorf("error deleting application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the total number of applications
func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("applications").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}

	return count, nil
}

// CountByStatus counts applications holding the given review status
func (r *ApplicationRepository) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("applications").
		Where(squirrel.Eq{"status": status}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count applications by status query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting applications by status: %w", err)
	}

	return count, nil
}
