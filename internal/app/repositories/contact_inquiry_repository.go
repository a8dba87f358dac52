package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/pkg/logger"
)

// ContactInquiryRepository handles contact inquiry database operations
type ContactInquiryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContactInquiryRepository creates a new ContactInquiryRepository
func NewContactInquiryRepository(db *pgxpool.Pool) *ContactInquiryRepository {
	return &ContactInquiryRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var contactInquiryColumns = []string{
	"id", "name", "email", "subject", "message", "is_resolved",
	"resolved_at", "resolved_by", "created_at",
}

func scanContactInquiry(row pgx.Row) (*models.ContactInquiry, error) {
	c := &models.ContactInquiry{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message,
		&c.IsResolved, &c.ResolvedAt, &c.ResolvedBy, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new contact inquiry and sets the generated ID
func (r *ContactInquiryRepository) Create(ctx context.Context, c *models.ContactInquiry) error {
	sql, args, err := r.sb.Insert("contact_inquiries").
		Columns("name", "email", "subject", "message", "is_resolved").
		Values(c.Name, c.Email, c.Subject, c.Message, c.IsResolved).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create contact inquiry query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating contact inquiry")
		return fmt.Errorf("error creating contact inquiry: %w", err)
	}

	return nil
}

// GetByID retrieves a contact inquiry by its ID
func (r *ContactInquiryRepository) GetByID(ctx context.Context, id int64) (*models.ContactInquiry, error) {
	sql, args, err := r.sb.Select(contactInquiryColumns...).
		From("contact_inquiries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get contact inquiry query: %w", err)
	}

	c, err := scanContactInquiry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting contact inquiry by ID: %w", err)
	}

	return c, nil
}

// GetAll retrieves contact inquiries newest first
func (r *ContactInquiryRepository) GetAll(ctx context.Context, limit, offset uint64) ([]*models.ContactInquiry, error) {
	sql, args, err := r.sb.Select(contactInquiryColumns...).
		From("contact_inquiries").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all contact inquiries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all contact inquiries query")
		return nil, fmt.Errorf("error querying contact inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []*models.ContactInquiry{}
	for rows.Next() {
		c, err := scanContactInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning contact inquiry row: %w", err)
		}
		inquiries = append(inquiries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact inquiry rows: %w", err)
	}

	return inquiries, nil
}

// Update persists changes to an existing contact inquiry
func (r *ContactInquiryRepository) Update(ctx context.Context, c *models.ContactInquiry) error {
	sql, args, err := r.sb.Update("contact_inquiries").
		SetMap(map[string]interface{}{
			"name":        c.Name,
			"email":       c.Email,
			"subject":     c.Subject,
			"message":     c.Message,
			"is_resolved": c.IsResolved,
			"resolved_at": c.ResolvedAt,
			"resolved_by": c.ResolvedBy,
		}).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update contact inquiry query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("inquiryID", c.ID).Msg("Error updating contact inquiry")
		return fmt.Errorf("error updating contact inquiry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a contact inquiry by its ID
func (r *ContactInquiryRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("contact_inquiries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete contact inquiry query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("inquiryID", id).Msg("Error deleting contact inquiry")
		return fmt.Errorf("error deleting contact inquiry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// CountUnresolved returns the number of inquiries still awaiting a response
func (r *ContactInquiryRepository) CountUnresolved(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("contact_inquiries").
		Where(squirrel.Eq{"is_resolved": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count unresolved inquiries query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting unresolved inquiries: %w", err)
	}

	return count, nil
}
