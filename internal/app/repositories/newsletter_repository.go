package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/logger"
)

// NewsletterRepository handles newsletter subscription database operations
type NewsletterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsletterRepository creates a new NewsletterRepository
func NewNewsletterRepository(db *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var newsletterColumns = []string{
	"id", "email", "is_active", "subscribed_at", "unsubscribed_at",
}

func scanSubscription(row pgx.Row) (*models.NewsletterSubscription, error) {
	s := &models.NewsletterSubscription{}
	err := row.Scan(&s.ID, &s.Email, &s.IsActive, &s.SubscribedAt, &s.UnsubscribedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new subscription. Email addresses are unique across the
// table, so a duplicate maps to ErrSubscriptionExists.
func (r *NewsletterRepository) Create(ctx context.Context, s *models.NewsletterSubscription) error {
	sql, args, err := r.sb.Insert("newsletter_subscriptions").
		Columns("email", "is_active").
		Values(s.Email, s.IsActive).
		Suffix("RETURNING id, subscribed_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create subscription query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.SubscribedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrSubscriptionExists
		}
		logger.Error().Err(err).Msg("Error creating newsletter subscription")
		return fmt.Errorf("error creating newsletter subscription: %w", err)
	}

	return nil
}

// GetByID retrieves a subscription by its ID
func (r *NewsletterRepository) GetByID(ctx context.Context, id int64) (*models.NewsletterSubscription, error) {
	sql, args, err := r.sb.Select(newsletterColumns...).
		From("newsletter_subscriptions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subscription query: %w", err)
	}

	s, err := scanSubscription(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting subscription by ID: %w", err)
	}

	return s, nil
}

// GetByEmail retrieves a subscription by email address
func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	sql, args, err := r.sb.Select(newsletterColumns...).
		From("newsletter_subscriptions").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subscription by email query: %w", err)
	}

	s, err := scanSubscription(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting subscription by email: %w", err)
	}

	return s, nil
}

// GetAll retrieves subscriptions newest first
func (r *NewsletterRepository) GetAll(ctx context.Context, limit, offset uint64) ([]*models.NewsletterSubscription, error) {
	sql, args, err := r.sb.Select(newsletterColumns...).
		From("newsletter_subscriptions").
		OrderBy("subscribed_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all subscriptions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all subscriptions query")
		return nil, fmt.Errorf("error querying subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []*models.NewsletterSubscription{}
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning subscription row: %w", err)
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", err)
	}

	return subs, nil
}

// Update persists changes to an existing subscription
func (r *NewsletterRepository) Update(ctx context.Context, s *models.NewsletterSubscription) error {
	sql, args, err := r.sb.Update("newsletter_subscriptions").
		SetMap(map[string]interface{}{
			"email":           s.Email,
			"is_active":       s.IsActive,
			"unsubscribed_at": s.UnsubscribedAt,
		}).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update subscription query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subscriptionID", s.ID).Msg("Error updating subscription")
		return fmt.Errorf("error updating subscription: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a subscription by its ID
func (r *NewsletterRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("newsletter_subscriptions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete subscription query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subscriptionID", id).Msg("Error deleting subscription")
		return fmt.Errorf("error deleting subscription: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// CountActive returns the number of active subscriptions
func (r *NewsletterRepository) CountActive(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("newsletter_subscriptions").
		Where(squirrel.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count active subscriptions query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting active subscriptions: %w", err)
	}

	return count, nil
}
