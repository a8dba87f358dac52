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

// InsightRepository handles insight article database operations
type InsightRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInsightRepository creates a new InsightRepository
func NewInsightRepository(db *pgxpool.Pool) *InsightRepository {
	return &InsightRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var insightColumns = []string{
	"id", "title", "content", "category", "is_featured", "is_published",
	"image_url", "author_id", "created_at", "updated_at",
}

func scanInsight(row pgx.Row) (*models.Insight, error) {
	i := &models.Insight{}
	err := row.Scan(
		&i.ID, &i.Title, &i.Content, &i.Category, &i.IsFeatured,
		&i.IsPublished, &i.ImageURL, &i.AuthorID, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// Create inserts a new insight and returns its identity
func (r *InsightRepository) Create(ctx context.Context, i *models.Insight) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("insights").
		Columns("title", "content", "category", "is_featured", "is_published",
			"image_url", "author_id", "created_at", "updated_at").
		Values(i.Title, i.Content, i.Category, i.IsFeatured, i.IsPublished,
			i.ImageURL, i.AuthorID, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create insight query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create insight query")
		return 0, fmt.Errorf("error creating insight: %w", err)
	}

	return id, nil
}

// GetByID retrieves an insight by ID
func (r *InsightRepository) GetByID(ctx context.Context, id int64) (*models.Insight, error) {
	sql, args, err := r.sb.Select(insightColumns...).
		From("insights").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get insight query: %w", err)
	}

	i, err := scanInsight(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("insightID", id).Msg("Error scanning insight row")
		return nil, fmt.Errorf("error getting insight by ID: %w", err)
	}

	return i, nil
}

// GetAll retrieves all insights, newest first
func (r *InsightRepository) GetAll(ctx context.Context) ([]*models.Insight, error) {
	sql, args, err := r.sb.Select(insightColumns...).
		From("insights").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all insights query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all insights query")
		return nil, fmt.Errorf("error querying insights: %w", err)
	}
	defer rows.Close()

	insights := []*models.Insight{}
	for rows.Next() {
		i, err := scanInsight(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning insight row: %w", err)
		}
		insights = append(insights, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating insight rows: %w", err)
	}

	return insights, nil
}

// Update persists an existing insight
func (r *InsightRepository) Update(ctx context.Context, i *models.Insight) error {
	sql, args, err := r.sb.Update("insights").
		SetMap(map[string]interface{}{
			"title":        i.Title,
			"content":      i.Content,
			"category":     i.Category,
			"is_featured":  i.IsFeatured,
			"is_published": i.IsPublished,
			"image_url":    i.ImageURL,
			"updated_at":   time.Now(),
		}).
		Where(squirrel.Eq{"id": i.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update insight query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("insightID", i.ID).Msg("Error executing update insight query")
		return fmt.Errorf("error updating insight: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an insight by ID
func (r *InsightRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("insights").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete insight query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("insightID", id).Msg("Error executing delete insight query")
		return fmt.Errorf("error deleting insight: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
