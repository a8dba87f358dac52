package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/pkg/logger"
)

// VisitorLogRepository handles visitor log database operations. The table is
// append-only: rows are inserted by the logging middleware and only ever read
// afterwards.
type VisitorLogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewVisitorLogRepository creates a new VisitorLogRepository
func NewVisitorLogRepository(db *pgxpool.Pool) *VisitorLogRepository {
	return &VisitorLogRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var visitorLogColumns = []string{
	"id", "ip_address", "user_agent", "endpoint", "method", "status_code",
	"response_time", "referrer", "user_id", "timestamp",
}

func scanVisitorLog(row pgx.Row) (*models.VisitorLog, error) {
	v := &models.VisitorLog{}
	err := row.Scan(
		&v.ID, &v.IPAddress, &v.UserAgent, &v.Endpoint, &v.Method,
		&v.StatusCode, &v.ResponseTime, &v.Referrer, &v.UserID, &v.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Insert appends a new visitor log row
func (r *VisitorLogRepository) Insert(ctx context.Context, v *models.VisitorLog) error {
	ts := v.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	sql, args, err := r.sb.Insert("visitor_logs").
		Columns("ip_address", "user_agent", "endpoint", "method", "status_code",
			"response_time", "referrer", "user_id", "timestamp").
		Values(v.IPAddress, v.UserAgent, v.Endpoint, v.Method, v.StatusCode,
			v.ResponseTime, v.Referrer, v.UserID, ts).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert visitor log query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error inserting visitor log: %w", err)
	}

	return nil
}

// GetRecent retrieves the most recent visitor log rows up to limit
func (r *VisitorLogRepository) GetRecent(ctx context.Context, limit uint64) ([]*models.VisitorLog, error) {
	sql, args, err := r.sb.Select(visitorLogColumns...).
		From("visitor_logs").
		OrderBy("timestamp DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get recent visitor logs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get recent visitor logs query")
		return nil, fmt.Errorf("error querying visitor logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.VisitorLog{}
	for rows.Next() {
		v, err := scanVisitorLog(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning visitor log row: %w", err)
		}
		logs = append(logs, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating visitor log rows: %w", err)
	}

	return logs, nil
}

// Count returns the total number of logged requests
func (r *VisitorLogRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("visitor_logs").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count visitor logs query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting visitor logs: %w", err)
	}

	return count, nil
}

// CountUniqueIPs returns the number of distinct visitor IP addresses
func (r *VisitorLogRepository) CountUniqueIPs(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(DISTINCT ip_address)").From("visitor_logs").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count unique visitors query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting unique visitors: %w", err)
	}

	return count, nil
}
