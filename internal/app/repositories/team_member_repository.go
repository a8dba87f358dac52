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

// TeamMemberRepository handles team member database operations
type TeamMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeamMemberRepository creates a new TeamMemberRepository
func NewTeamMemberRepository(db *pgxpool.Pool) *TeamMemberRepository {
	return &TeamMemberRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var teamMemberColumns = []string{
	"id", "name", "position", "bio", "image_url", "email", "linkedin_url",
	"twitter_url", "is_active", "sort_order", "created_at", "updated_at",
}

func scanTeamMember(row pgx.Row) (*models.TeamMember, error) {
	m := &models.TeamMember{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Position, &m.Bio, &m.ImageURL, &m.Email,
		&m.LinkedinURL, &m.TwitterURL, &m.IsActive, &m.SortOrder,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts a new team member and returns its identity
func (r *TeamMemberRepository) Create(ctx context.Context, m *models.TeamMember) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("team_members").
		Columns("name", "position", "bio", "image_url", "email", "linkedin_url",
			"twitter_url", "is_active", "sort_order", "created_at", "updated_at").
		Values(m.Name, m.Position, m.Bio, m.ImageURL, m.Email, m.LinkedinURL,
			m.TwitterURL, m.IsActive, m.SortOrder, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create team member query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create team member query")
		return 0, fmt.Errorf("error creating team member: %w", err)
	}

	return id, nil
}

// GetByID retrieves a team member by ID
func (r *TeamMemberRepository) GetByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	sql, args, err := r.sb.Select(teamMemberColumns...).
		From("team_members").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get team member query: %w", err)
	}

	m, err := scanTeamMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("memberID", id).Msg("Error scanning team member row")
		return nil, fmt.Errorf("error getting team member by ID: %w", err)
	}

	return m, nil
}

// GetAll retrieves all team members ordered by their display order
func (r *TeamMemberRepository) GetAll(ctx context.Context) ([]*models.TeamMember, error) {
	sql, args, err := r.sb.Select(teamMemberColumns...).
		From("team_members").
		OrderBy("sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all team members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all team members query")
		return nil, fmt.Errorf("error querying team members: %w", err)
	}
	defer rows.Close()

	members := []*models.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning team member row: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team member rows: %w", err)
	}

	return members, nil
}

// Update persists an existing team member
func (r *TeamMemberRepository) Update(ctx context.Context, m *models.TeamMember) error {
	sql, args, err := r.sb.Update("team_members").
		SetMap(map[string]interface{}{
			"name":         m.Name,
			"position":     m.Position,
			"bio":          m.Bio,
			"image_url":    m.ImageURL,
			"email":        m.Email,
			"linkedin_url": m.LinkedinURL,
			"twitter_url":  m.TwitterURL,
			"is_active":    m.IsActive,
			"sort_order":   m.SortOrder,
			"updated_at":   time.Now(),
		}).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update team member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("memberID", m.ID).Msg("Error executing update team member query")
		return fmt.Errorf("error updating team member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a team member by ID
func (r *TeamMemberRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("team_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete team member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("memberID", id).Msg("Error executing delete team member query")
		return fmt.Errorf("error deleting team member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the total number of team members
func (r *TeamMemberRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

// CountActive returns the number of active team members
func (r *TeamMemberRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, squirrel.Eq{"is_active": true})
}

func (r *TeamMemberRepository) count(ctx context.Context, where interface{}) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("team_members")
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count team members query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting team members: %w", err)
	}

	return count, nil
}
