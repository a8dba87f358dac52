package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/repositories"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/email"
)

type teamMemberRepository interface {
	Create(ctx context.Context, m *models.TeamMember) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.TeamMember, error)
	GetAll(ctx context.Context) ([]*models.TeamMember, error)
	Update(ctx context.Context, m *models.TeamMember) error
	Delete(ctx context.Context, id int64) error
}

// TeamService defines the interface for team member operations
type TeamService interface {
	CreateMember(ctx context.Context, req *dto.CreateTeamMemberRequest) (*models.TeamMember, error)
	GetMember(ctx context.Context, id int64) (*models.TeamMember, error)
	ListMembers(ctx context.Context) ([]*models.TeamMember, error)
	UpdateMember(ctx context.Context, id int64, req *dto.UpdateTeamMemberRequest) (*models.TeamMember, error)
	DeleteMember(ctx context.Context, id int64) error
}

// teamServiceImpl implements TeamService
type teamServiceImpl struct {
	repo   teamMemberRepository
	mailer email.Service
	logger zerolog.Logger
}

// NewTeamService creates a new TeamService
func NewTeamService(repo teamMemberRepository, mailer email.Service, logger zerolog.Logger) TeamService {
	return &teamServiceImpl{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

// CreateMember creates a team member
func (s *teamServiceImpl) CreateMember(ctx context.Context, req *dto.CreateTeamMemberRequest) (*models.TeamMember, error) {
	m := &models.TeamMember{
		Name:        req.Name,
		Position:    req.Position,
		Bio:         req.Bio,
		ImageURL:    req.ImageURL,
		Email:       req.Email,
		LinkedinURL: req.LinkedinURL,
		TwitterURL:  req.TwitterURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		m.SortOrder = *req.SortOrder
	}

	id, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id

	notifyAdmin(s.mailer, s.logger, "Team Member", "created", fmt.Sprintf("Team member %s (%s) was added.", m.Name, m.Position))
	return m, nil
}

// GetMember retrieves a team member by ID
func (s *teamServiceImpl) GetMember(ctx context.Context, id int64) (*models.TeamMember, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("team member not found")
		}
		return nil, err
	}
	return m, nil
}

// ListMembers retrieves all team members ordered for display
func (s *teamServiceImpl) ListMembers(ctx context.Context) ([]*models.TeamMember, error) {
	return s.repo.GetAll(ctx)
}

// UpdateMember merges the provided fields over the stored team member
func (s *teamServiceImpl) UpdateMember(ctx context.Context, id int64, req *dto.UpdateTeamMemberRequest) (*models.TeamMember, error) {
	m, err := s.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Position != nil {
		m.Position = *req.Position
	}
	if req.Bio != nil {
		m.Bio = req.Bio
	}
	if req.ImageURL != nil {
		m.ImageURL = req.ImageURL
	}
	if req.Email != nil {
		m.Email = req.Email
	}
	if req.LinkedinURL != nil {
		m.LinkedinURL = req.LinkedinURL
	}
	if req.TwitterURL != nil {
		m.TwitterURL = req.TwitterURL
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		m.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(ctx, m); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("team member not found")
		}
		return nil, err
	}

	notifyAdmin(s.mailer, s.logger, "Team Member", "updated", fmt.Sprintf("Team member %s was updated.", m.Name))
	return m, nil
}

// DeleteMember removes a team member
func (s *teamServiceImpl) DeleteMember(ctx context.Context, id int64) error {
	m, err := s.GetMember(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("team member not found")
		}
		return err
	}

	notifyAdmin(s.mailer, s.logger, "Team Member", "deleted", fmt.Sprintf("Team member %s was removed.", m.Name))
	return nil
}
