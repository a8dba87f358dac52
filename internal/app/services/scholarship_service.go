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

type scholarshipRepository interface {
	Create(ctx context.Context, s *models.Scholarship) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Scholarship, error)
	GetAll(ctx context.Context) ([]*models.Scholarship, error)
	Update(ctx context.Context, s *models.Scholarship) error
	Delete(ctx context.Context, id int64) error
}

// ScholarshipService defines the interface for scholarship operations
type ScholarshipService interface {
	CreateScholarship(ctx context.Context, req *dto.CreateScholarshipRequest) (*models.Scholarship, error)
	GetScholarship(ctx context.Context, id int64) (*models.Scholarship, error)
	ListScholarships(ctx context.Context) ([]*models.Scholarship, error)
	UpdateScholarship(ctx context.Context, id int64, req *dto.UpdateScholarshipRequest) (*models.Scholarship, error)
	DeleteScholarship(ctx context.Context, id int64) error
}

// scholarshipServiceImpl implements ScholarshipService
type scholarshipServiceImpl struct {
	repo   scholarshipRepository
	mailer email.Service
	logger zerolog.Logger
}

// NewScholarshipService creates a new ScholarshipService
func NewScholarshipService(repo scholarshipRepository, mailer email.Service, logger zerolog.Logger) ScholarshipService {
	return &scholarshipServiceImpl{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

func validateAmount(amount *float64) error {
	if amount != nil && *amount < 0 {
		return apperrors.NewBadRequestError("amount must not be negative")
	}
	return nil
}

// CreateScholarship creates a scholarship listing
func (s *scholarshipServiceImpl) CreateScholarship(ctx context.Context, req *dto.CreateScholarshipRequest) (*models.Scholarship, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	sch := &models.Scholarship{
		Title:               req.Title,
		Description:         req.Description,
		EligibilityCriteria: req.EligibilityCriteria,
		Amount:              req.Amount,
		Deadline:            req.Deadline,
		ApplicationURL:      req.ApplicationURL,
		Country:             req.Country,
		FieldOfStudy:        req.FieldOfStudy,
		IsActive:            true,
	}
	if req.IsActive != nil {
		sch.IsActive = *req.IsActive
	}

	id, err := s.repo.Create(ctx, sch)
	if err != nil {
		return nil, err
	}
	sch.ID = id

	notifyAdmin(s.mailer, s.logger, "Scholarship", "created", fmt.Sprintf("Scholarship %q was created.", sch.Title))
	return sch, nil
}

// GetScholarship retrieves a scholarship by ID
func (s *scholarshipServiceImpl) GetScholarship(ctx context.Context, id int64) (*models.Scholarship, error) {
	sch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("scholarship not found")
		}
		return nil, err
	}
	return sch, nil
}

// ListScholarships retrieves all scholarships
func (s *scholarshipServiceImpl) ListScholarships(ctx context.Context) ([]*models.Scholarship, error) {
	return s.repo.GetAll(ctx)
}

// UpdateScholarship merges the provided fields over the stored scholarship
func (s *scholarshipServiceImpl) UpdateScholarship(ctx context.Context, id int64, req *dto.UpdateScholarshipRequest) (*models.Scholarship, error) {
	sch, err := s.GetScholarship(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if err := validateAmount(req.Amount); err != nil {
			return nil, err
		}
		sch.Amount = req.Amount
	}
	if req.Title != nil {
		sch.Title = *req.Title
	}
	if req.Description != nil {
		sch.Description = *req.Description
	}
	if req.EligibilityCriteria != nil {
		sch.EligibilityCriteria = *req.EligibilityCriteria
	}
	if req.Deadline != nil {
		sch.Deadline = req.Deadline
	}
	if req.ApplicationURL != nil {
		sch.ApplicationURL = req.ApplicationURL
	}
	if req.Country != nil {
		sch.Country = req.Country
	}
	if req.FieldOfStudy != nil {
		sch.FieldOfStudy = req.FieldOfStudy
	}
	if req.IsActive != nil {
		sch.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, sch); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("scholarship not found")
		}
		return nil, err
	}

	notifyAdmin(s.mailer, s.logger, "Scholarship", "updated", fmt.Sprintf("Scholarship %q was updated.", sch.Title))
	return sch, nil
}

// DeleteScholarship removes a scholarship
func (s *scholarshipServiceImpl) DeleteScholarship(ctx context.Context, id int64) error {
	sch, err := s.GetScholarship(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("scholarship not found")
		}
		return err
	}

	notifyAdmin(s.mailer, s.logger, "Scholarship", "deleted", fmt.Sprintf("Scholarship %q was deleted.", sch.Title))
	return nil
}
