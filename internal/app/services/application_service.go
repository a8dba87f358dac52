package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/repositories"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/email"
)

type applicationRepository interface {
	Create(ctx context.Context, a *models.Application) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetAll(ctx context.Context) ([]*models.Application, error)
	Update(ctx context.Context, a *models.Application) error
	Delete(ctx context.Context, id int64) error
}

// ApplicationService defines the interface for application intake and review
type ApplicationService interface {
	SubmitApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetApplication(ctx context.Context, id int64) (*models.Application, error)
	ListApplications(ctx context.Context) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, reviewerID int64, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	DeleteApplication(ctx context.Context, id int64) error
}

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	repo   applicationRepository
	mailer email.Service
	logger zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(repo applicationRepository, mailer email.Service, logger zerolog.Logger) ApplicationService {
	return &applicationServiceImpl{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

// SubmitApplication records a website application in pending state and
// notifies the admin mailbox.
func (s *applicationServiceImpl) SubmitApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	a := &models.Application{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Country:         req.Country,
		FieldOfInterest: req.FieldOfInterest,
		EducationLevel:  req.EducationLevel,
		Message:         req.Message,
		Status:          models.StatusPending,
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id

	notifyAdmin(s.mailer, s.logger, "Application", "created",
		fmt.Sprintf("New application from %s (%s), field of interest: %s.", a.FullName, a.Email, a.FieldOfInterest))
	return a, nil
}

// GetApplication retrieves an application by ID
func (s *applicationServiceImpl) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("application not found")
		}
		return nil, err
	}
	return a, nil
}

// ListApplications retrieves all applications
func (s *applicationServiceImpl) ListApplications(ctx context.Context) ([]*models.Application, error) {
	return s.repo.GetAll(ctx)
}

// UpdateStatus is the only mutation the review flow allows: status and admin
// notes. A status change also stamps the reviewer and emails the applicant.
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, id int64, reviewerID int64, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	if !models.ValidApplicationStatus(req.Status) {
		return nil, apperrors.ErrInvalidApplicationState
	}

	a, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	statusChanged := a.Status != req.Status
	a.Status = req.Status
	if req.AdminNotes != nil {
		a.AdminNotes = req.AdminNotes
	}
	now := time.Now()
	a.ReviewedAt = &now
	a.ReviewedBy = &reviewerID

	if err := s.repo.Update(ctx, a); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("application not found")
		}
		return nil, err
	}

	if statusChanged && req.Status != models.StatusPending {
		notes := ""
		if a.AdminNotes != nil {
			notes = *a.AdminNotes
		}
		if err := s.mailer.SendApplicationStatusEmail(a.Email, a.FullName, string(a.Status), notes); err != nil {
			s.logger.Warn().Err(err).Int64("applicationID", a.ID).
				Msg("Failed to send application status email")
		}
	}

	notifyAdmin(s.mailer, s.logger, "Application", "updated",
		fmt.Sprintf("Application from %s (%s) moved to %s.", a.FullName, a.Email, a.Status))

	s.logger.Info().Int64("applicationID", a.ID).Str("status", string(a.Status)).
		Int64("reviewerID", reviewerID).Msg("Application status updated")
	return a, nil
}

// DeleteApplication removes an application
func (s *applicationServiceImpl) DeleteApplication(ctx context.Context, id int64) error {
	a, err := s.GetApplication(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("application not found")
		}
		return err
	}

	notifyAdmin(s.mailer, s.logger, "Application", "deleted",
		fmt.Sprintf("Application from %s (%s) was deleted.", a.FullName, a.Email))
	return nil
}
