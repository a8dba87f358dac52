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

type contactInquiryRepository interface {
	Create(ctx context.Context, c *models.ContactInquiry) error
	GetByID(ctx context.Context, id int64) (*models.ContactInquiry, error)
	GetAll(ctx context.Context, limit, offset uint64) ([]*models.ContactInquiry, error)
	Update(ctx context.Context, c *models.ContactInquiry) error
	Delete(ctx context.Context, id int64) error
}

// ContactService defines the interface for contact inquiry operations
type ContactService interface {
	SubmitInquiry(ctx context.Context, req *dto.CreateContactInquiryRequest) (*models.ContactInquiry, error)
	GetInquiry(ctx context.Context, id int64) (*models.ContactInquiry, error)
	ListInquiries(ctx context.Context, limit, offset uint64) ([]*models.ContactInquiry, error)
	UpdateInquiry(ctx context.Context, id int64, resolverID int64, req *dto.UpdateContactInquiryRequest) (*models.ContactInquiry, error)
	RespondToInquiry(ctx context.Context, id int64, responderID int64, req *dto.RespondContactInquiryRequest) (*models.ContactInquiry, error)
	DeleteInquiry(ctx context.Context, id int64) error
}

// contactServiceImpl implements ContactService
type contactServiceImpl struct {
	repo   contactInquiryRepository
	mailer email.Service
	logger zerolog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(repo contactInquiryRepository, mailer email.Service, logger zerolog.Logger) ContactService {
	return &contactServiceImpl{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

// SubmitInquiry records a website contact inquiry and notifies the admin mailbox
func (s *contactServiceImpl) SubmitInquiry(ctx context.Context, req *dto.CreateContactInquiryRequest) (*models.ContactInquiry, error) {
	c := &models.ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	notifyAdmin(s.mailer, s.logger, "Contact Inquiry", "created",
		fmt.Sprintf("New inquiry from %s (%s): %s", c.Name, c.Email, c.Subject))
	return c, nil
}

// GetInquiry retrieves a contact inquiry by ID
func (s *contactServiceImpl) GetInquiry(ctx context.Context, id int64) (*models.ContactInquiry, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("contact inquiry not found")
		}
		return nil, err
	}
	return c, nil
}

// ListInquiries retrieves contact inquiries newest first
func (s *contactServiceImpl) ListInquiries(ctx context.Context, limit, offset uint64) ([]*models.ContactInquiry, error) {
	return s.repo.GetAll(ctx, limit, offset)
}

// UpdateInquiry merges the provided fields over the stored inquiry. Marking
// an inquiry resolved stamps the resolver; clearing the flag clears the stamp.
func (s *contactServiceImpl) UpdateInquiry(ctx context.Context, id int64, resolverID int64, req *dto.UpdateContactInquiryRequest) (*models.ContactInquiry, error) {
	c, err := s.GetInquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Subject != nil {
		c.Subject = *req.Subject
	}
	if req.Message != nil {
		c.Message = *req.Message
	}
	if req.IsResolved != nil && *req.IsResolved != c.IsResolved {
		c.IsResolved = *req.IsResolved
		if c.IsResolved {
			now := time.Now()
			c.ResolvedAt = &now
			c.ResolvedBy = &resolverID
		} else {
			c.ResolvedAt = nil
			c.ResolvedBy = nil
		}
	}

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("contact inquiry not found")
		}
		return nil, err
	}

	notifyAdmin(s.mailer, s.logger, "Contact Inquiry", "updated",
		fmt.Sprintf("Inquiry from %s (%s) was updated.", c.Name, c.Email))
	return c, nil
}

// RespondToInquiry emails a reply to the inquirer and marks the inquiry
// resolved. The email must go out before the inquiry is stamped: failing to
// send leaves the inquiry open.
func (s *contactServiceImpl) RespondToInquiry(ctx context.Context, id int64, responderID int64, req *dto.RespondContactInquiryRequest) (*models.ContactInquiry, error) {
	c, err := s.GetInquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendContactResponseEmail(c.Email, c.Name, c.Subject, req.Message); err != nil {
		s.logger.Error().Err(err).Int64("inquiryID", c.ID).Msg("Failed to send contact response email")
		return nil, fmt.Errorf("error sending response email: %w", err)
	}

	now := time.Now()
	c.IsResolved = true
	c.ResolvedAt = &now
	c.ResolvedBy = &responderID

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("contact inquiry not found")
		}
		return nil, err
	}

	s.logger.Info().Int64("inquiryID", c.ID).Int64("responderID", responderID).
		Msg("Contact inquiry answered")
	return c, nil
}

// DeleteInquiry removes a contact inquiry
func (s *contactServiceImpl) DeleteInquiry(ctx context.Context, id int64) error {
	c, err := s.GetInquiry(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("contact inquiry not found")
		}
		return err
	}

	notifyAdmin(s.mailer, s.logger, "Contact Inquiry", "deleted",
		fmt.Sprintf("Inquiry from %s (%s) was deleted.", c.Name, c.Email))
	return nil
}
