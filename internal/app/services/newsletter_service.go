package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/repositories"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/email"
)

type newsletterRepository interface {
	Create(ctx context.Context, s *models.NewsletterSubscription) error
	GetByID(ctx context.Context, id int64) (*models.NewsletterSubscription, error)
	GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error)
	GetAll(ctx context.Context, limit, offset uint64) ([]*models.NewsletterSubscription, error)
	Update(ctx context.Context, s *models.NewsletterSubscription) error
	Delete(ctx context.Context, id int64) error
}

// NewsletterService defines the interface for newsletter subscription operations
type NewsletterService interface {
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*models.NewsletterSubscription, error)
	GetSubscription(ctx context.Context, id int64) (*models.NewsletterSubscription, error)
	ListSubscriptions(ctx context.Context, limit, offset uint64) ([]*models.NewsletterSubscription, error)
	UpdateSubscription(ctx context.Context, id int64, req *dto.UpdateSubscriptionRequest) (*models.NewsletterSubscription, error)
	DeleteSubscription(ctx context.Context, id int64) error
}

// newsletterServiceImpl implements NewsletterService
type newsletterServiceImpl struct {
	repo   newsletterRepository
	mailer email.Service
	logger zerolog.Logger
}

// NewNewsletterService creates a new NewsletterService
func NewNewsletterService(repo newsletterRepository, mailer email.Service, logger zerolog.Logger) NewsletterService {
	return &newsletterServiceImpl{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

// Subscribe adds an email to the newsletter list. A previously unsubscribed
// address is reactivated; an already active one is an error.
func (s *newsletterServiceImpl) Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*models.NewsletterSubscription, error) {
	addr := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetByEmail(ctx, addr)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.IsActive {
			return nil, apperrors.ErrSubscriptionExists
		}
		existing.IsActive = true
		existing.UnsubscribedAt = nil
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.Info().Str("email", addr).Msg("Newsletter subscription reactivated")
		return existing, nil
	}

	sub := &models.NewsletterSubscription{
		Email:    addr,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	notifyAdmin(s.mailer, s.logger, "Newsletter Subscription", "created",
		fmt.Sprintf("%s subscribed to the newsletter.", addr))
	return sub, nil
}

// GetSubscription retrieves a subscription by ID
func (s *newsletterServiceImpl) GetSubscription(ctx context.Context, id int64) (*models.NewsletterSubscription, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("subscription not found")
		}
		return nil, err
	}
	return sub, nil
}

// ListSubscriptions retrieves subscriptions newest first
func (s *newsletterServiceImpl) ListSubscriptions(ctx context.Context, limit, offset uint64) ([]*models.NewsletterSubscription, error) {
	return s.repo.GetAll(ctx, limit, offset)
}

// UpdateSubscription toggles the active flag. Deactivating stamps
// UnsubscribedAt; reactivating clears it.
func (s *newsletterServiceImpl) UpdateSubscription(ctx context.Context, id int64, req *dto.UpdateSubscriptionRequest) (*models.NewsletterSubscription, error) {
	sub, err := s.GetSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsActive != nil && *req.IsActive != sub.IsActive {
		sub.IsActive = *req.IsActive
		if sub.IsActive {
			sub.UnsubscribedAt = nil
		} else {
			now := time.Now()
			sub.UnsubscribedAt = &now
		}
	}

	if err := s.repo.Update(ctx, sub); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("subscription not found")
		}
		return nil, err
	}

	return sub, nil
}

// DeleteSubscription removes a subscription entirely
func (s *newsletterServiceImpl) DeleteSubscription(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("subscription not found")
		}
		return err
	}
	return nil
}
