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

type insightRepository interface {
	Create(ctx context.Context, i *models.Insight) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Insight, error)
	GetAll(ctx context.Context) ([]*models.Insight, error)
	Update(ctx context.Context, i *models.Insight) error
	Delete(ctx context.Context, id int64) error
}

// InsightService defines the interface for insight article operations
type InsightService interface {
	CreateInsight(ctx context.Context, authorID int64, req *dto.CreateInsightRequest) (*models.Insight, error)
	GetInsight(ctx context.Context, id int64) (*models.Insight, error)
	ListInsights(ctx context.Context) ([]*models.Insight, error)
	UpdateInsight(ctx context.Context, id int64, req *dto.UpdateInsightRequest) (*models.Insight, error)
	DeleteInsight(ctx context.Context, id int64) error
}

// insightServiceImpl implements InsightService
type insightServiceImpl struct {
	repo   insightRepository
	mailer email.Service
	logger zerolog.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(repo insightRepository, mailer email.Service, logger zerolog.Logger) InsightService {
	return &insightServiceImpl{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

// CreateInsight creates an insight article attributed to the authenticated admin
func (s *insightServiceImpl) CreateInsight(ctx context.Context, authorID int64, req *dto.CreateInsightRequest) (*models.Insight, error) {
	ins := &models.Insight{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
		AuthorID: authorID,
	}
	if req.IsFeatured != nil {
		ins.IsFeatured = *req.IsFeatured
	}
	if req.IsPublished != nil {
		ins.IsPublished = *req.IsPublished
	}

	id, err := s.repo.Create(ctx, ins)
	if err != nil {
		return nil, err
	}
	ins.ID = id

	notifyAdmin(s.mailer, s.logger, "Insight", "created", fmt.Sprintf("Insight %q was created.", ins.Title))
	return ins, nil
}

// GetInsight retrieves an insight by ID
func (s *insightServiceImpl) GetInsight(ctx context.Context, id int64) (*models.Insight, error) {
	ins, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("insight not found")
		}
		return nil, err
	}
	return ins, nil
}

// ListInsights retrieves all insights
func (s *insightServiceImpl) ListInsights(ctx context.Context) ([]*models.Insight, error) {
	return s.repo.GetAll(ctx)
}

// UpdateInsight merges the provided fields over the stored insight
func (s *insightServiceImpl) UpdateInsight(ctx context.Context, id int64, req *dto.UpdateInsightRequest) (*models.Insight, error) {
	ins, err := s.GetInsight(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		ins.Title = *req.Title
	}
	if req.Content != nil {
		ins.Content = *req.Content
	}
	if req.Category != nil {
		ins.Category = *req.Category
	}
	if req.IsFeatured != nil {
		ins.IsFeatured = *req.IsFeatured
	}
	if req.IsPublished != nil {
		ins.IsPublished = *req.IsPublished
	}
	if req.ImageURL != nil {
		ins.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(ctx, ins); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("insight not found")
		}
		return nil, err
	}

	notifyAdmin(s.mailer, s.logger, "Insight", "updated", fmt.Sprintf("Insight %q was updated.", ins.Title))
	return ins, nil
}

// DeleteInsight removes an insight
func (s *insightServiceImpl) DeleteInsight(ctx context.Context, id int64) error {
	ins, err := s.GetInsight(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("insight not found")
		}
		return err
	}

	notifyAdmin(s.mailer, s.logger, "Insight", "deleted", fmt.Sprintf("Insight %q was deleted.", ins.Title))
	return nil
}
