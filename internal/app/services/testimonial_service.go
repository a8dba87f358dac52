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

type testimonialRepository interface {
	Create(ctx context.Context, t *models.Testimonial) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Testimonial, error)
	GetAll(ctx context.Context) ([]*models.Testimonial, error)
	Update(ctx context.Context, t *models.Testimonial) error
	Delete(ctx context.Context, id int64) error
}

// TestimonialService defines the interface for testimonial operations
type TestimonialService interface {
	CreateTestimonial(ctx context.Context, req *dto.CreateTestimonialRequest) (*models.Testimonial, error)
	GetTestimonial(ctx context.Context, id int64) (*models.Testimonial, error)
	ListTestimonials(ctx context.Context) ([]*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int64, req *dto.UpdateTestimonialRequest) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int64) error
}

// testimonialServiceImpl implements TestimonialService
type testimonialServiceImpl struct {
	repo   testimonialRepository
	mailer email.Service
	logger zerolog.Logger
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(repo testimonialRepository, mailer email.Service, logger zerolog.Logger) TestimonialService {
	return &testimonialServiceImpl{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperrors.NewBadRequestError("rating must be between 1 and 5")
	}
	return nil
}

// CreateTestimonial creates a testimonial. Rating must be within [1,5].
func (s *testimonialServiceImpl) CreateTestimonial(ctx context.Context, req *dto.CreateTestimonialRequest) (*models.Testimonial, error) {
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	t := &models.Testimonial{
		Name:     req.Name,
		Role:     req.Role,
		Company:  req.Company,
		Content:  req.Content,
		Rating:   req.Rating,
		ImageURL: req.ImageURL,
		IsActive: true,
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id

	notifyAdmin(s.mailer, s.logger, "Testimonial", "created", fmt.Sprintf("Testimonial from %s was created.", t.Name))
	return t, nil
}

// GetTestimonial retrieves a testimonial by ID
func (s *testimonialServiceImpl) GetTestimonial(ctx context.Context, id int64) (*models.Testimonial, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("testimonial not found")
		}
		return nil, err
	}
	return t, nil
}

// ListTestimonials retrieves all testimonials
func (s *testimonialServiceImpl) ListTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return s.repo.GetAll(ctx)
}

// UpdateTestimonial merges the provided fields over the stored testimonial
func (s *testimonialServiceImpl) UpdateTestimonial(ctx context.Context, id int64, req *dto.UpdateTestimonialRequest) (*models.Testimonial, error) {
	t, err := s.GetTestimonial(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return nil, err
		}
		t.Rating = *req.Rating
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Role != nil {
		t.Role = *req.Role
	}
	if req.Company != nil {
		t.Company = req.Company
	}
	if req.Content != nil {
		t.Content = *req.Content
	}
	if req.ImageURL != nil {
		t.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("testimonial not found")
		}
		return nil, err
	}

	notifyAdmin(s.mailer, s.logger, "Testimonial", "updated", fmt.Sprintf("Testimonial from %s was updated.", t.Name))
	return t, nil
}

// DeleteTestimonial removes a testimonial
func (s *testimonialServiceImpl) DeleteTestimonial(ctx context.Context, id int64) error {
	t, err := s.GetTestimonial(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("testimonial not found")
		}
		return err
	}

	notifyAdmin(s.mailer, s.logger, "Testimonial", "deleted", fmt.Sprintf("Testimonial from %s was deleted.", t.Name))
	return nil
}
