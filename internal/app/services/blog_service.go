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
	"github.com/mtendere/educonsult-admin/internal/pkg/helpers"
)

// slugSuffixLimit bounds the numeric-suffix search when disambiguating a slug.
const slugSuffixLimit = 100

type blogPostRepository interface {
	Create(ctx context.Context, post *models.BlogPost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetAll(ctx context.Context) ([]*models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// BlogService defines the interface for blog post operations
type BlogService interface {
	CreatePost(ctx context.Context, authorID int64, req *dto.CreateBlogPostRequest) (*models.BlogPost, error)
	GetPost(ctx context.Context, id int64) (*models.BlogPost, error)
	ListPosts(ctx context.Context) ([]*models.BlogPost, error)
	UpdatePost(ctx context.Context, id int64, req *dto.UpdateBlogPostRequest) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id int64) error
}

// blogServiceImpl implements BlogService
type blogServiceImpl struct {
	postRepo blogPostRepository
	mailer   email.Service
	logger   zerolog.Logger
}

// NewBlogService creates a new BlogService
func NewBlogService(postRepo blogPostRepository, mailer email.Service, logger zerolog.Logger) BlogService {
	return &blogServiceImpl{
		postRepo: postRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

// resolveSlug derives a slug from the title when none is supplied and appends
// a numeric suffix until the slug is unique.
func (s *blogServiceImpl) resolveSlug(ctx context.Context, title, requested string) (string, error) {
	base := requested
	if base == "" {
		base = helpers.Slugify(title)
	}

	exists, err := s.postRepo.SlugExists(ctx, base)
	if err != nil {
		return "", fmt.Errorf("error checking slug: %w", err)
	}
	if !exists {
		return base, nil
	}

	for n := 1; n <= slugSuffixLimit; n++ {
		candidate := helpers.DisambiguateSlug(base, n)
		exists, err := s.postRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("error checking slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", apperrors.ErrSlugAlreadyExists
}

// CreatePost creates a blog post attributed to the authenticated admin
func (s *blogServiceImpl) CreatePost(ctx context.Context, authorID int64, req *dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	slug, err := s.resolveSlug(ctx, req.Title, req.Slug)
	if err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		Title:            req.Title,
		Slug:             slug,
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		FeaturedImageURL: req.FeaturedImageURL,
		MetaDescription:  req.MetaDescription,
		Tags:             req.Tags,
		AuthorID:         authorID,
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}
	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	id, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id

	notifyAdmin(s.mailer, s.logger, "Blog Post", "created", fmt.Sprintf("Blog post %q was created.", post.Title))
	return post, nil
}

// GetPost retrieves a blog post by ID
func (s *blogServiceImpl) GetPost(ctx context.Context, id int64) (*models.BlogPost, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("blog post not found")
		}
		return nil, err
	}
	return post, nil
}

// ListPosts retrieves all blog posts
func (s *blogServiceImpl) ListPosts(ctx context.Context) ([]*models.BlogPost, error) {
	return s.postRepo.GetAll(ctx)
}

// UpdatePost merges the provided fields over the stored post. Publishing a
// previously unpublished post stamps PublishedAt.
func (s *blogServiceImpl) UpdatePost(ctx context.Context, id int64, req *dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.FeaturedImageURL != nil {
		post.FeaturedImageURL = req.FeaturedImageURL
	}
	if req.MetaDescription != nil {
		post.MetaDescription = req.MetaDescription
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.IsPublished != nil {
		if *req.IsPublished && !post.IsPublished {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.IsPublished = *req.IsPublished
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("blog post not found")
		}
		return nil, err
	}

	notifyAdmin(s.mailer, s.logger, "Blog Post", "updated", fmt.Sprintf("Blog post %q was updated.", post.Title))
	return post, nil
}

// DeletePost removes a blog post
func (s *blogServiceImpl) DeletePost(ctx context.Context, id int64) error {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("blog post not found")
		}
		return err
	}

	notifyAdmin(s.mailer, s.logger, "Blog Post", "deleted", fmt.Sprintf("Blog post %q was deleted.", post.Title))
	return nil
}
