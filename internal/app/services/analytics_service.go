package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
)

type visitorStatsRepository interface {
	Count(ctx context.Context) (int64, error)
	CountUniqueIPs(ctx context.Context) (int64, error)
}

type applicationStatsRepository interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error)
}

type publishedStatsRepository interface {
	Count(ctx context.Context) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
}

type activeStatsRepository interface {
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

// AnalyticsService aggregates dashboard counters across entities
type AnalyticsService interface {
	GetDashboard(ctx context.Context) (*dto.AnalyticsResponse, error)
}

// analyticsServiceImpl implements AnalyticsService. Aggregation fans out over
// several COUNT queries, so results are cached for a short TTL; the dashboard
// tolerates slightly stale numbers.
type analyticsServiceImpl struct {
	visitorRepo     visitorStatsRepository
	applicationRepo applicationStatsRepository
	blogRepo        publishedStatsRepository
	teamRepo        activeStatsRepository
	testimonialRepo activeStatsRepository
	scholarshipRepo activeStatsRepository
	logger          zerolog.Logger

	ttl      time.Duration
	mu       sync.Mutex
	cached   *dto.AnalyticsResponse
	cachedAt time.Time
}

// NewAnalyticsService creates a new AnalyticsService with the given cache TTL
func NewAnalyticsService(
	visitorRepo visitorStatsRepository,
	applicationRepo applicationStatsRepository,
	blogRepo publishedStatsRepository,
	teamRepo activeStatsRepository,
	testimonialRepo activeStatsRepository,
	scholarshipRepo activeStatsRepository,
	ttl time.Duration,
	logger zerolog.Logger,
) AnalyticsService {
	return &analyticsServiceImpl{
		visitorRepo:     visitorRepo,
		applicationRepo: applicationRepo,
		blogRepo:        blogRepo,
		teamRepo:        teamRepo,
		testimonialRepo: testimonialRepo,
		scholarshipRepo: scholarshipRepo,
		ttl:             ttl,
		logger:          logger,
	}
}

// GetDashboard returns the aggregated dashboard counters, recomputing them
// when the cached copy has expired.
func (s *analyticsServiceImpl) GetDashboard(ctx context.Context) (*dto.AnalyticsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.cachedAt) < s.ttl {
		return s.cached, nil
	}

	resp, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	s.cached = resp
	s.cachedAt = time.Now()
	return resp, nil
}

func (s *analyticsServiceImpl) aggregate(ctx context.Context) (*dto.AnalyticsResponse, error) {
	resp := &dto.AnalyticsResponse{}
	var err error

	if resp.Visitors.Total, err = s.visitorRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Visitors.Unique, err = s.visitorRepo.CountUniqueIPs(ctx); err != nil {
		return nil, err
	}

	if resp.Applications.Total, err = s.applicationRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Applications.Pending, err = s.applicationRepo.CountByStatus(ctx, models.StatusPending); err != nil {
		return nil, err
	}
	if resp.Applications.Approved, err = s.applicationRepo.CountByStatus(ctx, models.StatusApproved); err != nil {
		return nil, err
	}
	if resp.Applications.Rejected, err = s.applicationRepo.CountByStatus(ctx, models.StatusRejected); err != nil {
		return nil, err
	}
	if resp.Applications.UnderReview, err = s.applicationRepo.CountByStatus(ctx, models.StatusUnderReview); err != nil {
		return nil, err
	}

	if resp.Content.BlogPosts.Total, err = s.blogRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Content.BlogPosts.Published, err = s.blogRepo.CountPublished(ctx); err != nil {
		return nil, err
	}
	if resp.Content.TeamMembers.Total, err = s.teamRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Content.TeamMembers.Active, err = s.teamRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if resp.Content.Testimonials.Total, err = s.testimonialRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Content.Testimonials.Active, err = s.testimonialRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if resp.Content.Scholarships.Total, err = s.scholarshipRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Content.Scholarships.Active, err = s.scholarshipRepo.CountActive(ctx); err != nil {
		return nil, err
	}

	return resp, nil
}
