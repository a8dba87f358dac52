package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/mtendere/educonsult-admin/internal/app/models"
)

type visitorLogRepository interface {
	GetRecent(ctx context.Context, limit uint64) ([]*models.VisitorLog, error)
}

// VisitorService exposes the read-only view over visitor logs
type VisitorService interface {
	ListRecent(ctx context.Context, limit uint64) ([]*models.VisitorLog, error)
}

type visitorServiceImpl struct {
	repo   visitorLogRepository
	logger zerolog.Logger
}

// NewVisitorService creates a new VisitorService
func NewVisitorService(repo visitorLogRepository, logger zerolog.Logger) VisitorService {
	return &visitorServiceImpl{repo: repo, logger: logger}
}

func (s *visitorServiceImpl) ListRecent(ctx context.Context, limit uint64) ([]*models.VisitorLog, error) {
	return s.repo.GetRecent(ctx, limit)
}
