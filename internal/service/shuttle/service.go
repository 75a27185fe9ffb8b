package shuttle

import (
	"context"
	"fmt"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
	wrap "github.com/NssGourav/shuttle-tracker/pkg/logger/wrapper"
)

type ShuttleRepo interface {
	ListRoutes(ctx context.Context) ([]models.Route, error)
	ListShuttles(ctx context.Context) ([]models.Shuttle, error)
	UpdatePosition(ctx context.Context, s models.Shuttle) error
}

// Service exposes the campus routes and the shuttle fleet.
type Service struct {
	repo ShuttleRepo
	l    logger.Logger
}

func New(repo ShuttleRepo, l logger.Logger) *Service {
	return &Service{
		repo: repo,
		l:    l,
	}
}

func (s *Service) ListRoutes(ctx context.Context) ([]models.Route, error) {
	routes, err := s.repo.ListRoutes(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("failed to list routes: %w", err))
	}
	return routes, nil
}

func (s *Service) ListShuttles(ctx context.Context) ([]models.Shuttle, error) {
	shuttles, err := s.repo.ListShuttles(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("failed to list shuttles: %w", err))
	}
	return shuttles, nil
}
