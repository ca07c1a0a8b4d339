package entity

import (
	"context"
	"fmt"
)

// Service provides Entity catalog operations.
type Service struct {
	repo Repository
}

// NewService creates a new Entity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all entities.
func (s *Service) List(ctx context.Context) ([]Entity, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return items, nil
}

// GetByID returns one entity by its identifier.
func (s *Service) GetByID(ctx context.Context, id int64) (Entity, error) {
	return s.repo.GetByID(ctx, id)
}
