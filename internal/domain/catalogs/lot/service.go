package lot

import (
	"context"
	"fmt"

	"almoxarifado/internal/core/apperror"
)

// EntityChecker verifies the owning entity exists.
type EntityChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service provides Lot catalog operations.
type Service struct {
	repo     Repository
	entities EntityChecker
}

// NewService creates a new Lot service.
func NewService(repo Repository, entities EntityChecker) *Service {
	return &Service{repo: repo, entities: entities}
}

// ListByEntity returns lots owned by an entity.
func (s *Service) ListByEntity(ctx context.Context, entityID int64) ([]Lot, error) {
	ok, err := s.entities.Exists(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("check entity: %w", err)
	}
	if !ok {
		return nil, apperror.NewNotFound("entity", entityID)
	}

	items, err := s.repo.ListByEntity(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	return items, nil
}
