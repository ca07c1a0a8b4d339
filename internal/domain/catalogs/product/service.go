package product

import (
	"context"
	"fmt"

	"almoxarifado/internal/core/apperror"
)

// EntityChecker verifies the owning entity exists.
type EntityChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service provides Product catalog operations.
type Service struct {
	repo     Repository
	entities EntityChecker
}

// NewService creates a new Product service.
func NewService(repo Repository, entities EntityChecker) *Service {
	return &Service{repo: repo, entities: entities}
}

// ListMovedByEntity returns products with movement history for an entity.
func (s *Service) ListMovedByEntity(ctx context.Context, entityID int64) ([]Product, error) {
	ok, err := s.entities.Exists(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("check entity: %w", err)
	}
	if !ok {
		return nil, apperror.NewNotFound("entity", entityID)
	}

	items, err := s.repo.ListMovedByEntity(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("list moved products: %w", err)
	}
	return items, nil
}
