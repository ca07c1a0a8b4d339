package operation

import (
	"context"
	"fmt"

	"almoxarifado/internal/core/apperror"
)

// EntityChecker verifies the owning entity exists.
type EntityChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service provides Operation catalog operations.
type Service struct {
	repo     Repository
	entities EntityChecker
}

// NewService creates a new Operation service.
func NewService(repo Repository, entities EntityChecker) *Service {
	return &Service{repo: repo, entities: entities}
}

// ListByEntity returns operations owned by an entity.
func (s *Service) ListByEntity(ctx context.Context, entityID int64) ([]Operation, error) {
	ok, err := s.entities.Exists(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("check entity: %w", err)
	}
	if !ok {
		return nil, apperror.NewNotFound("entity", entityID)
	}

	items, err := s.repo.ListByEntity(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	return items, nil
}
