package warehouse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almoxarifado/internal/core/apperror"
)

type stubRepo struct {
	byEntity map[int64][]Warehouse
	err      error
}

func (r *stubRepo) ListByEntity(_ context.Context, entityID int64) ([]Warehouse, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byEntity[entityID], nil
}

type stubEntities struct {
	existing map[int64]bool
}

func (e *stubEntities) Exists(_ context.Context, id int64) (bool, error) {
	return e.existing[id], nil
}

func TestListByEntity(t *testing.T) {
	repo := &stubRepo{byEntity: map[int64][]Warehouse{
		1: {{ID: 10, Description: "Central", EntityID: 1}},
	}}
	entities := &stubEntities{existing: map[int64]bool{1: true, 2: true}}
	svc := NewService(repo, entities)
	ctx := context.Background()

	t.Run("ReturnsOwnedWarehouses", func(t *testing.T) {
		items, err := svc.ListByEntity(ctx, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Central", items[0].Description)
	})

	t.Run("EntityWithoutWarehousesIsEmptyList", func(t *testing.T) {
		items, err := svc.ListByEntity(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("MissingEntityIsNotFound", func(t *testing.T) {
		_, err := svc.ListByEntity(ctx, 99)
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("RepoFailurePropagates", func(t *testing.T) {
		failing := NewService(&stubRepo{err: errors.New("connection reset")}, entities)
		_, err := failing.ListByEntity(ctx, 1)
		require.Error(t, err)
		assert.False(t, apperror.IsNotFound(err))
	})
}
