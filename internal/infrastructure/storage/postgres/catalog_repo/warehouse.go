package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"almoxarifado/internal/core/apperror"
	"almoxarifado/internal/domain/catalogs/warehouse"
	"almoxarifado/internal/infrastructure/storage/postgres"
)

// WarehouseRepo implements warehouse.Repository.
type WarehouseRepo struct {
	baseRepo
}

// NewWarehouseRepo creates a new warehouse repository.
func NewWarehouseRepo(txm *postgres.TxManager) *WarehouseRepo {
	return &WarehouseRepo{baseRepo{txm: txm}}
}

// ListByEntity returns all warehouses owned by an entity, ordered by description.
func (r *WarehouseRepo) ListByEntity(ctx context.Context, entityID int64) ([]warehouse.Warehouse, error) {
	q := r.builder().
		Select("id", "descricao", "endereco", "fk_entidade").
		From(warehouseTable).
		Where(squirrel.Eq{"fk_entidade": entityID}).
		OrderBy("descricao ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []warehouse.Warehouse
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return items, nil
}
