package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"almoxarifado/internal/core/apperror"
	"almoxarifado/internal/domain/catalogs/operation"
	"almoxarifado/internal/infrastructure/storage/postgres"
)

// OperationRepo implements operation.Repository.
type OperationRepo struct {
	baseRepo
}

// NewOperationRepo creates a new operation repository.
func NewOperationRepo(txm *postgres.TxManager) *OperationRepo {
	return &OperationRepo{baseRepo{txm: txm}}
}

// ListByEntity returns all operations owned by an entity, ordered by code.
func (r *OperationRepo) ListByEntity(ctx context.Context, entityID int64) ([]operation.Operation, error) {
	q := r.builder().
		Select("id", "codigo", "descricao", "tipo", "fk_entidade").
		From(operationTable).
		Where(squirrel.Eq{"fk_entidade": entityID}).
		OrderBy("codigo ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []operation.Operation
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return items, nil
}
