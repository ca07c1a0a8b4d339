package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"almoxarifado/internal/core/apperror"
	"almoxarifado/internal/domain/catalogs/lot"
	"almoxarifado/internal/infrastructure/storage/postgres"
)

// LotRepo implements lot.Repository.
type LotRepo struct {
	baseRepo
}

// NewLotRepo creates a new lot repository.
func NewLotRepo(txm *postgres.TxManager) *LotRepo {
	return &LotRepo{baseRepo{txm: txm}}
}

// ListByEntity returns all lots owned by an entity, ordered by number.
func (r *LotRepo) ListByEntity(ctx context.Context, entityID int64) ([]lot.Lot, error) {
	q := r.builder().
		Select("id", "nome_fabricante", "numero", "data_fabricacao", "data_validade", "fk_entidade").
		From(lotTable).
		Where(squirrel.Eq{"fk_entidade": entityID}).
		OrderBy("numero ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []lot.Lot
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return items, nil
}
