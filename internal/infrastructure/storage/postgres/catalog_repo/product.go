package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"almoxarifado/internal/core/apperror"
	"almoxarifado/internal/domain/catalogs/product"
	"almoxarifado/internal/infrastructure/storage/postgres"
)

// ProductRepo implements product.Repository.
type ProductRepo struct {
	baseRepo
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{baseRepo{txm: txm}}
}

// ListMovedByEntity returns the distinct products that appear on line items
// of movements touching a warehouse owned by the entity. Products the entity
// never moved are absent, as are all products for an entity without warehouses.
func (r *ProductRepo) ListMovedByEntity(ctx context.Context, entityID int64) ([]product.Product, error) {
	owned := fmt.Sprintf("SELECT id FROM %s WHERE fk_entidade = ?", warehouseTable)

	q := r.builder().
		Select("p.id", "p.codigo", "p.descricao", "p.status", "p.estoque_minimo", "p.estoque_maximo").
		Distinct().
		From(productTable + " p").
		Join(lineItemTable + " i ON i.fk_produto = p.id").
		Join(movementTable + " m ON m.id = i.fk_movimentacao_geral").
		Where(squirrel.Or{
			squirrel.Expr("m.fk_almoxarifado_origem IN ("+owned+")", entityID),
			squirrel.Expr("m.fk_almoxarifado_destino IN ("+owned+")", entityID),
		}).
		OrderBy("p.descricao ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []product.Product
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return items, nil
}
