// Package report_repo provides the PostgreSQL implementation of the stock
// reconciliation storage interface over the legacy inventory schema.
package report_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"almoxarifado/internal/core/apperror"
	"almoxarifado/internal/core/types"
	"almoxarifado/internal/domain/catalogs/operation"
	"almoxarifado/internal/domain/reports"
	"almoxarifado/internal/infrastructure/storage/postgres"
)

const (
	entityTable    = "entidade"
	warehouseTable = "almoxarifado"
	operationTable = "operacao"
	productTable   = "produto"
	lotTable       = "lote"
	movementTable  = "movimentacao_geral"
	lineItemTable  = "item_movimentacao"
	snapshotTable  = "item_almoxarifado"
)

// ReconciliationRepo implements reports.Repository.
type ReconciliationRepo struct {
	txm *postgres.TxManager
}

// NewReconciliationRepo creates a new reconciliation repository.
func NewReconciliationRepo(txm *postgres.TxManager) *ReconciliationRepo {
	return &ReconciliationRepo{txm: txm}
}

func (r *ReconciliationRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// EntityExists reports whether the entity exists.
func (r *ReconciliationRepo) EntityExists(ctx context.Context, entityID int64) (bool, error) {
	q := r.builder().
		Select("1").
		From(entityTable).
		Where(squirrel.Eq{"id": entityID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperror.NewDatabase(err)
	}
	return true, nil
}

// WarehouseIDsForEntity returns the identifiers of all warehouses the
// entity owns.
func (r *ReconciliationRepo) WarehouseIDsForEntity(ctx context.Context, entityID int64) ([]int64, error) {
	q := r.builder().
		Select("id").
		From(warehouseTable).
		Where(squirrel.Eq{"fk_entidade": entityID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var ids []int64
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &ids, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return ids, nil
}

// movementFilterQuery builds the movement selection query: ownership is the
// base predicate, every present filter dimension ANDs another one on top.
// Exposed to the package for SQL composition tests.
func (r *ReconciliationRepo) movementFilterQuery(owned []int64, f reports.Filter) squirrel.SelectBuilder {
	q := r.builder().
		Select("m.id").
		Distinct().
		From(movementTable + " m").
		Where(squirrel.Or{
			squirrel.Eq{"m.fk_almoxarifado_origem": owned},
			squirrel.Eq{"m.fk_almoxarifado_destino": owned},
		})

	if f.WarehouseID != nil {
		q = q.Where(squirrel.Or{
			squirrel.Eq{"m.fk_almoxarifado_origem": *f.WarehouseID},
			squirrel.Eq{"m.fk_almoxarifado_destino": *f.WarehouseID},
		})
	}
	if f.OperationID != nil {
		q = q.Where(squirrel.Eq{"m.fk_operacao": *f.OperationID})
	}

	// Product and lot live on line items; join only when asked for.
	if f.ProductID != nil || f.LotID != nil {
		q = q.Join(lineItemTable + " i ON i.fk_movimentacao_geral = m.id")
		if f.ProductID != nil {
			q = q.Where(squirrel.Eq{"i.fk_produto": *f.ProductID})
		}
		if f.LotID != nil {
			q = q.Where(squirrel.Eq{"i.fk_lote": *f.LotID})
		}
	}

	return q
}

// FindMovementIDs returns the de-duplicated movement identifiers matching
// the filter within the owned warehouses.
func (r *ReconciliationRepo) FindMovementIDs(ctx context.Context, ownedWarehouseIDs []int64, f reports.Filter) ([]int64, error) {
	sql, args, err := r.movementFilterQuery(ownedWarehouseIDs, f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var ids []int64
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &ids, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return ids, nil
}

// ExpandLineItems returns one row per line item of the given movements,
// joined to product, lot and the movement's operation direction.
func (r *ReconciliationRepo) ExpandLineItems(ctx context.Context, movementIDs []int64) ([]reports.LineItemRow, error) {
	q := r.builder().
		Select(
			"i.id AS line_item_id",
			"i.fk_movimentacao_geral AS movement_id",
			"i.fk_produto AS product_id",
			"i.fk_lote AS lot_id",
			"i.quantidade AS quantity",
			"i.valor_unitario AS unit_value",
			"p.codigo AS product_code",
			"p.descricao AS product_description",
			"l.numero AS lot_number",
			"o.tipo AS direction",
			"m.fk_almoxarifado_origem AS origin_warehouse_id",
			"m.fk_almoxarifado_destino AS destination_warehouse_id",
		).
		From(lineItemTable + " i").
		Join(movementTable + " m ON m.id = i.fk_movimentacao_geral").
		Join(operationTable + " o ON o.id = m.fk_operacao").
		Join(productTable + " p ON p.id = i.fk_produto").
		LeftJoin(lotTable + " l ON l.id = i.fk_lote").
		Where(squirrel.Eq{"i.fk_movimentacao_geral": movementIDs}).
		OrderBy("i.fk_movimentacao_geral ASC", "i.id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.LineItemRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return rows, nil
}

// SumQuantity aggregates line item quantities over all history for the key,
// in one direction. Inbound counts movements whose destination is the
// warehouse, outbound those whose origin is. A nil lot matches only
// NULL-lot items.
func (r *ReconciliationRepo) SumQuantity(ctx context.Context, productID int64, lotID *int64, warehouseID int64, direction operation.Direction) (types.Quantity, error) {
	warehouseCol := "m.fk_almoxarifado_destino"
	if direction == operation.DirectionOutbound {
		warehouseCol = "m.fk_almoxarifado_origem"
	}

	q := r.builder().
		Select("COALESCE(SUM(i.quantidade), 0)").
		From(lineItemTable + " i").
		Join(movementTable + " m ON m.id = i.fk_movimentacao_geral").
		Join(operationTable + " o ON o.id = m.fk_operacao").
		Where(squirrel.Eq{
			"i.fk_produto": productID,
			"i.fk_lote":    lotID,
			"o.tipo":       int16(direction),
			warehouseCol:   warehouseID,
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return types.ZeroQuantity(), fmt.Errorf("build query: %w", err)
	}

	var total types.Quantity
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return types.ZeroQuantity(), apperror.NewDatabase(err)
	}
	return total, nil
}

// SnapshotBalance returns the stored balance for a (product, lot, warehouse)
// key, or found=false when no snapshot row exists.
func (r *ReconciliationRepo) SnapshotBalance(ctx context.Context, productID int64, lotID *int64, warehouseID int64) (types.Quantity, bool, error) {
	q := r.builder().
		Select("quantidade").
		From(snapshotTable).
		Where(squirrel.Eq{
			"fk_produto":      productID,
			"fk_lote":         lotID,
			"fk_almoxarifado": warehouseID,
		}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return types.ZeroQuantity(), false, fmt.Errorf("build query: %w", err)
	}

	var stored types.Quantity
	err = r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.ZeroQuantity(), false, nil
	}
	if err != nil {
		return types.ZeroQuantity(), false, apperror.NewDatabase(err)
	}
	return stored, true, nil
}
