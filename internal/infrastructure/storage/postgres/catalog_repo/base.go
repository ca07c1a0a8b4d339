// Package catalog_repo provides read-only PostgreSQL implementations of the
// catalog repositories over the legacy inventory schema. The tables keep
// their legacy Portuguese column names; the domain structs carry the
// mapping in their db tags.
package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

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
)

// baseRepo holds what every catalog repository needs: the transaction
// manager and a dollar-placeholder statement builder.
type baseRepo struct {
	txm *postgres.TxManager
}

func (r baseRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r baseRepo) querier(ctx context.Context) postgres.Querier {
	return r.txm.GetQuerier(ctx)
}
