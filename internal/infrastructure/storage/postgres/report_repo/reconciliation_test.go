package report_repo

import (
	"reflect"
	"testing"

	"almoxarifado/internal/domain/reports"
)

func ptr(v int64) *int64 { return &v }

func TestMovementFilterQuery_Composition(t *testing.T) {
	repo := NewReconciliationRepo(nil)
	owned := []int64{10}

	base := "SELECT DISTINCT m.id FROM movimentacao_geral m" +
		" WHERE (m.fk_almoxarifado_origem IN ($1) OR m.fk_almoxarifado_destino IN ($2))"
	joined := "SELECT DISTINCT m.id FROM movimentacao_geral m" +
		" JOIN item_movimentacao i ON i.fk_movimentacao_geral = m.id" +
		" WHERE (m.fk_almoxarifado_origem IN ($1) OR m.fk_almoxarifado_destino IN ($2))"

	tests := []struct {
		name     string
		filter   reports.Filter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "OwnershipOnly",
			filter:   reports.Filter{EntityID: 1},
			wantSQL:  base,
			wantArgs: []any{int64(10), int64(10)},
		},
		{
			name:     "Warehouse",
			filter:   reports.Filter{EntityID: 1, WarehouseID: ptr(10)},
			wantSQL:  base + " AND (m.fk_almoxarifado_origem = $3 OR m.fk_almoxarifado_destino = $4)",
			wantArgs: []any{int64(10), int64(10), int64(10), int64(10)},
		},
		{
			name:     "Operation",
			filter:   reports.Filter{EntityID: 1, OperationID: ptr(7)},
			wantSQL:  base + " AND m.fk_operacao = $3",
			wantArgs: []any{int64(10), int64(10), int64(7)},
		},
		{
			name:     "ProductJoinsLineItems",
			filter:   reports.Filter{EntityID: 1, ProductID: ptr(3)},
			wantSQL:  joined + " AND i.fk_produto = $3",
			wantArgs: []any{int64(10), int64(10), int64(3)},
		},
		{
			name:     "LotJoinsLineItems",
			filter:   reports.Filter{EntityID: 1, LotID: ptr(5)},
			wantSQL:  joined + " AND i.fk_lote = $3",
			wantArgs: []any{int64(10), int64(10), int64(5)},
		},
		{
			name:     "ProductAndLotJoinOnce",
			filter:   reports.Filter{EntityID: 1, ProductID: ptr(3), LotID: ptr(5)},
			wantSQL:  joined + " AND i.fk_produto = $3 AND i.fk_lote = $4",
			wantArgs: []any{int64(10), int64(10), int64(3), int64(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := repo.movementFilterQuery(owned, tt.filter).ToSql()
			if err != nil {
				t.Fatalf("ToSql failed: %v", err)
			}

			if sql != tt.wantSQL {
				t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", tt.wantSQL, sql)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("Args mismatch\nwant: %v\ngot:  %v", tt.wantArgs, args)
			}
		})
	}
}
