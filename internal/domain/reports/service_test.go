package reports

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almoxarifado/internal/core/apperror"
	"almoxarifado/internal/core/types"
	"almoxarifado/internal/domain/catalogs/operation"
)

// --- In-memory fixture repository ---

type fixtureItem struct {
	id        int64
	productID int64
	lotID     *int64
	quantity  string
}

type fixtureMovement struct {
	id          int64
	operationID int64
	direction   operation.Direction
	origin      *int64
	destination *int64
	items       []fixtureItem
}

type fixtureSnapshot struct {
	productID   int64
	lotID       *int64
	warehouseID int64
	quantity    string
}

type fixtureRepo struct {
	entities   map[int64][]int64 // entity id -> owned warehouse ids
	movements  []fixtureMovement
	snapshots  []fixtureSnapshot
	products   map[int64]string // product id -> code
	lotNumbers map[int64]string

	sumCalls int
	failWith error
}

func (r *fixtureRepo) EntityExists(_ context.Context, entityID int64) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	_, ok := r.entities[entityID]
	return ok, nil
}

func (r *fixtureRepo) WarehouseIDsForEntity(_ context.Context, entityID int64) ([]int64, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.entities[entityID], nil
}

func (r *fixtureRepo) FindMovementIDs(_ context.Context, owned []int64, f Filter) ([]int64, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	inOwned := func(id *int64) bool {
		if id == nil {
			return false
		}
		for _, w := range owned {
			if w == *id {
				return true
			}
		}
		return false
	}

	var ids []int64
	for _, m := range r.movements {
		if !inOwned(m.origin) && !inOwned(m.destination) {
			continue
		}
		if f.WarehouseID != nil {
			originMatch := m.origin != nil && *m.origin == *f.WarehouseID
			destMatch := m.destination != nil && *m.destination == *f.WarehouseID
			if !originMatch && !destMatch {
				continue
			}
		}
		if f.OperationID != nil && m.operationID != *f.OperationID {
			continue
		}
		if f.ProductID != nil || f.LotID != nil {
			matched := false
			for _, it := range m.items {
				if f.ProductID != nil && it.productID != *f.ProductID {
					continue
				}
				if f.LotID != nil && (it.lotID == nil || *it.lotID != *f.LotID) {
					continue
				}
				matched = true
				break
			}
			if !matched {
				continue
			}
		}
		ids = append(ids, m.id)
	}
	return ids, nil
}

func (r *fixtureRepo) ExpandLineItems(_ context.Context, movementIDs []int64) ([]LineItemRow, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	wanted := make(map[int64]bool, len(movementIDs))
	for _, id := range movementIDs {
		wanted[id] = true
	}

	var rows []LineItemRow
	for _, m := range r.movements {
		if !wanted[m.id] {
			continue
		}
		for _, it := range m.items {
			row := LineItemRow{
				LineItemID:             it.id,
				MovementID:             m.id,
				ProductID:              it.productID,
				LotID:                  it.lotID,
				Quantity:               types.MustQuantity(it.quantity),
				ProductCode:            r.products[it.productID],
				Direction:              m.direction,
				OriginWarehouseID:      m.origin,
				DestinationWarehouseID: m.destination,
			}
			if it.lotID != nil {
				if num, ok := r.lotNumbers[*it.lotID]; ok {
					row.LotNumber = &num
				}
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (r *fixtureRepo) SumQuantity(_ context.Context, productID int64, lotID *int64, warehouseID int64, direction operation.Direction) (types.Quantity, error) {
	if r.failWith != nil {
		return types.ZeroQuantity(), r.failWith
	}
	r.sumCalls++

	total := types.ZeroQuantity()
	for _, m := range r.movements {
		if m.direction != direction {
			continue
		}
		var affected *int64
		if direction == operation.DirectionInbound {
			affected = m.destination
		} else {
			affected = m.origin
		}
		if affected == nil || *affected != warehouseID {
			continue
		}
		for _, it := range m.items {
			if it.productID != productID {
				continue
			}
			if !sameLot(it.lotID, lotID) {
				continue
			}
			total = total.Add(types.MustQuantity(it.quantity))
		}
	}
	return total, nil
}

func (r *fixtureRepo) SnapshotBalance(_ context.Context, productID int64, lotID *int64, warehouseID int64) (types.Quantity, bool, error) {
	if r.failWith != nil {
		return types.ZeroQuantity(), false, r.failWith
	}
	for _, s := range r.snapshots {
		if s.productID == productID && s.warehouseID == warehouseID && sameLot(s.lotID, lotID) {
			return types.MustQuantity(s.quantity), true, nil
		}
	}
	return types.ZeroQuantity(), false, nil
}

func sameLot(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func ptr(v int64) *int64 { return &v }

// scenarioRepo builds the fixture from the reconciliation scenarios:
// entity 1 owns warehouse 10; movement 100 brings 10 units of product 1
// into it, movement 101 takes 3 out. Entity 2 owns nothing.
func scenarioRepo() *fixtureRepo {
	return &fixtureRepo{
		entities: map[int64][]int64{
			1: {10},
			2: {},
		},
		products: map[int64]string{1: "P-001"},
		movements: []fixtureMovement{
			{
				id:          100,
				operationID: 7,
				direction:   operation.DirectionInbound,
				destination: ptr(10),
				items:       []fixtureItem{{id: 1000, productID: 1, quantity: "10"}},
			},
			{
				id:          101,
				operationID: 8,
				direction:   operation.DirectionOutbound,
				origin:      ptr(10),
				items:       []fixtureItem{{id: 1001, productID: 1, quantity: "3"}},
			},
		},
	}
}

func sortedIDs(ids []int64) []int64 {
	out := append([]int64(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// --- Resolve ---

func TestResolveMovements_EntityRequired(t *testing.T) {
	svc := NewService(scenarioRepo())

	_, err := svc.ResolveMovements(context.Background(), Filter{})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestResolveMovements_EntityNotFound(t *testing.T) {
	svc := NewService(scenarioRepo())

	_, err := svc.ResolveMovements(context.Background(), Filter{EntityID: 99})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestResolveMovements_NoOwnedWarehousesShortCircuits(t *testing.T) {
	svc := NewService(scenarioRepo())

	// Entity 2 owns nothing: empty set regardless of any other filter.
	filters := []Filter{
		{EntityID: 2},
		{EntityID: 2, WarehouseID: ptr(10)},
		{EntityID: 2, ProductID: ptr(1), LotID: ptr(5), OperationID: ptr(7)},
	}
	for _, f := range filters {
		ids, err := svc.ResolveMovements(context.Background(), f)
		require.NoError(t, err)
		assert.Empty(t, ids)
	}
}

func TestResolveMovements_BaseFilter(t *testing.T) {
	svc := NewService(scenarioRepo())

	ids, err := svc.ResolveMovements(context.Background(), Filter{EntityID: 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 101}, sortedIDs(ids))
}

func TestResolveMovements_OptionalFiltersNeverWiden(t *testing.T) {
	repo := scenarioRepo()
	// Extra movement on a foreign warehouse to make the base filter matter.
	repo.movements = append(repo.movements, fixtureMovement{
		id:          102,
		operationID: 7,
		direction:   operation.DirectionInbound,
		destination: ptr(99),
		items:       []fixtureItem{{id: 1002, productID: 1, quantity: "4"}},
	})
	svc := NewService(repo)
	ctx := context.Background()

	base, err := svc.ResolveMovements(ctx, Filter{EntityID: 1})
	require.NoError(t, err)

	narrower := []Filter{
		{EntityID: 1, WarehouseID: ptr(10)},
		{EntityID: 1, OperationID: ptr(7)},
		{EntityID: 1, ProductID: ptr(1)},
		{EntityID: 1, LotID: ptr(5)},
		{EntityID: 1, OperationID: ptr(8), ProductID: ptr(1)},
	}
	for _, f := range narrower {
		ids, err := svc.ResolveMovements(ctx, f)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(ids), len(base))
	}
}

func TestResolveMovements_OperationFilter(t *testing.T) {
	svc := NewService(scenarioRepo())

	ids, err := svc.ResolveMovements(context.Background(), Filter{EntityID: 1, OperationID: ptr(8)})
	require.NoError(t, err)
	assert.Equal(t, []int64{101}, ids)
}

// --- Reconcile ---

func TestReconcile_EmptySetIsEmptyReport(t *testing.T) {
	svc := NewService(scenarioRepo())

	records, err := svc.Reconcile(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Len(t, records, 0)
}

func TestReconcile_BalanceFromFullHistory(t *testing.T) {
	svc := NewService(scenarioRepo())
	ctx := context.Background()

	// Reconciling only movement 100 must still see movement 101's outbound:
	// the balance always covers all history, the filter only picks rows.
	records, err := svc.Reconcile(ctx, []int64{100})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.True(t, records[0].CalculatedBalance.Equal(types.MustQuantity("7")),
		"calculated = %s", records[0].CalculatedBalance)
}

func TestReconcile_MissingSnapshotCountsAsZero(t *testing.T) {
	svc := NewService(scenarioRepo())

	records, err := svc.Reconcile(context.Background(), []int64{100, 101})
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, rec := range records {
		assert.True(t, rec.CalculatedBalance.Equal(types.MustQuantity("7")))
		assert.True(t, rec.StoredBalance.IsZero())
		assert.True(t, rec.Difference.Equal(types.MustQuantity("7")))
	}
}

func TestReconcile_MatchingSnapshotZeroesDifference(t *testing.T) {
	repo := scenarioRepo()
	repo.snapshots = []fixtureSnapshot{
		{productID: 1, warehouseID: 10, quantity: "7"},
	}
	svc := NewService(repo)

	records, err := svc.Reconcile(context.Background(), []int64{100, 101})
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, rec := range records {
		assert.True(t, rec.StoredBalance.Equal(types.MustQuantity("7")))
		assert.True(t, rec.Difference.IsZero())
	}
}

func TestReconcile_DriftedSnapshotSurfacesDifference(t *testing.T) {
	repo := scenarioRepo()
	repo.snapshots = []fixtureSnapshot{
		{productID: 1, warehouseID: 10, quantity: "9.500"},
	}
	svc := NewService(repo)

	records, err := svc.Reconcile(context.Background(), []int64{100})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.True(t, records[0].Difference.Equal(types.MustQuantity("-2.500")),
		"difference = %s", records[0].Difference)
}

func TestReconcile_SkipsNullAffectedWarehouse(t *testing.T) {
	repo := scenarioRepo()
	// Inbound movement without a destination: its items produce no rows.
	repo.movements = append(repo.movements, fixtureMovement{
		id:          103,
		operationID: 7,
		direction:   operation.DirectionInbound,
		origin:      ptr(10),
		items:       []fixtureItem{{id: 1003, productID: 1, quantity: "5"}},
	})
	svc := NewService(repo)

	records, err := svc.Reconcile(context.Background(), []int64{103})
	require.NoError(t, err)
	assert.Len(t, records, 0)
}

func TestReconcile_LotIsPartOfTheKey(t *testing.T) {
	repo := scenarioRepo()
	repo.lotNumbers = map[int64]string{5: "L-2024-05"}
	repo.movements = append(repo.movements, fixtureMovement{
		id:          104,
		operationID: 7,
		direction:   operation.DirectionInbound,
		destination: ptr(10),
		items:       []fixtureItem{{id: 1004, productID: 1, lotID: ptr(5), quantity: "2"}},
	})
	svc := NewService(repo)

	records, err := svc.Reconcile(context.Background(), []int64{104})
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Lot 5 history is just this movement; NULL-lot movements don't count.
	assert.True(t, records[0].CalculatedBalance.Equal(types.MustQuantity("2")))
	require.NotNil(t, records[0].LotNumber)
	assert.Equal(t, "L-2024-05", *records[0].LotNumber)
}

func TestReconcile_MemoizesAggregatesPerKey(t *testing.T) {
	repo := scenarioRepo()
	svc := NewService(repo)

	// Both line items share the (product 1, no lot, warehouse 10) key:
	// one inbound sum and one outbound sum, not two of each.
	_, err := svc.Reconcile(context.Background(), []int64{100, 101})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.sumCalls)
}

func TestReconcile_PropagatesStorageFailure(t *testing.T) {
	repo := scenarioRepo()
	svc := NewService(repo)
	ctx := context.Background()

	ids, err := svc.ResolveMovements(ctx, Filter{EntityID: 1})
	require.NoError(t, err)

	repo.failWith = errors.New("connection reset")
	records, err := svc.Reconcile(ctx, ids)
	require.Error(t, err)
	assert.Nil(t, records, "no partial report on failure")
}

// --- End to end ---

func TestStockReconciliation_Scenario(t *testing.T) {
	svc := NewService(scenarioRepo())

	records, err := svc.StockReconciliation(context.Background(), Filter{EntityID: 1})
	require.NoError(t, err)
	require.Len(t, records, 2)

	gotMovements := []int64{records[0].MovementID, records[1].MovementID}
	assert.Equal(t, []int64{100, 101}, sortedIDs(gotMovements))

	for _, rec := range records {
		assert.Equal(t, "P-001", rec.ProductCode)
		assert.Nil(t, rec.LotNumber)
		assert.True(t, rec.CalculatedBalance.Equal(types.MustQuantity("7")))
		assert.True(t, rec.StoredBalance.IsZero())
		assert.True(t, rec.Difference.Equal(types.MustQuantity("7")))
	}
}

type recordingTxRunner struct {
	calls int
}

func (r *recordingTxRunner) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	return fn(ctx)
}

func TestStockReconciliation_RunsInsideTransaction(t *testing.T) {
	runner := &recordingTxRunner{}
	svc := NewServiceWithTx(scenarioRepo(), runner)

	records, err := svc.StockReconciliation(context.Background(), Filter{EntityID: 1})
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, runner.calls)
}

func TestStockReconciliation_EntityWithoutWarehouses(t *testing.T) {
	svc := NewService(scenarioRepo())

	records, err := svc.StockReconciliation(context.Background(), Filter{EntityID: 2})
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Len(t, records, 0)
}
