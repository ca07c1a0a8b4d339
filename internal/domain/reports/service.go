package reports

import (
	"context"
	"fmt"

	"almoxarifado/internal/core/apperror"
	"almoxarifado/internal/core/types"
	"almoxarifado/internal/domain/catalogs/operation"
)

// TxRunner runs a function inside a read-only transaction.
type TxRunner interface {
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service generates stock reconciliation reports. It is read-only and holds
// no cross-request state; concurrent invocations are safe.
type Service struct {
	repo Repository
	tx   TxRunner
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceWithTx creates a reports service whose end-to-end report runs
// inside a single read-only transaction, so the selection, the aggregates
// and the snapshots all see one consistent view of the data.
func NewServiceWithTx(repo Repository, tx TxRunner) *Service {
	return &Service{repo: repo, tx: tx}
}

// ResolveMovements determines the set of movement identifiers matching the
// filter. An entity that owns no warehouses short-circuits to an empty set;
// an entity that does not exist at all is NotFound.
func (s *Service) ResolveMovements(ctx context.Context, f Filter) ([]int64, error) {
	if f.EntityID == 0 {
		return nil, apperror.NewValidation("entityId is required")
	}

	ok, err := s.repo.EntityExists(ctx, f.EntityID)
	if err != nil {
		return nil, fmt.Errorf("check entity: %w", err)
	}
	if !ok {
		return nil, apperror.NewNotFound("entity", f.EntityID)
	}

	owned, err := s.repo.WarehouseIDsForEntity(ctx, f.EntityID)
	if err != nil {
		return nil, fmt.Errorf("owned warehouses: %w", err)
	}
	if len(owned) == 0 {
		// No owned warehouses means no movement can match any filter.
		return nil, nil
	}

	ids, err := s.repo.FindMovementIDs(ctx, owned, f)
	if err != nil {
		return nil, fmt.Errorf("find movements: %w", err)
	}
	return ids, nil
}

// balanceKey identifies a (product, lot, warehouse) balance. A NULL lot is
// part of the key, distinct from every concrete lot.
type balanceKey struct {
	productID   int64
	lotID       int64
	hasLot      bool
	warehouseID int64
}

// balanceEntry caches the per-key aggregates within one Reconcile call.
type balanceEntry struct {
	calculated types.Quantity
	stored     types.Quantity
}

// Reconcile expands the given movements into line items and emits one
// record per item, comparing the recomputed full-history balance of the
// item's key against the stored snapshot. Line items whose movement lacks
// the warehouse its direction requires are skipped. Balances are memoized
// per key within the call; the aggregates always cover all history,
// regardless of which movements were selected.
func (s *Service) Reconcile(ctx context.Context, movementIDs []int64) ([]ReconciliationRecord, error) {
	records := []ReconciliationRecord{}
	if len(movementIDs) == 0 {
		return records, nil
	}

	rows, err := s.repo.ExpandLineItems(ctx, movementIDs)
	if err != nil {
		return nil, fmt.Errorf("expand line items: %w", err)
	}

	balances := make(map[balanceKey]balanceEntry)

	for _, row := range rows {
		affected := row.AffectedWarehouseID()
		if affected == nil {
			// Malformed movement: its direction requires a warehouse it
			// does not have. Not an error, just no report row.
			continue
		}

		key := balanceKey{productID: row.ProductID, warehouseID: *affected}
		if row.LotID != nil {
			key.lotID = *row.LotID
			key.hasLot = true
		}

		entry, ok := balances[key]
		if !ok {
			entry, err = s.computeBalances(ctx, row.ProductID, row.LotID, *affected)
			if err != nil {
				return nil, err
			}
			balances[key] = entry
		}

		records = append(records, ReconciliationRecord{
			MovementID:         row.MovementID,
			ProductCode:        row.ProductCode,
			ProductDescription: row.ProductDescription,
			LotNumber:          row.LotNumber,
			QuantityMoved:      row.Quantity,
			CalculatedBalance:  entry.calculated,
			StoredBalance:      entry.stored,
			Difference:         entry.calculated.Sub(entry.stored),
		})
	}

	return records, nil
}

// computeBalances aggregates full-history inbound and outbound quantities
// for a key and fetches its snapshot. A missing snapshot row counts as a
// stored balance of exactly zero.
func (s *Service) computeBalances(ctx context.Context, productID int64, lotID *int64, warehouseID int64) (balanceEntry, error) {
	inbound, err := s.repo.SumQuantity(ctx, productID, lotID, warehouseID, operation.DirectionInbound)
	if err != nil {
		return balanceEntry{}, fmt.Errorf("sum inbound: %w", err)
	}

	outbound, err := s.repo.SumQuantity(ctx, productID, lotID, warehouseID, operation.DirectionOutbound)
	if err != nil {
		return balanceEntry{}, fmt.Errorf("sum outbound: %w", err)
	}

	stored, found, err := s.repo.SnapshotBalance(ctx, productID, lotID, warehouseID)
	if err != nil {
		return balanceEntry{}, fmt.Errorf("snapshot balance: %w", err)
	}
	if !found {
		stored = types.ZeroQuantity()
	}

	return balanceEntry{
		calculated: inbound.Sub(outbound),
		stored:     stored,
	}, nil
}

// StockReconciliation resolves the filter and reconciles the matched
// movements in one call. All-or-nothing: any storage failure aborts the
// whole report.
func (s *Service) StockReconciliation(ctx context.Context, f Filter) ([]ReconciliationRecord, error) {
	if s.tx == nil {
		return s.stockReconciliation(ctx, f)
	}

	var records []ReconciliationRecord
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		records, err = s.stockReconciliation(ctx, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) stockReconciliation(ctx context.Context, f Filter) ([]ReconciliationRecord, error) {
	ids, err := s.ResolveMovements(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.Reconcile(ctx, ids)
}
