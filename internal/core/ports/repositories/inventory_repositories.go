package repositories

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
)

// InventoryRepository defines the read-side query shapes over the inventory
// lot table and the append-only movement ledger.
type InventoryRepository interface {
	// ListActiveLots returns every active lot for the business, oldest first.
	ListActiveLots(ctx context.Context, businessID string) ([]domain.InventoryLot, error)

	// ReplayMovements reconstructs per-product stock by summing
	// quantity_change and quantity_change * unit_cost over ledger lines
	// created on or before asOf. Products with a zero cumulative quantity are
	// still returned; the valuation service filters them out.
	ReplayMovements(ctx context.Context, businessID string, asOf time.Time) ([]domain.ProductValuation, error)
}
