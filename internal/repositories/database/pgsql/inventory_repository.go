package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// inventoryRepository implements the InventoryRepository interface over the
// lot table and the append-only inventory_movements ledger.
type inventoryRepository struct {
	BaseRepository
}

func newInventoryRepository(db *pgxpool.Pool) portsrepo.InventoryRepository {
	return &inventoryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// ListActiveLots retrieves every active lot for the business, oldest first.
func (r *inventoryRepository) ListActiveLots(ctx context.Context, businessID string) ([]domain.InventoryLot, error) {
	query := `
		SELECT
			lot_id,
			business_id,
			product_id,
			quantity,
			cost_price,
			is_active,
			created_at,
			created_by,
			last_updated_at,
			last_updated_by
		FROM inventory_lots
		WHERE business_id = $1
			AND is_active
		ORDER BY created_at
	`

	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("error querying active lots: %w", err)
	}
	defer rows.Close()

	var result []domain.InventoryLot
	for rows.Next() {
		var lot domain.InventoryLot

		if err := rows.Scan(
			&lot.LotID,
			&lot.BusinessID,
			&lot.ProductID,
			&lot.Quantity,
			&lot.CostPrice,
			&lot.IsActive,
			&lot.CreatedAt,
			&lot.CreatedBy,
			&lot.LastUpdatedAt,
			&lot.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning lot row: %w", err)
		}

		result = append(result, lot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lot rows: %w", err)
	}

	if result == nil {
		result = []domain.InventoryLot{}
	}
	return result, nil
}

// ReplayMovements reconstructs per-product stock and value by summing the
// movement ledger up to the cutoff. The running totals live nowhere in the
// schema; this replay is the only source of point-in-time state.
func (r *inventoryRepository) ReplayMovements(ctx context.Context, businessID string, asOf time.Time) ([]domain.ProductValuation, error) {
	query := `
		SELECT
			product_id,
			COALESCE(SUM(quantity_change), 0) AS quantity,
			COALESCE(SUM(quantity_change * unit_cost), 0) AS value
		FROM inventory_movements
		WHERE business_id = $1
			AND created_at <= $2
		GROUP BY product_id
		ORDER BY product_id
	`

	rows, err := r.Pool.Query(ctx, query, businessID, asOf)
	if err != nil {
		return nil, fmt.Errorf("error replaying inventory movements: %w", err)
	}
	defer rows.Close()

	var result []domain.ProductValuation
	for rows.Next() {
		var position domain.ProductValuation

		if err := rows.Scan(&position.ProductID, &position.Quantity, &position.Value); err != nil {
			return nil, fmt.Errorf("error scanning valuation row: %w", err)
		}

		result = append(result, position)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating valuation rows: %w", err)
	}

	if result == nil {
		result = []domain.ProductValuation{}
	}
	return result, nil
}
