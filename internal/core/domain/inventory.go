package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLot represents a discrete inventory intake (purchase or
// production batch) carrying its own cost and timestamp. Lots are
// decremented on consumption and soft-deactivated at zero quantity,
// never hard-deleted.
type InventoryLot struct {
	LotID      string          `json:"lotID"`      // Primary Key (e.g., UUID)
	BusinessID string          `json:"businessID"` // FK -> businesses.business_id (Not Null)
	ProductID  string          `json:"productID"`  // FK -> products.product_id (Not Null)
	Quantity   decimal.Decimal `json:"quantity"`   // Remaining quantity in the lot
	CostPrice  decimal.Decimal `json:"costPrice"`  // Unit cost at intake
	IsActive   bool            `json:"isActive"`   // False once the lot is exhausted
	AuditFields
}

// InventoryMovement is a single signed line in the append-only inventory
// ledger. Point-in-time stock and valuation are reconstructed by replaying
// these lines to a cutoff, never read from a running-balance column.
type InventoryMovement struct {
	MovementID     string          `json:"movementID"` // Primary Key (e.g., UUID)
	BusinessID     string          `json:"businessID"`
	ProductID      string          `json:"productID"`
	QuantityChange decimal.Decimal `json:"quantityChange"` // Positive intake, negative consumption
	UnitCost       decimal.Decimal `json:"unitCost"`
	CreatedAt      time.Time       `json:"createdAt"`
}
