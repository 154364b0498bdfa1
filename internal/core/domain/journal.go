package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a single immutable debit/credit line in the ledger.
// Entries are append-only: corrections are posted as new reversing or
// adjusting entries, never by editing or deleting history. Every statement
// the engine produces is derived by replaying these lines to a cutoff.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`         // Primary Key (e.g., UUID)
	BusinessID      string          `json:"businessID"`      // FK -> businesses.business_id (Not Null)
	AccountID       string          `json:"accountID"`       // FK -> accounts.account_id (Not Null)
	TransactionDate time.Time       `json:"transactionDate"` // Date the event occurred
	Debit           decimal.Decimal `json:"debit"`           // >= 0
	Credit          decimal.Decimal `json:"credit"`          // >= 0
	Description     string          `json:"description"`     // Nullable user description
	AuditFields
}
