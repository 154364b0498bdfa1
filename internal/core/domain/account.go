package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AllAccountTypes lists every known account type, used when a report needs
// balances across the whole chart of accounts.
var AllAccountTypes = []AccountType{Asset, Liability, Equity, Income, Expense}

// Account represents a ledger account within the core domain.
// The account type determines the normal-balance side and must not change
// once journal entries reference the account.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (e.g., UUID)
	BusinessID  string      `json:"businessID"`  // FK -> businesses.business_id (NON-NULL)
	Code        string      `json:"code"`        // Unique per business; code-based settings key on this
	Name        string      `json:"name"`        // User-defined name
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	IsActive    bool        `json:"isActive"`    // Soft delete or status flag
	AuditFields             // Embed CreatedAt, CreatedBy, etc.
}
