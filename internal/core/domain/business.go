package domain

// BusinessUserRole defines the role a user holds within a business.
type BusinessUserRole string

const (
	RoleOwner    BusinessUserRole = "OWNER"
	RoleMember   BusinessUserRole = "MEMBER"
	RoleReadOnly BusinessUserRole = "READONLY"
)

// Business represents a tenant owning a chart of accounts, a journal and
// an inventory ledger.
type Business struct {
	BusinessID string `json:"businessID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}

// AccountCodeSettings carries the per-business account codes used to single
// out specific accounts for summary metrics. Reports key on these codes,
// never on account names, so each business keeps its own chart-of-accounts
// convention.
type AccountCodeSettings struct {
	BusinessID             string `json:"businessID"`
	AccountsReceivableCode string `json:"accountsReceivableCode"`
	AccountsPayableCode    string `json:"accountsPayableCode"`
	InventoryAssetCode     string `json:"inventoryAssetCode"`
	COGSCode               string `json:"cogsCode"`
}
