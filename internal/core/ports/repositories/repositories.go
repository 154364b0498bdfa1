package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service container at startup.
type RepositoryProvider struct {
	LedgerRepo    LedgerRepository
	InventoryRepo InventoryRepository
	BusinessRepo  BusinessRepository
	SettingsRepo  SettingsRepository
}
