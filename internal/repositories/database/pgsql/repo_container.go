package pgsql

import (
	portsrepo "github.com/bizbooks/bizbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:    newLedgerRepository(dbPool),
		InventoryRepo: newInventoryRepository(dbPool),
		BusinessRepo:  newBusinessRepository(dbPool),
		SettingsRepo:  newSettingsRepository(dbPool),
	}
}
