package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizbooks/bizbooks_app/internal/apperrors"
	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// settingsRepository implements the SettingsRepository interface over the
// per-business account_code_settings table.
type settingsRepository struct {
	BaseRepository
}

func newSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepository {
	return &settingsRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetAccountCodeSettings retrieves the configured account codes for a
// business, or apperrors.ErrNotFound when none have been configured.
func (r *settingsRepository) GetAccountCodeSettings(ctx context.Context, businessID string) (*domain.AccountCodeSettings, error) {
	query := `
		SELECT
			business_id,
			accounts_receivable_code,
			accounts_payable_code,
			inventory_asset_code,
			cogs_code
		FROM account_code_settings
		WHERE business_id = $1
	`

	var settings domain.AccountCodeSettings
	err := r.Pool.QueryRow(ctx, query, businessID).Scan(
		&settings.BusinessID,
		&settings.AccountsReceivableCode,
		&settings.AccountsPayableCode,
		&settings.InventoryAssetCode,
		&settings.COGSCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying account code settings: %w", err)
	}

	return &settings, nil
}
