package repositories

import (
	"context"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
)

// BusinessRepository defines operations over businesses and their members.
type BusinessRepository interface {
	// FindBusinessByID returns the business or apperrors.ErrNotFound.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// GetUserRoleInBusiness returns the role the user holds in the business,
	// or apperrors.ErrNotFound when the user is not a member.
	GetUserRoleInBusiness(ctx context.Context, userID, businessID string) (domain.BusinessUserRole, error)
}

// SettingsRepository provides the per-business account-code configuration.
type SettingsRepository interface {
	// GetAccountCodeSettings returns the configured account codes for the
	// business, or apperrors.ErrNotFound when none have been configured.
	GetAccountCodeSettings(ctx context.Context, businessID string) (*domain.AccountCodeSettings, error)
}
