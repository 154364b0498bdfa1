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

// businessRepository implements the BusinessRepository interface.
type businessRepository struct {
	BaseRepository
}

func newBusinessRepository(db *pgxpool.Pool) portsrepo.BusinessRepository {
	return &businessRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindBusinessByID retrieves a business by its ID.
func (r *businessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `
		SELECT
			business_id,
			name,
			is_active,
			created_at,
			created_by,
			last_updated_at,
			last_updated_by
		FROM businesses
		WHERE business_id = $1
	`

	var business domain.Business
	err := r.Pool.QueryRow(ctx, query, businessID).Scan(
		&business.BusinessID,
		&business.Name,
		&business.IsActive,
		&business.CreatedAt,
		&business.CreatedBy,
		&business.LastUpdatedAt,
		&business.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying business: %w", err)
	}

	return &business, nil
}

// GetUserRoleInBusiness retrieves the role a user holds in a business, or
// apperrors.ErrNotFound when no membership exists.
func (r *businessRepository) GetUserRoleInBusiness(ctx context.Context, userID, businessID string) (domain.BusinessUserRole, error) {
	query := `
		SELECT role
		FROM business_users
		WHERE user_id = $1
			AND business_id = $2
	`

	var role string
	err := r.Pool.QueryRow(ctx, query, userID, businessID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("error querying business membership: %w", err)
	}

	return domain.BusinessUserRole(role), nil
}
