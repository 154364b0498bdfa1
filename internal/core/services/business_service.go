package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bizbooks/bizbooks_app/internal/apperrors"
	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_app/internal/core/ports/services"
)

// roleRank orders roles by capability; a higher rank satisfies any lower
// requirement.
var roleRank = map[domain.BusinessUserRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleOwner:    3,
}

// businessService implements the BusinessService interface, including the
// authorizer the report generators depend on.
type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepository
}

// NewBusinessService creates a new business service.
func NewBusinessService(repo portsrepo.BusinessRepository) portssvc.BusinessService {
	return &businessService{businessRepo: repo}
}

var _ portssvc.BusinessService = (*businessService)(nil)

// GetBusinessByID fetches a business by its ID.
func (s *businessService) GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch business %s: %w", businessID, err)
	}
	return business, nil
}

// AuthorizeUserAction verifies the user holds at least requiredRole in the
// business. Non-members and unknown businesses both map to ErrForbidden so
// callers cannot distinguish the two.
func (s *businessService) AuthorizeUserAction(ctx context.Context, userID, businessID string, requiredRole domain.BusinessUserRole) error {
	role, err := s.businessRepo.GetUserRoleInBusiness(ctx, userID, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User is not a member of business",
				slog.String("user_id", userID),
				slog.String("business_id", businessID))
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to check membership for user %s in business %s: %w", userID, businessID, err)
	}

	if roleRank[role] < roleRank[requiredRole] {
		return apperrors.ErrForbidden
	}
	return nil
}
