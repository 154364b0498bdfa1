package services

import (
	"context"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
)

// BusinessAuthorizerSvc verifies that a user may act on a business with at
// least the required role. The reporting engine trusts this collaborator and
// performs no further authorization of its own.
type BusinessAuthorizerSvc interface {
	// AuthorizeUserAction returns nil when the user holds requiredRole (or a
	// stronger one) in the business, apperrors.ErrForbidden otherwise.
	AuthorizeUserAction(ctx context.Context, userID, businessID string, requiredRole domain.BusinessUserRole) error
}

// BusinessReaderSvc exposes read access to businesses.
type BusinessReaderSvc interface {
	GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
}

// BusinessService groups the business-facing capabilities.
type BusinessService interface {
	BusinessAuthorizerSvc
	BusinessReaderSvc
}
