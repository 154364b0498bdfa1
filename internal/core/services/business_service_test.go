package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bizbooks/bizbooks_app/internal/apperrors"
	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_app/internal/core/ports/repositories"
	"github.com/bizbooks/bizbooks_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock BusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
}

var _ portsrepo.BusinessRepository = (*MockBusinessRepository)(nil)

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) GetUserRoleInBusiness(ctx context.Context, userID, businessID string) (domain.BusinessUserRole, error) {
	args := m.Called(ctx, userID, businessID)
	return args.Get(0).(domain.BusinessUserRole), args.Error(1)
}

func TestAuthorizeUserActionRoleRanking(t *testing.T) {
	testCases := []struct {
		name         string
		heldRole     domain.BusinessUserRole
		requiredRole domain.BusinessUserRole
		wantErr      error
	}{
		{"readonly can read", domain.RoleReadOnly, domain.RoleReadOnly, nil},
		{"member can read", domain.RoleMember, domain.RoleReadOnly, nil},
		{"owner can read", domain.RoleOwner, domain.RoleReadOnly, nil},
		{"readonly cannot act as member", domain.RoleReadOnly, domain.RoleMember, apperrors.ErrForbidden},
		{"readonly cannot act as owner", domain.RoleReadOnly, domain.RoleOwner, apperrors.ErrForbidden},
		{"member cannot act as owner", domain.RoleMember, domain.RoleOwner, apperrors.ErrForbidden},
		{"owner can act as member", domain.RoleOwner, domain.RoleMember, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockBusinessRepository)
			userID := uuid.NewString()
			businessID := uuid.NewString()
			mockRepo.On("GetUserRoleInBusiness", mock.Anything, userID, businessID).Return(tc.heldRole, nil).Once()

			svc := services.NewBusinessService(mockRepo)
			err := svc.AuthorizeUserAction(context.Background(), userID, businessID, tc.requiredRole)

			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// Non-members and unknown businesses both come back as forbidden, never as
// not-found, so the API does not leak which businesses exist.
func TestAuthorizeUserActionNonMemberIsForbidden(t *testing.T) {
	mockRepo := new(MockBusinessRepository)
	userID := uuid.NewString()
	businessID := uuid.NewString()
	mockRepo.On("GetUserRoleInBusiness", mock.Anything, userID, businessID).
		Return(domain.BusinessUserRole(""), apperrors.ErrNotFound).Once()

	svc := services.NewBusinessService(mockRepo)
	err := svc.AuthorizeUserAction(context.Background(), userID, businessID, domain.RoleReadOnly)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAuthorizeUserActionMembershipLookupFailure(t *testing.T) {
	mockRepo := new(MockBusinessRepository)
	userID := uuid.NewString()
	businessID := uuid.NewString()
	mockRepo.On("GetUserRoleInBusiness", mock.Anything, userID, businessID).
		Return(domain.BusinessUserRole(""), errors.New("connection refused")).Once()

	svc := services.NewBusinessService(mockRepo)
	err := svc.AuthorizeUserAction(context.Background(), userID, businessID, domain.RoleReadOnly)

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrForbidden)
}

func TestGetBusinessByID(t *testing.T) {
	mockRepo := new(MockBusinessRepository)
	businessID := uuid.NewString()
	business := &domain.Business{BusinessID: businessID, Name: "Corner Store"}
	mockRepo.On("FindBusinessByID", mock.Anything, businessID).Return(business, nil).Once()

	svc := services.NewBusinessService(mockRepo)
	got, err := svc.GetBusinessByID(context.Background(), businessID)

	require.NoError(t, err)
	assert.Equal(t, business, got)
}

func TestGetBusinessByIDNotFound(t *testing.T) {
	mockRepo := new(MockBusinessRepository)
	businessID := uuid.NewString()
	mockRepo.On("FindBusinessByID", mock.Anything, businessID).Return(nil, apperrors.ErrNotFound).Once()

	svc := services.NewBusinessService(mockRepo)
	got, err := svc.GetBusinessByID(context.Background(), businessID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
