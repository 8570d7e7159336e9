package tests

import (
	"context"
	"encoding/json"
	"testing"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/mocks"
	"tiffinbox/marketplace-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const restaurantApplication = `{"name":"Spice Route","address":"4 FC Road, Pune","cuisine":"Maharashtrian","recipe_box":true}`

func TestApprovalWorkflow_Submit(t *testing.T) {
	tests := []struct {
		name          string
		user          *domain.User
		details       string
		prepareMocks  func(repo *mocks.Repository)
		expectedError error
		validation    bool
	}{
		{
			name:    "success_first_request",
			user:    customer(5),
			details: restaurantApplication,
			prepareMocks: func(repo *mocks.Repository) {
				runTx(repo).Once()
				repo.On("GetRequestByUser", mock.Anything, 5, domain.RequestRestaurant).Return(nil, service.ErrNotFound).Once()
				repo.On("CreateRequest", mock.Anything, mock.MatchedBy(func(r *domain.PartnerRequest) bool {
					return r.UserID == 5 && r.Status == domain.RequestPending && r.Kind == domain.RequestRestaurant
				})).Return(nil).Once()
			},
		},
		{
			name:    "success_resubmit_after_rejection",
			user:    customer(5),
			details: restaurantApplication,
			prepareMocks: func(repo *mocks.Repository) {
				runTx(repo).Once()
				repo.On("GetRequestByUser", mock.Anything, 5, domain.RequestRestaurant).
					Return(&domain.PartnerRequest{ID: 31, UserID: 5, Status: domain.RequestRejected}, nil).Once()
				repo.On("DeleteRequest", mock.Anything, 31).Return(nil).Once()
				repo.On("CreateRequest", mock.Anything, mock.AnythingOfType("*domain.PartnerRequest")).Return(nil).Once()
			},
		},
		{
			name:    "error_pending_request_exists",
			user:    customer(5),
			details: restaurantApplication,
			prepareMocks: func(repo *mocks.Repository) {
				runTx(repo).Once()
				repo.On("GetRequestByUser", mock.Anything, 5, domain.RequestRestaurant).
					Return(&domain.PartnerRequest{ID: 31, UserID: 5, Status: domain.RequestPending}, nil).Once()
			},
			expectedError: service.ErrRequestExists,
			validation:    true,
		},
		{
			name:          "error_owner_already_has_restaurant",
			user:          restaurantOwner(3, 10),
			details:       restaurantApplication,
			prepareMocks:  func(repo *mocks.Repository) {},
			expectedError: service.ErrForbidden,
		},
		{
			name:         "error_missing_name",
			user:         customer(5),
			details:      `{"address":"somewhere"}`,
			prepareMocks: func(repo *mocks.Repository) {},
			validation:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			wf := service.NewRestaurantApprovals(repo)
			tt.prepareMocks(repo)

			req, err := wf.Submit(context.Background(), tt.user, []byte(tt.details))

			if tt.expectedError == nil && !tt.validation {
				require.NoError(t, err)
				assert.Equal(t, domain.RequestPending, req.Status)
				assert.JSONEq(t, tt.details, string(req.Details))
				return
			}
			assert.Error(t, err)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			}
			assert.Equal(t, tt.validation, service.IsValidation(err))
		})
	}
}

func TestApprovalWorkflow_DeliverySubmitNeedsDeliveryRole(t *testing.T) {
	repo := mocks.NewRepository(t)
	wf := service.NewDeliveryApprovals(repo)

	_, err := wf.Submit(context.Background(), customer(5), []byte(`{"vehicle_type":"bike","phone":"9999"}`))

	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestApprovalWorkflow_ApproveRestaurant(t *testing.T) {
	repo := mocks.NewRepository(t)
	wf := service.NewRestaurantApprovals(repo)

	pending := &domain.PartnerRequest{ID: 31, UserID: 5, Kind: domain.RequestRestaurant,
		Status: domain.RequestPending, Details: json.RawMessage(restaurantApplication)}

	runTx(repo).Once()
	repo.On("LockRequest", mock.Anything, 31, domain.RequestRestaurant).Return(pending, nil).Once()
	repo.On("CreateRestaurant", mock.Anything, mock.MatchedBy(func(r *domain.Restaurant) bool {
		return r.OwnerID == 5 && r.Name == "Spice Route" && r.RecipeBox
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Restaurant).ID = 44
	}).Return(nil).Once()
	repo.On("SetUserRestaurant", mock.Anything, 5, intPtr(44)).Return(nil).Once()
	repo.On("SetUserRole", mock.Anything, 5, domain.RoleRestaurant).Return(nil).Once()
	repo.On("UpdateRequestStatus", mock.Anything, pending).Return(nil).Once()

	decided, err := wf.Approve(context.Background(), adminUser(1), 31)

	require.NoError(t, err)
	assert.Equal(t, domain.RequestApproved, decided.Status)
	require.NotNil(t, decided.ReviewedBy)
	assert.Equal(t, 1, *decided.ReviewedBy)
	assert.NotNil(t, decided.ReviewedAt)
}

func TestApprovalWorkflow_DeliveryDecisions(t *testing.T) {
	t.Run("approve_links_partner", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		wf := service.NewDeliveryApprovals(repo)
		pending := &domain.PartnerRequest{ID: 12, UserID: 7, Kind: domain.RequestDelivery, Status: domain.RequestPending}

		runTx(repo).Once()
		repo.On("LockRequest", mock.Anything, 12, domain.RequestDelivery).Return(pending, nil).Once()
		repo.On("SetUserDeliveryPartner", mock.Anything, 7, intPtr(12)).Return(nil).Once()
		repo.On("UpdateRequestStatus", mock.Anything, pending).Return(nil).Once()

		decided, err := wf.Approve(context.Background(), adminUser(1), 12)

		require.NoError(t, err)
		assert.Equal(t, domain.RequestApproved, decided.Status)
	})

	t.Run("reject_clears_partner", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		wf := service.NewDeliveryApprovals(repo)
		pending := &domain.PartnerRequest{ID: 12, UserID: 7, Kind: domain.RequestDelivery, Status: domain.RequestPending}

		runTx(repo).Once()
		repo.On("LockRequest", mock.Anything, 12, domain.RequestDelivery).Return(pending, nil).Once()
		repo.On("SetUserDeliveryPartner", mock.Anything, 7, (*int)(nil)).Return(nil).Once()
		repo.On("UpdateRequestStatus", mock.Anything, pending).Return(nil).Once()

		decided, err := wf.Reject(context.Background(), adminUser(1), 12, "licence expired")

		require.NoError(t, err)
		assert.Equal(t, domain.RequestRejected, decided.Status)
		assert.Equal(t, "licence expired", decided.RejectReason)
	})

	t.Run("error_already_decided", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		wf := service.NewDeliveryApprovals(repo)

		runTx(repo).Once()
		repo.On("LockRequest", mock.Anything, 12, domain.RequestDelivery).
			Return(&domain.PartnerRequest{ID: 12, UserID: 7, Status: domain.RequestApproved}, nil).Once()

		_, err := wf.Reject(context.Background(), adminUser(1), 12, "")

		assert.ErrorIs(t, err, service.ErrRequestNotPending)
		assert.True(t, service.IsValidation(err))
	})

	t.Run("error_not_admin", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		wf := service.NewDeliveryApprovals(repo)

		_, err := wf.Approve(context.Background(), deliveryPartner(7), 12)

		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}
