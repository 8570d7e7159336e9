package tests

import (
	"context"
	"testing"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/mocks"
	"tiffinbox/marketplace-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name          string
		from, to      domain.OrderStatus
		role          domain.Role
		expectedError error
	}{
		{"restaurant_starts_preparing", domain.StatusPending, domain.StatusPreparing, domain.RoleRestaurant, nil},
		{"admin_marks_ready", domain.StatusPreparing, domain.StatusReady, domain.RoleAdmin, nil},
		{"delivery_picks_up", domain.StatusReady, domain.StatusOnTheWay, domain.RoleDelivery, nil},
		{"delivery_delivers", domain.StatusOnTheWay, domain.StatusDelivered, domain.RoleDelivery, nil},
		{"customer_cancels_pending", domain.StatusPending, domain.StatusCancelled, domain.RoleCustomer, nil},
		{"admin_cancels_on_the_way", domain.StatusOnTheWay, domain.StatusCancelled, domain.RoleAdmin, nil},
		{"customer_cannot_cancel_preparing", domain.StatusPreparing, domain.StatusCancelled, domain.RoleCustomer, service.ErrForbidden},
		{"restaurant_cannot_pick_up", domain.StatusReady, domain.StatusOnTheWay, domain.RoleRestaurant, service.ErrForbidden},
		{"delivery_cannot_cancel", domain.StatusOnTheWay, domain.StatusCancelled, domain.RoleDelivery, service.ErrForbidden},
		{"skip_to_delivered", domain.StatusPending, domain.StatusDelivered, domain.RoleAdmin, service.ErrInvalidTransition},
		{"leave_delivered", domain.StatusDelivered, domain.StatusCancelled, domain.RoleAdmin, service.ErrInvalidTransition},
		{"leave_cancelled", domain.StatusCancelled, domain.StatusPending, domain.RoleAdmin, service.ErrInvalidTransition},
		{"go_backwards", domain.StatusReady, domain.StatusPreparing, domain.RoleRestaurant, service.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CheckTransition(tt.from, tt.to, tt.role)
			if tt.expectedError == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		actor         *domain.User
		order         *domain.Order
		to            domain.OrderStatus
		expectedError error
		check         func(t *testing.T, o *domain.Order)
	}{
		{
			name:  "success_pick_up_stamps_partner",
			actor: deliveryPartner(7),
			order: &domain.Order{ID: 1, UserID: 5, RestaurantID: 10, Status: domain.StatusReady, PaymentMethod: domain.PaymentCOD, PaymentStatus: domain.PaymentPending},
			to:    domain.StatusOnTheWay,
			check: func(t *testing.T, o *domain.Order) {
				require.NotNil(t, o.DeliveryPartnerID)
				assert.Equal(t, 7, *o.DeliveryPartnerID)
				assert.Equal(t, domain.PaymentPending, o.PaymentStatus)
			},
		},
		{
			name:  "success_delivered_cod_is_paid",
			actor: deliveryPartner(7),
			order: &domain.Order{ID: 1, UserID: 5, RestaurantID: 10, Status: domain.StatusOnTheWay,
				PaymentMethod: domain.PaymentCOD, PaymentStatus: domain.PaymentPending, DeliveryPartnerID: intPtr(7)},
			to: domain.StatusDelivered,
			check: func(t *testing.T, o *domain.Order) {
				assert.Equal(t, domain.StatusDelivered, o.Status)
				assert.Equal(t, domain.PaymentPaid, o.PaymentStatus)
			},
		},
		{
			name:  "success_restaurant_owner_prepares",
			actor: restaurantOwner(3, 10),
			order: &domain.Order{ID: 1, UserID: 5, RestaurantID: 10, Status: domain.StatusPending},
			to:    domain.StatusPreparing,
			check: func(t *testing.T, o *domain.Order) {
				assert.Equal(t, domain.StatusPreparing, o.Status)
			},
		},
		{
			name:  "error_other_partner_delivers",
			actor: deliveryPartner(8),
			order: &domain.Order{ID: 1, RestaurantID: 10, Status: domain.StatusOnTheWay, DeliveryPartnerID: intPtr(7)},
			to:    domain.StatusDelivered,
			expectedError: service.ErrForbidden,
		},
		{
			name:          "error_other_restaurant",
			actor:         restaurantOwner(3, 11),
			order:         &domain.Order{ID: 1, RestaurantID: 10, Status: domain.StatusPending},
			to:            domain.StatusPreparing,
			expectedError: service.ErrForbidden,
		},
		{
			name:          "error_customer_cancels_preparing",
			actor:         customer(5),
			order:         &domain.Order{ID: 1, UserID: 5, RestaurantID: 10, Status: domain.StatusPreparing},
			to:            domain.StatusCancelled,
			expectedError: service.ErrForbidden,
		},
		{
			name:          "error_customer_cancels_someone_elses_order",
			actor:         customer(6),
			order:         &domain.Order{ID: 1, UserID: 5, RestaurantID: 10, Status: domain.StatusPending},
			to:            domain.StatusCancelled,
			expectedError: service.ErrForbidden,
		},
		{
			name:          "error_terminal_state",
			actor:         adminUser(1),
			order:         &domain.Order{ID: 1, UserID: 5, RestaurantID: 10, Status: domain.StatusDelivered},
			to:            domain.StatusCancelled,
			expectedError: service.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			publisher := mocks.NewEventPublisher(t)
			svc := service.NewOrderService(repo, nil, publisher, nil, quietLog)

			runTx(repo).Once()
			repo.On("LockOrder", mock.Anything, tt.order.ID).Return(tt.order, nil).Once()
			if tt.expectedError == nil {
				from := tt.order.Status
				repo.On("UpdateOrderState", mock.Anything, tt.order).Return(nil).Once()
				repo.On("AppendStatusHistory", mock.Anything, mock.MatchedBy(func(c *domain.StatusChange) bool {
					return c.From == from && c.To == tt.to && c.ChangedBy == tt.actor.ID
				})).Return(nil).Once()
				publisher.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
					return ev.Type == domain.EventStatusChanged && ev.Status == string(tt.to)
				})).Return(nil).Once()
			}

			updated, err := svc.UpdateStatus(context.Background(), tt.actor, tt.order.ID, tt.to)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			tt.check(t, updated)
		})
	}
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := service.NewOrderService(repo, nil, nil, nil, quietLog)

	_, err := svc.UpdateStatus(context.Background(), adminUser(1), 1, "teleported")

	assert.True(t, service.IsValidation(err))
}

func TestStatusChangedEvent_CarriesOrderDate(t *testing.T) {
	placed := time.Date(2026, 3, 14, 23, 50, 0, 0, time.UTC)
	order := &domain.Order{ID: 9, RestaurantID: 10, TotalPrice: 320, CreatedAt: placed}

	ev := domain.StatusChangedEvent(order, domain.StatusCancelled)

	assert.Equal(t, domain.EventStatusChanged, ev.Type)
	assert.Equal(t, "cancelled", ev.Status)
	assert.Equal(t, 320.0, ev.Amount)
	assert.True(t, placed.Equal(ev.OrderedAt))
	assert.True(t, ev.Timestamp.After(placed))

	assert.False(t, domain.OrderPlacedEvent(order).OrderedAt.IsZero())
}
