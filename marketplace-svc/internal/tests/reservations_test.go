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

var dinnerTime = time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

func tableFour() *domain.Table {
	return &domain.Table{ID: 4, RestaurantID: 10, Number: 4, Capacity: 4, IsActive: true}
}

func TestReservationService_Reserve(t *testing.T) {
	tests := []struct {
		name          string
		actor         *domain.User
		res           domain.Reservation
		prepareMocks  func(repo *mocks.Repository)
		expectedError error
		validation    bool
		check         func(t *testing.T, res *domain.Reservation)
	}{
		{
			name:  "success_customer_books_for_self",
			actor: customer(5),
			res:   domain.Reservation{RestaurantID: 10, TableID: intPtr(4), PartySize: 2, ReservedAt: dinnerTime},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetRestaurant", mock.Anything, 10).Return(&domain.Restaurant{ID: 10}, nil).Once()
				runTx(repo).Once()
				repo.On("LockTable", mock.Anything, 4).Return(tableFour(), nil).Once()
				repo.On("CountTableConflicts", mock.Anything, 4,
					dinnerTime.Add(-2*time.Hour), dinnerTime.Add(2*time.Hour), 0).Return(0, nil).Once()
				repo.On("CreateReservation", mock.Anything, mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()
			},
			check: func(t *testing.T, res *domain.Reservation) {
				require.NotNil(t, res.UserID)
				assert.Equal(t, 5, *res.UserID)
				assert.Equal(t, "Asha", res.CustomerName)
				assert.Equal(t, domain.ReservationPending, res.Status)
			},
		},
		{
			name:  "success_staff_books_walk_in",
			actor: restaurantOwner(2, 10),
			res: domain.Reservation{RestaurantID: 10, PartySize: 6, ReservedAt: dinnerTime,
				CustomerName: "Ravi", CustomerPhone: "98200 00000"},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetRestaurant", mock.Anything, 10).Return(&domain.Restaurant{ID: 10}, nil).Once()
				runTx(repo).Once()
				repo.On("CreateReservation", mock.Anything, mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()
			},
			check: func(t *testing.T, res *domain.Reservation) {
				assert.Nil(t, res.UserID)
				assert.Equal(t, "Ravi", res.CustomerName)
			},
		},
		{
			name:  "error_slot_taken",
			actor: customer(5),
			res:   domain.Reservation{RestaurantID: 10, TableID: intPtr(4), PartySize: 2, ReservedAt: dinnerTime},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetRestaurant", mock.Anything, 10).Return(&domain.Restaurant{ID: 10}, nil).Once()
				runTx(repo).Once()
				repo.On("LockTable", mock.Anything, 4).Return(tableFour(), nil).Once()
				repo.On("CountTableConflicts", mock.Anything, 4, mock.Anything, mock.Anything, 0).Return(1, nil).Once()
			},
			expectedError: service.ErrTableUnavailable,
			validation:    true,
		},
		{
			name:  "error_party_too_large",
			actor: customer(5),
			res:   domain.Reservation{RestaurantID: 10, TableID: intPtr(4), PartySize: 5, ReservedAt: dinnerTime},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetRestaurant", mock.Anything, 10).Return(&domain.Restaurant{ID: 10}, nil).Once()
				runTx(repo).Once()
				repo.On("LockTable", mock.Anything, 4).Return(tableFour(), nil).Once()
			},
			validation: true,
		},
		{
			name:  "error_inactive_table",
			actor: customer(5),
			res:   domain.Reservation{RestaurantID: 10, TableID: intPtr(4), PartySize: 2, ReservedAt: dinnerTime},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetRestaurant", mock.Anything, 10).Return(&domain.Restaurant{ID: 10}, nil).Once()
				runTx(repo).Once()
				table := tableFour()
				table.IsActive = false
				repo.On("LockTable", mock.Anything, 4).Return(table, nil).Once()
			},
			expectedError: service.ErrTableUnavailable,
			validation:    true,
		},
		{
			name:         "error_staff_without_customer_name",
			actor:        restaurantOwner(2, 10),
			res:          domain.Reservation{RestaurantID: 10, PartySize: 2, ReservedAt: dinnerTime, CustomerPhone: "1"},
			prepareMocks: func(repo *mocks.Repository) {},
			validation:   true,
		},
		{
			name:         "error_missing_time",
			actor:        customer(5),
			res:          domain.Reservation{RestaurantID: 10, PartySize: 2},
			prepareMocks: func(repo *mocks.Repository) {},
			validation:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			svc := service.NewReservationService(repo, 2*time.Hour, 100)
			tt.prepareMocks(repo)

			res := tt.res
			err := svc.Reserve(context.Background(), tt.actor, &res)

			if tt.expectedError == nil && !tt.validation {
				require.NoError(t, err)
				tt.check(t, &res)
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

func TestReservationService_ReservePaid(t *testing.T) {
	t.Run("success_confirms_with_fee", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		svc := service.NewReservationService(repo, 2*time.Hour, 150)

		runTx(repo).Once()
		repo.On("FindReservationByPaymentID", mock.Anything, "pay_t1").Return(nil, service.ErrNotFound).Once()
		repo.On("LockTable", mock.Anything, 4).Return(tableFour(), nil).Once()
		repo.On("CountTableConflicts", mock.Anything, 4, mock.Anything, mock.Anything, 0).Return(0, nil).Once()
		repo.On("CreateReservation", mock.Anything, mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()

		res, err := svc.ReservePaid(context.Background(), customer(5),
			&domain.Reservation{RestaurantID: 10, TableID: intPtr(4), PartySize: 2, ReservedAt: dinnerTime}, "pay_t1")

		require.NoError(t, err)
		assert.Equal(t, 150.0, res.Amount)
		assert.Equal(t, domain.PaymentPaid, res.PaymentStatus)
		assert.Equal(t, domain.ReservationConfirmed, res.Status)
		assert.Equal(t, "pay_t1", res.PaymentID)
	})

	t.Run("success_replay_returns_existing", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		svc := service.NewReservationService(repo, 2*time.Hour, 150)
		existing := &domain.Reservation{ID: 88, RestaurantID: 10, PaymentID: "pay_t1", Status: domain.ReservationConfirmed}

		runTx(repo).Once()
		repo.On("FindReservationByPaymentID", mock.Anything, "pay_t1").Return(existing, nil).Once()

		res, err := svc.ReservePaid(context.Background(), customer(5),
			&domain.Reservation{RestaurantID: 10, TableID: intPtr(4), PartySize: 2, ReservedAt: dinnerTime}, "pay_t1")

		require.NoError(t, err)
		assert.Same(t, existing, res)
	})
}

func TestReservationService_Availability(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := service.NewReservationService(repo, 90*time.Minute, 0)

	free := []domain.Table{*tableFour()}
	repo.On("ListAvailableTables", mock.Anything, 10, 3,
		dinnerTime.Add(-90*time.Minute), dinnerTime.Add(90*time.Minute)).Return(free, nil).Once()

	tables, err := svc.Availability(context.Background(), 10, 3, dinnerTime)
	require.NoError(t, err)
	assert.Equal(t, free, tables)

	_, err = svc.Availability(context.Background(), 10, 0, dinnerTime)
	assert.True(t, service.IsValidation(err))
}

func TestReservationService_GuestMayOnlyCancel(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := service.NewReservationService(repo, 2*time.Hour, 0)
	completed := domain.ReservationCompleted

	runTx(repo).Once()
	repo.On("LockReservation", mock.Anything, 88).
		Return(&domain.Reservation{ID: 88, RestaurantID: 10, UserID: intPtr(5), Status: domain.ReservationConfirmed}, nil).Once()

	_, err := svc.UpdateReservation(context.Background(), customer(5), 88, domain.ReservationUpdate{Status: &completed})

	assert.ErrorIs(t, err, service.ErrForbidden)
}
