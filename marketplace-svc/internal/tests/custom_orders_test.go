package tests

import (
	"context"
	"testing"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/mocks"
	"tiffinbox/marketplace-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomOrderService_Create(t *testing.T) {
	tests := []struct {
		name          string
		restaurant    *domain.Restaurant
		expectedError error
	}{
		{name: "success", restaurant: &domain.Restaurant{ID: 10, RecipeBox: true}},
		{name: "error_recipe_box_disabled", restaurant: &domain.Restaurant{ID: 10}, expectedError: service.ErrRecipeBoxDisabled},
		{name: "error_blocked", restaurant: &domain.Restaurant{ID: 10, RecipeBox: true, IsBlocked: true}, expectedError: service.ErrRestaurantBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			svc := service.NewCustomOrderService(repo, nil, quietLog)

			repo.On("GetRestaurant", mock.Anything, 10).Return(tt.restaurant, nil).Once()
			if tt.expectedError == nil {
				repo.On("CreateCustomOrder", mock.Anything, mock.AnythingOfType("*domain.CustomOrder")).Return(nil).Once()
			}

			co := &domain.CustomOrder{RestaurantID: 10, Name: "Jain thali", Price: 999, Status: domain.CustomCompleted}
			err := svc.Create(context.Background(), customer(5), co)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, co.UserID)
			assert.Equal(t, domain.CustomPending, co.Status)
			assert.Zero(t, co.Price)
			assert.NotNil(t, co.Ingredients)
		})
	}
}

func TestCustomOrderService_Update(t *testing.T) {
	accepted := domain.CustomAccepted
	completed := domain.CustomCompleted
	price := 350.0

	t.Run("success_owner_accepts_and_prices", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		svc := service.NewCustomOrderService(repo, nil, quietLog)
		co := &domain.CustomOrder{ID: 3, UserID: 5, RestaurantID: 10, Status: domain.CustomPending}

		runTx(repo).Once()
		repo.On("LockCustomOrder", mock.Anything, 3).Return(co, nil).Once()
		repo.On("UpdateCustomOrder", mock.Anything, co).Return(nil).Once()

		updated, err := svc.Update(context.Background(), restaurantOwner(2, 10), 3, domain.CustomOrderUpdate{Status: &accepted, Price: &price})

		require.NoError(t, err)
		assert.Equal(t, domain.CustomAccepted, updated.Status)
		assert.Equal(t, 350.0, updated.Price)
		assert.True(t, updated.Payable())
	})

	t.Run("error_skips_ahead", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		svc := service.NewCustomOrderService(repo, nil, quietLog)

		runTx(repo).Once()
		repo.On("LockCustomOrder", mock.Anything, 3).
			Return(&domain.CustomOrder{ID: 3, RestaurantID: 10, Status: domain.CustomPending}, nil).Once()

		_, err := svc.Update(context.Background(), restaurantOwner(2, 10), 3, domain.CustomOrderUpdate{Status: &completed})

		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("error_other_restaurant", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		svc := service.NewCustomOrderService(repo, nil, quietLog)

		runTx(repo).Once()
		repo.On("LockCustomOrder", mock.Anything, 3).
			Return(&domain.CustomOrder{ID: 3, RestaurantID: 10, Status: domain.CustomPending}, nil).Once()

		_, err := svc.Update(context.Background(), restaurantOwner(2, 11), 3, domain.CustomOrderUpdate{Status: &accepted})

		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}

func TestCustomOrderService_ConvertPaid(t *testing.T) {
	payable := func() *domain.CustomOrder {
		return &domain.CustomOrder{ID: 3, UserID: 5, RestaurantID: 10, Name: "Jain thali", Status: domain.CustomAccepted, Price: 350}
	}

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewCustomOrderService(repo, publisher, quietLog)
		co := payable()

		runTx(repo).Once()
		repo.On("LockCustomOrder", mock.Anything, 3).Return(co, nil).Once()
		repo.On("ListAddresses", mock.Anything, 5).Return([]domain.Address{homeAddress, {Street: "Other", City: "Mumbai"}}, nil).Once()
		repo.On("CreateParentOrder", mock.Anything, mock.MatchedBy(func(p *domain.ParentOrder) bool {
			return p.TotalPrice == 350 && p.PaymentID == "pay_9" && p.PaymentStatus == domain.PaymentPaid
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.ParentOrder).ID = 70
		}).Return(nil).Once()
		repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Order).ID = 701
		}).Return(nil).Once()
		repo.On("IncrementRestaurantTotals", mock.Anything, 10, 350.0).Return(nil).Once()
		repo.On("AppendStatusHistory", mock.Anything, mock.AnythingOfType("*domain.StatusChange")).Return(nil).Once()
		repo.On("UpdateCustomOrder", mock.Anything, co).Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
			return ev.Type == domain.EventOrderPlaced && ev.OrderID == 701 && ev.Amount == 350
		})).Return(nil).Once()

		order, err := svc.ConvertPaid(context.Background(), customer(5), 3, "pay_9")

		require.NoError(t, err)
		assert.Equal(t, 701, order.ID)
		assert.Equal(t, 70, *order.ParentID)
		assert.Equal(t, homeAddress, order.DeliveryAddress)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "Jain thali", order.Items[0].Name)
		assert.Equal(t, 1, order.Items[0].Quantity)
		assert.Nil(t, order.Items[0].DishID)
		assert.Equal(t, 3, *order.CustomOrderID)
		assert.Equal(t, domain.CustomCompleted, co.Status)
		assert.Equal(t, 701, *co.OrderID)
	})

	t.Run("success_replay_returns_existing", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewCustomOrderService(repo, publisher, quietLog)
		co := payable()
		co.Status = domain.CustomCompleted
		co.OrderID = intPtr(701)
		co.PaymentID = "pay_9"
		existing := &domain.Order{ID: 701, UserID: 5, RestaurantID: 10, TotalPrice: 350}

		runTx(repo).Once()
		repo.On("LockCustomOrder", mock.Anything, 3).Return(co, nil).Once()
		repo.On("GetOrder", mock.Anything, 701).Return(existing, nil).Once()

		order, err := svc.ConvertPaid(context.Background(), customer(5), 3, "pay_9")

		require.NoError(t, err)
		assert.Same(t, existing, order)
	})

	t.Run("error_not_payable", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		svc := service.NewCustomOrderService(repo, nil, quietLog)
		co := payable()
		co.Price = 0

		runTx(repo).Once()
		repo.On("LockCustomOrder", mock.Anything, 3).Return(co, nil).Once()

		_, err := svc.ConvertPaid(context.Background(), customer(5), 3, "pay_9")

		assert.ErrorIs(t, err, service.ErrNotPayable)
	})

	t.Run("error_no_address", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		svc := service.NewCustomOrderService(repo, nil, quietLog)

		runTx(repo).Once()
		repo.On("LockCustomOrder", mock.Anything, 3).Return(payable(), nil).Once()
		repo.On("ListAddresses", mock.Anything, 5).Return([]domain.Address{}, nil).Once()

		_, err := svc.ConvertPaid(context.Background(), customer(5), 3, "pay_9")

		assert.ErrorIs(t, err, service.ErrNoAddress)
		assert.True(t, service.IsValidation(err))
	})

	t.Run("error_someone_elses_order", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		svc := service.NewCustomOrderService(repo, nil, quietLog)

		runTx(repo).Once()
		repo.On("LockCustomOrder", mock.Anything, 3).Return(payable(), nil).Once()

		_, err := svc.ConvertPaid(context.Background(), customer(6), 3, "pay_9")

		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}
