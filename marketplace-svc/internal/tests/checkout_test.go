package tests

import (
	"context"
	"errors"
	"testing"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/mocks"
	"tiffinbox/marketplace-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var homeAddress = domain.Address{Street: "12 MG Road", City: "Pune", PostalCode: "411001"}

func catalogDishes() []domain.Dish {
	return []domain.Dish{
		{ID: 1, RestaurantID: 10, Name: "Paneer Tikka", Price: 100},
		{ID: 2, RestaurantID: 10, Name: "Lassi", Price: 50},
		{ID: 3, RestaurantID: 20, Name: "Thali", Price: 200},
	}
}

func TestOrderService_Checkout_SplitsByRestaurant(t *testing.T) {
	repo := mocks.NewRepository(t)
	cart := mocks.NewCartStore(t)
	publisher := mocks.NewEventPublisher(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewOrderService(repo, cart, publisher, qr, quietLog)

	runTx(repo).Once()
	repo.On("GetDishesByIDs", mock.Anything, []int{1, 2, 3}).Return(catalogDishes(), nil).Once()
	repo.On("GetRestaurant", mock.Anything, 10).Return(&domain.Restaurant{ID: 10, Name: "A"}, nil).Once()
	repo.On("GetRestaurant", mock.Anything, 20).Return(&domain.Restaurant{ID: 20, Name: "B"}, nil).Once()
	repo.On("CreateParentOrder", mock.Anything, mock.AnythingOfType("*domain.ParentOrder")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.ParentOrder).ID = 500 }).
		Return(nil).Once()

	nextID := 900
	repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			nextID++
			args.Get(1).(*domain.Order).ID = nextID
		}).
		Return(nil).Twice()
	repo.On("IncrementRestaurantTotals", mock.Anything, 10, 200.0).Return(nil).Once()
	repo.On("IncrementRestaurantTotals", mock.Anything, 20, 200.0).Return(nil).Once()
	repo.On("AppendStatusHistory", mock.Anything, mock.MatchedBy(func(c *domain.StatusChange) bool {
		return c.To == domain.StatusPending && c.From == ""
	})).Return(nil).Twice()
	qr.On("Generate", 500).Return([]byte("png"), nil).Once()
	repo.On("SaveQRCode", mock.Anything, 500, []byte("png")).Return(nil).Once()
	cart.On("Clear", mock.Anything, 5).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
		return ev.Type == domain.EventOrderPlaced && ev.ParentID == 500
	})).Return(nil).Twice()

	parent, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		UserID: 5,
		Items: []domain.CheckoutLine{
			{DishID: 1, Quantity: 1},
			{DishID: 2, Quantity: 2},
			{DishID: 3, Quantity: 1},
		},
		DeliveryAddress: homeAddress,
	})

	require.NoError(t, err)
	assert.Equal(t, 500, parent.ID)
	assert.Equal(t, 400.0, parent.TotalPrice)
	assert.Equal(t, domain.PaymentCOD, parent.PaymentMethod)
	assert.Equal(t, domain.PaymentPending, parent.PaymentStatus)
	require.Len(t, parent.Orders, 2)

	a, b := parent.Orders[0], parent.Orders[1]
	assert.Equal(t, 10, a.RestaurantID)
	assert.Equal(t, "A", a.RestaurantName)
	assert.Equal(t, 200.0, a.TotalPrice)
	assert.Len(t, a.Items, 2)
	assert.Equal(t, "Paneer Tikka", a.Items[0].Name)
	assert.Equal(t, 20, b.RestaurantID)
	assert.Equal(t, 200.0, b.TotalPrice)
	assert.Equal(t, 500, *b.ParentID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, parent.TotalPrice, a.TotalPrice+b.TotalPrice)
}

func TestOrderService_Checkout_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		req           domain.CheckoutRequest
		prepareMocks  func(repo *mocks.Repository)
		expectedError error
		validation    bool
	}{
		{
			name:          "error_no_order_items",
			req:           domain.CheckoutRequest{UserID: 5, DeliveryAddress: homeAddress},
			prepareMocks:  func(repo *mocks.Repository) {},
			expectedError: service.ErrNoOrderItems,
			validation:    true,
		},
		{
			name: "error_zero_quantity",
			req: domain.CheckoutRequest{UserID: 5, DeliveryAddress: homeAddress,
				Items: []domain.CheckoutLine{{DishID: 1, Quantity: 0}}},
			prepareMocks: func(repo *mocks.Repository) {},
			validation:   true,
		},
		{
			name: "error_missing_street",
			req: domain.CheckoutRequest{UserID: 5, DeliveryAddress: domain.Address{City: "Pune"},
				Items: []domain.CheckoutLine{{DishID: 1, Quantity: 1}}},
			prepareMocks: func(repo *mocks.Repository) {},
			validation:   true,
		},
		{
			name: "error_dish_vanished",
			req: domain.CheckoutRequest{UserID: 5, DeliveryAddress: homeAddress,
				Items: []domain.CheckoutLine{{DishID: 1, Quantity: 1}, {DishID: 99, Quantity: 1}}},
			prepareMocks: func(repo *mocks.Repository) {
				runTx(repo).Once()
				repo.On("GetDishesByIDs", mock.Anything, []int{1, 99}).Return(catalogDishes()[:1], nil).Once()
			},
			validation: true,
		},
		{
			name: "error_restaurant_blocked",
			req: domain.CheckoutRequest{UserID: 5, DeliveryAddress: homeAddress,
				Items: []domain.CheckoutLine{{DishID: 3, Quantity: 1}}},
			prepareMocks: func(repo *mocks.Repository) {
				runTx(repo).Once()
				repo.On("GetDishesByIDs", mock.Anything, []int{3}).Return(catalogDishes()[2:], nil).Once()
				repo.On("GetRestaurant", mock.Anything, 20).Return(&domain.Restaurant{ID: 20, Name: "B", IsBlocked: true}, nil).Once()
			},
			expectedError: service.ErrRestaurantBlocked,
			validation:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			svc := service.NewOrderService(repo, nil, nil, nil, quietLog)
			tt.prepareMocks(repo)

			parent, err := svc.Checkout(context.Background(), tt.req)

			assert.Nil(t, parent)
			assert.Error(t, err)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			}
			assert.Equal(t, tt.validation, service.IsValidation(err))
		})
	}
}

func TestOrderService_Checkout_MissingDishesNamed(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := service.NewOrderService(repo, nil, nil, nil, quietLog)

	runTx(repo).Once()
	repo.On("GetDishesByIDs", mock.Anything, []int{8, 7}).Return([]domain.Dish{}, nil).Once()

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		UserID:          5,
		DeliveryAddress: homeAddress,
		Items:           []domain.CheckoutLine{{DishID: 8, Quantity: 1}, {DishID: 7, Quantity: 1}},
	})

	var missing *service.MissingDishesError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []int{7, 8}, missing.DishIDs)
}

func TestOrderService_Checkout_ReplayedPayment(t *testing.T) {
	repo := mocks.NewRepository(t)
	cart := mocks.NewCartStore(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewOrderService(repo, cart, publisher, nil, quietLog)

	existing := &domain.ParentOrder{ID: 77, UserID: 5, TotalPrice: 400, PaymentID: "pay_1"}
	runTx(repo).Once()
	repo.On("FindParentByPaymentID", mock.Anything, "pay_1").Return(existing, nil).Once()

	parent, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		UserID:          5,
		Items:           []domain.CheckoutLine{{DishID: 1, Quantity: 1}},
		DeliveryAddress: homeAddress,
		PaymentMethod:   domain.PaymentRazorpay,
		PaymentStatus:   domain.PaymentPaid,
		PaymentID:       "pay_1",
	})

	require.NoError(t, err)
	assert.Same(t, existing, parent)
	cart.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestOrderService_Quote(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := service.NewOrderService(repo, nil, nil, nil, quietLog)

	repo.On("GetDishesByIDs", mock.Anything, []int{1, 3}).Return([]domain.Dish{catalogDishes()[0], catalogDishes()[2]}, nil).Once()
	repo.On("GetRestaurant", mock.Anything, 10).Return(&domain.Restaurant{ID: 10}, nil).Once()
	repo.On("GetRestaurant", mock.Anything, 20).Return(&domain.Restaurant{ID: 20}, nil).Once()

	total, err := svc.Quote(context.Background(), []domain.CheckoutLine{
		{DishID: 1, Quantity: 1},
		{DishID: 3, Quantity: 1},
		{DishID: 1, Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 500.0, total)
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := service.DefaultQRGenerator{BaseURL: "https://tiffinbox.example/"}

	assert.Equal(t, "https://tiffinbox.example/orders/500/rate", gen.Link(500))

	png, err := gen.Generate(500)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
