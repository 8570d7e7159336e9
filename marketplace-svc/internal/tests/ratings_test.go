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

// deliveredParent has two children from different restaurants carried by the
// same partner, and dish 1 ordered in the first child.
func deliveredParent() *domain.ParentOrder {
	return &domain.ParentOrder{
		ID:     50,
		UserID: 5,
		Orders: []domain.Order{
			{ID: 501, RestaurantID: 10, Status: domain.StatusDelivered, DeliveryPartnerID: intPtr(7),
				Items: []domain.OrderItem{{ID: 9001, DishID: intPtr(1), Name: "Paneer Tikka", Price: 100, Quantity: 1}}},
			{ID: 502, RestaurantID: 20, Status: domain.StatusDelivered, DeliveryPartnerID: intPtr(7),
				Items: []domain.OrderItem{{ID: 9002, DishID: intPtr(3), Name: "Thali", Price: 200, Quantity: 1}}},
		},
	}
}

func TestRatingService_RepeatAllowedAppliesEveryTime(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := service.NewRatingService(repo, nil, true, quietLog)

	rated := deliveredParent()
	rated.DeliveryRating = intPtr(5)

	runTx(repo).Twice()
	repo.On("LockParentOrder", mock.Anything, 50).Return(deliveredParent(), nil).Once()
	repo.On("LockParentOrder", mock.Anything, 50).Return(rated, nil).Once()
	repo.On("SetDeliveryRating", mock.Anything, 50, 5).Return(nil).Once()
	repo.On("SetDeliveryRating", mock.Anything, 50, 3).Return(nil).Once()
	repo.On("ApplyPartnerRating", mock.Anything, 7, 5).Return(nil).Once()
	repo.On("ApplyPartnerRating", mock.Anything, 7, 3).Return(nil).Once()

	require.NoError(t, svc.Rate(context.Background(), domain.RatingRequest{ParentID: 50, UserID: 5, DeliveryRating: intPtr(5)}))
	require.NoError(t, svc.Rate(context.Background(), domain.RatingRequest{ParentID: 50, UserID: 5, DeliveryRating: intPtr(3)}))
}

func TestRatingService_Rate(t *testing.T) {
	tests := []struct {
		name          string
		req           domain.RatingRequest
		parent        func() *domain.ParentOrder
		prepareMocks  func(repo *mocks.Repository, publisher *mocks.EventPublisher)
		expectedError error
	}{
		{
			name:   "success_partner_updated_once",
			req:    domain.RatingRequest{ParentID: 50, UserID: 5, DeliveryRating: intPtr(4)},
			parent: deliveredParent,
			prepareMocks: func(repo *mocks.Repository, publisher *mocks.EventPublisher) {
				repo.On("SetDeliveryRating", mock.Anything, 50, 4).Return(nil).Once()
				repo.On("ApplyPartnerRating", mock.Anything, 7, 4).Return(nil).Once()
			},
		},
		{
			name:   "success_dish_rating_published",
			req:    domain.RatingRequest{ParentID: 50, UserID: 5, DishRatings: []domain.DishRating{{DishID: 1, Rating: 5}}},
			parent: deliveredParent,
			prepareMocks: func(repo *mocks.Repository, publisher *mocks.EventPublisher) {
				repo.On("SetItemRating", mock.Anything, 9001, 5).Return(nil).Once()
				repo.On("ApplyDishRating", mock.Anything, 1, 5).Return(nil).Once()
				publisher.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
					return ev.Type == domain.EventDishRated && ev.DishID == 1 && ev.RestaurantID == 10 &&
						ev.OrderID == 501 && ev.Rating == 5
				})).Return(nil).Once()
			},
		},
		{
			name: "error_delivery_already_rated",
			req:  domain.RatingRequest{ParentID: 50, UserID: 5, DeliveryRating: intPtr(2)},
			parent: func() *domain.ParentOrder {
				p := deliveredParent()
				p.DeliveryRating = intPtr(5)
				return p
			},
			prepareMocks:  func(repo *mocks.Repository, publisher *mocks.EventPublisher) {},
			expectedError: service.ErrAlreadyRated,
		},
		{
			name: "error_dish_already_rated",
			req:  domain.RatingRequest{ParentID: 50, UserID: 5, DishRatings: []domain.DishRating{{DishID: 3, Rating: 1}}},
			parent: func() *domain.ParentOrder {
				p := deliveredParent()
				p.Orders[1].Items[0].Rating = intPtr(4)
				return p
			},
			prepareMocks:  func(repo *mocks.Repository, publisher *mocks.EventPublisher) {},
			expectedError: service.ErrAlreadyRated,
		},
		{
			name:          "error_dish_not_in_order",
			req:           domain.RatingRequest{ParentID: 50, UserID: 5, DishRatings: []domain.DishRating{{DishID: 42, Rating: 4}}},
			parent:        deliveredParent,
			prepareMocks:  func(repo *mocks.Repository, publisher *mocks.EventPublisher) {},
			expectedError: service.ErrDishNotInOrder,
		},
		{
			name:          "error_not_owner",
			req:           domain.RatingRequest{ParentID: 50, UserID: 6, DeliveryRating: intPtr(4)},
			parent:        deliveredParent,
			prepareMocks:  func(repo *mocks.Repository, publisher *mocks.EventPublisher) {},
			expectedError: service.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			publisher := mocks.NewEventPublisher(t)
			svc := service.NewRatingService(repo, publisher, false, quietLog)

			runTx(repo).Once()
			repo.On("LockParentOrder", mock.Anything, tt.req.ParentID).Return(tt.parent(), nil).Once()
			tt.prepareMocks(repo, publisher)

			err := svc.Rate(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRatingService_RejectsOutOfRange(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := service.NewRatingService(repo, nil, false, quietLog)

	for _, req := range []domain.RatingRequest{
		{ParentID: 50, UserID: 5},
		{ParentID: 50, UserID: 5, DeliveryRating: intPtr(0)},
		{ParentID: 50, UserID: 5, DeliveryRating: intPtr(6)},
		{ParentID: 50, UserID: 5, DishRatings: []domain.DishRating{{DishID: 1, Rating: 9}}},
	} {
		err := svc.Rate(context.Background(), req)
		assert.True(t, service.IsValidation(err), "request %+v", req)
	}
}
