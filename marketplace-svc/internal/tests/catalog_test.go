package tests

import (
	"context"
	"strings"
	"testing"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/mocks"
	"tiffinbox/marketplace-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_UpdateDish(t *testing.T) {
	newPrice := 120.0
	zero := 0.0

	tests := []struct {
		name          string
		actor         *domain.User
		restaurantID  int
		upd           domain.DishUpdate
		prepareMocks  func(repo *mocks.Repository)
		expectedError error
		validation    bool
	}{
		{
			name:         "success_owner_keeps_rating",
			actor:        restaurantOwner(3, 10),
			restaurantID: 10,
			upd:          domain.DishUpdate{Price: &newPrice},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetDish", mock.Anything, 1).
					Return(&domain.Dish{ID: 1, RestaurantID: 10, Name: "Paneer Tikka", Price: 100, Rating: 4.5, NumReviews: 12}, nil).Once()
				repo.On("UpdateDish", mock.Anything, mock.MatchedBy(func(d *domain.Dish) bool {
					return d.Price == 120 && d.Rating == 4.5 && d.NumReviews == 12
				})).Return(nil).Once()
			},
		},
		{
			name:          "error_other_restaurant",
			actor:         restaurantOwner(3, 11),
			restaurantID:  10,
			upd:           domain.DishUpdate{Price: &newPrice},
			prepareMocks:  func(repo *mocks.Repository) {},
			expectedError: service.ErrForbidden,
		},
		{
			name:         "error_dish_of_another_restaurant",
			actor:        adminUser(1),
			restaurantID: 10,
			upd:          domain.DishUpdate{Price: &newPrice},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetDish", mock.Anything, 1).Return(&domain.Dish{ID: 1, RestaurantID: 20}, nil).Once()
			},
			expectedError: service.ErrNotFound,
		},
		{
			name:         "error_zero_price",
			actor:        adminUser(1),
			restaurantID: 10,
			upd:          domain.DishUpdate{Price: &zero},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetDish", mock.Anything, 1).Return(&domain.Dish{ID: 1, RestaurantID: 10, Name: "Lassi", Price: 50}, nil).Once()
			},
			validation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			svc := service.NewCatalogService(repo, nil)
			tt.prepareMocks(repo)

			dish, err := svc.UpdateDish(context.Background(), tt.actor, tt.restaurantID, 1, tt.upd)

			if tt.expectedError == nil && !tt.validation {
				require.NoError(t, err)
				assert.Equal(t, 120.0, dish.Price)
				return
			}
			assert.Nil(t, dish)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			}
			assert.Equal(t, tt.validation, service.IsValidation(err))
		})
	}
}

func TestCatalogService_CreateDish_ResetsRating(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := service.NewCatalogService(repo, nil)

	repo.On("GetRestaurant", mock.Anything, 10).Return(&domain.Restaurant{ID: 10}, nil).Once()
	repo.On("CreateDish", mock.Anything, mock.MatchedBy(func(d *domain.Dish) bool {
		return d.Rating == 0 && d.NumReviews == 0
	})).Return(nil).Once()

	err := svc.CreateDish(context.Background(), restaurantOwner(3, 10),
		&domain.Dish{RestaurantID: 10, Name: "Misal Pav", Price: 90, Rating: 5, NumReviews: 1000})

	assert.NoError(t, err)
}

func TestCatalogService_UploadDishImage(t *testing.T) {
	repo := mocks.NewRepository(t)
	images := mocks.NewImageStore(t)
	svc := service.NewCatalogService(repo, images)

	repo.On("GetDish", mock.Anything, 1).Return(&domain.Dish{ID: 1, RestaurantID: 10}, nil).Once()
	images.On("Save", mock.Anything,
		mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "dishes/1_") && strings.HasSuffix(key, ".jpg") }),
		"image/jpeg", mock.Anything).
		Return("/uploads/dishes/1_1.jpg", nil).Once()
	repo.On("UpdateDishImage", mock.Anything, 1, "/uploads/dishes/1_1.jpg").Return(nil).Once()

	url, err := svc.UploadDishImage(context.Background(), restaurantOwner(3, 10), 10, 1, "Photo.JPG", "image/jpeg", strings.NewReader("x"))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/dishes/1_1.jpg", url)
}

func TestCatalogService_AdminOnlyActions(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := service.NewCatalogService(repo, nil)

	assert.ErrorIs(t, svc.SetRestaurantBlocked(context.Background(), restaurantOwner(3, 10), 10, true), service.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteRestaurant(context.Background(), restaurantOwner(3, 10), 10), service.ErrForbidden)

	repo.On("DeleteRestaurant", mock.Anything, 99).Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.DeleteRestaurant(context.Background(), adminUser(1), 99), service.ErrNotFound)
}

func TestStatsService_RestaurantStats(t *testing.T) {
	repo := mocks.NewRepository(t)
	stats := mocks.NewStatsReader(t)
	svc := service.NewStatsService(repo, stats)

	repo.On("GetRestaurant", mock.Anything, 10).
		Return(&domain.Restaurant{ID: 10, TotalOrders: 42, TotalRevenue: 8400}, nil).Once()
	stats.On("TopDishes", mock.Anything, 10, mock.AnythingOfType("time.Time"), 5).
		Return([]domain.DishMetric{{DishID: 2, Score: 9}}, nil).Once()
	stats.On("Revenue", mock.Anything, 10, mock.AnythingOfType("time.Time")).Return(600.0, nil).Once()

	out, err := svc.RestaurantStats(context.Background(), restaurantOwner(3, 10), 10)

	require.NoError(t, err)
	assert.Equal(t, 42, out.TotalOrders)
	assert.Equal(t, 8400.0, out.TotalRevenue)
	assert.Equal(t, 600.0, out.TodayRevenue)
	assert.Len(t, out.TopDishes, 1)

	_, err = svc.RestaurantStats(context.Background(), customer(5), 10)
	assert.ErrorIs(t, err, service.ErrForbidden)
}
