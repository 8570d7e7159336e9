package tests

import (
	"context"
	"io"
	"log/slog"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/mocks"
	"tiffinbox/marketplace-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func intPtr(v int) *int { return &v }

// runTx makes WithTx invoke its callback against the same mock.
func runTx(repo *mocks.Repository) *mock.Call {
	return repo.On("WithTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(service.Repository) error) error {
			return fn(repo)
		})
}

func customer(id int) *domain.User {
	return &domain.User{ID: id, Name: "Asha", Email: "asha@example.com", Role: domain.RoleCustomer, IsVerified: true}
}

func restaurantOwner(id, restaurantID int) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleRestaurant, IsVerified: true, RestaurantID: intPtr(restaurantID)}
}

func deliveryPartner(id int) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleDelivery, IsVerified: true, DeliveryPartnerID: intPtr(id + 100)}
}

func adminUser(id int) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleAdmin, IsVerified: true}
}
