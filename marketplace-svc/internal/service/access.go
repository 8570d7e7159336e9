package service

import "tiffinbox/marketplace-svc/internal/domain"

func isAdmin(u *domain.User) bool {
	return u != nil && u.Role == domain.RoleAdmin
}

func ownsRestaurant(u *domain.User, restaurantID int) bool {
	return u != nil && u.Role == domain.RoleRestaurant &&
		u.RestaurantID != nil && *u.RestaurantID == restaurantID
}

func canManageRestaurant(u *domain.User, restaurantID int) bool {
	return isAdmin(u) || ownsRestaurant(u, restaurantID)
}
