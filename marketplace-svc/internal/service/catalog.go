package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
)

type CatalogService struct {
	repo   Repository
	images ImageStore
}

func NewCatalogService(repo Repository, images ImageStore) *CatalogService {
	return &CatalogService{repo: repo, images: images}
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

func validateRestaurant(rest *domain.Restaurant) error {
	if strings.TrimSpace(rest.Name) == "" {
		return invalid("name", "is required")
	}
	if strings.TrimSpace(rest.Address) == "" {
		return invalid("address", "is required")
	}
	return nil
}

// CreateRestaurant is an admin shortcut; owners normally get their restaurant through approval.
func (s *CatalogService) CreateRestaurant(ctx context.Context, actor *domain.User, rest *domain.Restaurant) error {
	if !isAdmin(actor) {
		return ErrForbidden
	}
	if err := validateRestaurant(rest); err != nil {
		return err
	}
	rest.TotalOrders = 0
	rest.TotalRevenue = 0
	return s.repo.CreateRestaurant(ctx, rest)
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

func (s *CatalogService) UpdateRestaurant(ctx context.Context, actor *domain.User, id int, upd domain.RestaurantUpdate) (*domain.Restaurant, error) {
	if !canManageRestaurant(actor, id) {
		return nil, ErrForbidden
	}
	current, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		current.Name = *upd.Name
	}
	if upd.Address != nil {
		current.Address = *upd.Address
	}
	if upd.Description != nil {
		current.Description = *upd.Description
	}
	if upd.Cuisine != nil {
		current.Cuisine = *upd.Cuisine
	}
	if upd.RecipeBox != nil {
		current.RecipeBox = *upd.RecipeBox
	}
	if err := validateRestaurant(current); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateRestaurant(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *CatalogService) SetRestaurantBlocked(ctx context.Context, actor *domain.User, id int, blocked bool) error {
	if !isAdmin(actor) {
		return ErrForbidden
	}
	return s.repo.SetRestaurantBlocked(ctx, id, blocked)
}

func (s *CatalogService) DeleteRestaurant(ctx context.Context, actor *domain.User, id int) error {
	if !isAdmin(actor) {
		return ErrForbidden
	}
	n, err := s.repo.DeleteRestaurant(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) UploadRestaurantImage(ctx context.Context, actor *domain.User, id int, filename, contentType string, body io.Reader) (string, error) {
	if !canManageRestaurant(actor, id) {
		return "", ErrForbidden
	}
	if _, err := s.repo.GetRestaurant(ctx, id); err != nil {
		return "", err
	}
	key := imageKey("restaurants", id, filename)
	url, err := s.images.Save(ctx, key, contentType, body)
	if err != nil {
		return "", fmt.Errorf("store restaurant image: %w", err)
	}
	if err := s.repo.UpdateRestaurantImage(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

func validateDish(dish *domain.Dish) error {
	if strings.TrimSpace(dish.Name) == "" {
		return invalid("name", "is required")
	}
	if dish.Price <= 0 {
		return invalid("price", "must be greater than zero")
	}
	return nil
}

func (s *CatalogService) CreateDish(ctx context.Context, actor *domain.User, dish *domain.Dish) error {
	if !canManageRestaurant(actor, dish.RestaurantID) {
		return ErrForbidden
	}
	if err := validateDish(dish); err != nil {
		return err
	}
	if _, err := s.repo.GetRestaurant(ctx, dish.RestaurantID); err != nil {
		return err
	}
	dish.Rating = 0
	dish.NumReviews = 0
	return s.repo.CreateDish(ctx, dish)
}

func (s *CatalogService) ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error) {
	return s.repo.ListDishes(ctx, restaurantID)
}

func (s *CatalogService) GetDish(ctx context.Context, restaurantID, dishID int) (*domain.Dish, error) {
	dish, err := s.repo.GetDish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if dish.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	return dish, nil
}

func (s *CatalogService) UpdateDish(ctx context.Context, actor *domain.User, restaurantID, dishID int, upd domain.DishUpdate) (*domain.Dish, error) {
	if !canManageRestaurant(actor, restaurantID) {
		return nil, ErrForbidden
	}
	current, err := s.GetDish(ctx, restaurantID, dishID)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		current.Name = *upd.Name
	}
	if upd.Description != nil {
		current.Description = *upd.Description
	}
	if upd.Price != nil {
		current.Price = *upd.Price
	}
	if upd.Nutrition != nil {
		current.Nutrition = *upd.Nutrition
	}
	if upd.Tags != nil {
		current.Tags = upd.Tags
	}
	if err := validateDish(current); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateDish(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *CatalogService) DeleteDish(ctx context.Context, actor *domain.User, restaurantID, dishID int) error {
	if !canManageRestaurant(actor, restaurantID) {
		return ErrForbidden
	}
	if _, err := s.GetDish(ctx, restaurantID, dishID); err != nil {
		return err
	}
	n, err := s.repo.DeleteDish(ctx, dishID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) UploadDishImage(ctx context.Context, actor *domain.User, restaurantID, dishID int, filename, contentType string, body io.Reader) (string, error) {
	if !canManageRestaurant(actor, restaurantID) {
		return "", ErrForbidden
	}
	if _, err := s.GetDish(ctx, restaurantID, dishID); err != nil {
		return "", err
	}
	url, err := s.images.Save(ctx, imageKey("dishes", dishID, filename), contentType, body)
	if err != nil {
		return "", fmt.Errorf("store dish image: %w", err)
	}
	if err := s.repo.UpdateDishImage(ctx, dishID, url); err != nil {
		return "", err
	}
	return url, nil
}

func imageKey(prefix string, id int, filename string) string {
	return fmt.Sprintf("%s/%d_%d%s", prefix, id, time.Now().UnixNano(), strings.ToLower(filepath.Ext(filename)))
}
