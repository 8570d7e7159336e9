package service

import (
	"context"
	"sort"

	"tiffinbox/marketplace-svc/internal/domain"
)

type CartService struct {
	repo  Repository
	store CartStore
}

func NewCartService(repo Repository, store CartStore) *CartService {
	return &CartService{repo: repo, store: store}
}

var _ CartServiceInterface = (*CartService)(nil)

// View joins stored quantities with current dish data. Dishes removed from the
// catalog since they were added are left out.
func (s *CartService) View(ctx context.Context, userID int) (*domain.Cart, error) {
	quantities, err := s.store.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart := &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	if len(quantities) == 0 {
		return cart, nil
	}

	ids := make([]int, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	dishes, err := s.repo.GetDishesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		dish := dishes[i]
		qty := quantities[dish.ID]
		cart.Items = append(cart.Items, domain.CartItem{DishID: dish.ID, Quantity: qty, Dish: &dish})
		cart.Subtotal += dish.Price * float64(qty)
	}
	return cart, nil
}

func (s *CartService) Add(ctx context.Context, userID, dishID, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, invalid("quantity", "must be at least 1")
	}
	if _, err := s.repo.GetDish(ctx, dishID); err != nil {
		return nil, err
	}
	if err := s.store.Add(ctx, userID, dishID, quantity); err != nil {
		return nil, err
	}
	return s.View(ctx, userID)
}

// Update sets an absolute quantity; zero or less drops the line.
func (s *CartService) Update(ctx context.Context, userID, dishID, quantity int) (*domain.Cart, error) {
	var err error
	if quantity <= 0 {
		err = s.store.Remove(ctx, userID, dishID)
	} else {
		err = s.store.Set(ctx, userID, dishID, quantity)
	}
	if err != nil {
		return nil, err
	}
	return s.View(ctx, userID)
}

func (s *CartService) Remove(ctx context.Context, userID, dishID int) (*domain.Cart, error) {
	if err := s.store.Remove(ctx, userID, dishID); err != nil {
		return nil, err
	}
	return s.View(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID int) error {
	return s.store.Clear(ctx, userID)
}
