package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
)

type RatingService struct {
	repo        Repository
	publisher   EventPublisher
	allowRepeat bool
	log         *slog.Logger
}

// NewRatingService builds the aggregator. With allowRepeat every call is
// applied again on top of earlier ratings for the same order.
func NewRatingService(repo Repository, publisher EventPublisher, allowRepeat bool, log *slog.Logger) *RatingService {
	if log == nil {
		log = slog.Default()
	}
	return &RatingService{repo: repo, publisher: publisher, allowRepeat: allowRepeat, log: log}
}

var _ RatingServiceInterface = (*RatingService)(nil)

func validRating(r int) bool {
	return r >= 1 && r <= 5
}

func validateRatingRequest(req domain.RatingRequest) error {
	if req.DeliveryRating == nil && len(req.DishRatings) == 0 {
		return invalid("rating", "deliveryRating or dishRatings is required")
	}
	if req.DeliveryRating != nil && !validRating(*req.DeliveryRating) {
		return invalid("deliveryRating", "must be between 1 and 5")
	}
	for _, dr := range req.DishRatings {
		if !validRating(dr.Rating) {
			return invalid("dishRatings.rating", "must be between 1 and 5")
		}
	}
	return nil
}

func (s *RatingService) Rate(ctx context.Context, req domain.RatingRequest) error {
	if err := validateRatingRequest(req); err != nil {
		return err
	}

	var events []domain.Event
	err := s.repo.WithTx(ctx, func(tx Repository) error {
		events = events[:0]
		parent, err := tx.LockParentOrder(ctx, req.ParentID)
		if err != nil {
			return err
		}
		if parent.UserID != req.UserID {
			return ErrForbidden
		}

		if req.DeliveryRating != nil {
			if err := s.rateDelivery(ctx, tx, parent, *req.DeliveryRating); err != nil {
				return err
			}
		}
		for _, dr := range req.DishRatings {
			ev, err := s.rateDish(ctx, tx, parent, dr)
			if err != nil {
				return err
			}
			events = append(events, ev)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, ev := range events {
		if s.publisher == nil {
			break
		}
		if err := s.publisher.Publish(ctx, ev); err != nil {
			s.log.Warn("failed to publish rating", "dish_id", ev.DishID, "error", err)
		}
	}
	return nil
}

// rateDelivery stamps every child and folds the rating into each distinct
// assigned partner exactly once.
func (s *RatingService) rateDelivery(ctx context.Context, tx Repository, parent *domain.ParentOrder, rating int) error {
	if parent.DeliveryRating != nil && !s.allowRepeat {
		return fmt.Errorf("delivery: %w", ErrAlreadyRated)
	}
	if err := tx.SetDeliveryRating(ctx, parent.ID, rating); err != nil {
		return err
	}
	parent.DeliveryRating = &rating

	seen := make(map[int]bool)
	for _, order := range parent.Orders {
		if order.DeliveryPartnerID == nil || seen[*order.DeliveryPartnerID] {
			continue
		}
		seen[*order.DeliveryPartnerID] = true
		if err := tx.ApplyPartnerRating(ctx, *order.DeliveryPartnerID, rating); err != nil {
			return fmt.Errorf("update partner %d rating: %w", *order.DeliveryPartnerID, err)
		}
	}
	return nil
}

func (s *RatingService) rateDish(ctx context.Context, tx Repository, parent *domain.ParentOrder, dr domain.DishRating) (domain.Event, error) {
	var (
		items        []*domain.OrderItem
		restaurantID int
		orderID      int
	)
	for i := range parent.Orders {
		order := &parent.Orders[i]
		for j := range order.Items {
			item := &order.Items[j]
			if item.DishID != nil && *item.DishID == dr.DishID {
				items = append(items, item)
				restaurantID, orderID = order.RestaurantID, order.ID
			}
		}
	}
	if len(items) == 0 {
		return domain.Event{}, ErrDishNotInOrder
	}
	if !s.allowRepeat {
		for _, item := range items {
			if item.Rating != nil {
				return domain.Event{}, fmt.Errorf("dish %d: %w", dr.DishID, ErrAlreadyRated)
			}
		}
	}

	for _, item := range items {
		if err := tx.SetItemRating(ctx, item.ID, dr.Rating); err != nil {
			return domain.Event{}, err
		}
		rating := dr.Rating
		item.Rating = &rating
	}
	if err := tx.ApplyDishRating(ctx, dr.DishID, dr.Rating); err != nil {
		return domain.Event{}, fmt.Errorf("update dish %d rating: %w", dr.DishID, err)
	}

	return domain.Event{
		Type:         domain.EventDishRated,
		OrderID:      orderID,
		ParentID:     parent.ID,
		RestaurantID: restaurantID,
		DishID:       dr.DishID,
		Rating:       dr.Rating,
		Timestamp:    time.Now().UTC(),
	}, nil
}
