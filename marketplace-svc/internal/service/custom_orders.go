package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tiffinbox/marketplace-svc/internal/domain"
)

var customTransitions = map[domain.CustomOrderStatus][]domain.CustomOrderStatus{
	domain.CustomPending:    {domain.CustomAccepted, domain.CustomRejected},
	domain.CustomAccepted:   {domain.CustomInProgress},
	domain.CustomInProgress: {domain.CustomCompleted},
}

func customTransitionAllowed(from, to domain.CustomOrderStatus) bool {
	for _, next := range customTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type CustomOrderService struct {
	repo      Repository
	publisher EventPublisher
	log       *slog.Logger
}

func NewCustomOrderService(repo Repository, publisher EventPublisher, log *slog.Logger) *CustomOrderService {
	if log == nil {
		log = slog.Default()
	}
	return &CustomOrderService{repo: repo, publisher: publisher, log: log}
}

var _ CustomOrderServiceInterface = (*CustomOrderService)(nil)

func (s *CustomOrderService) Create(ctx context.Context, user *domain.User, co *domain.CustomOrder) error {
	if co.RestaurantID <= 0 {
		return invalid("restaurantId", "is required")
	}
	if strings.TrimSpace(co.Name) == "" {
		return invalid("name", "is required")
	}
	rest, err := s.repo.GetRestaurant(ctx, co.RestaurantID)
	if err != nil {
		return err
	}
	if rest.IsBlocked {
		return ErrRestaurantBlocked
	}
	if !rest.RecipeBox {
		return ErrRecipeBoxDisabled
	}

	co.UserID = user.ID
	co.Status = domain.CustomPending
	co.Price = 0
	co.OrderID = nil
	co.PaymentID = ""
	if co.Ingredients == nil {
		co.Ingredients = []string{}
	}
	return s.repo.CreateCustomOrder(ctx, co)
}

// Update lets the owning restaurant price the request and move it along its lifecycle.
func (s *CustomOrderService) Update(ctx context.Context, actor *domain.User, id int, upd domain.CustomOrderUpdate) (*domain.CustomOrder, error) {
	if upd.Status == nil && upd.Price == nil {
		return nil, invalid("status", "status or price is required")
	}

	var updated *domain.CustomOrder
	err := s.repo.WithTx(ctx, func(tx Repository) error {
		co, err := tx.LockCustomOrder(ctx, id)
		if err != nil {
			return err
		}
		if !canManageRestaurant(actor, co.RestaurantID) {
			return ErrForbidden
		}
		if upd.Price != nil {
			if *upd.Price < 0 {
				return invalid("price", "must not be negative")
			}
			if co.Status != domain.CustomPending && co.Status != domain.CustomAccepted {
				return invalid("price", "can only be set before work starts")
			}
			co.Price = *upd.Price
		}
		if upd.Status != nil && *upd.Status != co.Status {
			if !customTransitionAllowed(co.Status, *upd.Status) {
				return fmt.Errorf("%s -> %s: %w", co.Status, *upd.Status, ErrInvalidTransition)
			}
			co.Status = *upd.Status
		}
		if err := tx.UpdateCustomOrder(ctx, co); err != nil {
			return err
		}
		updated = co
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CustomOrderService) MyOrders(ctx context.Context, userID int) ([]domain.CustomOrder, error) {
	return s.repo.ListCustomOrdersByUser(ctx, userID)
}

func (s *CustomOrderService) RestaurantOrders(ctx context.Context, actor *domain.User) ([]domain.CustomOrder, error) {
	if actor.Role != domain.RoleRestaurant || actor.RestaurantID == nil {
		return nil, ErrForbidden
	}
	return s.repo.ListCustomOrdersByRestaurant(ctx, *actor.RestaurantID)
}

// PayableFor returns the custom order if user may pay for it now.
func (s *CustomOrderService) PayableFor(ctx context.Context, user *domain.User, id int) (*domain.CustomOrder, error) {
	co, err := s.repo.GetCustomOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if co.UserID != user.ID {
		return nil, ErrForbidden
	}
	if !co.Payable() {
		return nil, ErrNotPayable
	}
	return co, nil
}

// ConvertPaid turns a paid custom order into a single-line child order under
// its own parent. Replaying the same payment id returns the order created the
// first time.
func (s *CustomOrderService) ConvertPaid(ctx context.Context, user *domain.User, id int, paymentID string) (*domain.Order, error) {
	if paymentID == "" {
		return nil, invalid("razorpay_payment_id", "is required")
	}

	var (
		order  *domain.Order
		replay bool
	)
	err := s.repo.WithTx(ctx, func(tx Repository) error {
		co, err := tx.LockCustomOrder(ctx, id)
		if err != nil {
			return err
		}
		if co.UserID != user.ID {
			return ErrForbidden
		}
		if co.OrderID != nil && co.PaymentID == paymentID {
			order, err = tx.GetOrder(ctx, *co.OrderID)
			replay = true
			return err
		}
		if !co.Payable() {
			return ErrNotPayable
		}

		addresses, err := tx.ListAddresses(ctx, user.ID)
		if err != nil {
			return err
		}
		if len(addresses) == 0 {
			return ErrNoAddress
		}
		addr := addresses[0]

		parent := &domain.ParentOrder{
			UserID:          user.ID,
			TotalPrice:      co.Price,
			DeliveryAddress: addr,
			PaymentMethod:   domain.PaymentRazorpay,
			PaymentStatus:   domain.PaymentPaid,
			PaymentID:       paymentID,
		}
		if err := tx.CreateParentOrder(ctx, parent); err != nil {
			return fmt.Errorf("create parent order: %w", err)
		}

		customID := co.ID
		order = &domain.Order{
			ParentID:        &parent.ID,
			UserID:          user.ID,
			RestaurantID:    co.RestaurantID,
			Items:           []domain.OrderItem{{Name: co.Name, Price: co.Price, Quantity: 1}},
			Status:          domain.StatusPending,
			DeliveryAddress: addr,
			PaymentMethod:   domain.PaymentRazorpay,
			PaymentStatus:   domain.PaymentPaid,
			PaymentID:       paymentID,
			CustomOrderID:   &customID,
		}
		order.TotalPrice = order.ComputeTotal()
		if err := tx.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := tx.IncrementRestaurantTotals(ctx, order.RestaurantID, order.TotalPrice); err != nil {
			return err
		}
		if err := tx.AppendStatusHistory(ctx, &domain.StatusChange{
			OrderID:   order.ID,
			To:        domain.StatusPending,
			ChangedBy: user.ID,
		}); err != nil {
			return err
		}

		co.Status = domain.CustomCompleted
		co.OrderID = &order.ID
		co.PaymentID = paymentID
		return tx.UpdateCustomOrder(ctx, co)
	})
	if err != nil {
		return nil, err
	}

	if !replay && s.publisher != nil {
		if err := s.publisher.Publish(ctx, domain.OrderPlacedEvent(order)); err != nil {
			s.log.Warn("failed to publish event", "order_id", order.ID, "error", err)
		}
	}
	return order, nil
}
