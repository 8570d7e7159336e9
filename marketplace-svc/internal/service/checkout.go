package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"tiffinbox/marketplace-svc/internal/domain"
)

type OrderService struct {
	repo      Repository
	cart      CartStore
	publisher EventPublisher
	qr        QRGenerator
	log       *slog.Logger
}

func NewOrderService(repo Repository, cart CartStore, publisher EventPublisher, qr QRGenerator, log *slog.Logger) *OrderService {
	if log == nil {
		log = slog.Default()
	}
	return &OrderService{repo: repo, cart: cart, publisher: publisher, qr: qr, log: log}
}

var _ OrderServiceInterface = (*OrderService)(nil)

// mergeLines folds repeated dish ids into one line and rejects bad quantities.
func mergeLines(lines []domain.CheckoutLine) ([]domain.CheckoutLine, error) {
	if len(lines) == 0 {
		return nil, ErrNoOrderItems
	}
	index := make(map[int]int, len(lines))
	merged := make([]domain.CheckoutLine, 0, len(lines))
	for _, line := range lines {
		if line.DishID <= 0 {
			return nil, invalid("dish", "is required")
		}
		if line.Quantity < 1 {
			return nil, invalid("qty", "must be at least 1")
		}
		if i, ok := index[line.DishID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.DishID] = len(merged)
		merged = append(merged, line)
	}
	return merged, nil
}

func validateAddress(addr domain.Address) error {
	if strings.TrimSpace(addr.Street) == "" {
		return invalid("deliveryAddress.street", "is required")
	}
	if strings.TrimSpace(addr.City) == "" {
		return invalid("deliveryAddress.city", "is required")
	}
	return nil
}

// split groups lines by owning restaurant, snapshotting name and price from
// the catalog as it is now. Child orders come back in first-seen order.
func split(ctx context.Context, repo Repository, userID int, lines []domain.CheckoutLine) ([]domain.Order, error) {
	ids := make([]int, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.DishID)
	}
	dishes, err := repo.GetDishesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load dishes: %w", err)
	}
	byID := make(map[int]domain.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}

	var missing []int
	for _, line := range lines {
		if _, ok := byID[line.DishID]; !ok {
			missing = append(missing, line.DishID)
		}
	}
	if len(missing) > 0 {
		sort.Ints(missing)
		return nil, &MissingDishesError{DishIDs: missing}
	}

	buckets := make(map[int]int)
	var children []domain.Order
	for _, line := range lines {
		dish := byID[line.DishID]
		idx, ok := buckets[dish.RestaurantID]
		if !ok {
			rest, err := repo.GetRestaurant(ctx, dish.RestaurantID)
			if err != nil {
				return nil, fmt.Errorf("load restaurant %d: %w", dish.RestaurantID, err)
			}
			if rest.IsBlocked {
				return nil, fmt.Errorf("%s: %w", rest.Name, ErrRestaurantBlocked)
			}
			idx = len(children)
			buckets[dish.RestaurantID] = idx
			children = append(children, domain.Order{
				UserID:         userID,
				RestaurantID:   rest.ID,
				RestaurantName: rest.Name,
				Status:         domain.StatusPending,
			})
		}
		dishID := dish.ID
		children[idx].Items = append(children[idx].Items, domain.OrderItem{
			DishID:   &dishID,
			Name:     dish.Name,
			Price:    dish.Price,
			Quantity: line.Quantity,
		})
	}
	for i := range children {
		children[i].TotalPrice = children[i].ComputeTotal()
	}
	return children, nil
}

// Quote prices a checkout without writing anything.
func (s *OrderService) Quote(ctx context.Context, lines []domain.CheckoutLine) (float64, error) {
	merged, err := mergeLines(lines)
	if err != nil {
		return 0, err
	}
	children, err := split(ctx, s.repo, 0, merged)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, child := range children {
		total += child.TotalPrice
	}
	return total, nil
}

// Checkout splits the request into one child order per restaurant under a new
// parent order. Everything is written in one transaction. When PaymentID is set
// and a parent already carries it, that parent is returned unchanged.
func (s *OrderService) Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.ParentOrder, error) {
	lines, err := mergeLines(req.Items)
	if err != nil {
		return nil, err
	}
	if err := validateAddress(req.DeliveryAddress); err != nil {
		return nil, err
	}
	switch req.PaymentMethod {
	case "":
		req.PaymentMethod = domain.PaymentCOD
	case domain.PaymentCOD, domain.PaymentRazorpay:
	default:
		return nil, invalid("paymentMethod", "must be cod or razorpay")
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = domain.PaymentPending
	}

	var (
		parent *domain.ParentOrder
		replay bool
	)
	err = s.repo.WithTx(ctx, func(tx Repository) error {
		if req.PaymentID != "" {
			existing, err := tx.FindParentByPaymentID(ctx, req.PaymentID)
			if err == nil {
				parent, replay = existing, true
				return nil
			}
			if !errors.Is(err, ErrNotFound) {
				return err
			}
		}

		children, err := split(ctx, tx, req.UserID, lines)
		if err != nil {
			return err
		}

		parent = &domain.ParentOrder{
			UserID:          req.UserID,
			DeliveryAddress: req.DeliveryAddress,
			PaymentMethod:   req.PaymentMethod,
			PaymentStatus:   req.PaymentStatus,
			PaymentID:       req.PaymentID,
		}
		for _, child := range children {
			parent.TotalPrice += child.TotalPrice
		}
		if err := tx.CreateParentOrder(ctx, parent); err != nil {
			return fmt.Errorf("create parent order: %w", err)
		}

		for i := range children {
			child := &children[i]
			child.ParentID = &parent.ID
			child.DeliveryAddress = req.DeliveryAddress
			child.PaymentMethod = req.PaymentMethod
			child.PaymentStatus = req.PaymentStatus
			child.PaymentID = req.PaymentID
			if err := tx.CreateOrder(ctx, child); err != nil {
				return fmt.Errorf("create order for restaurant %d: %w", child.RestaurantID, err)
			}
			if err := tx.IncrementRestaurantTotals(ctx, child.RestaurantID, child.TotalPrice); err != nil {
				return fmt.Errorf("update restaurant totals: %w", err)
			}
			if err := tx.AppendStatusHistory(ctx, &domain.StatusChange{
				OrderID:   child.ID,
				To:        domain.StatusPending,
				ChangedBy: req.UserID,
			}); err != nil {
				return err
			}
		}
		parent.Orders = children

		if s.qr != nil {
			png, err := s.qr.Generate(parent.ID)
			if err != nil {
				return fmt.Errorf("generate qr code: %w", err)
			}
			if err := tx.SaveQRCode(ctx, parent.ID, png); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if replay {
		return parent, nil
	}

	log := s.log.With("action", "checkout", "parent_id", parent.ID, "user_id", req.UserID)
	if s.cart != nil {
		if err := s.cart.Clear(ctx, req.UserID); err != nil {
			log.Warn("failed to clear cart", "error", err)
		}
	}
	for i := range parent.Orders {
		s.publish(ctx, domain.OrderPlacedEvent(&parent.Orders[i]))
	}
	log.Info("order placed", "orders", len(parent.Orders), "total", parent.TotalPrice)
	return parent, nil
}

func (s *OrderService) publish(ctx context.Context, ev domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.log.Warn("failed to publish event", "type", ev.Type, "order_id", ev.OrderID, "error", err)
	}
}
