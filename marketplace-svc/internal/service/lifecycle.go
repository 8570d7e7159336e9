package service

import (
	"context"
	"fmt"

	"tiffinbox/marketplace-svc/internal/domain"
)

type edge struct {
	from, to domain.OrderStatus
}

// transitions lists every legal status edge and the roles allowed to take it.
var transitions = map[edge][]domain.Role{
	{domain.StatusPending, domain.StatusPreparing}:   {domain.RoleRestaurant, domain.RoleAdmin},
	{domain.StatusPreparing, domain.StatusReady}:     {domain.RoleRestaurant, domain.RoleAdmin},
	{domain.StatusReady, domain.StatusOnTheWay}:      {domain.RoleDelivery},
	{domain.StatusOnTheWay, domain.StatusDelivered}:  {domain.RoleDelivery, domain.RoleAdmin},
	{domain.StatusPending, domain.StatusCancelled}:   {domain.RoleCustomer, domain.RoleRestaurant, domain.RoleAdmin},
	{domain.StatusPreparing, domain.StatusCancelled}: {domain.RoleRestaurant, domain.RoleAdmin},
	{domain.StatusReady, domain.StatusCancelled}:     {domain.RoleRestaurant, domain.RoleAdmin},
	{domain.StatusOnTheWay, domain.StatusCancelled}:  {domain.RoleAdmin},
}

// CheckTransition returns ErrInvalidTransition for an edge that does not exist
// and ErrForbidden when the edge exists but not for this role.
func CheckTransition(from, to domain.OrderStatus, role domain.Role) error {
	roles, ok := transitions[edge{from, to}]
	if !ok {
		return fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidTransition)
	}
	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	return ErrForbidden
}

func checkOrderActor(actor *domain.User, order *domain.Order, to domain.OrderStatus) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleCustomer:
		if order.UserID == actor.ID {
			return nil
		}
	case domain.RoleRestaurant:
		if ownsRestaurant(actor, order.RestaurantID) {
			return nil
		}
	case domain.RoleDelivery:
		if actor.DeliveryPartnerID == nil {
			return ErrForbidden
		}
		if to == domain.StatusOnTheWay {
			return nil
		}
		if order.DeliveryPartnerID != nil && *order.DeliveryPartnerID == actor.ID {
			return nil
		}
	}
	return ErrForbidden
}

func (s *OrderService) UpdateStatus(ctx context.Context, actor *domain.User, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, invalid("orderStatus", "unknown status")
	}

	var (
		updated *domain.Order
		from    domain.OrderStatus
	)
	err := s.repo.WithTx(ctx, func(tx Repository) error {
		order, err := tx.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if err := CheckTransition(order.Status, status, actor.Role); err != nil {
			return err
		}
		if err := checkOrderActor(actor, order, status); err != nil {
			return err
		}

		from = order.Status
		order.Status = status
		switch status {
		case domain.StatusOnTheWay:
			partner := actor.ID
			order.DeliveryPartnerID = &partner
		case domain.StatusDelivered:
			if order.PaymentMethod == domain.PaymentCOD {
				order.PaymentStatus = domain.PaymentPaid
			}
		}
		if err := tx.UpdateOrderState(ctx, order); err != nil {
			return fmt.Errorf("update order %d: %w", order.ID, err)
		}
		if err := tx.AppendStatusHistory(ctx, &domain.StatusChange{
			OrderID:   order.ID,
			From:      from,
			To:        status,
			ChangedBy: actor.ID,
		}); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order status changed",
		"action", "update_status", "order_id", updated.ID, "from", from, "to", status, "actor_id", actor.ID)
	s.publish(ctx, domain.StatusChangedEvent(updated, status))
	return updated, nil
}

func (s *OrderService) MyOrders(ctx context.Context, userID int) ([]domain.ParentOrder, error) {
	return s.repo.ListParentOrdersByUser(ctx, userID)
}

func (s *OrderService) GetParentOrder(ctx context.Context, actor *domain.User, id int) (*domain.ParentOrder, error) {
	parent, err := s.repo.GetParentOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if parent.UserID != actor.ID && !isAdmin(actor) {
		return nil, ErrForbidden
	}
	return parent, nil
}

func (s *OrderService) RestaurantOrders(ctx context.Context, actor *domain.User) ([]domain.Order, error) {
	if actor.Role != domain.RoleRestaurant || actor.RestaurantID == nil {
		return nil, ErrForbidden
	}
	return s.repo.ListRestaurantOrders(ctx, *actor.RestaurantID)
}

// DeliveryOrders is the partner dashboard: everything ready for pickup plus
// the partner's own on-the-way and delivered orders.
func (s *OrderService) DeliveryOrders(ctx context.Context, actor *domain.User) ([]domain.Order, error) {
	if actor.Role != domain.RoleDelivery || actor.DeliveryPartnerID == nil {
		return nil, ErrForbidden
	}
	return s.repo.ListDeliveryOrders(ctx, actor.ID)
}

func (s *OrderService) History(ctx context.Context, actor *domain.User, orderID int) ([]domain.StatusChange, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	allowed := isAdmin(actor) || order.UserID == actor.ID || ownsRestaurant(actor, order.RestaurantID) ||
		(order.DeliveryPartnerID != nil && *order.DeliveryPartnerID == actor.ID)
	if !allowed {
		return nil, ErrForbidden
	}
	return s.repo.ListStatusHistory(ctx, orderID)
}

// QRCode returns the stored PNG, regenerating it for parents created without one.
func (s *OrderService) QRCode(ctx context.Context, actor *domain.User, parentID int) ([]byte, error) {
	if _, err := s.GetParentOrder(ctx, actor, parentID); err != nil {
		return nil, err
	}
	png, err := s.repo.GetQRCode(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if len(png) > 0 || s.qr == nil {
		return png, nil
	}
	png, err = s.qr.Generate(parentID)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}
	if err := s.repo.SaveQRCode(ctx, parentID, png); err != nil {
		return nil, err
	}
	return png, nil
}
