package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"tiffinbox/marketplace-svc/internal/domain"

	"github.com/lucsky/cuid"
)

// PaymentService is the only place money crosses the gateway boundary. Every
// verify call checks the signature before any entity is created.
type PaymentService struct {
	gateway      PaymentGateway
	orders       OrderServiceInterface
	customOrders CustomOrderServiceInterface
	reservations ReservationServiceInterface
	keyID        string
}

func NewPaymentService(
	gateway PaymentGateway,
	orders OrderServiceInterface,
	customOrders CustomOrderServiceInterface,
	reservations ReservationServiceInterface,
	keyID string,
) *PaymentService {
	return &PaymentService{
		gateway:      gateway,
		orders:       orders,
		customOrders: customOrders,
		reservations: reservations,
		keyID:        keyID,
	}
}

var _ PaymentServiceInterface = (*PaymentService)(nil)

// ToMinorUnits converts rupees to paise.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func newReceipt() string {
	return "rcpt_" + cuid.New()
}

func (s *PaymentService) createOrder(ctx context.Context, purpose domain.PaymentPurpose, user *domain.User, amount float64, ref string) (*domain.GatewayOrder, error) {
	if amount <= 0 {
		return nil, invalid("amount", "must be greater than zero")
	}
	notes := map[string]string{
		"purpose": string(purpose),
		"user_id": strconv.Itoa(user.ID),
	}
	if ref != "" {
		notes["reference"] = ref
	}
	order, err := s.gateway.CreateOrder(ctx, ToMinorUnits(amount), newReceipt(), notes)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}
	order.KeyID = s.keyID
	return order, nil
}

// verify checks the signature, then reads the gateway order back and makes
// sure it was opened by this user for this purpose and reference. The
// returned order carries the amount actually paid.
func (s *PaymentService) verify(ctx context.Context, proof domain.PaymentProof, purpose domain.PaymentPurpose, userID int, ref string) (*domain.GatewayOrder, error) {
	if proof.GatewayOrderID == "" || proof.PaymentID == "" || proof.Signature == "" {
		return nil, invalid("razorpay_signature", "order id, payment id and signature are required")
	}
	if !s.gateway.VerifySignature(proof.GatewayOrderID, proof.PaymentID, proof.Signature) {
		return nil, ErrInvalidSignature
	}

	order, err := s.gateway.FetchOrder(ctx, proof.GatewayOrderID)
	if err != nil {
		return nil, fmt.Errorf("fetch gateway order: %w", err)
	}
	switch {
	case order.Notes["purpose"] != string(purpose):
		return nil, fmt.Errorf("%w: order %s was opened for %q", ErrPaymentMismatch, order.ID, order.Notes["purpose"])
	case order.Notes["user_id"] != strconv.Itoa(userID):
		return nil, fmt.Errorf("%w: order %s belongs to another user", ErrPaymentMismatch, order.ID)
	case ref != "" && order.Notes["reference"] != ref:
		return nil, fmt.Errorf("%w: order %s references %q", ErrPaymentMismatch, order.ID, order.Notes["reference"])
	}
	return order, nil
}

func checkAmount(order *domain.GatewayOrder, expected float64) error {
	if order.Amount != ToMinorUnits(expected) {
		return fmt.Errorf("%w: paid %d, expected %d", ErrPaymentMismatch, order.Amount, ToMinorUnits(expected))
	}
	return nil
}

func (s *PaymentService) CreateCheckoutPayment(ctx context.Context, user *domain.User, lines []domain.CheckoutLine) (*domain.GatewayOrder, error) {
	total, err := s.orders.Quote(ctx, lines)
	if err != nil {
		return nil, err
	}
	return s.createOrder(ctx, domain.PurposeCheckout, user, total, "")
}

func (s *PaymentService) VerifyCheckoutPayment(ctx context.Context, proof domain.PaymentProof, req domain.CheckoutRequest) (*domain.ParentOrder, error) {
	paid, err := s.verify(ctx, proof, domain.PurposeCheckout, req.UserID, "")
	if err != nil {
		return nil, err
	}
	total, err := s.orders.Quote(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if err := checkAmount(paid, total); err != nil {
		return nil, err
	}
	req.PaymentMethod = domain.PaymentRazorpay
	req.PaymentStatus = domain.PaymentPaid
	req.PaymentID = proof.PaymentID
	return s.orders.Checkout(ctx, req)
}

func (s *PaymentService) CreateCustomOrderPayment(ctx context.Context, user *domain.User, customOrderID int) (*domain.GatewayOrder, error) {
	co, err := s.customOrders.PayableFor(ctx, user, customOrderID)
	if err != nil {
		return nil, err
	}
	return s.createOrder(ctx, domain.PurposeCustomOrder, user, co.Price, strconv.Itoa(co.ID))
}

func (s *PaymentService) VerifyCustomOrderPayment(ctx context.Context, user *domain.User, proof domain.PaymentProof, customOrderID int) (*domain.Order, error) {
	paid, err := s.verify(ctx, proof, domain.PurposeCustomOrder, user.ID, strconv.Itoa(customOrderID))
	if err != nil {
		return nil, err
	}
	co, err := s.customOrders.PayableFor(ctx, user, customOrderID)
	switch {
	case err == nil:
		if err := checkAmount(paid, co.Price); err != nil {
			return nil, err
		}
	case errors.Is(err, ErrNotPayable):
		// already converted; ConvertPaid returns the earlier order for the same payment id
	default:
		return nil, err
	}
	return s.customOrders.ConvertPaid(ctx, user, customOrderID, proof.PaymentID)
}

func (s *PaymentService) CreateTableBookingPayment(ctx context.Context, user *domain.User, res *domain.Reservation) (*domain.GatewayOrder, error) {
	if res.TableID != nil {
		free, err := s.reservations.Availability(ctx, res.RestaurantID, res.PartySize, res.ReservedAt)
		if err != nil {
			return nil, err
		}
		found := false
		for _, t := range free {
			if t.ID == *res.TableID {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrTableUnavailable
		}
	}
	return s.createOrder(ctx, domain.PurposeTableBooking, user, s.reservations.BookingFee(), strconv.Itoa(res.RestaurantID))
}

func (s *PaymentService) VerifyTableBookingPayment(ctx context.Context, user *domain.User, proof domain.PaymentProof, res *domain.Reservation) (*domain.Reservation, error) {
	paid, err := s.verify(ctx, proof, domain.PurposeTableBooking, user.ID, strconv.Itoa(res.RestaurantID))
	if err != nil {
		return nil, err
	}
	if err := checkAmount(paid, s.reservations.BookingFee()); err != nil {
		return nil, err
	}
	return s.reservations.ReservePaid(ctx, user, res, proof.PaymentID)
}
