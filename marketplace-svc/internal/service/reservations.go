package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
)

var reservationTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationPending:   {domain.ReservationConfirmed, domain.ReservationOccupied, domain.ReservationCancelled},
	domain.ReservationConfirmed: {domain.ReservationOccupied, domain.ReservationCancelled, domain.ReservationCompleted},
	domain.ReservationOccupied:  {domain.ReservationCompleted, domain.ReservationCancelled},
}

func reservationTransitionAllowed(from, to domain.ReservationStatus) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type ReservationService struct {
	repo       Repository
	slotWindow time.Duration
	bookingFee float64
}

// NewReservationService treats a table as taken when a live reservation
// starts within slotWindow either side of the requested time.
func NewReservationService(repo Repository, slotWindow time.Duration, bookingFee float64) *ReservationService {
	if slotWindow <= 0 {
		slotWindow = 2 * time.Hour
	}
	return &ReservationService{repo: repo, slotWindow: slotWindow, bookingFee: bookingFee}
}

var _ ReservationServiceInterface = (*ReservationService)(nil)

func (s *ReservationService) BookingFee() float64 {
	return s.bookingFee
}

func (s *ReservationService) CreateTable(ctx context.Context, actor *domain.User, table *domain.Table) error {
	if !canManageRestaurant(actor, table.RestaurantID) {
		return ErrForbidden
	}
	if table.Number < 1 {
		return invalid("table_number", "must be positive")
	}
	if table.Capacity < 1 {
		return invalid("capacity", "must be positive")
	}
	table.IsActive = true
	return s.repo.CreateTable(ctx, table)
}

func (s *ReservationService) ListTables(ctx context.Context, restaurantID int) ([]domain.Table, error) {
	return s.repo.ListTables(ctx, restaurantID)
}

func (s *ReservationService) UpdateTable(ctx context.Context, actor *domain.User, id int, upd domain.TableUpdate) (*domain.Table, error) {
	table, err := s.repo.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageRestaurant(actor, table.RestaurantID) {
		return nil, ErrForbidden
	}
	if upd.Number != nil {
		if *upd.Number < 1 {
			return nil, invalid("table_number", "must be positive")
		}
		table.Number = *upd.Number
	}
	if upd.Capacity != nil {
		if *upd.Capacity < 1 {
			return nil, invalid("capacity", "must be positive")
		}
		table.Capacity = *upd.Capacity
	}
	if upd.IsActive != nil {
		table.IsActive = *upd.IsActive
	}
	if err := s.repo.UpdateTable(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *ReservationService) DeleteTable(ctx context.Context, actor *domain.User, id int) error {
	table, err := s.repo.GetTable(ctx, id)
	if err != nil {
		return err
	}
	if !canManageRestaurant(actor, table.RestaurantID) {
		return ErrForbidden
	}
	n, err := s.repo.DeleteTable(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReservationService) Availability(ctx context.Context, restaurantID, partySize int, at time.Time) ([]domain.Table, error) {
	if partySize < 1 {
		return nil, invalid("partySize", "must be at least 1")
	}
	if at.IsZero() {
		return nil, invalid("at", "is required")
	}
	return s.repo.ListAvailableTables(ctx, restaurantID, partySize, at.Add(-s.slotWindow), at.Add(s.slotWindow))
}

// prepare fills in identity fields. Staff book on behalf of walk-in customers
// and must name them; everyone else books for themselves.
func (s *ReservationService) prepare(actor *domain.User, res *domain.Reservation) error {
	if res.RestaurantID <= 0 {
		return invalid("restaurant_id", "is required")
	}
	if res.PartySize < 1 {
		return invalid("party_size", "must be at least 1")
	}
	if res.ReservedAt.IsZero() {
		return invalid("reserved_at", "is required")
	}
	if canManageRestaurant(actor, res.RestaurantID) {
		if strings.TrimSpace(res.CustomerName) == "" {
			return invalid("customer_name", "is required")
		}
		if res.CustomerPhone == "" && res.CustomerEmail == "" {
			return invalid("customer_phone", "phone or email is required")
		}
		res.UserID = nil
	} else {
		uid := actor.ID
		res.UserID = &uid
		if res.CustomerName == "" {
			res.CustomerName = actor.Name
		}
		if res.CustomerEmail == "" {
			res.CustomerEmail = actor.Email
		}
	}
	res.Status = domain.ReservationPending
	if res.PaymentStatus == "" {
		res.PaymentStatus = domain.PaymentPending
	}
	return nil
}

// checkTable verifies capacity and the slot window on a locked table row.
func (s *ReservationService) checkTable(ctx context.Context, tx Repository, res *domain.Reservation) error {
	if res.TableID == nil {
		return nil
	}
	table, err := tx.LockTable(ctx, *res.TableID)
	if err != nil {
		return err
	}
	if table.RestaurantID != res.RestaurantID || !table.IsActive {
		return ErrTableUnavailable
	}
	if res.PartySize > table.Capacity {
		return invalid("party_size", "exceeds table capacity")
	}
	conflicts, err := tx.CountTableConflicts(ctx, table.ID, res.ReservedAt.Add(-s.slotWindow), res.ReservedAt.Add(s.slotWindow), res.ID)
	if err != nil {
		return err
	}
	if conflicts > 0 {
		return ErrTableUnavailable
	}
	return nil
}

func (s *ReservationService) Reserve(ctx context.Context, actor *domain.User, res *domain.Reservation) error {
	if err := s.prepare(actor, res); err != nil {
		return err
	}
	if _, err := s.repo.GetRestaurant(ctx, res.RestaurantID); err != nil {
		return err
	}
	return s.repo.WithTx(ctx, func(tx Repository) error {
		if err := s.checkTable(ctx, tx, res); err != nil {
			return err
		}
		return tx.CreateReservation(ctx, res)
	})
}

// ReservePaid books a table for a verified booking-fee payment. A payment id
// seen before returns the reservation it already produced.
func (s *ReservationService) ReservePaid(ctx context.Context, actor *domain.User, res *domain.Reservation, paymentID string) (*domain.Reservation, error) {
	if paymentID == "" {
		return nil, invalid("razorpay_payment_id", "is required")
	}
	if err := s.prepare(actor, res); err != nil {
		return nil, err
	}

	result := res
	err := s.repo.WithTx(ctx, func(tx Repository) error {
		existing, err := tx.FindReservationByPaymentID(ctx, paymentID)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		if err := s.checkTable(ctx, tx, res); err != nil {
			return err
		}
		res.Amount = s.bookingFee
		res.PaymentStatus = domain.PaymentPaid
		res.PaymentID = paymentID
		res.Status = domain.ReservationConfirmed
		return tx.CreateReservation(ctx, res)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ReservationService) Reservations(ctx context.Context, actor *domain.User, restaurantID int) ([]domain.Reservation, error) {
	if restaurantID > 0 {
		if !canManageRestaurant(actor, restaurantID) {
			return nil, ErrForbidden
		}
		return s.repo.ListReservationsByRestaurant(ctx, restaurantID)
	}
	return s.repo.ListReservationsByUser(ctx, actor.ID)
}

func canSeeReservation(actor *domain.User, res *domain.Reservation) bool {
	return canManageRestaurant(actor, res.RestaurantID) || (res.UserID != nil && *res.UserID == actor.ID)
}

func (s *ReservationService) GetReservation(ctx context.Context, actor *domain.User, id int) (*domain.Reservation, error) {
	res, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canSeeReservation(actor, res) {
		return nil, ErrForbidden
	}
	return res, nil
}

// UpdateReservation applies staff edits or a guest's own changes. Guests may
// only cancel, or reschedule while the booking is still pending.
func (s *ReservationService) UpdateReservation(ctx context.Context, actor *domain.User, id int, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	var updated *domain.Reservation
	err := s.repo.WithTx(ctx, func(tx Repository) error {
		res, err := tx.LockReservation(ctx, id)
		if err != nil {
			return err
		}
		if !canSeeReservation(actor, res) {
			return ErrForbidden
		}
		staff := canManageRestaurant(actor, res.RestaurantID)

		rescheduled := upd.TableID != nil || upd.PartySize != nil || upd.ReservedAt != nil
		if rescheduled {
			if !staff && res.Status != domain.ReservationPending {
				return ErrForbidden
			}
			if upd.TableID != nil {
				res.TableID = upd.TableID
			}
			if upd.PartySize != nil {
				if *upd.PartySize < 1 {
					return invalid("party_size", "must be at least 1")
				}
				res.PartySize = *upd.PartySize
			}
			if upd.ReservedAt != nil {
				res.ReservedAt = *upd.ReservedAt
			}
			if err := s.checkTable(ctx, tx, res); err != nil {
				return err
			}
		}
		if upd.Status != nil && *upd.Status != res.Status {
			if !staff && *upd.Status != domain.ReservationCancelled {
				return ErrForbidden
			}
			if !reservationTransitionAllowed(res.Status, *upd.Status) {
				return ErrInvalidTransition
			}
			res.Status = *upd.Status
		}
		if upd.Notes != nil {
			res.Notes = *upd.Notes
		}
		if err := tx.UpdateReservation(ctx, res); err != nil {
			return err
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CancelReservation removes the booking for staff and cancels it for the guest.
func (s *ReservationService) CancelReservation(ctx context.Context, actor *domain.User, id int) error {
	res, err := s.GetReservation(ctx, actor, id)
	if err != nil {
		return err
	}
	if canManageRestaurant(actor, res.RestaurantID) {
		n, err := s.repo.DeleteReservation(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}
	cancelled := domain.ReservationCancelled
	_, err = s.UpdateReservation(ctx, actor, id, domain.ReservationUpdate{Status: &cancelled})
	return err
}
