package domain

import "time"

type Table struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Number       int       `json:"table_number"`
	Capacity     int       `json:"capacity"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationOccupied  ReservationStatus = "occupied"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Live() bool {
	return s == ReservationPending || s == ReservationConfirmed || s == ReservationOccupied
}

// Reservation belongs either to a user or to a free-text customer identity.
type Reservation struct {
	ID            int               `json:"id"`
	TableID       *int              `json:"table_id,omitempty"`
	RestaurantID  int               `json:"restaurant_id"`
	UserID        *int              `json:"user_id,omitempty"`
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	CustomerEmail string            `json:"customer_email"`
	PartySize     int               `json:"party_size"`
	ReservedAt    time.Time         `json:"reserved_at"`
	Status        ReservationStatus `json:"status"`
	Notes         string            `json:"notes"`
	Amount        float64           `json:"amount"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	PaymentID     string            `json:"payment_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

type ReservationUpdate struct {
	TableID    *int               `json:"table_id,omitempty"`
	PartySize  *int               `json:"party_size,omitempty"`
	ReservedAt *time.Time         `json:"reserved_at,omitempty"`
	Status     *ReservationStatus `json:"status,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
}

type TableUpdate struct {
	Number   *int  `json:"table_number,omitempty"`
	Capacity *int  `json:"capacity,omitempty"`
	IsActive *bool `json:"is_active,omitempty"`
}
