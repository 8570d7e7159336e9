package domain

import "time"

type CustomOrderStatus string

const (
	CustomPending    CustomOrderStatus = "pending"
	CustomAccepted   CustomOrderStatus = "accepted"
	CustomRejected   CustomOrderStatus = "rejected"
	CustomInProgress CustomOrderStatus = "in-progress"
	CustomCompleted  CustomOrderStatus = "completed"
)

// CustomOrder is a recipe-box request; OrderID is set once it has been paid and converted.
type CustomOrder struct {
	ID           int               `json:"id"`
	UserID       int               `json:"user_id"`
	RestaurantID int               `json:"restaurant_id"`
	Name         string            `json:"name"`
	Ingredients  []string          `json:"ingredients"`
	Instructions string            `json:"instructions"`
	Status       CustomOrderStatus `json:"status"`
	Price        float64           `json:"price"`
	OrderID      *int              `json:"order_id,omitempty"`
	PaymentID    string            `json:"payment_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func (c *CustomOrder) Payable() bool {
	return c.Status == CustomAccepted && c.Price > 0
}

type CustomOrderUpdate struct {
	Status *CustomOrderStatus `json:"status,omitempty"`
	Price  *float64           `json:"price,omitempty"`
}
