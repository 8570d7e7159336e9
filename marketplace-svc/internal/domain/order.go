package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusOnTheWay  OrderStatus = "on-the-way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCOD      PaymentMethod = "cod"
	PaymentRazorpay PaymentMethod = "razorpay"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// OrderItem snapshots name and price at checkout; DishID is nil for custom-order lines.
type OrderItem struct {
	ID       int     `json:"id,omitempty"`
	OrderID  int     `json:"order_id,omitempty"`
	DishID   *int    `json:"dish_id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Rating   *int    `json:"rating,omitempty"`
}

// Order is one restaurant's share of a checkout.
type Order struct {
	ID                int           `json:"id"`
	ParentID          *int          `json:"parent_id,omitempty"`
	UserID            int           `json:"user_id"`
	RestaurantID      int           `json:"restaurant_id"`
	RestaurantName    string        `json:"restaurant_name,omitempty"`
	Items             []OrderItem   `json:"items"`
	TotalPrice        float64       `json:"total_price"`
	Status            OrderStatus   `json:"order_status"`
	DeliveryAddress   Address       `json:"delivery_address"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	PaymentStatus     PaymentStatus `json:"payment_status"`
	PaymentID         string        `json:"payment_id,omitempty"`
	DeliveryPartnerID *int          `json:"delivery_partner_id,omitempty"`
	DeliveryRating    *int          `json:"delivery_rating,omitempty"`
	CustomOrderID     *int          `json:"custom_order_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ParentOrder aggregates the child orders produced by one checkout.
type ParentOrder struct {
	ID              int           `json:"id"`
	UserID          int           `json:"user_id"`
	Orders          []Order       `json:"orders"`
	TotalPrice      float64       `json:"total_price"`
	DeliveryAddress Address       `json:"delivery_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentID       string        `json:"payment_id,omitempty"`
	DeliveryRating  *int          `json:"delivery_rating,omitempty"`
	QRCode          string        `json:"qr_code,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

type StatusChange struct {
	OrderID   int         `json:"order_id"`
	From      OrderStatus `json:"from_status"`
	To        OrderStatus `json:"to_status"`
	ChangedBy int         `json:"changed_by"`
	ChangedAt time.Time   `json:"changed_at"`
}

// CheckoutLine is one requested (dish, quantity) pair.
type CheckoutLine struct {
	DishID   int `json:"dish"`
	Quantity int `json:"qty"`
}

type CheckoutRequest struct {
	UserID          int            `json:"-"`
	Items           []CheckoutLine `json:"orderItems"`
	DeliveryAddress Address        `json:"deliveryAddress"`
	PaymentMethod   PaymentMethod  `json:"paymentMethod"`
	PaymentStatus   PaymentStatus  `json:"-"`
	PaymentID       string         `json:"-"`
}

type DishRating struct {
	DishID int `json:"dishId"`
	Rating int `json:"rating"`
}

type RatingRequest struct {
	ParentID       int          `json:"-"`
	UserID         int          `json:"-"`
	DeliveryRating *int         `json:"deliveryRating,omitempty"`
	DishRatings    []DishRating `json:"dishRatings,omitempty"`
}
