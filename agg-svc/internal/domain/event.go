package domain

import (
	"fmt"
	"time"
)

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "order_status_changed"
	EventDishRated     = "dish_rated"

	StatusCancelled = "cancelled"
)

type EventLine struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

// Event mirrors what marketplace-svc writes to the topic.
type Event struct {
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	ParentID     int         `json:"parent_id,omitempty"`
	RestaurantID int         `json:"restaurant_id"`
	DishID       int         `json:"dish_id,omitempty"`
	Lines        []EventLine `json:"lines,omitempty"`
	Amount       float64     `json:"amount,omitempty"`
	Rating       int         `json:"rating,omitempty"`
	Status       string      `json:"status,omitempty"`
	OrderedAt    time.Time   `json:"ordered_at"`
	Timestamp    time.Time   `json:"timestamp"`
}

// Day is the UTC calendar day an event is rolled up under.
func (e Event) Day() time.Time {
	if e.Timestamp.IsZero() {
		return time.Now().UTC()
	}
	return e.Timestamp.UTC()
}

// OrderDay is the day the order was placed, so a cancellation is taken out
// of the same rollup that counted it.
func (e Event) OrderDay() time.Time {
	if e.OrderedAt.IsZero() {
		return e.Day()
	}
	return e.OrderedAt.UTC()
}

// Key identifies the event for deduplication across redeliveries.
func (e Event) Key() string {
	return fmt.Sprintf("%s:%d:%s", e.Type, e.OrderID, e.Status)
}
