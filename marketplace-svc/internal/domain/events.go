package domain

import "time"

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "order_status_changed"
	EventDishRated     = "dish_rated"
)

type EventLine struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

// Event is the payload written to the marketplace topic and read by agg-svc.
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

func orderedAt(o *Order) time.Time {
	if o.CreatedAt.IsZero() {
		return time.Now().UTC()
	}
	return o.CreatedAt.UTC()
}

func OrderPlacedEvent(o *Order) Event {
	ev := Event{
		Type:         EventOrderPlaced,
		OrderID:      o.ID,
		RestaurantID: o.RestaurantID,
		Amount:       o.TotalPrice,
		OrderedAt:    orderedAt(o),
		Timestamp:    time.Now().UTC(),
	}
	if o.ParentID != nil {
		ev.ParentID = *o.ParentID
	}
	for _, item := range o.Items {
		if item.DishID != nil {
			ev.Lines = append(ev.Lines, EventLine{DishID: *item.DishID, Quantity: item.Quantity})
		}
	}
	return ev
}

// StatusChangedEvent carries the order's placement time so rollups can be
// corrected on the day the order was counted.
func StatusChangedEvent(o *Order, status OrderStatus) Event {
	return Event{
		Type:         EventStatusChanged,
		OrderID:      o.ID,
		RestaurantID: o.RestaurantID,
		Amount:       o.TotalPrice,
		Status:       string(status),
		OrderedAt:    orderedAt(o),
		Timestamp:    time.Now().UTC(),
	}
}
