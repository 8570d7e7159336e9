package domain

import (
	"encoding/json"
	"time"
)

type RequestKind string

const (
	RequestRestaurant RequestKind = "restaurant"
	RequestDelivery   RequestKind = "delivery"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// PartnerRequest is an onboarding application; Details holds the kind-specific payload.
type PartnerRequest struct {
	ID           int             `json:"id"`
	UserID       int             `json:"user_id"`
	Kind         RequestKind     `json:"kind"`
	Status       RequestStatus   `json:"status"`
	Details      json.RawMessage `json:"details"`
	RejectReason string          `json:"reject_reason,omitempty"`
	ReviewedBy   *int            `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type RestaurantApplication struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine"`
	RecipeBox   bool   `json:"recipe_box"`
}

type DeliveryApplication struct {
	VehicleType   string `json:"vehicle_type"`
	LicenseNumber string `json:"license_number"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
}
