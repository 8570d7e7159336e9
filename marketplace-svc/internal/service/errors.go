package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("not authorized")
	ErrRestaurantBlocked = errors.New("restaurant is blocked")
	ErrNoOrderItems      = errors.New("no order items")
	ErrDishNotInOrder    = errors.New("dish was not ordered in this order")
	ErrAlreadyRated      = errors.New("already rated")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotPayable        = errors.New("custom order is not payable")
	ErrNoAddress         = errors.New("no delivery address on file")
	ErrInvalidSignature  = errors.New("invalid payment signature")
	ErrPaymentMismatch   = errors.New("payment does not match this purchase")
	ErrRequestExists     = errors.New("request already exists")
	ErrRequestNotPending = errors.New("request is not pending")
	ErrTableUnavailable  = errors.New("table is not available at this time")
	ErrRecipeBoxDisabled = errors.New("restaurant does not accept custom orders")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

// MissingDishesError reports dish ids that no longer exist in the catalog.
type MissingDishesError struct {
	DishIDs []int
}

func (e *MissingDishesError) Error() string {
	return fmt.Sprintf("dishes no longer available: %v", e.DishIDs)
}

func IsValidation(err error) bool {
	var ve ValidationError
	var md *MissingDishesError
	return errors.As(err, &ve) || errors.As(err, &md) ||
		errors.Is(err, ErrNoOrderItems) ||
		errors.Is(err, ErrDishNotInOrder) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrNotPayable) ||
		errors.Is(err, ErrNoAddress) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrPaymentMismatch) ||
		errors.Is(err, ErrRequestExists) ||
		errors.Is(err, ErrRequestNotPending) ||
		errors.Is(err, ErrTableUnavailable) ||
		errors.Is(err, ErrRecipeBoxDisabled) ||
		errors.Is(err, ErrRestaurantBlocked)
}
