package catalog

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNegativeStock   = errors.New("stock cannot be negative")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidEmail    = errors.New("email must contain @")
	ErrUnknownRole     = errors.New("unknown role")
)

// ProductNotFoundError indicates a product lookup by id or slug missed.
type ProductNotFoundError struct {
	ID   string
	Slug string
}

func (e *ProductNotFoundError) Error() string {
	if e.Slug != "" {
		return fmt.Sprintf("product not found: slug %q", e.Slug)
	}
	return fmt.Sprintf("product not found: id %q", e.ID)
}

// OrderNotFoundError indicates an order lookup missed.
type OrderNotFoundError struct {
	ID string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order not found: id %q", e.ID)
}

// UserNotFoundError indicates a user lookup missed.
type UserNotFoundError struct {
	ID    string
	Email string
}

func (e *UserNotFoundError) Error() string {
	if e.Email != "" {
		return fmt.Sprintf("user not found: email %q", e.Email)
	}
	return fmt.Sprintf("user not found: id %q", e.ID)
}

// ImageNotFoundError indicates an image lookup missed.
type ImageNotFoundError struct {
	ID string
}

func (e *ImageNotFoundError) Error() string {
	return fmt.Sprintf("image not found: id %q", e.ID)
}

// InvalidTransitionError indicates an order status move the lifecycle
// forbids.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition: %s -> %s", e.From, e.To)
}
