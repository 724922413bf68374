package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid returns true if the status is a recognized order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// OrderLine is one product-quantity pair on an order. UnitPrice is frozen
// at order time; later price edits never rewrite history.
type OrderLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal is UnitPrice times Quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a placed order with its lines.
type Order struct {
	ID        string
	UserID    string
	Status    OrderStatus
	Lines     []OrderLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder creates a pending order for a user.
func NewOrder(userID string, lines []OrderLine) *Order {
	now := time.Now()
	return &Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    OrderStatusPending,
		Lines:     lines,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Total sums every line subtotal.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Transition moves the order to a new status. Cancelled and shipped are
// terminal.
func (o *Order) Transition(to OrderStatus) error {
	if !to.IsValid() {
		return &InvalidTransitionError{From: o.Status, To: to}
	}
	switch o.Status {
	case OrderStatusShipped, OrderStatusCancelled:
		return &InvalidTransitionError{From: o.Status, To: to}
	}
	o.Status = to
	o.UpdatedAt = time.Now()
	return nil
}
