// Package order defines the order domain: the submitted payload shape,
// its validation rules, and the persistence contract.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Item is one purchased line: product name, the unit price at purchase
// time, and the quantity bought.
type Item struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Order represents a customer purchase order.
type Order struct {
	ID        string    `json:"id,omitempty"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Validation failures. ErrNoItems covers an empty item list,
// ErrInvalidItem a negative price or quantity.
var (
	ErrNoItems     = errors.New("order has no items")
	ErrInvalidItem = errors.New("invalid order item")
)

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")

// Validate checks the submission rules: at least one item, and no item
// with a negative unit price or quantity.
func (o Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	for _, it := range o.Items {
		if it.UnitPrice < 0 {
			return fmt.Errorf("%w: %q has negative unit price", ErrInvalidItem, it.Name)
		}
		if it.Quantity < 0 {
			return fmt.Errorf("%w: %q has negative quantity", ErrInvalidItem, it.Name)
		}
	}
	return nil
}

// Repository defines behavior for persisting orders.
type Repository interface {
	Create(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Delete(ctx context.Context, id string) error
}
