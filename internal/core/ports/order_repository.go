package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their allocations.
type OrderRepository interface {
	// Add stores a new order. Allocations are written through
	// AllocationRepository, never here.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order row (dates, quantity, status).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads the order with its allocations and locks the row for the
	// rest of the transaction.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus loads every order currently in status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
