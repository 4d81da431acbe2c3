// Package ports defines repository interfaces for the delivery domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAssignable retrieves orders eligible for auto-assignment:
	// status accepted or packed with no agent assigned, in creation order.
	GetAllAssignable(ctx context.Context) ([]*order.Order, error)

	// GetAllActiveDelivery retrieves orders in assigned or out_for_delivery
	// status. Used to seed per-agent workload counts.
	GetAllActiveDelivery(ctx context.Context) ([]*order.Order, error)
}
