// Package queries contains read-side operations for the dashboard.
// Handlers bypass the domain model and read directly from the database,
// following the CQRS pattern: writes go through commands and aggregates,
// reads go through plain SQL projections.
package queries

import (
	"errors"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves all orders with their store and agent summaries
// for the dashboard order list.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s [%s] from %s\n", o.ID, o.Status, o.StoreName)
//	}
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve the order list.
// This is a parameterless query that fetches all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is the order list read model. Store and agent
// fields come from relational joins; the agent fields are nil for
// unassigned orders.
type GetOrdersQueryResponse struct {
	ID        kernel.UUID
	Status    string
	StoreID   kernel.UUID
	StoreName string
	AgentID   *kernel.UUID
	AgentName *string
}
