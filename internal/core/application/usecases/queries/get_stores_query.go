package queries

import (
	"errors"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/pkg/guard"
)

var (
	ErrGetStoresQueryIsNotConstructed = errors.New(
		"GetStoresQuery must be created via NewGetStoresQuery constructor",
	)
)

// GetStoresQuery retrieves all stores for the dashboard store list.
type GetStoresQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStoresQuery creates a query to retrieve the store list.
func NewGetStoresQuery() GetStoresQuery {
	return GetStoresQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoresQueryIsNotConstructed if validation fails.
func (q GetStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetStoresQueryIsNotConstructed)
}

// GetStoresQueryResponse is the store list read model. Location is nil for
// stores without a coordinate on file.
type GetStoresQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Location *kernel.GeoPoint
}
