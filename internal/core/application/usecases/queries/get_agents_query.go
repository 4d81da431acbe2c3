package queries

import (
	"errors"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/pkg/guard"
)

var (
	ErrGetAgentsQueryIsNotConstructed = errors.New(
		"GetAgentsQuery must be created via NewGetAgentsQuery constructor",
	)
)

// GetAgentsQuery retrieves the full delivery agent roster, including
// inactive agents, for the dashboard agent list.
type GetAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAgentsQuery creates a query to retrieve the agent roster.
func NewGetAgentsQuery() GetAgentsQuery {
	return GetAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentsQueryIsNotConstructed if validation fails.
func (q GetAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentsQueryIsNotConstructed)
}

// GetAgentsQueryResponse is the agent roster read model. Location is nil
// for agents that have never reported a position.
type GetAgentsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Active   bool
	Location *kernel.GeoPoint
}
