package ports

import (
	"context"

	"zepta/internal/core/domain/model/agent"
	"zepta/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent
// aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent aggregate.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetAllActive retrieves the roster of agents eligible for assignment,
	// including their last-known locations.
	GetAllActive(ctx context.Context) ([]*agent.Agent, error)
}
