package commands

import (
	"errors"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/pkg/guard"
)

var (
	ErrUpdateAgentLocationCommandIsNotConstructed = errors.New(
		"UpdateAgentLocationCommand must be created via NewUpdateAgentLocationCommand constructor",
	)
)

// UpdateAgentLocationCommand records a live position reported by an agent's
// device. The position feeds the proximity ranking of the assignment
// selector on subsequent sweeps.
//
// Example:
//
//	point, _ := kernel.NewGeoPoint(16.31, 80.44)
//	cmd, err := NewUpdateAgentLocationCommand(agentID, point)
//	if err != nil {
//	    return fmt.Errorf("invalid location report: %w", err)
//	}
type UpdateAgentLocationCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateAgentLocationCommand creates a command to record an agent's live
// position. Validates both the agent ID and the coordinate.
func NewUpdateAgentLocationCommand(agentID kernel.UUID, location kernel.GeoPoint) (UpdateAgentLocationCommand, error) {
	locationCommand := UpdateAgentLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setAgentID(agentID),
		locationCommand.setLocation(location),
	); err != nil {
		return UpdateAgentLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAgentLocationCommandIsNotConstructed if validation fails.
func (c UpdateAgentLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentLocationCommandIsNotConstructed)
}

// AgentID returns the reporting agent's identifier.
func (c UpdateAgentLocationCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Location returns the reported position.
func (c UpdateAgentLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdateAgentLocationCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *UpdateAgentLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
