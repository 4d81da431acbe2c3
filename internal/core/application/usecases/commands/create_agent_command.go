package commands

import (
	"errors"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/pkg/errs"
	"zepta/internal/pkg/guard"
)

var (
	ErrCreateAgentCommandIsNotConstructed = errors.New(
		"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
	)
	ErrAgentNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateAgentCommand represents a request to onboard a new delivery agent.
// New agents start active with no reported location; they appear in the
// assignment roster immediately and gain proximity ranking once their device
// reports a position.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to onboard a new delivery agent.
// Validates that the agent ID is valid and the name is not empty.
func NewCreateAgentCommand(agentID kernel.UUID, name string) (CreateAgentCommand, error) {
	agentCommand := CreateAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		agentCommand.setAgentID(agentID),
		agentCommand.setName(name),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	return agentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAgentCommandIsNotConstructed if validation fails.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// AgentID returns the unique identifier for the agent.
func (c CreateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Name returns the agent's display name.
func (c CreateAgentCommand) Name() string {
	return c.name
}

func (c *CreateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *CreateAgentCommand) setName(name string) error {
	if name == "" {
		return ErrAgentNameIsRequired
	}

	c.name = name
	return nil
}
