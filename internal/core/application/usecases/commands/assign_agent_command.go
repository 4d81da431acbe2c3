package commands

import (
	"errors"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/pkg/guard"
)

var (
	ErrAssignAgentCommandIsNotConstructed = errors.New(
		"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
	)
)

// AssignAgentCommand represents a staff request to auto-assign a delivery
// agent to one specific order. The selector picks the agent; staff only
// choose the order.
//
// Example:
//
//	cmd, err := NewAssignAgentCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//
//	handler := NewAssignAgentCommandHandler(uowFactory, ratingRepo)
//	agentID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoAgentAvailable):
//	    log.Println("No active agents to assign")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Order assigned to agent %s", agentID)
//	}
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign an agent to the given
// order. Validates the order ID.
func NewAssignAgentCommand(orderID kernel.UUID) (AssignAgentCommand, error) {
	assignCommand := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := assignCommand.setOrderID(orderID); err != nil {
		return AssignAgentCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignAgentCommandIsNotConstructed if validation fails.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AssignAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignAgentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
