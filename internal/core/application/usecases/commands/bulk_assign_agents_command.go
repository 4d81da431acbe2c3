package commands

import (
	"errors"

	"zepta/internal/pkg/guard"
)

// BulkAssignAgentsCommand triggers the auto-assignment sweep over every
// eligible order. Run from the dashboard's "Auto-Assign All" action and by
// the periodic background job.
//
// Example:
//
//	cmd := NewBulkAssignAgentsCommand()
//	handler := NewBulkAssignAgentsCommandHandler(uowFactory, ratingRepo, logger)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Sweep failed: %v", err)
//	    return
//	}
//	log.Printf("Assigned %d orders, %d failed", result.Assigned, result.Failed)
type BulkAssignAgentsCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrBulkAssignAgentsCommandIsNotConstructed = errors.New(
		"BulkAssignAgentsCommand must be created via NewBulkAssignAgentsCommand constructor",
	)
)

// NewBulkAssignAgentsCommand creates a command to run the assignment sweep.
// This is a parameterless command that processes all eligible orders.
func NewBulkAssignAgentsCommand() BulkAssignAgentsCommand {
	command := BulkAssignAgentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrBulkAssignAgentsCommandIsNotConstructed if validation fails.
func (c *BulkAssignAgentsCommand) Validate() error {
	return c.guard.Validate(ErrBulkAssignAgentsCommandIsNotConstructed)
}
