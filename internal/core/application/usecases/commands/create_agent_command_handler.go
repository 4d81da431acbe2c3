package commands

import (
	"context"

	"zepta/internal/core/domain/model/agent"
)

// CreateAgentCommandHandler handles the business logic for agent onboarding.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCreateAgentCommandHandler creates a handler for agent onboarding
// operations. Requires an AgentUoWFactory for transactional persistence.
func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent onboarding command.
// Creates the agent in active state with no reported location and persists
// it within a transaction.
func (h *CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newAgent, err := agent.NewAgent(cmd.AgentID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.AgentRepository().Add(ctx, newAgent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
