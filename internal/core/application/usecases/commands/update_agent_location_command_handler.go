package commands

import (
	"context"
	"errors"

	"zepta/internal/pkg/errs"
)

var ErrAgentNotFound = errors.New("agent not found")

// UpdateAgentLocationCommandHandler persists live position reports from
// agent devices.
type UpdateAgentLocationCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewUpdateAgentLocationCommandHandler creates a handler for agent location
// reports. Requires an AgentUoWFactory for transactional persistence.
func NewUpdateAgentLocationCommandHandler(uowFactory AgentUoWFactory) UpdateAgentLocationCommandHandler {
	return UpdateAgentLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes a location report.
// Loads the agent, records the new position, and persists the change within
// a transaction. Returns ErrAgentNotFound when the agent does not exist.
func (h *UpdateAgentLocationCommandHandler) Handle(ctx context.Context, cmd UpdateAgentLocationCommand) error {
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

	agentRepo := uow.AgentRepository()

	reportingAgent, err := agentRepo.Get(ctx, cmd.AgentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrAgentNotFound
	}
	if err != nil {
		return err
	}

	if err = reportingAgent.ReportLocation(cmd.Location()); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, reportingAgent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
