package commands

import (
	"context"
	"errors"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/core/domain/services"
	"zepta/internal/core/ports"
	"zepta/internal/pkg/errs"
)

var ErrOrderNotAssignable = errors.New("order is not eligible for assignment")

// AssignAgentCommandHandler orchestrates agent assignment for a single
// order. Loads the order, its store, the active roster, current workload
// counts, and review-based ratings, then asks the AssignmentSelector for
// the best match and persists the result.
type AssignAgentCommandHandler struct {
	uowFactory UoWFactory
	ratingRepo ports.RatingRepository
}

// NewAssignAgentCommandHandler creates a handler for single-order
// assignment. Requires a UoWFactory for coordinating order, agent, and
// store reads with the order write, and a RatingRepository for the review
// aggregates that feed the selector.
func NewAssignAgentCommandHandler(
	uowFactory UoWFactory,
	ratingRepo ports.RatingRepository,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		ratingRepo: ratingRepo,
	}
}

// Handle processes the assignment command and returns the chosen agent's ID.
//
// Returns ErrOrderNotFound when the order does not exist,
// ErrOrderNotAssignable when its status or existing assignment rules it out,
// and services.ErrNoAgentAvailable when the roster has no active agents.
// An order whose store is missing or has no coordinate is still assigned,
// ranked by workload only.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	targetOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, ErrOrderNotFound
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	if !targetOrder.IsAssignable() {
		return kernel.UUID{}, ErrOrderNotAssignable
	}

	orderStore, err := uow.StoreRepository().Get(ctx, targetOrder.StoreID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		orderStore = nil
	} else if err != nil {
		return kernel.UUID{}, err
	}

	agents, err := uow.AgentRepository().GetAllActive(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	activeOrders, err := orderRepo.GetAllActiveDelivery(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}
	workload := services.NewWorkloadLedger(activeOrders)

	averages, err := h.ratingRepo.AverageRatings(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}
	ratings := services.StaticRatingProvider(averages)

	bestAgent, err := services.NewAssignmentSelector().
		SelectBestAgent(targetOrder, orderStore, agents, workload, ratings)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = targetOrder.Assign(bestAgent.ID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return bestAgent.ID(), nil
}
