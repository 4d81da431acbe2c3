package commands

import (
	"context"
	"errors"
	"log/slog"

	"zepta/internal/core/domain/model/agent"
	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/core/domain/model/order"
	"zepta/internal/core/domain/model/store"
	"zepta/internal/core/domain/services"
	"zepta/internal/core/ports"
	"zepta/internal/pkg/errs"
)

var (
	ErrNoEligibleOrders = errors.New("no orders eligible for assignment")
	ErrNoActiveAgents   = errors.New("no active agents available")
)

// BulkAssignResult reports the outcome of an assignment sweep.
type BulkAssignResult struct {
	// Assigned is the number of orders successfully assigned.
	Assigned int
	// Failed is the number of orders whose assignment failed.
	Failed int
}

// BulkAssignAgentsCommandHandler runs the auto-assignment sweep: every
// eligible order gets matched against the active roster, one at a time, in
// creation order.
//
// Each order is persisted in its own transaction, so one failing assignment
// never rolls back the rest of the batch. The workload ledger is seeded once
// from the active-delivery orders and incremented in memory after each
// successful commit, so later orders in the sweep see the load created by
// earlier ones without re-querying storage.
type BulkAssignAgentsCommandHandler struct {
	uowFactory UoWFactory
	ratingRepo ports.RatingRepository
	logger     *slog.Logger
}

// NewBulkAssignAgentsCommandHandler creates a handler for the assignment
// sweep. Requires a UoWFactory for per-order transactions, a
// RatingRepository for review aggregates, and a logger for per-order
// failure accounting.
func NewBulkAssignAgentsCommandHandler(
	uowFactory UoWFactory,
	ratingRepo ports.RatingRepository,
	logger *slog.Logger,
) BulkAssignAgentsCommandHandler {
	return BulkAssignAgentsCommandHandler{
		uowFactory: uowFactory,
		ratingRepo: ratingRepo,
		logger:     logger,
	}
}

// Handle processes the sweep command.
//
// Preconditions are checked before any mutation: ErrNoEligibleOrders when no
// order is awaiting assignment, ErrNoActiveAgents when the roster is empty.
// Per-order failures are logged and counted in the result, never aborting
// the batch. A cancelled context ends the sweep at the next order boundary,
// returning the counts accumulated so far.
func (h BulkAssignAgentsCommandHandler) Handle(
	ctx context.Context,
	cmd BulkAssignAgentsCommand,
) (BulkAssignResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkAssignResult{}, err
	}

	eligibleOrders, agents, stores, workload, err := h.loadSweepInputs(ctx)
	if err != nil {
		return BulkAssignResult{}, err
	}

	if len(eligibleOrders) == 0 {
		return BulkAssignResult{}, ErrNoEligibleOrders
	}
	if len(agents) == 0 {
		return BulkAssignResult{}, ErrNoActiveAgents
	}

	averages, err := h.ratingRepo.AverageRatings(ctx)
	if err != nil {
		return BulkAssignResult{}, err
	}
	ratings := services.StaticRatingProvider(averages)

	selector := services.NewAssignmentSelector()

	var result BulkAssignResult
	for _, eligibleOrder := range eligibleOrders {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		bestAgent, selectErr := selector.SelectBestAgent(
			eligibleOrder, stores[eligibleOrder.StoreID()], agents, workload, ratings)
		if selectErr != nil {
			result.Failed++
			h.logger.Warn("agent selection failed",
				"orderId", eligibleOrder.ID().String(),
				"error", selectErr)
			continue
		}

		if assignErr := h.persistAssignment(ctx, eligibleOrder, bestAgent.ID()); assignErr != nil {
			result.Failed++
			h.logger.Warn("assignment persistence failed",
				"orderId", eligibleOrder.ID().String(),
				"agentId", bestAgent.ID().String(),
				"error", assignErr)
			continue
		}

		workload.Increment(bestAgent.ID())
		result.Assigned++
		h.logger.Info("order assigned",
			"orderId", eligibleOrder.ID().String(),
			"agentId", bestAgent.ID().String())
	}

	return result, nil
}

// loadSweepInputs reads everything the sweep needs in one read-only
// transaction: the eligible orders, the active roster, the stores those
// orders belong to, and the workload counts seeded from active deliveries.
func (h BulkAssignAgentsCommandHandler) loadSweepInputs(ctx context.Context) (
	[]*order.Order,
	[]*agent.Agent,
	map[kernel.UUID]*store.Store,
	services.WorkloadLedger,
	error,
) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	eligibleOrders, err := orderRepo.GetAllAssignable(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	agents, err := uow.AgentRepository().GetAllActive(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	activeOrders, err := orderRepo.GetAllActiveDelivery(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	stores := make(map[kernel.UUID]*store.Store)
	storeRepo := uow.StoreRepository()
	for _, eligibleOrder := range eligibleOrders {
		storeID := eligibleOrder.StoreID()
		if _, ok := stores[storeID]; ok {
			continue
		}

		orderStore, getErr := storeRepo.Get(ctx, storeID)
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			// The order is still assigned, ranked by workload only.
			stores[storeID] = nil
			continue
		}
		if getErr != nil {
			return nil, nil, nil, nil, getErr
		}
		stores[storeID] = orderStore
	}

	return eligibleOrders, agents, stores, services.NewWorkloadLedger(activeOrders), nil
}

// persistAssignment records the agent on the order and commits it in its own
// transaction.
func (h BulkAssignAgentsCommandHandler) persistAssignment(
	ctx context.Context,
	targetOrder *order.Order,
	agentID kernel.UUID,
) error {
	if err := targetOrder.Assign(agentID); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, targetOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
