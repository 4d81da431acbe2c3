package commands

import (
	"context"
	"errors"

	"zepta/internal/core/domain/model/order"
	"zepta/internal/pkg/errs"
)

var ErrStoreNotFound = errors.New("store not found")

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the referenced store exists before creating the order in pending
// status.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. Requires a UoWFactory because the handler reads the store
// aggregate and writes the order within one transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Returns ErrStoreNotFound when the referenced store does not exist.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	_, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrStoreNotFound
	}
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.StoreID())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
