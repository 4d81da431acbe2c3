package commands

import (
	"context"

	"zepta/internal/core/domain/model/store"
)

// CreateStoreCommandHandler handles the business logic for store creation.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewCreateStoreCommandHandler creates a handler for store creation
// operations. Requires a StoreUoWFactory for transactional persistence.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store creation command.
// Persists the new store within a transaction; rolls back on error.
func (h *CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) error {
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

	newStore, err := store.NewStore(cmd.StoreID(), cmd.Name(), cmd.Location())
	if err != nil {
		return err
	}

	if err = uow.StoreRepository().Add(ctx, newStore); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
