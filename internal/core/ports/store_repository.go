package ports

import (
	"context"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	// Add persists a new store aggregate to storage.
	Add(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)
}
