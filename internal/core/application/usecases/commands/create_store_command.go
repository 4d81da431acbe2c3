package commands

import (
	"errors"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/pkg/errs"
	"zepta/internal/pkg/guard"
)

var (
	ErrCreateStoreCommandIsNotConstructed = errors.New(
		"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
	)
	ErrStoreNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateStoreCommand represents a request to register a new store.
// The coordinate is optional: stores without one still take orders, but
// their orders are ranked by workload only.
//
// Example:
//
//	storeID := kernel.NewUUID()
//	point, _ := kernel.NewGeoPoint(16.30, 80.43)
//	cmd, err := NewCreateStoreCommand(storeID, "Zepta Fresh Guntur", &point)
//	if err != nil {
//	    return fmt.Errorf("invalid store data: %w", err)
//	}
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID  kernel.UUID
	name     string
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to register a new store.
// Validates that the store ID is valid, the name is not empty, and the
// location, when provided, is a properly constructed coordinate.
func NewCreateStoreCommand(storeID kernel.UUID, name string, location *kernel.GeoPoint) (CreateStoreCommand, error) {
	storeCommand := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		storeCommand.setStoreID(storeID),
		storeCommand.setName(name),
		storeCommand.setLocation(location),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return storeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStoreCommandIsNotConstructed if validation fails.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// StoreID returns the unique identifier for the store.
func (c CreateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the store's display name.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// Location returns the store's coordinate, or nil when none was provided.
func (c CreateStoreCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *CreateStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrStoreNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStoreCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	point := *location
	c.location = &point
	return nil
}
