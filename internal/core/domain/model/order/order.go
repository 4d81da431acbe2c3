package order

import (
	"errors"

	"zepta/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer order in the system. It is the aggregate root
// for the delivery-assignment workflow.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and store reference
//   - Carries at most one assigned agent; reassignment overwrites
//   - Status values are validated, but transitions are not constrained:
//     staff may set any status from the dashboard
//
// The struct uses private fields to keep the invariants behind validated
// methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// storeID references the store fulfilling the order
	storeID kernel.UUID

	// agentID is the assigned delivery agent (nil if unassigned)
	agentID *kernel.UUID

	// status is the current lifecycle state
	status Status

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in pending status with no agent assigned.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - storeID: the fulfilling store (must be a valid UUID)
//
// Returns a validation error if either identifier is invalid.
func NewOrder(id kernel.UUID, storeID kernel.UUID) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStoreID(storeID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status
// and optional agent assignment. The restored order behaves identically to
// one built through normal domain operations.
func RestoreOrder(id kernel.UUID, storeID kernel.UUID, status Status, agentID *kernel.UUID) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStoreID(storeID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
		id := *agentID
		o.agentID = &id
	}

	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StoreID returns the fulfilling store's identifier.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Agent returns the assigned agent's ID, or nil if unassigned.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// IsAssignable reports whether the order is eligible for auto-assignment:
// status accepted or packed with no agent currently assigned.
func (o *Order) IsAssignable() bool {
	return o.status.IsAssignable() && o.agentID == nil
}

// Assign records the delivery agent on the order and moves the status to
// assigned. A previous assignment is overwritten; the order carries at most
// one agent at a time.
//
// Returns an error if the agent ID is invalid.
func (o *Order) Assign(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	o.agentID = &agentID
	o.status = StatusAssigned
	return nil
}

// SetStatus sets the lifecycle status directly. Only the value is validated;
// the dashboard allows staff to move an order to any status.
func (o *Order) SetStatus(status Status) error {
	return o.setStatus(status)
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStoreID validates and sets the store reference.
func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	o.storeID = storeID
	return nil
}

// setStatus validates and sets the lifecycle status.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
