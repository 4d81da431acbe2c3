package order

import (
	"fmt"

	"zepta/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The lifecycle is operator-driven: staff set the status directly from the
// dashboard and any status is reachable from any other. Status therefore
// validates values, not transitions. The one exception is assignment, which
// always moves the order to StatusAssigned as a side effect of recording the
// agent.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly placed order.
	StatusPending

	// StatusAccepted means staff accepted the order for fulfillment.
	// Accepted orders with no agent are eligible for auto-assignment.
	StatusAccepted

	// StatusPacked means the order is packed and ready for pickup.
	// Packed orders with no agent are eligible for auto-assignment.
	StatusPacked

	// StatusAssigned means a delivery agent has been assigned.
	// Counts toward the agent's active workload.
	StatusAssigned

	// StatusOutForDelivery means the agent picked up the order.
	// Counts toward the agent's active workload.
	StatusOutForDelivery

	// StatusDelivered means the order reached the customer.
	StatusDelivered

	// StatusCancelled means the order was cancelled.
	StatusCancelled

	// StatusRefundInitiated means a refund is in progress.
	StatusRefundInitiated

	// StatusRefundCompleted means a refund finished.
	StatusRefundCompleted

	// StatusPartialRefund means part of the order was refunded.
	StatusPartialRefund
)

// getStatusStrings returns a map of Status values to their wire names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "unknown",
		StatusPending:         "pending",
		StatusAccepted:        "accepted",
		StatusPacked:          "packed",
		StatusAssigned:        "assigned",
		StatusOutForDelivery:  "out_for_delivery",
		StatusDelivered:       "delivered",
		StatusCancelled:       "cancelled",
		StatusRefundInitiated: "refund_initiated",
		StatusRefundCompleted: "refund_completed",
		StatusPartialRefund:   "partial_refund",
	}
}

// StatusFromString parses a wire name into a Status.
// Returns an error for unrecognized names, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle values.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer; safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActiveDelivery reports whether an order in this status occupies its
// agent. Orders in assigned or out_for_delivery status count toward the
// agent's workload.
func (s Status) IsActiveDelivery() bool {
	return s == StatusAssigned || s == StatusOutForDelivery
}

// IsAssignable reports whether an order in this status may receive an agent
// through the auto-assignment sweep. Only accepted and packed orders are
// eligible.
func (s Status) IsAssignable() bool {
	return s == StatusAccepted || s == StatusPacked
}
