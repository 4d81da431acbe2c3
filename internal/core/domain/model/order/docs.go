// Package order contains the Order aggregate and its lifecycle status.
//
// Orders arrive from the customer-facing storefront and are managed by staff
// through the admin dashboard. The package deliberately implements no status
// transition state machine: the dashboard sets statuses directly, and the
// assignment workflow only reads the current value. Assignment itself is the
// one operation with a fixed effect: it records the agent and moves the
// order to the assigned status.
package order
