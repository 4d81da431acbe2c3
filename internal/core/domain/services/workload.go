package services

import (
	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/core/domain/model/order"
)

// WorkloadLedger tracks the number of active deliveries per agent.
// An order counts toward its agent's workload while its status is assigned
// or out_for_delivery.
//
// The ledger is a plain in-memory map: the bulk assignment sweep seeds it
// once from the order list and increments it after each successful
// assignment, so later orders in the same batch see the load created by
// earlier ones without re-querying storage.
type WorkloadLedger map[kernel.UUID]int

// NewWorkloadLedger builds a ledger from the current order list, counting
// orders in an active delivery status against their assigned agent.
func NewWorkloadLedger(orders []*order.Order) WorkloadLedger {
	ledger := make(WorkloadLedger)
	for _, o := range orders {
		if o == nil || o.Agent() == nil {
			continue
		}
		if o.Status().IsActiveDelivery() {
			ledger[*o.Agent()]++
		}
	}
	return ledger
}

// CountFor returns the number of active deliveries for the agent.
// Agents with no active deliveries have a count of zero.
func (l WorkloadLedger) CountFor(agentID kernel.UUID) int {
	return l[agentID]
}

// Increment records one more active delivery for the agent.
// Called after an assignment is successfully persisted.
func (l WorkloadLedger) Increment(agentID kernel.UUID) {
	l[agentID]++
}
