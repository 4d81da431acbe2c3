// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - AssignmentSelector: picks the best delivery agent for an order using
//     proximity, workload, and rating signals
//   - WorkloadLedger: an in-memory count of active deliveries per agent,
//     kept current across a bulk assignment sweep
//   - RatingProvider: the port through which agent rating aggregates are
//     obtained
//
// Domain services coordinate between aggregates, implementing business
// logic that does not belong to a single aggregate root.
package services
