package services

import (
	"errors"
	"sort"

	"zepta/internal/core/domain/model/agent"
	"zepta/internal/core/domain/model/order"
	"zepta/internal/core/domain/model/store"
)

// ErrNoAgentAvailable is returned when no suitable agent exists for an
// order. This is an expected outcome, not a fault: it occurs when the
// roster is empty or contains no active agents.
var ErrNoAgentAvailable = errors.New("no agent available")

// Score weights and caps. Distance and workload contributions are capped so
// a single signal cannot dominate the total; lower totals are better.
const (
	distanceWeight = 2.0
	distanceCap    = 50.0
	workloadWeight = 10.0
	workloadCap    = 30.0
	ratingWeight   = 4.0
	ratingCap      = 20.0
	ratingBest     = 5.0
)

// AssignmentSelector is a domain service that picks the most suitable
// delivery agent for an order.
//
// Selection rules:
//   - Only active agents are considered
//   - Agents with a known live location are preferred; if none has one,
//     all active agents compete
//   - When both the store and at least one candidate have coordinates,
//     candidates are ranked by a combined proximity/workload/rating score
//   - Otherwise candidates are ranked by workload ascending, then rating
//     descending
//   - Ties go to the earlier candidate in the input roster
//
// The selector is pure: it never mutates the order or the agents. The
// caller persists the chosen assignment.
//
// Example usage:
//
//	selector := services.NewAssignmentSelector()
//	best, err := selector.SelectBestAgent(o, st, agents, ledger, ratings)
//	if errors.Is(err, services.ErrNoAgentAvailable) {
//	    // Nothing to do for this order
//	    return
//	}
type AssignmentSelector struct{}

// NewAssignmentSelector creates a new AssignmentSelector instance.
func NewAssignmentSelector() AssignmentSelector {
	return AssignmentSelector{}
}

// SelectBestAgent picks the best agent for the order from the roster.
//
// Parameters:
//   - o: the order to assign (must be valid)
//   - st: the order's store, or nil when the store could not be resolved;
//     a nil store or a store without coordinates disables proximity scoring
//   - agents: the full roster; inactive agents are filtered out here
//   - workload: current active-delivery counts per agent
//   - ratings: rating lookup for candidates
//
// Returns ErrNoAgentAvailable when no active agent exists, or a validation
// error if the order or an agent in the roster is improperly constructed.
func (s AssignmentSelector) SelectBestAgent(
	o *order.Order,
	st *store.Store,
	agents []*agent.Agent,
	workload WorkloadLedger,
	ratings RatingProvider,
) (*agent.Agent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	candidates, err := s.candidatePool(agents)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoAgentAvailable
	}

	if s.canScoreByProximity(st, candidates) {
		return s.selectByProximity(st, candidates, workload, ratings), nil
	}

	return s.selectByWorkload(candidates, workload, ratings), nil
}

// candidatePool filters the roster to active agents, preferring the subset
// with a known live location when it is non-empty.
func (s AssignmentSelector) candidatePool(agents []*agent.Agent) ([]*agent.Agent, error) {
	active := make([]*agent.Agent, 0, len(agents))
	located := make([]*agent.Agent, 0, len(agents))

	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if !a.IsActive() {
			continue
		}

		active = append(active, a)
		if a.HasLocation() {
			located = append(located, a)
		}
	}

	if len(located) > 0 {
		return located, nil
	}
	return active, nil
}

// canScoreByProximity reports whether proximity scoring is usable: the
// store must have a coordinate and at least one candidate must too.
func (s AssignmentSelector) canScoreByProximity(st *store.Store, candidates []*agent.Agent) bool {
	if st == nil || !st.HasLocation() {
		return false
	}
	for _, a := range candidates {
		if a.HasLocation() {
			return true
		}
	}
	return false
}

// selectByProximity ranks located candidates by the combined score:
//
//	min(distance_km × 2, 50) + min(workload × 10, 30) + min((5 − rating) × 4, 20)
//
// The minimum total wins; the first candidate wins ties.
func (s AssignmentSelector) selectByProximity(
	st *store.Store,
	candidates []*agent.Agent,
	workload WorkloadLedger,
	ratings RatingProvider,
) *agent.Agent {
	var best *agent.Agent
	bestScore := 0.0

	for _, a := range candidates {
		if !a.HasLocation() {
			continue
		}

		// Both points are constructed; DistanceKm cannot fail here.
		distanceKm, _ := st.Location().DistanceKm(*a.Location())

		score := capAt(distanceKm*distanceWeight, distanceCap) +
			capAt(float64(workload.CountFor(a.ID()))*workloadWeight, workloadCap) +
			capAt((ratingBest-ratings.RatingFor(a.ID()))*ratingWeight, ratingCap)

		if best == nil || score < bestScore {
			best = a
			bestScore = score
		}
	}

	return best
}

// selectByWorkload ranks candidates by workload ascending, then rating
// descending. The sort is stable, so equal candidates keep input order.
func (s AssignmentSelector) selectByWorkload(
	candidates []*agent.Agent,
	workload WorkloadLedger,
	ratings RatingProvider,
) *agent.Agent {
	ranked := make([]*agent.Agent, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		wi := workload.CountFor(ranked[i].ID())
		wj := workload.CountFor(ranked[j].ID())
		if wi != wj {
			return wi < wj
		}
		return ratings.RatingFor(ranked[i].ID()) > ratings.RatingFor(ranked[j].ID())
	})

	return ranked[0]
}

func capAt(value, limit float64) float64 {
	if value > limit {
		return limit
	}
	return value
}
