package services

import "zepta/internal/core/domain/model/kernel"

// DefaultAgentRating is the rating used for agents with no review history.
const DefaultAgentRating = 4.5

// RatingProvider supplies the rating aggregate for an agent on a 0–5 scale.
// The production implementation averages persisted customer reviews;
// implementations must return DefaultAgentRating for agents without any.
type RatingProvider interface {
	RatingFor(agentID kernel.UUID) float64
}

// StaticRatingProvider is a RatingProvider backed by a fixed map.
// Useful for tests and for preloading ratings fetched in one query.
type StaticRatingProvider map[kernel.UUID]float64

// RatingFor returns the mapped rating, or DefaultAgentRating when the agent
// has no entry.
func (p StaticRatingProvider) RatingFor(agentID kernel.UUID) float64 {
	if rating, ok := p[agentID]; ok {
		return rating
	}
	return DefaultAgentRating
}
