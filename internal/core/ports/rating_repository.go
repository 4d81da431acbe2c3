package ports

import (
	"context"

	"zepta/internal/core/domain/model/kernel"
)

// RatingRepository provides agent rating aggregates from persisted customer
// reviews. Reviews are written by the customer-facing application; this
// service only reads the averages.
type RatingRepository interface {
	// AverageRatings returns the average review rating per agent on a 0-5
	// scale. Agents without reviews are absent from the result; callers
	// apply the default rating for them.
	AverageRatings(ctx context.Context) (map[kernel.UUID]float64, error)
}
