package reviewrepo

import (
	"context"

	"zepta/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository by averaging persisted
// agent reviews.
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// AverageRatings returns the average review rating per agent. Agents
// without reviews are absent from the result; callers apply the default
// rating for them.
func (r *GormRatingRepository) AverageRatings(ctx context.Context) (map[kernel.UUID]float64, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			agent_id,
			AVG(rating)
		FROM agent_reviews
		GROUP BY agent_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make(map[kernel.UUID]float64)
	for rows.Next() {
		var id uuid.UUID
		var average float64

		if err = rows.Scan(&id, &average); err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		averages[agentID] = average
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return averages, nil
}
