// Package reviewrepo reads customer review aggregates for delivery agents.
// Reviews are written by the customer-facing application; this service only
// consumes the per-agent averages that feed the assignment selector.
package reviewrepo

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDTO represents a customer review row for a delivery agent.
// Rating is on a 0-5 scale.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentID   uuid.UUID `gorm:"type:uuid;index"`
	Rating    float64
	Comment   string
	CreatedAt time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "agent_reviews"
}
