package queries

import (
	"context"
	"database/sql"

	"zepta/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentsQueryHandler retrieves the agent roster from the database.
type GetAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentsQueryHandler creates a handler for agent roster queries.
// Requires a GORM database connection for query execution.
func NewGetAgentsQueryHandler(db *gorm.DB) GetAgentsQueryHandler {
	return GetAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all agents.
// Returns agents sorted by name, with their last-known location when one
// was reported.
func (h GetAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentsQuery,
) ([]GetAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetAgentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			active,
			latitude,
			longitude
		FROM agents
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var agentResp GetAgentsQueryResponse
		var id uuid.UUID
		var latitude, longitude sql.NullFloat64

		err = rows.Scan(
			&id,
			&agentResp.Name,
			&agentResp.Active,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		agentResp.ID = agentID

		if latitude.Valid && longitude.Valid {
			point, locErr := kernel.NewGeoPoint(latitude.Float64, longitude.Float64)
			if locErr != nil {
				return nil, locErr
			}
			agentResp.Location = &point
		}

		agents = append(agents, agentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
