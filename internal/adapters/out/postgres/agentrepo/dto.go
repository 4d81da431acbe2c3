// Package agentrepo provides data transfer objects and mapping functions
// for delivery agent persistence.
package agentrepo

import (
	"zepta/internal/core/domain/model/agent"
	"zepta/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent
// aggregates. Latitude and longitude are nullable: agents that have never
// reported a position have neither.
type AgentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Active    bool `gorm:"index"`
	Latitude  *float64
	Longitude *float64
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain aggregate to its database
// representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	dto := AgentDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Active: aggregate.IsActive(),
	}

	if location := aggregate.Location(); location != nil {
		latitude := location.Latitude()
		longitude := location.Longitude()
		dto.Latitude = &latitude
		dto.Longitude = &longitude
	}

	return dto
}

// toDomain converts a database row to an agent domain aggregate using
// RestoreAgent.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return agent.RestoreAgent(id, dto.Name, dto.Active, location)
}
