// Package storerepo provides data transfer objects and mapping functions
// for store persistence.
package storerepo

import (
	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store
// aggregates. Latitude and longitude are nullable for stores whose
// coordinates are not on file.
type StoreDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Latitude  *float64
	Longitude *float64
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

// fromDomain converts a store domain aggregate to its database
// representation.
func fromDomain(aggregate *store.Store) StoreDTO {
	dto := StoreDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}

	if location := aggregate.Location(); location != nil {
		latitude := location.Latitude()
		longitude := location.Longitude()
		dto.Latitude = &latitude
		dto.Longitude = &longitude
	}

	return dto
}

// toDomain converts a database row to a store domain aggregate.
func toDomain(dto StoreDTO) (*store.Store, error) {
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

	return store.NewStore(id, dto.Name, location)
}
