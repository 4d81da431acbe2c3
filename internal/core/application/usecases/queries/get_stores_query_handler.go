package queries

import (
	"context"
	"database/sql"

	"zepta/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoresQueryHandler retrieves the store list from the database.
type GetStoresQueryHandler struct {
	db *gorm.DB
}

// NewGetStoresQueryHandler creates a handler for store list queries.
// Requires a GORM database connection for query execution.
func NewGetStoresQueryHandler(db *gorm.DB) GetStoresQueryHandler {
	return GetStoresQueryHandler{db: db}
}

// Handle executes the query to retrieve all stores, sorted by name.
func (h GetStoresQueryHandler) Handle(
	ctx context.Context,
	query GetStoresQuery,
) ([]GetStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores := make([]GetStoresQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			latitude,
			longitude
		FROM stores
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var storeResp GetStoresQueryResponse
		var id uuid.UUID
		var latitude, longitude sql.NullFloat64

		err = rows.Scan(
			&id,
			&storeResp.Name,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, err
		}

		storeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		storeResp.ID = storeID

		if latitude.Valid && longitude.Valid {
			point, locErr := kernel.NewGeoPoint(latitude.Float64, longitude.Float64)
			if locErr != nil {
				return nil, locErr
			}
			storeResp.Location = &point
		}

		stores = append(stores, storeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}
