package queries

import (
	"context"
	"database/sql"

	"zepta/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order list from the database.
// Uses direct SQL with joins for optimal read performance in the CQRS
// pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with store and agent
// summaries. Results are sorted by creation time, newest first, matching
// the dashboard listing.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			s.id,
			s.name,
			a.id,
			a.name
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		LEFT JOIN agents a ON a.id = o.agent_id
		ORDER BY o.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersQueryResponse
		var id, storeID uuid.UUID
		var agentID uuid.NullUUID
		var agentName sql.NullString

		err = rows.Scan(
			&id,
			&orderResp.Status,
			&storeID,
			&orderResp.StoreName,
			&agentID,
			&agentName,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderStoreID, idErr := kernel.UUIDFromBytes(storeID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.StoreID = orderStoreID

		if agentID.Valid {
			orderAgentID, idErr := kernel.UUIDFromBytes(agentID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			orderResp.AgentID = &orderAgentID
		}
		if agentName.Valid {
			name := agentName.String
			orderResp.AgentName = &name
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
