// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is stored by wire name so the dashboard queries read
// it without decoding. CreatedAt fixes the sweep order: eligible orders are
// processed oldest first.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID  `gorm:"type:uuid;index"`
	AgentID   *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"type:varchar(32);index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return OrderDTO{
		ID:      aggregate.ID().Bytes(),
		StoreID: aggregate.StoreID().Bytes(),
		AgentID: agentID,
		Status:  aggregate.Status().String(),
	}
}

// toDomain converts a database row to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, storeID, status, agentID)
}
