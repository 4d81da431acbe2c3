package order_test

import (
	"testing"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with no agent", func(t *testing.T) {
		id := kernel.NewUUID()
		storeID := kernel.NewUUID()

		o, err := order.NewOrder(id, storeID)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.StoreID().IsEqual(storeID))
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.Agent())
	})

	t.Run("should reject invalid order ID", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := order.NewOrder(zeroID, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("should reject invalid store ID", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := order.NewOrder(kernel.NewUUID(), zeroID)
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with agent assignment", func(t *testing.T) {
		id := kernel.NewUUID()
		storeID := kernel.NewUUID()
		agentID := kernel.NewUUID()

		o, err := order.RestoreOrder(id, storeID, order.StatusOutForDelivery, &agentID)

		require.NoError(t, err)
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
		require.NotNil(t, o.Agent())
		assert.True(t, o.Agent().IsEqual(agentID))
	})

	t.Run("should restore unassigned order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.StatusPacked, nil)

		require.NoError(t, err)
		assert.Nil(t, o.Agent())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.StatusUnknown, nil)
		require.Error(t, err)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("should record agent and move to assigned", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		agentID := kernel.NewUUID()

		require.NoError(t, o.Assign(agentID))

		assert.Equal(t, order.StatusAssigned, o.Status())
		require.NotNil(t, o.Agent())
		assert.True(t, o.Agent().IsEqual(agentID))
	})

	t.Run("reassignment overwrites the previous agent", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.Assign(first))
		require.NoError(t, o.Assign(second))

		assert.True(t, o.Agent().IsEqual(second))
		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("should reject invalid agent ID", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		var zeroID kernel.UUID

		require.Error(t, o.Assign(zeroID))
		assert.Nil(t, o.Agent())
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_SetStatus(t *testing.T) {
	t.Run("any valid status is reachable from any other", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, o.SetStatus(order.StatusDelivered))
		require.NoError(t, o.SetStatus(order.StatusAccepted))
		require.NoError(t, o.SetStatus(order.StatusRefundCompleted))
		assert.Equal(t, order.StatusRefundCompleted, o.Status())
	})

	t.Run("should reject invalid status value", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, o.SetStatus(order.Status(42)))
	})
}

func TestOrder_IsAssignable(t *testing.T) {
	t.Run("accepted and packed orders without agent are assignable", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, o.SetStatus(order.StatusAccepted))
		assert.True(t, o.IsAssignable())

		require.NoError(t, o.SetStatus(order.StatusPacked))
		assert.True(t, o.IsAssignable())
	})

	t.Run("pending order is not assignable", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		assert.False(t, o.IsAssignable())
	})

	t.Run("order with agent is not assignable", func(t *testing.T) {
		agentID := kernel.NewUUID()
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.StatusAccepted, &agentID)
		require.NoError(t, err)

		assert.False(t, o.IsAssignable())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order passes validation", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, o.Validate())
	})

	t.Run("nil and zero value fail validation", func(t *testing.T) {
		var nilOrder *order.Order
		require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)

		var zero order.Order
		require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
	})
}
