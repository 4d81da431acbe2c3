package agent_test

import (
	"testing"

	"zepta/internal/core/domain/model/agent"
	"zepta/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	t.Run("should create active agent with no location", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := agent.NewAgent(id, "Ravi Kumar")

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "Ravi Kumar", a.Name())
		assert.True(t, a.IsActive())
		assert.False(t, a.HasLocation())
		assert.Nil(t, a.Location())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "")
		require.ErrorIs(t, err, agent.ErrNameIsRequired)
	})

	t.Run("should reject invalid ID", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := agent.NewAgent(zeroID, "Ravi Kumar")
		require.Error(t, err)
	})
}

func TestRestoreAgent(t *testing.T) {
	t.Run("should restore inactive agent with location", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(16.31, 80.44)

		a, err := agent.RestoreAgent(kernel.NewUUID(), "Sita Devi", false, &point)

		require.NoError(t, err)
		assert.False(t, a.IsActive())
		require.True(t, a.HasLocation())

		equal, err := a.Location().IsEqual(point)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should restore agent without location", func(t *testing.T) {
		a, err := agent.RestoreAgent(kernel.NewUUID(), "Sita Devi", true, nil)

		require.NoError(t, err)
		assert.False(t, a.HasLocation())
	})

	t.Run("should reject zero-value location", func(t *testing.T) {
		var point kernel.GeoPoint
		_, err := agent.RestoreAgent(kernel.NewUUID(), "Sita Devi", true, &point)
		require.Error(t, err)
	})
}

func TestAgent_ReportLocation(t *testing.T) {
	t.Run("should record live location", func(t *testing.T) {
		a, _ := agent.NewAgent(kernel.NewUUID(), "Ravi Kumar")
		point, _ := kernel.NewGeoPoint(16.31, 80.44)

		require.NoError(t, a.ReportLocation(point))

		require.True(t, a.HasLocation())
		equal, err := a.Location().IsEqual(point)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("new report overwrites the previous location", func(t *testing.T) {
		a, _ := agent.NewAgent(kernel.NewUUID(), "Ravi Kumar")
		first, _ := kernel.NewGeoPoint(16.31, 80.44)
		second, _ := kernel.NewGeoPoint(16.50, 80.65)

		require.NoError(t, a.ReportLocation(first))
		require.NoError(t, a.ReportLocation(second))

		equal, err := a.Location().IsEqual(second)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should reject zero-value point", func(t *testing.T) {
		a, _ := agent.NewAgent(kernel.NewUUID(), "Ravi Kumar")
		var point kernel.GeoPoint

		require.Error(t, a.ReportLocation(point))
		assert.False(t, a.HasLocation())
	})
}

func TestAgent_SetActive(t *testing.T) {
	a, _ := agent.NewAgent(kernel.NewUUID(), "Ravi Kumar")

	a.SetActive(false)
	assert.False(t, a.IsActive())

	a.SetActive(true)
	assert.True(t, a.IsActive())
}

func TestAgent_Validate(t *testing.T) {
	t.Run("constructed agent passes validation", func(t *testing.T) {
		a, _ := agent.NewAgent(kernel.NewUUID(), "Ravi Kumar")
		require.NoError(t, a.Validate())
	})

	t.Run("nil and zero value fail validation", func(t *testing.T) {
		var nilAgent *agent.Agent
		require.ErrorIs(t, nilAgent.Validate(), agent.ErrAgentIsNotConstructed)

		var zero agent.Agent
		require.ErrorIs(t, zero.Validate(), agent.ErrAgentIsNotConstructed)
	})
}
