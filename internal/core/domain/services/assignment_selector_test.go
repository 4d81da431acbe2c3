package services_test

import (
	"testing"

	"zepta/internal/core/domain/model/agent"
	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/core/domain/model/order"
	"zepta/internal/core/domain/model/store"
	"zepta/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, storeID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), storeID)
	require.NoError(t, err)
	require.NoError(t, o.SetStatus(order.StatusAccepted))
	return o
}

func newTestStore(t *testing.T, lat, lon float64) *store.Store {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	st, err := store.NewStore(kernel.NewUUID(), "Zepta Central", &point)
	require.NoError(t, err)
	return st
}

func newLocatedAgent(t *testing.T, name string, lat, lon float64) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), name)
	require.NoError(t, err)
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	require.NoError(t, a.ReportLocation(point))
	return a
}

func newUnlocatedAgent(t *testing.T, name string) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), name)
	require.NoError(t, err)
	return a
}

func TestAssignmentSelector_SelectBestAgent(t *testing.T) {
	selector := services.NewAssignmentSelector()

	t.Run("should report no agent available for empty roster", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		_, err := selector.SelectBestAgent(o, st, nil, services.WorkloadLedger{}, services.StaticRatingProvider{})

		require.ErrorIs(t, err, services.ErrNoAgentAvailable)
	})

	t.Run("should never select an inactive agent", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		inactive := newLocatedAgent(t, "Inactive", 16.30, 80.43)
		inactive.SetActive(false)

		_, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{inactive}, services.WorkloadLedger{}, services.StaticRatingProvider{})
		require.ErrorIs(t, err, services.ErrNoAgentAvailable)

		// A far but active agent still beats an inactive one at the store.
		farActive := newLocatedAgent(t, "Far", 17.00, 81.00)
		best, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{inactive, farActive}, services.WorkloadLedger{}, services.StaticRatingProvider{})
		require.NoError(t, err)
		assert.True(t, best.IsEqual(farActive))
	})

	t.Run("should restrict pool to located agents when any exist", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		unlocated := newUnlocatedAgent(t, "NoLocation")
		located := newLocatedAgent(t, "Located", 16.90, 81.00)

		ledger := services.WorkloadLedger{}
		// Give the located agent a heavy workload; it must still win because
		// the unlocated agent is excluded from the pool.
		ledger[located.ID()] = 5

		best, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{unlocated, located}, ledger, services.StaticRatingProvider{})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(located))
	})

	t.Run("should fall back to workload ranking when no candidate has a location", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		busy := newUnlocatedAgent(t, "Busy")
		idle := newUnlocatedAgent(t, "Idle")

		ledger := services.WorkloadLedger{}
		ledger[busy.ID()] = 2

		ratings := services.StaticRatingProvider{
			busy.ID(): 4.0,
			idle.ID(): 4.0,
		}

		best, err := selector.SelectBestAgent(o, st, []*agent.Agent{busy, idle}, ledger, ratings)

		require.NoError(t, err)
		assert.True(t, best.IsEqual(idle))
	})

	t.Run("should fall back to workload ranking when the store has no coordinate", func(t *testing.T) {
		st, err := store.NewStore(kernel.NewUUID(), "No Coordinates", nil)
		require.NoError(t, err)
		o := newTestOrder(t, st.ID())

		// Located agent far away with light load, located agent near with
		// heavy load. Without a store coordinate, distance is ignored.
		lightLoad := newLocatedAgent(t, "Light", 17.00, 81.00)
		heavyLoad := newLocatedAgent(t, "Heavy", 16.30, 80.43)

		ledger := services.WorkloadLedger{}
		ledger[heavyLoad.ID()] = 3

		best, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{heavyLoad, lightLoad}, ledger, services.StaticRatingProvider{})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(lightLoad))
	})

	t.Run("should handle nil store as unresolved", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())
		a := newLocatedAgent(t, "Solo", 16.30, 80.43)

		best, err := selector.SelectBestAgent(o, nil,
			[]*agent.Agent{a}, services.WorkloadLedger{}, services.StaticRatingProvider{})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(a))
	})

	t.Run("closer agent always wins with equal workload and rating", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		near := newLocatedAgent(t, "Near", 16.31, 80.44)
		far := newLocatedAgent(t, "Far", 16.50, 80.65)

		ratings := services.StaticRatingProvider{
			near.ID(): 4.8,
			far.ID():  4.8,
		}

		best, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{far, near}, services.WorkloadLedger{}, ratings)

		require.NoError(t, err)
		assert.True(t, best.IsEqual(near))
	})

	t.Run("lighter workload wins with equal distance and rating", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		busy := newLocatedAgent(t, "Busy", 16.31, 80.44)
		idle := newLocatedAgent(t, "Idle", 16.31, 80.44)

		ledger := services.WorkloadLedger{}
		ledger[busy.ID()] = 2

		best, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{busy, idle}, ledger, services.StaticRatingProvider{})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(idle))
	})

	t.Run("higher rating wins with equal distance and workload", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		lowRated := newLocatedAgent(t, "LowRated", 16.31, 80.44)
		highRated := newLocatedAgent(t, "HighRated", 16.31, 80.44)

		ratings := services.StaticRatingProvider{
			lowRated.ID():  3.5,
			highRated.ID(): 4.9,
		}

		best, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{lowRated, highRated}, services.WorkloadLedger{}, ratings)

		require.NoError(t, err)
		assert.True(t, best.IsEqual(highRated))
	})

	t.Run("first candidate wins exact score ties", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		first := newLocatedAgent(t, "First", 16.31, 80.44)
		second := newLocatedAgent(t, "Second", 16.31, 80.44)

		best, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{first, second}, services.WorkloadLedger{}, services.StaticRatingProvider{})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(first))
	})

	t.Run("distance contribution is capped", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		// Both agents are beyond the 25 km cap distance, so their distance
		// scores are equal; the idle one must win on workload.
		veryFarIdle := newLocatedAgent(t, "VeryFarIdle", 18.00, 82.00)
		farBusy := newLocatedAgent(t, "FarBusy", 17.00, 81.00)

		ledger := services.WorkloadLedger{}
		ledger[farBusy.ID()] = 1

		best, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{farBusy, veryFarIdle}, ledger, services.StaticRatingProvider{})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(veryFarIdle))
	})

	t.Run("should return error for invalid order", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		a := newLocatedAgent(t, "Solo", 16.31, 80.44)

		var invalidOrder *order.Order
		_, err := selector.SelectBestAgent(invalidOrder, st,
			[]*agent.Agent{a}, services.WorkloadLedger{}, services.StaticRatingProvider{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should return error when roster contains invalid agent", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		valid := newLocatedAgent(t, "Valid", 16.31, 80.44)
		var invalid agent.Agent

		_, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{valid, &invalid}, services.WorkloadLedger{}, services.StaticRatingProvider{})

		require.ErrorIs(t, err, agent.ErrAgentIsNotConstructed)
	})
}

func TestAssignmentSelector_Scenarios(t *testing.T) {
	selector := services.NewAssignmentSelector()

	t.Run("proximity picks the nearer of two equal agents", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		a1 := newLocatedAgent(t, "A1", 16.31, 80.44)
		a2 := newLocatedAgent(t, "A2", 16.50, 80.65)

		ratings := services.StaticRatingProvider{
			a1.ID(): 4.8,
			a2.ID(): 4.8,
		}

		best, err := selector.SelectBestAgent(o, st,
			[]*agent.Agent{a1, a2}, services.WorkloadLedger{}, ratings)

		require.NoError(t, err)
		assert.True(t, best.IsEqual(a1))
	})

	t.Run("workload fallback picks the idle agent", func(t *testing.T) {
		st := newTestStore(t, 16.30, 80.43)
		o := newTestOrder(t, st.ID())

		a1 := newUnlocatedAgent(t, "A1")
		a2 := newUnlocatedAgent(t, "A2")

		ledger := services.WorkloadLedger{}
		ledger[a1.ID()] = 2

		ratings := services.StaticRatingProvider{
			a1.ID(): 4.0,
			a2.ID(): 4.0,
		}

		best, err := selector.SelectBestAgent(o, st, []*agent.Agent{a1, a2}, ledger, ratings)

		require.NoError(t, err)
		assert.True(t, best.IsEqual(a2))
	})
}
