package internal

import (
	"context"
	"math"
	"testing"

	"aavevar/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testSnapshot() domain.MarketSnapshot {
	return domain.MarketSnapshot{
		Prices: domain.PriceVector{"BTC": 50_000, "ETH": 3_000, "USDC": 1},
		Covariance: domain.CovarianceSnapshot{
			Symbols: []string{"BTC", "ETH", "USDC"},
			Matrix: [][]float64{
				{0.04, 0.01, 0},
				{0.01, 0.09, 0},
				{0, 0, 0.0001},
			},
		},
	}
}

func testAccounts() []domain.Account {
	return []domain.Account{
		{
			ID: "0x1",
			CollateralLegs: []domain.CollateralLeg{
				{Symbol: "ETH", Amount: 1_000, LiquidationThreshold: 0.8, Enabled: true},
			},
			DebtLegs: []domain.DebtLeg{
				{Symbol: "USDC", Amount: 2_500_000},
			},
		},
		{
			ID: "0x2",
			CollateralLegs: []domain.CollateralLeg{
				{Symbol: "BTC", Amount: 10, LiquidationThreshold: 0.75, Enabled: true},
			},
			DebtLegs: []domain.DebtLeg{
				{Symbol: "USDC", Amount: 100_000},
			},
		},
	}
}

func TestVaRSimulation_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path transitions to loaded", func(t *testing.T) {
		sim := NewVaRSimulation(SimulationConfig{Scenarios: 10, Seed: 1})

		err := sim.Load(ctx, testSnapshot(), testAccounts())

		require.NoError(t, err)
		require.Equal(t, RunState_Loaded, sim.State())
	})

	t.Run("rejects non-positive scenario count", func(t *testing.T) {
		sim := NewVaRSimulation(SimulationConfig{Scenarios: 0, Seed: 1})

		err := sim.Load(ctx, testSnapshot(), testAccounts())

		require.ErrorContains(t, err, "scenario count must be positive")
	})

	t.Run("rejects empty account registry", func(t *testing.T) {
		sim := NewVaRSimulation(SimulationConfig{Scenarios: 10, Seed: 1})

		err := sim.Load(ctx, testSnapshot(), nil)

		require.ErrorContains(t, err, "account registry is empty")
	})

	t.Run("rejects malformed covariance matrix", func(t *testing.T) {
		snapshot := testSnapshot()
		snapshot.Covariance.Matrix = snapshot.Covariance.Matrix[:2]

		sim := NewVaRSimulation(SimulationConfig{Scenarios: 10, Seed: 1})
		err := sim.Load(ctx, snapshot, testAccounts())

		require.Error(t, err)
	})

	t.Run("rejects asset set mismatch with price table", func(t *testing.T) {
		snapshot := testSnapshot()
		delete(snapshot.Prices, "USDC")

		sim := NewVaRSimulation(SimulationConfig{Scenarios: 10, Seed: 1})
		err := sim.Load(ctx, snapshot, testAccounts())

		require.ErrorContains(t, err, "covariance matrix covers")
	})

	t.Run("rejects double load", func(t *testing.T) {
		sim := NewVaRSimulation(SimulationConfig{Scenarios: 10, Seed: 1})
		require.NoError(t, sim.Load(ctx, testSnapshot(), testAccounts()))

		err := sim.Load(ctx, testSnapshot(), testAccounts())

		require.ErrorContains(t, err, "cannot load simulation in state")
	})
}

func TestVaRSimulation_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("run before load fails", func(t *testing.T) {
		sim := NewVaRSimulation(SimulationConfig{Scenarios: 10, Seed: 1})

		_, err := sim.Run(ctx)

		require.ErrorContains(t, err, "cannot run simulation in state")
	})

	t.Run("produces one loss per scenario", func(t *testing.T) {
		sim := NewVaRSimulation(SimulationConfig{Scenarios: 500, Seed: 1})
		require.NoError(t, sim.Load(ctx, testSnapshot(), testAccounts()))

		run, err := sim.Run(ctx)

		require.NoError(t, err)
		require.Len(t, run.Losses, 500)
		require.Len(t, run.LossIndexes, 500)
		require.Equal(t, 500, run.ScenarioCount)
		require.Equal(t, 0, run.ExcludedScenarios)
		require.Equal(t, RunState_Completed, sim.State())
		for i, loss := range run.Losses {
			require.GreaterOrEqual(t, loss, float64(0))
			require.Equal(t, i, run.LossIndexes[i])
		}
	})

	t.Run("same seed reproduces the loss distribution", func(t *testing.T) {
		runA := mustRun(t, SimulationConfig{Scenarios: 200, Seed: 42})
		runB := mustRun(t, SimulationConfig{Scenarios: 200, Seed: 42})

		require.Equal(t, "", cmp.Diff(runA.Losses, runB.Losses))
		require.Equal(t, "", cmp.Diff(runA.Metrics, runB.Metrics))
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		runA := mustRun(t, SimulationConfig{Scenarios: 200, Seed: 1})
		runB := mustRun(t, SimulationConfig{Scenarios: 200, Seed: 2})

		require.NotEqual(t, runA.Losses, runB.Losses)
	})

	t.Run("worker count does not change results", func(t *testing.T) {
		runA := mustRun(t, SimulationConfig{Scenarios: 200, Seed: 9, Workers: 1})
		runB := mustRun(t, SimulationConfig{Scenarios: 200, Seed: 9, Workers: 8})

		require.Equal(t, "", cmp.Diff(runA.Losses, runB.Losses))
	})

	t.Run("zero covariance yields the deterministic current-price loss", func(t *testing.T) {
		snapshot := testSnapshot()
		snapshot.Covariance.Matrix = [][]float64{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		}
		accounts := testAccounts()

		sim := NewVaRSimulation(SimulationConfig{Scenarios: 50, Seed: 3})
		require.NoError(t, sim.Load(ctx, snapshot, accounts))

		run, err := sim.Run(ctx)
		require.NoError(t, err)

		expected := CalculateScenarioBadDebt(accounts, snapshot.Prices, nil)
		for _, loss := range run.Losses {
			require.Equal(t, expected, loss)
		}
		require.InDelta(t, expected, run.Metrics.VaR95, 1e-6)
		require.InDelta(t, expected, run.Metrics.ES99, 1e-6)
		require.InDelta(t, 0, run.Metrics.Std, 1e-6)
	})

	t.Run("retains scenario detail only when asked", func(t *testing.T) {
		withDetail := mustRun(t, SimulationConfig{Scenarios: 20, Seed: 5, RetainScenarioDetail: true})
		withoutDetail := mustRun(t, SimulationConfig{Scenarios: 20, Seed: 5})

		require.Len(t, withDetail.Scenarios, 20)
		require.Nil(t, withoutDetail.Scenarios)
	})

	t.Run("non-finite losses are excluded and keep their scenario numbers", func(t *testing.T) {
		accounts := testAccounts()

		sim := NewVaRSimulation(SimulationConfig{Scenarios: 40, Seed: 42, RetainScenarioDetail: true})
		require.NoError(t, sim.Load(ctx, overflowSnapshot(), accounts))

		run, err := sim.Run(ctx)
		require.NoError(t, err)

		require.Greater(t, run.ExcludedScenarios, 0)
		require.Len(t, run.Losses, 40-run.ExcludedScenarios)
		require.Len(t, run.LossIndexes, len(run.Losses))

		// surviving losses trace back to the scenarios that produced
		// them, not to their position in the surviving slice
		surviving := map[int]bool{}
		prev := -1
		for i, idx := range run.LossIndexes {
			require.Greater(t, idx, prev)
			require.Less(t, idx, 40)
			prev = idx
			surviving[idx] = true

			loss := CalculateScenarioBadDebt(accounts, run.Scenarios[idx].Prices, nil)
			require.False(t, math.IsNaN(loss) || math.IsInf(loss, 0))
			require.Equal(t, loss, run.Losses[i])
		}
		for idx := 0; idx < 40; idx++ {
			if surviving[idx] {
				continue
			}
			loss := CalculateScenarioBadDebt(accounts, run.Scenarios[idx].Prices, nil)
			require.True(t, math.IsNaN(loss) || math.IsInf(loss, 0))
		}
	})

	t.Run("abort policy fails the run on the first non-finite loss", func(t *testing.T) {
		sim := NewVaRSimulation(SimulationConfig{
			Scenarios:       40,
			Seed:            42,
			NonFinitePolicy: NonFiniteLossPolicy_AbortRun,
		})
		require.NoError(t, sim.Load(ctx, overflowSnapshot(), testAccounts()))

		_, err := sim.Run(ctx)

		require.ErrorContains(t, err, "non-finite loss")
	})

	t.Run("cancelled context aborts the run", func(t *testing.T) {
		cancelledCtx, cancel := context.WithCancel(context.Background())
		cancel()

		sim := NewVaRSimulation(SimulationConfig{Scenarios: 10_000, Seed: 1})
		require.NoError(t, sim.Load(context.Background(), testSnapshot(), testAccounts()))

		_, err := sim.Run(cancelledCtx)

		require.ErrorContains(t, err, "simulation aborted")
	})
}

func TestVaRSimulation_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("export before completion fails", func(t *testing.T) {
		sim := NewVaRSimulation(SimulationConfig{Scenarios: 10, Seed: 1})
		require.NoError(t, sim.Load(ctx, testSnapshot(), testAccounts()))

		err := sim.Export(ctx, &domain.SimulationRun{})

		require.ErrorContains(t, err, "cannot export simulation in state")
	})

	t.Run("hands the run to every sink in order", func(t *testing.T) {
		sim := NewVaRSimulation(SimulationConfig{Scenarios: 10, Seed: 1})
		require.NoError(t, sim.Load(ctx, testSnapshot(), testAccounts()))
		run, err := sim.Run(ctx)
		require.NoError(t, err)

		sinkA := &captureSink{}
		sinkB := &captureSink{}
		require.NoError(t, sim.Export(ctx, run, sinkA, sinkB))

		require.Same(t, run, sinkA.saved)
		require.Same(t, run, sinkB.saved)
		require.Equal(t, RunState_Exported, sim.State())
	})
}

// overflowSnapshot gives the debt asset an absurd variance so roughly
// half the sampled log returns overflow exp and the scenario's debt
// goes infinite.
func overflowSnapshot() domain.MarketSnapshot {
	snapshot := testSnapshot()
	snapshot.Covariance.Matrix = [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 1e12},
	}
	return snapshot
}

func mustRun(t *testing.T, config SimulationConfig) *domain.SimulationRun {
	t.Helper()

	sim := NewVaRSimulation(config)
	require.NoError(t, sim.Load(context.Background(), testSnapshot(), testAccounts()))
	run, err := sim.Run(context.Background())
	require.NoError(t, err)
	return run
}

type captureSink struct {
	saved *domain.SimulationRun
}

func (s *captureSink) SaveRun(_ context.Context, run *domain.SimulationRun) error {
	s.saved = run
	return nil
}
