package internal

import (
	"math"
	"math/rand"
	"testing"

	"aavevar/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewShockGenerator(t *testing.T) {
	t.Run("rejects invalid snapshot", func(t *testing.T) {
		snapshot := domain.CovarianceSnapshot{
			Symbols: []string{"ETH", "BTC"},
			Matrix:  [][]float64{{0.01}},
		}

		_, err := NewShockGenerator(snapshot, rand.New(rand.NewSource(1)))

		require.Error(t, err)
	})

	t.Run("factors a well conditioned matrix without jitter", func(t *testing.T) {
		snapshot := domain.CovarianceSnapshot{
			Symbols: []string{"BTC", "ETH"},
			Matrix: [][]float64{
				{0.04, 0.01},
				{0.01, 0.09},
			},
		}

		generator, err := NewShockGenerator(snapshot, rand.New(rand.NewSource(1)))

		require.NoError(t, err)
		require.Equal(t, float64(0), generator.Jitter)
	})

	t.Run("singular matrix factors after diagonal jitter", func(t *testing.T) {
		// perfectly correlated pair, PSD but rank 1
		snapshot := domain.CovarianceSnapshot{
			Symbols: []string{"BTC", "ETH"},
			Matrix: [][]float64{
				{0.04, 0.04},
				{0.04, 0.04},
			},
		}

		generator, err := NewShockGenerator(snapshot, rand.New(rand.NewSource(1)))

		require.NoError(t, err)
		require.Greater(t, generator.Jitter, float64(0))
	})
}

func TestShockGenerator_SampleReturns(t *testing.T) {
	t.Run("same seed reproduces the same draws", func(t *testing.T) {
		snapshot := domain.CovarianceSnapshot{
			Symbols: []string{"BTC", "ETH", "USDC"},
			Matrix: [][]float64{
				{0.04, 0.01, 0},
				{0.01, 0.09, 0},
				{0, 0, 0.0001},
			},
		}

		generatorA, err := NewShockGenerator(snapshot, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		generatorB, err := NewShockGenerator(snapshot, rand.New(rand.NewSource(42)))
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			require.Equal(t, generatorA.SampleReturns(), generatorB.SampleReturns())
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		snapshot := domain.CovarianceSnapshot{
			Symbols: []string{"BTC"},
			Matrix:  [][]float64{{0.04}},
		}

		generatorA, err := NewShockGenerator(snapshot, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		generatorB, err := NewShockGenerator(snapshot, rand.New(rand.NewSource(2)))
		require.NoError(t, err)

		require.NotEqual(t, generatorA.SampleReturns(), generatorB.SampleReturns())
	})

	t.Run("zero covariance draws exactly zero returns", func(t *testing.T) {
		snapshot := domain.CovarianceSnapshot{
			Symbols: []string{"BTC", "ETH"},
			Matrix: [][]float64{
				{0, 0},
				{0, 0},
			},
		}

		generator, err := NewShockGenerator(snapshot, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		require.Equal(t, []float64{0, 0}, generator.SampleReturns())
	})
}

func TestShockGenerator_PricesFromReturns(t *testing.T) {
	snapshot := domain.CovarianceSnapshot{
		Symbols: []string{"BTC", "ETH"},
		Matrix: [][]float64{
			{0.04, 0},
			{0, 0.09},
		},
	}
	generator, err := NewShockGenerator(snapshot, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	t.Run("applies exponential shocks", func(t *testing.T) {
		current := domain.PriceVector{"BTC": 50_000, "ETH": 3_000}

		prices := generator.PricesFromReturns([]float64{-0.5, 0.1}, current)

		require.InDelta(t, 50_000*math.Exp(-0.5), prices["BTC"], 1e-9)
		require.InDelta(t, 3_000*math.Exp(0.1), prices["ETH"], 1e-9)
	})

	t.Run("zero return reproduces the current price bit for bit", func(t *testing.T) {
		current := domain.PriceVector{"BTC": 50_000.123456789, "ETH": 3_000.987654321}

		prices := generator.PricesFromReturns([]float64{0, 0}, current)

		require.Equal(t, "", cmp.Diff(current, prices))
	})

	t.Run("asset missing from current prices simulates at zero", func(t *testing.T) {
		current := domain.PriceVector{"BTC": 50_000}

		prices := generator.PricesFromReturns([]float64{0.2, 0.2}, current)

		require.Equal(t, float64(0), prices["ETH"])
	})
}

func TestShockGenerator_GenerateScenarios(t *testing.T) {
	t.Run("scenarios are indexed in draw order", func(t *testing.T) {
		snapshot := domain.CovarianceSnapshot{
			Symbols: []string{"BTC"},
			Matrix:  [][]float64{{0.04}},
		}
		generator, err := NewShockGenerator(snapshot, rand.New(rand.NewSource(7)))
		require.NoError(t, err)

		scenarios := generator.GenerateScenarios(50, domain.PriceVector{"BTC": 100})

		require.Len(t, scenarios, 50)
		for i, scenario := range scenarios {
			require.Equal(t, i, scenario.Index)
			require.Len(t, scenario.Returns, 1)
			require.InDelta(t, 100*math.Exp(scenario.Returns[0]), scenario.Prices["BTC"], 1e-9)
		}
	})
}
