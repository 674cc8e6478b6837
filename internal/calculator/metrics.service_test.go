package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateRiskMetrics(t *testing.T) {
	t.Run("empty distribution is an error", func(t *testing.T) {
		_, err := CalculateRiskMetrics(nil)
		require.Error(t, err)
	})

	t.Run("single scenario collapses every metric", func(t *testing.T) {
		metrics, err := CalculateRiskMetrics([]float64{42})
		require.NoError(t, err)

		require.Equal(t, float64(42), metrics.VaR95)
		require.Equal(t, float64(42), metrics.VaR99)
		require.Equal(t, float64(42), metrics.VaR99_9)
		require.Equal(t, float64(42), metrics.ES95)
		require.Equal(t, float64(42), metrics.ES99)
		require.Equal(t, float64(42), metrics.Mean)
		require.Equal(t, float64(42), metrics.Median)
		require.Equal(t, float64(0), metrics.Std)
		require.Equal(t, float64(42), metrics.Min)
		require.Equal(t, float64(42), metrics.Max)
		require.Equal(t, float64(1), metrics.ProbLoss)
	})

	t.Run("uniform ladder hits known quantiles", func(t *testing.T) {
		// 0, 1, ..., 100: rank q/100 * (N-1) lands on the value itself
		losses := make([]float64, 101)
		for i := range losses {
			losses[i] = float64(i)
		}

		metrics, err := CalculateRiskMetrics(losses)
		require.NoError(t, err)

		require.InDelta(t, 95, metrics.VaR95, 1e-9)
		require.InDelta(t, 99, metrics.VaR99, 1e-9)
		require.InDelta(t, 99.9, metrics.VaR99_9, 1e-9)
		// tail mean of 95..100 inclusive
		require.InDelta(t, 97.5, metrics.ES95, 1e-9)
		require.InDelta(t, 99.5, metrics.ES99, 1e-9)
		require.InDelta(t, 50, metrics.Mean, 1e-9)
		require.InDelta(t, 50, metrics.Median, 1e-9)
		require.Equal(t, float64(0), metrics.Min)
		require.Equal(t, float64(100), metrics.Max)
		require.InDelta(t, float64(100)/101, metrics.ProbLoss, 1e-9)
	})

	t.Run("interpolates between order statistics", func(t *testing.T) {
		metrics, err := CalculateRiskMetrics([]float64{0, 10})
		require.NoError(t, err)

		// rank 0.95 between 0 and 10
		require.InDelta(t, 9.5, metrics.VaR95, 1e-9)
		require.InDelta(t, 9.9, metrics.VaR99, 1e-9)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		ascending, err := CalculateRiskMetrics([]float64{1, 2, 3, 4, 5})
		require.NoError(t, err)
		shuffled, err := CalculateRiskMetrics([]float64{4, 1, 5, 3, 2})
		require.NoError(t, err)

		require.Equal(t, ascending, shuffled)
	})

	t.Run("stdev is the population definition", func(t *testing.T) {
		metrics, err := CalculateRiskMetrics([]float64{1, 3})
		require.NoError(t, err)

		require.InDelta(t, 1, metrics.Std, 1e-9)
	})

	t.Run("expected shortfall never sits below its var", func(t *testing.T) {
		losses := []float64{0, 0, 0, 12.5, 80, 101.25, 400, 1000, 2500, 99999}

		metrics, err := CalculateRiskMetrics(losses)
		require.NoError(t, err)

		require.GreaterOrEqual(t, metrics.ES95, metrics.VaR95)
		require.GreaterOrEqual(t, metrics.ES99, metrics.VaR99)
		require.GreaterOrEqual(t, metrics.VaR99, metrics.VaR95)
		require.GreaterOrEqual(t, metrics.VaR99_9, metrics.VaR99)
	})

	t.Run("prob loss counts strictly positive losses", func(t *testing.T) {
		metrics, err := CalculateRiskMetrics([]float64{0, 0, 0, 5})
		require.NoError(t, err)

		require.InDelta(t, 0.25, metrics.ProbLoss, 1e-9)
	})
}
