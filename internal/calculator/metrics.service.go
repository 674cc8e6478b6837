package calculator

import (
	"aavevar/internal/domain"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// CalculateRiskMetrics reduces a completed loss distribution into the
// summary metrics record. The distribution must already be final -
// metrics are computed once, never incrementally.
//
// Stdev uses the population definition (divide by N), matching the
// rest of the descriptive stats.
func CalculateRiskMetrics(losses []float64) (*domain.RiskMetrics, error) {
	if len(losses) == 0 {
		return nil, fmt.Errorf("cannot calculate risk metrics on empty loss distribution")
	}

	sorted := make([]float64, len(losses))
	copy(sorted, losses)
	sort.Float64s(sorted)

	var95 := percentileLinear(sorted, 95)
	var99 := percentileLinear(sorted, 99)
	var999 := percentileLinear(sorted, 99.9)

	mean, err := stats.Mean(losses)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(losses)
	if err != nil {
		return nil, err
	}
	std, err := stats.StandardDeviationPopulation(losses)
	if err != nil {
		return nil, err
	}

	positive := 0
	for _, loss := range losses {
		if loss > 0 {
			positive++
		}
	}

	return &domain.RiskMetrics{
		VaR95:    var95,
		VaR99:    var99,
		VaR99_9:  var999,
		ES95:     expectedShortfall(sorted, var95),
		ES99:     expectedShortfall(sorted, var99),
		Mean:     mean,
		Median:   median,
		Std:      std,
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		ProbLoss: float64(positive) / float64(len(losses)),
	}, nil
}

// percentileLinear is the linear-interpolation percentile over the
// already sorted sample: rank = q/100 * (N-1), interpolated between
// the surrounding order statistics. stats.Percentile rounds to a rank
// instead, and the interpolation rule here is part of the output
// contract, so it stays hand rolled.
func percentileLinear(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := q / 100 * float64(len(sorted)-1)
	lower := math.Floor(rank)
	upper := math.Ceil(rank)
	if lower == upper {
		return sorted[int(rank)]
	}

	weight := rank - lower
	return sorted[int(lower)]*(1-weight) + sorted[int(upper)]*weight
}

// expectedShortfall is the mean of all losses >= the VaR boundary,
// boundary inclusive.
func expectedShortfall(sorted []float64, varQ float64) float64 {
	// first index with loss >= varQ
	idx := sort.SearchFloat64s(sorted, varQ)
	if idx == len(sorted) {
		// q <= 100 keeps varQ within the sample, but guard the empty
		// tail anyway
		return sorted[len(sorted)-1]
	}

	sum := 0.0
	for _, loss := range sorted[idx:] {
		sum += loss
	}
	return sum / float64(len(sorted)-idx)
}
