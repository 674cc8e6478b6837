package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scenario is one simulated one-day market state. Index is assigned at
// sampling time and carried through evaluation, so parallel completion
// order never affects which losses land where.
type Scenario struct {
	Index   int
	Returns []float64 // ordered like CovarianceSnapshot.Symbols
	Prices  PriceVector
	BadDebt float64
}

type RiskMetrics struct {
	VaR95   float64 `json:"var95"`
	VaR99   float64 `json:"var99"`
	VaR99_9 float64 `json:"var99_9"`
	ES95    float64 `json:"es95"`
	ES99    float64 `json:"es99"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Std     float64 `json:"std"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	// ProbLoss is count(loss > 0) / scenario count.
	ProbLoss float64 `json:"probLoss"`
}

// SimulationRun is the durable output of the engine: the loss
// distribution plus the summary metrics over it. ExcludedScenarios
// counts scenarios dropped for producing a non-finite loss; Losses
// holds only the scenarios that survived, and LossIndexes[i] records
// which scenario produced Losses[i]. The two only diverge from
// positional order once a scenario has been excluded.
type SimulationRun struct {
	RunID             uuid.UUID   `json:"runId"`
	Seed              int64       `json:"seed"`
	ScenarioCount     int         `json:"scenarioCount"`
	ExcludedScenarios int         `json:"excludedScenarios"`
	Losses            []float64   `json:"-"`
	LossIndexes       []int       `json:"-"`
	Metrics           RiskMetrics `json:"metrics"`
	StartedAt         time.Time   `json:"startedAt"`
	CompletedAt       time.Time   `json:"completedAt"`
	CurrentPrices     PriceVector `json:"-"`
	AssetSymbols      []string    `json:"-"`
	// Scenarios is populated only when the run is configured to retain
	// per-scenario detail for export.
	Scenarios []Scenario `json:"-"`
}

// ScenarioIndex returns the scenario that produced Losses[i].
func (r SimulationRun) ScenarioIndex(i int) int {
	if i < len(r.LossIndexes) {
		return r.LossIndexes[i]
	}
	return i
}
