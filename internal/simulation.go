package internal

import (
	"aavevar/internal/calculator"
	"aavevar/internal/domain"
	"aavevar/internal/logger"
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// NonFiniteLossPolicy controls what happens when a scenario produces a
// NaN or infinite loss, which can come out of a numerically degenerate
// covariance sample. Either way the outcome is recorded - a scenario
// is never dropped silently.
type NonFiniteLossPolicy string

const (
	// ExcludeScenario drops the offending scenario and records the
	// exclusion count on the run.
	NonFiniteLossPolicy_ExcludeScenario NonFiniteLossPolicy = "exclude"
	// AbortRun fails the whole run on the first non-finite loss.
	NonFiniteLossPolicy_AbortRun NonFiniteLossPolicy = "abort"
)

type RunState string

const (
	RunState_Idle      RunState = "idle"
	RunState_Loaded    RunState = "loaded"
	RunState_Running   RunState = "running"
	RunState_Completed RunState = "completed"
	RunState_Exported  RunState = "exported"
)

type SimulationConfig struct {
	Scenarios int
	Seed      int64
	// Workers defaults to GOMAXPROCS when <= 0. Evaluation fans out
	// across workers; sampling stays single threaded for determinism.
	Workers int
	// RetainScenarioDetail keeps every scenario's return and price
	// vectors on the run for export. Off by default - 10k scenarios
	// times the asset set is a lot to hold for no reason.
	RetainScenarioDetail bool
	NonFinitePolicy      NonFiniteLossPolicy
}

// ResultSink receives a completed run. Implementations own storage
// format and schema; the engine hands over the data and moves on.
type ResultSink interface {
	SaveRun(ctx context.Context, run *domain.SimulationRun) error
}

// VaRSimulation is one Monte Carlo run over an immutable account
// registry and market snapshot. It owns its random source, so
// concurrent runs with different seeds never contend.
//
// State transitions: idle -> loaded -> running -> completed ->
// (optionally) exported. Load is where all fatal input validation
// happens; nothing after it should fail on bad input.
type VaRSimulation struct {
	config SimulationConfig
	state  RunState

	accounts  []domain.Account
	snapshot  domain.MarketSnapshot
	generator *ShockGenerator
}

func NewVaRSimulation(config SimulationConfig) *VaRSimulation {
	if config.NonFinitePolicy == "" {
		config.NonFinitePolicy = NonFiniteLossPolicy_ExcludeScenario
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &VaRSimulation{
		config: config,
		state:  RunState_Idle,
	}
}

func (s *VaRSimulation) State() RunState {
	return s.state
}

// Load validates the inputs and fixes them for the lifetime of the
// run. Fatal conditions, checked before any scenario runs: empty
// covariance matrix, empty account registry, non-positive scenario
// count, and an asset-set mismatch between the price table and the
// covariance matrix. Assets referenced only by positions may be
// missing from the price table - those price at 0 by the documented
// default, which is a data-quality concern, not a load failure.
func (s *VaRSimulation) Load(ctx context.Context, snapshot domain.MarketSnapshot, accounts []domain.Account) error {
	if s.state != RunState_Idle {
		return fmt.Errorf("cannot load simulation in state %s", s.state)
	}
	if s.config.Scenarios <= 0 {
		return fmt.Errorf("scenario count must be positive, got %d", s.config.Scenarios)
	}
	if len(accounts) == 0 {
		return fmt.Errorf("account registry is empty")
	}
	if err := snapshot.Covariance.Validate(); err != nil {
		return err
	}
	if err := assetSetsMatch(snapshot.Covariance.Symbols, snapshot.Prices); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(s.config.Seed))
	generator, err := NewShockGenerator(snapshot.Covariance, rng)
	if err != nil {
		return err
	}
	if generator.Jitter > 0 {
		logger.FromContext(ctx).Warnf("covariance matrix needed diagonal jitter %g to factor", generator.Jitter)
	}

	s.snapshot = snapshot
	s.accounts = accounts
	s.generator = generator
	s.state = RunState_Loaded
	return nil
}

func assetSetsMatch(covSymbols []string, prices domain.PriceVector) error {
	if len(covSymbols) != len(prices) {
		return fmt.Errorf("covariance matrix covers %d assets, price table has %d", len(covSymbols), len(prices))
	}
	for _, symbol := range covSymbols {
		if _, ok := prices[symbol]; !ok {
			return fmt.Errorf("asset %s is in the covariance matrix but not the price table", symbol)
		}
	}
	return nil
}

type scenarioResult struct {
	index   int
	badDebt float64
}

// Run samples all scenarios, evaluates every account under each one,
// and reduces the per-scenario losses into summary metrics.
func (s *VaRSimulation) Run(ctx context.Context) (*domain.SimulationRun, error) {
	if s.state != RunState_Loaded {
		return nil, fmt.Errorf("cannot run simulation in state %s", s.state)
	}
	s.state = RunState_Running

	log := logger.FromContext(ctx)
	startedAt := time.Now().UTC()

	scenarios := s.generator.GenerateScenarios(s.config.Scenarios, s.snapshot.Prices)
	s.logReturnStats(ctx, scenarios)

	results := make([]scenarioResult, s.config.Scenarios)
	scenarioCh := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range scenarioCh {
				badDebt := CalculateScenarioBadDebt(s.accounts, scenarios[idx].Prices, s.snapshot.EModes)
				// results are slotted by scenario index, never by
				// completion order
				results[idx] = scenarioResult{index: idx, badDebt: badDebt}
			}
		}()
	}

	dispatchErr := func() error {
		defer close(scenarioCh)
		for i := 0; i < s.config.Scenarios; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case scenarioCh <- i:
			}
		}
		return nil
	}()
	wg.Wait()

	if dispatchErr != nil {
		return nil, fmt.Errorf("simulation aborted: %w", dispatchErr)
	}

	losses := make([]float64, 0, s.config.Scenarios)
	lossIndexes := make([]int, 0, s.config.Scenarios)
	excluded := 0
	for _, result := range results {
		if math.IsNaN(result.badDebt) || math.IsInf(result.badDebt, 0) {
			if s.config.NonFinitePolicy == NonFiniteLossPolicy_AbortRun {
				return nil, fmt.Errorf("scenario %d produced a non-finite loss and the run policy is abort", result.index)
			}
			excluded++
			continue
		}
		scenarios[result.index].BadDebt = result.badDebt
		losses = append(losses, result.badDebt)
		lossIndexes = append(lossIndexes, result.index)
	}

	if excluded > 0 {
		log.Warnf("excluded %d of %d scenarios for non-finite losses", excluded, s.config.Scenarios)
	}
	if len(losses) == 0 {
		return nil, fmt.Errorf("all %d scenarios produced non-finite losses", s.config.Scenarios)
	}

	metrics, err := calculator.CalculateRiskMetrics(losses)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate risk metrics: %w", err)
	}

	run := &domain.SimulationRun{
		RunID:             uuid.New(),
		Seed:              s.config.Seed,
		ScenarioCount:     s.config.Scenarios,
		ExcludedScenarios: excluded,
		Losses:            losses,
		LossIndexes:       lossIndexes,
		Metrics:           *metrics,
		StartedAt:         startedAt,
		CompletedAt:       time.Now().UTC(),
		CurrentPrices:     s.snapshot.Prices,
		AssetSymbols:      s.generator.Symbols(),
	}
	if s.config.RetainScenarioDetail {
		run.Scenarios = scenarios
	}

	s.state = RunState_Completed
	log.Infow("simulation complete",
		"runId", run.RunID,
		"scenarios", run.ScenarioCount,
		"excluded", run.ExcludedScenarios,
		"accounts", len(s.accounts),
		"var99", metrics.VaR99,
	)

	return run, nil
}

// Export hands the completed run to each sink in order. It performs no
// further computation.
func (s *VaRSimulation) Export(ctx context.Context, run *domain.SimulationRun, sinks ...ResultSink) error {
	if s.state != RunState_Completed {
		return fmt.Errorf("cannot export simulation in state %s", s.state)
	}
	for _, sink := range sinks {
		if err := sink.SaveRun(ctx, run); err != nil {
			return fmt.Errorf("failed to export run %s: %w", run.RunID, err)
		}
	}
	s.state = RunState_Exported
	return nil
}

// logReturnStats mirrors the per-asset sanity line the simulation has
// always printed: mean and std of the sampled returns should hover
// near 0 and sqrt(variance).
func (s *VaRSimulation) logReturnStats(ctx context.Context, scenarios []domain.Scenario) {
	log := logger.FromContext(ctx)
	perAsset := make([]float64, len(scenarios))
	for i, symbol := range s.generator.Symbols() {
		for j := range scenarios {
			perAsset[j] = scenarios[j].Returns[i]
		}
		mean, err := stats.Mean(perAsset)
		if err != nil {
			continue
		}
		std, _ := stats.StandardDeviationPopulation(perAsset)
		log.Debugf("sampled returns %s: mean=%.4f std=%.4f", symbol, mean, std)
	}
}
