package service

import (
	"context"
	"database/sql"
	"fmt"

	"aavevar/internal"
	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/domain"
	"aavevar/internal/logger"
	"aavevar/internal/repository"

	"github.com/shopspring/decimal"
)

// NewPostgresResultSink persists completed runs: the summary metrics
// row, every scenario's loss, and - when the run retained them - the
// full simulated price vectors. Everything goes in one transaction so
// a partially saved run never shows up in queries.
func NewPostgresResultSink(
	db *sql.DB,
	runRepository repository.SimulationRunRepository,
	scenarioResultRepository repository.ScenarioResultRepository,
	simulatedPriceRepository repository.SimulatedPriceRepository,
) internal.ResultSink {
	return postgresResultSinkHandler{
		Db:                       db,
		RunRepository:            runRepository,
		ScenarioResultRepository: scenarioResultRepository,
		SimulatedPriceRepository: simulatedPriceRepository,
	}
}

type postgresResultSinkHandler struct {
	Db                       *sql.DB
	RunRepository            repository.SimulationRunRepository
	ScenarioResultRepository repository.ScenarioResultRepository
	SimulatedPriceRepository repository.SimulatedPriceRepository
}

func (h postgresResultSinkHandler) SaveRun(ctx context.Context, run *domain.SimulationRun) error {
	log := logger.FromContext(ctx)

	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = h.RunRepository.Add(tx, runToModel(run))
	if err != nil {
		return err
	}

	scenarioResults := make([]model.ScenarioResult, len(run.Losses))
	for i, loss := range run.Losses {
		scenarioResults[i] = model.ScenarioResult{
			SimulationRunID: run.RunID,
			ScenarioID:      int32(run.ScenarioIndex(i)),
			TotalBadDebt:    decimal.NewFromFloat(loss),
		}
	}
	err = h.ScenarioResultRepository.AddMany(tx, scenarioResults)
	if err != nil {
		return err
	}

	if len(run.Scenarios) > 0 {
		simulatedPrices := make([]model.SimulatedPrice, 0, len(run.Scenarios)*len(run.AssetSymbols))
		for _, scenario := range run.Scenarios {
			for i, symbol := range run.AssetSymbols {
				simulatedPrices = append(simulatedPrices, model.SimulatedPrice{
					SimulationRunID: run.RunID,
					ScenarioID:      int32(scenario.Index),
					AssetSymbol:     symbol,
					CurrentPrice:    run.CurrentPrices.Get(symbol),
					SimulatedPrice:  scenario.Prices.Get(symbol),
					ReturnPct:       scenario.Returns[i] * 100,
				})
			}
		}
		err = h.SimulatedPriceRepository.AddMany(tx, simulatedPrices)
		if err != nil {
			return err
		}
		log.Infof("saved %d simulated price rows for run %s", len(simulatedPrices), run.RunID)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit run %s: %w", run.RunID, err)
	}

	log.Infof("saved run %s with %d scenario results", run.RunID, len(run.Losses))
	return nil
}

func runToModel(run *domain.SimulationRun) model.SimulationRun {
	return model.SimulationRun{
		SimulationRunID:   run.RunID,
		NScenarios:        int32(run.ScenarioCount),
		RandomSeed:        run.Seed,
		ExcludedScenarios: int32(run.ExcludedScenarios),
		Var95:             decimal.NewFromFloat(run.Metrics.VaR95),
		Var99:             decimal.NewFromFloat(run.Metrics.VaR99),
		Var999:            decimal.NewFromFloat(run.Metrics.VaR99_9),
		Es95:              decimal.NewFromFloat(run.Metrics.ES95),
		Es99:              decimal.NewFromFloat(run.Metrics.ES99),
		MeanBadDebt:       decimal.NewFromFloat(run.Metrics.Mean),
		MedianBadDebt:     decimal.NewFromFloat(run.Metrics.Median),
		StdBadDebt:        decimal.NewFromFloat(run.Metrics.Std),
		MinBadDebt:        decimal.NewFromFloat(run.Metrics.Min),
		MaxBadDebt:        decimal.NewFromFloat(run.Metrics.Max),
		ProbLoss:          run.Metrics.ProbLoss,
	}
}
