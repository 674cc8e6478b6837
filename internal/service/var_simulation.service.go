package service

import (
	"context"
	"fmt"

	"aavevar/internal"
	"aavevar/internal/domain"
	"aavevar/internal/logger"
	"aavevar/internal/repository"
)

const defaultTopBorrowers = 1000

type RunSimulationInput struct {
	Scenarios int
	Seed      int64
	// TopBorrowers caps how many accounts are loaded, largest debt
	// first. Defaults to 1000 - the long tail of tiny borrowers
	// barely moves the distribution.
	TopBorrowers int64
	// SavePrices retains and persists every scenario's simulated
	// price vector. S x assets rows, so off unless you need them.
	SavePrices bool
	// CsvExportPath, when set, additionally writes the loss
	// distribution to this file.
	CsvExportPath string
	// AbortOnNonFiniteLoss switches the engine from
	// exclude-and-count to whole-run abort.
	AbortOnNonFiniteLoss bool
}

type VaRSimulationService interface {
	RunSimulation(ctx context.Context, in RunSimulationInput) (*domain.SimulationRun, error)
}

type varSimulationServiceHandler struct {
	AccountRepository         repository.AccountRepository
	AssetPriceRepository      repository.AssetPriceRepository
	AssetCovarianceRepository repository.AssetCovarianceRepository
	EmodeCategoryRepository   repository.EmodeCategoryRepository
	ResultSink                internal.ResultSink
}

func NewVaRSimulationService(
	accountRepository repository.AccountRepository,
	assetPriceRepository repository.AssetPriceRepository,
	assetCovarianceRepository repository.AssetCovarianceRepository,
	emodeCategoryRepository repository.EmodeCategoryRepository,
	resultSink internal.ResultSink,
) VaRSimulationService {
	return varSimulationServiceHandler{
		AccountRepository:         accountRepository,
		AssetPriceRepository:      assetPriceRepository,
		AssetCovarianceRepository: assetCovarianceRepository,
		EmodeCategoryRepository:   emodeCategoryRepository,
		ResultSink:                resultSink,
	}
}

// RunSimulation drives one run end to end: load the registry and
// market snapshot, run the Monte Carlo engine, hand the completed run
// to the sinks.
func (h varSimulationServiceHandler) RunSimulation(ctx context.Context, in RunSimulationInput) (*domain.SimulationRun, error) {
	log := logger.FromContext(ctx)

	if in.TopBorrowers <= 0 {
		in.TopBorrowers = defaultTopBorrowers
	}

	prices, err := h.AssetPriceRepository.GetPriceVector()
	if err != nil {
		return nil, err
	}
	covariance, err := h.AssetCovarianceRepository.GetSnapshot()
	if err != nil {
		return nil, err
	}
	emodes, err := h.EmodeCategoryRepository.GetTable()
	if err != nil {
		return nil, err
	}
	accounts, err := h.AccountRepository.ListTopBorrowers(in.TopBorrowers)
	if err != nil {
		return nil, err
	}

	log.Infow("loaded simulation inputs",
		"accounts", len(accounts),
		"assets", covariance.NumAssets(),
		"emodeCategories", len(emodes),
	)

	policy := internal.NonFiniteLossPolicy_ExcludeScenario
	if in.AbortOnNonFiniteLoss {
		policy = internal.NonFiniteLossPolicy_AbortRun
	}

	sim := internal.NewVaRSimulation(internal.SimulationConfig{
		Scenarios:            in.Scenarios,
		Seed:                 in.Seed,
		RetainScenarioDetail: in.SavePrices,
		NonFinitePolicy:      policy,
	})

	snapshot := domain.MarketSnapshot{
		Prices:     prices,
		Covariance: *covariance,
		EModes:     emodes,
	}
	err = sim.Load(ctx, snapshot, accounts)
	if err != nil {
		return nil, fmt.Errorf("failed to load simulation: %w", err)
	}

	run, err := sim.Run(ctx)
	if err != nil {
		return nil, err
	}

	sinks := []internal.ResultSink{h.ResultSink}
	if in.CsvExportPath != "" {
		sinks = append(sinks, NewCsvResultSink(in.CsvExportPath))
	}
	err = sim.Export(ctx, run, sinks...)
	if err != nil {
		return nil, err
	}

	return run, nil
}
