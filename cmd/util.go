package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"aavevar/api"
	"aavevar/internal"
	"aavevar/internal/repository"
	"aavevar/internal/service"

	_ "github.com/lib/pq"
)

type Dependencies struct {
	Db                        *sql.DB
	AccountRepository         repository.AccountRepository
	AssetPriceRepository      repository.AssetPriceRepository
	AssetCovarianceRepository repository.AssetCovarianceRepository
	EmodeCategoryRepository   repository.EmodeCategoryRepository
	HistoricalPriceRepository repository.HistoricalPriceRepository
	SimulationRunRepository   repository.SimulationRunRepository
	ScenarioResultRepository  repository.ScenarioResultRepository
	SimulatedPriceRepository  repository.SimulatedPriceRepository
	VaRSimulationService      service.VaRSimulationService
	CovarianceService         service.CovarianceService
}

func CloseDependencies(deps *Dependencies) {
	err := deps.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	accountRepository := repository.NewAccountRepository(dbConn)
	assetPriceRepository := repository.NewAssetPriceRepository(dbConn)
	assetCovarianceRepository := repository.NewAssetCovarianceRepository(dbConn)
	emodeCategoryRepository := repository.NewEmodeCategoryRepository(dbConn)
	historicalPriceRepository := repository.NewHistoricalPriceRepository(dbConn)
	simulationRunRepository := repository.NewSimulationRunRepository(dbConn)
	scenarioResultRepository := repository.NewScenarioResultRepository(dbConn)
	simulatedPriceRepository := repository.NewSimulatedPriceRepository(dbConn)

	resultSink := service.NewPostgresResultSink(
		dbConn,
		simulationRunRepository,
		scenarioResultRepository,
		simulatedPriceRepository,
	)
	varSimulationService := service.NewVaRSimulationService(
		accountRepository,
		assetPriceRepository,
		assetCovarianceRepository,
		emodeCategoryRepository,
		resultSink,
	)
	covarianceService := service.NewCovarianceService(
		dbConn,
		historicalPriceRepository,
		assetCovarianceRepository,
	)

	return &Dependencies{
		Db:                        dbConn,
		AccountRepository:         accountRepository,
		AssetPriceRepository:      assetPriceRepository,
		AssetCovarianceRepository: assetCovarianceRepository,
		EmodeCategoryRepository:   emodeCategoryRepository,
		HistoricalPriceRepository: historicalPriceRepository,
		SimulationRunRepository:   simulationRunRepository,
		ScenarioResultRepository:  scenarioResultRepository,
		SimulatedPriceRepository:  simulatedPriceRepository,
		VaRSimulationService:      varSimulationService,
		CovarianceService:         covarianceService,
	}, nil
}

func (d *Dependencies) NewApiHandler() *api.ApiHandler {
	return &api.ApiHandler{
		Db:                       d.Db,
		VaRSimulationService:     d.VaRSimulationService,
		SimulationRunRepository:  d.SimulationRunRepository,
		ScenarioResultRepository: d.ScenarioResultRepository,
	}
}
