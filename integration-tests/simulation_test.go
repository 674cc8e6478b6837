package integration_tests

import (
	"context"
	"database/sql"
	"testing"

	"aavevar/internal"
	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/db/models/postgres/public/table"
	"aavevar/internal/repository"
	"aavevar/internal/service"

	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func newTestDb(t *testing.T) *sql.DB {
	t.Helper()

	dbConn, err := internal.NewTestDb()
	require.NoError(t, err)

	if err := dbConn.Ping(); err != nil {
		t.Skipf("test db not reachable: %v", err)
	}

	return dbConn
}

func cleanupSimulationTables(t *testing.T, db *sql.DB) {
	t.Helper()

	statements := []postgres.DeleteStatement{
		table.SimulatedPrice.DELETE(),
		table.ScenarioResult.DELETE(),
		table.SimulationRun.DELETE(),
		table.Position.DELETE(),
		table.Account.DELETE(),
		table.AssetPrice.DELETE(),
		table.AssetCovariance.DELETE(),
		table.EmodeCategory.DELETE(),
	}
	for _, statement := range statements {
		_, err := statement.WHERE(postgres.Bool(true)).Exec(db)
		require.NoError(t, err)
	}
}

func boolPointer(b bool) *bool {
	return &b
}

func floatPointer(f float64) *float64 {
	return &f
}

func seedMarket(t *testing.T, db *sql.DB) {
	t.Helper()

	accountRepository := repository.NewAccountRepository(db)
	assetPriceRepository := repository.NewAssetPriceRepository(db)
	assetCovarianceRepository := repository.NewAssetCovarianceRepository(db)
	emodeCategoryRepository := repository.NewEmodeCategoryRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	err = assetPriceRepository.Add(tx, []model.AssetPrice{
		{Symbol: "WETH", PriceUsd: 3_000},
		{Symbol: "WBTC", PriceUsd: 50_000},
		{Symbol: "USDC", PriceUsd: 1},
	})
	require.NoError(t, err)

	corrOne := 1.0
	err = assetCovarianceRepository.Replace(tx, []model.AssetCovariance{
		{Asset1: "WETH", Asset2: "WETH", Covariance: 0.0025, Correlation: &corrOne},
		{Asset1: "WETH", Asset2: "WBTC", Covariance: 0.0008},
		{Asset1: "WETH", Asset2: "USDC", Covariance: 0},
		{Asset1: "WBTC", Asset2: "WETH", Covariance: 0.0008},
		{Asset1: "WBTC", Asset2: "WBTC", Covariance: 0.0016, Correlation: &corrOne},
		{Asset1: "WBTC", Asset2: "USDC", Covariance: 0},
		{Asset1: "USDC", Asset2: "WETH", Covariance: 0},
		{Asset1: "USDC", Asset2: "WBTC", Covariance: 0},
		{Asset1: "USDC", Asset2: "USDC", Covariance: 0.000001, Correlation: &corrOne},
	})
	require.NoError(t, err)

	label := "eth correlated"
	err = emodeCategoryRepository.Add(tx, []model.EmodeCategory{
		{ID: 1, Label: &label, Ltv: floatPointer(0.9), LiquidationThreshold: floatPointer(0.93), LiquidationBonus: floatPointer(0.01)},
	})
	require.NoError(t, err)

	err = accountRepository.Add(tx, []model.Account{
		{AccountID: "0xaaa", TotalDebtUsd: 2_500_000, TotalCollateralUsd: 3_000_000},
		{AccountID: "0xbbb", EmodeCategoryID: 1, TotalDebtUsd: 400_000, TotalCollateralUsd: 450_000},
	})
	require.NoError(t, err)

	err = accountRepository.AddPositions(tx, []model.Position{
		{AccountID: "0xaaa", Symbol: "WETH", Side: model.PositionSide_Collateral, Amount: 1_000, LiquidationThreshold: floatPointer(0.8), UsageAsCollateralEnabled: boolPointer(true)},
		{AccountID: "0xaaa", Symbol: "USDC", Side: model.PositionSide_Debt, Amount: 2_500_000},
		{AccountID: "0xbbb", Symbol: "WBTC", Side: model.PositionSide_Collateral, Amount: 9, LiquidationThreshold: floatPointer(0.75), UsageAsCollateralEnabled: boolPointer(true)},
		{AccountID: "0xbbb", Symbol: "USDC", Side: model.PositionSide_Debt, Amount: 400_000},
	})
	require.NoError(t, err)

	require.NoError(t, tx.Commit())
}

func TestSimulationPipeline(t *testing.T) {
	db := newTestDb(t)
	defer db.Close()

	cleanupSimulationTables(t, db)
	seedMarket(t, db)

	simulationRunRepository := repository.NewSimulationRunRepository(db)
	scenarioResultRepository := repository.NewScenarioResultRepository(db)
	simulatedPriceRepository := repository.NewSimulatedPriceRepository(db)

	sink := service.NewPostgresResultSink(
		db,
		simulationRunRepository,
		scenarioResultRepository,
		simulatedPriceRepository,
	)
	svc := service.NewVaRSimulationService(
		repository.NewAccountRepository(db),
		repository.NewAssetPriceRepository(db),
		repository.NewAssetCovarianceRepository(db),
		repository.NewEmodeCategoryRepository(db),
		sink,
	)

	run, err := svc.RunSimulation(context.Background(), service.RunSimulationInput{
		Scenarios:  1_000,
		Seed:       42,
		SavePrices: true,
	})
	require.NoError(t, err)
	require.Len(t, run.Losses, 1_000)

	t.Run("summary row persisted", func(t *testing.T) {
		stored, err := simulationRunRepository.Get(run.RunID)
		require.NoError(t, err)

		require.Equal(t, int32(1_000), stored.NScenarios)
		require.Equal(t, int64(42), stored.RandomSeed)
		require.Equal(t, int32(0), stored.ExcludedScenarios)
		require.InDelta(t, run.Metrics.VaR99, stored.Var99.InexactFloat64(), 1e-6)
	})

	t.Run("one loss row per scenario", func(t *testing.T) {
		results, err := scenarioResultRepository.List(run.RunID)
		require.NoError(t, err)

		require.Len(t, results, 1_000)
	})

	t.Run("simulated prices retained for every asset", func(t *testing.T) {
		prices, err := simulatedPriceRepository.List(run.RunID, 0)
		require.NoError(t, err)

		require.Len(t, prices, 3)
	})

	t.Run("run appears in the listing", func(t *testing.T) {
		runs, err := simulationRunRepository.List()
		require.NoError(t, err)

		require.Len(t, runs, 1)
		require.Equal(t, run.RunID, runs[0].SimulationRunID)
	})

	t.Run("same seed reproduces the stored metrics", func(t *testing.T) {
		again, err := svc.RunSimulation(context.Background(), service.RunSimulationInput{
			Scenarios: 1_000,
			Seed:      42,
		})
		require.NoError(t, err)

		require.Equal(t, run.Losses, again.Losses)
		require.Equal(t, run.Metrics, again.Metrics)
	})
}
