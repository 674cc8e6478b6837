package repository

import (
	"database/sql"
	"fmt"

	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

const simulatedPriceBatchSize = 1000

type SimulatedPriceRepository interface {
	AddMany(tx *sql.Tx, prices []model.SimulatedPrice) error
	List(runID uuid.UUID, scenarioID int32) ([]model.SimulatedPrice, error)
}

type simulatedPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewSimulatedPriceRepository(db *sql.DB) SimulatedPriceRepository {
	return simulatedPriceRepositoryHandler{Db: db}
}

func (h simulatedPriceRepositoryHandler) AddMany(tx *sql.Tx, prices []model.SimulatedPrice) error {
	for start := 0; start < len(prices); start += simulatedPriceBatchSize {
		end := start + simulatedPriceBatchSize
		if end > len(prices) {
			end = len(prices)
		}

		query := table.SimulatedPrice.
			INSERT(table.SimulatedPrice.MutableColumns).
			MODELS(prices[start:end])

		_, err := query.Exec(tx)
		if err != nil {
			return fmt.Errorf("failed to add simulated prices: %w", err)
		}
	}

	return nil
}

func (h simulatedPriceRepositoryHandler) List(runID uuid.UUID, scenarioID int32) ([]model.SimulatedPrice, error) {
	query := table.SimulatedPrice.
		SELECT(table.SimulatedPrice.AllColumns).
		WHERE(postgres.AND(
			table.SimulatedPrice.SimulationRunID.EQ(postgres.UUID(runID)),
			table.SimulatedPrice.ScenarioID.EQ(postgres.Int32(scenarioID)),
		)).
		ORDER_BY(table.SimulatedPrice.AssetSymbol.ASC())

	prices := []model.SimulatedPrice{}
	err := query.Query(h.Db, &prices)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulated prices for run %s scenario %d: %w", runID.String(), scenarioID, err)
	}

	return prices, nil
}
