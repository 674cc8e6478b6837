package repository

import (
	"database/sql"
	"fmt"

	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// scenario inserts go out in chunks - a 10k scenario run in one
// statement blows past sane bind-parameter counts
const scenarioResultBatchSize = 1000

type ScenarioResultRepository interface {
	AddMany(tx *sql.Tx, results []model.ScenarioResult) error
	List(runID uuid.UUID) ([]model.ScenarioResult, error)
}

type scenarioResultRepositoryHandler struct {
	Db *sql.DB
}

func NewScenarioResultRepository(db *sql.DB) ScenarioResultRepository {
	return scenarioResultRepositoryHandler{Db: db}
}

func (h scenarioResultRepositoryHandler) AddMany(tx *sql.Tx, results []model.ScenarioResult) error {
	for start := 0; start < len(results); start += scenarioResultBatchSize {
		end := start + scenarioResultBatchSize
		if end > len(results) {
			end = len(results)
		}

		query := table.ScenarioResult.
			INSERT(table.ScenarioResult.MutableColumns).
			MODELS(results[start:end])

		_, err := query.Exec(tx)
		if err != nil {
			return fmt.Errorf("failed to add scenario results: %w", err)
		}
	}

	return nil
}

func (h scenarioResultRepositoryHandler) List(runID uuid.UUID) ([]model.ScenarioResult, error) {
	query := table.ScenarioResult.
		SELECT(table.ScenarioResult.AllColumns).
		WHERE(table.ScenarioResult.SimulationRunID.EQ(postgres.UUID(runID))).
		ORDER_BY(table.ScenarioResult.ScenarioID.ASC())

	results := []model.ScenarioResult{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario results for run %s: %w", runID.String(), err)
	}

	return results, nil
}
