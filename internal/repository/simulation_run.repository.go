package repository

import (
	"database/sql"
	"fmt"
	"time"

	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type SimulationRunRepository interface {
	Add(tx *sql.Tx, run model.SimulationRun) (*model.SimulationRun, error)
	Get(id uuid.UUID) (*model.SimulationRun, error)
	List() ([]model.SimulationRun, error)
}

type simulationRunRepositoryHandler struct {
	Db *sql.DB
}

func NewSimulationRunRepository(db *sql.DB) SimulationRunRepository {
	return simulationRunRepositoryHandler{Db: db}
}

func (h simulationRunRepositoryHandler) Add(tx *sql.Tx, run model.SimulationRun) (*model.SimulationRun, error) {
	now := time.Now().UTC()
	run.CreatedAt = &now

	query := table.SimulationRun.
		INSERT(table.SimulationRun.AllColumns).
		MODEL(run).
		RETURNING(table.SimulationRun.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.SimulationRun{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert simulation run: %w", err)
	}

	return &out, nil
}

func (h simulationRunRepositoryHandler) Get(id uuid.UUID) (*model.SimulationRun, error) {
	query := table.SimulationRun.
		SELECT(table.SimulationRun.AllColumns).
		WHERE(table.SimulationRun.SimulationRunID.EQ(postgres.UUID(id)))

	result := model.SimulationRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get simulation run %s: %w", id.String(), err)
	}

	return &result, nil
}

func (h simulationRunRepositoryHandler) List() ([]model.SimulationRun, error) {
	query := table.SimulationRun.
		SELECT(table.SimulationRun.AllColumns).
		ORDER_BY(table.SimulationRun.CreatedAt.DESC())

	results := []model.SimulationRun{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation runs: %w", err)
	}

	return results, nil
}
