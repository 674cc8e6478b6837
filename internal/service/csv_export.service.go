package service

import (
	"context"
	"fmt"
	"os"

	"aavevar/internal"
	"aavevar/internal/domain"
	"aavevar/internal/logger"

	"github.com/gocarina/gocsv"
)

type scenarioLossRow struct {
	Scenario   int     `csv:"scenario"`
	BadDebtUsd float64 `csv:"bad_debt_usd"`
}

// NewCsvResultSink writes the loss distribution to a CSV file, one row
// per surviving scenario. Summary metrics live in the database sink;
// the CSV is for notebooks and spreadsheets.
func NewCsvResultSink(path string) internal.ResultSink {
	return csvResultSinkHandler{Path: path}
}

type csvResultSinkHandler struct {
	Path string
}

func (h csvResultSinkHandler) SaveRun(ctx context.Context, run *domain.SimulationRun) error {
	rows := make([]scenarioLossRow, len(run.Losses))
	for i, loss := range run.Losses {
		rows[i] = scenarioLossRow{
			Scenario:   run.ScenarioIndex(i),
			BadDebtUsd: loss,
		}
	}

	f, err := os.Create(h.Path)
	if err != nil {
		return fmt.Errorf("failed to create csv export file: %w", err)
	}
	defer f.Close()

	err = gocsv.MarshalFile(&rows, f)
	if err != nil {
		return fmt.Errorf("failed to write csv export: %w", err)
	}

	logger.FromContext(ctx).Infof("exported %d scenarios to %s", len(rows), h.Path)
	return nil
}
