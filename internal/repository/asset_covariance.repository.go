package repository

import (
	"database/sql"
	"fmt"
	"sort"

	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/db/models/postgres/public/table"
	"aavevar/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type AssetCovarianceRepository interface {
	// GetSnapshot assembles the pairwise covariance rows into an
	// ordered matrix. The asset ordering is the sorted distinct set of
	// symbols, and it becomes the canonical ordering for the run.
	GetSnapshot() (*domain.CovarianceSnapshot, error)
	// Replace swaps the stored matrix wholesale. Covariances are only
	// meaningful as a complete set, so partial updates aren't offered.
	Replace(tx *sql.Tx, entries []model.AssetCovariance) error
}

type assetCovarianceRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetCovarianceRepository(db *sql.DB) AssetCovarianceRepository {
	return assetCovarianceRepositoryHandler{Db: db}
}

func (h assetCovarianceRepositoryHandler) GetSnapshot() (*domain.CovarianceSnapshot, error) {
	query := table.AssetCovariance.
		SELECT(table.AssetCovariance.AllColumns)

	entries := []model.AssetCovariance{}
	err := query.Query(h.Db, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to load covariance matrix: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("asset covariance table is empty")
	}

	symbolSet := map[string]bool{}
	for _, e := range entries {
		symbolSet[e.Asset1] = true
	}
	symbols := make([]string, 0, len(symbolSet))
	for symbol := range symbolSet {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	index := make(map[string]int, len(symbols))
	for i, symbol := range symbols {
		index[symbol] = i
	}

	matrix := make([][]float64, len(symbols))
	for i := range matrix {
		matrix[i] = make([]float64, len(symbols))
	}
	for _, e := range entries {
		i, ok := index[e.Asset1]
		if !ok {
			continue
		}
		j, ok := index[e.Asset2]
		if !ok {
			return nil, fmt.Errorf("covariance row references %s which never appears as asset1", e.Asset2)
		}
		matrix[i][j] = e.Covariance
	}

	snapshot := &domain.CovarianceSnapshot{
		Symbols: symbols,
		Matrix:  matrix,
	}
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("stored covariance matrix is invalid: %w", err)
	}

	return snapshot, nil
}

func (h assetCovarianceRepositoryHandler) Replace(tx *sql.Tx, entries []model.AssetCovariance) error {
	_, err := table.AssetCovariance.DELETE().WHERE(postgres.Bool(true)).Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear covariance matrix: %w", err)
	}

	query := table.AssetCovariance.
		INSERT(table.AssetCovariance.AllColumns).
		MODELS(entries)

	_, err = query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert covariance matrix: %w", err)
	}

	return nil
}
