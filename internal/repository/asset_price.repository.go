package repository

import (
	"database/sql"
	"fmt"

	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/db/models/postgres/public/table"
	"aavevar/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type AssetPriceRepository interface {
	// GetPriceVector loads the whole current-price table. Assets the
	// registry references but this vector lacks will price at 0
	// downstream, so callers may want to log the vector's size.
	GetPriceVector() (domain.PriceVector, error)
	Add(tx *sql.Tx, prices []model.AssetPrice) error
}

type assetPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetPriceRepository(db *sql.DB) AssetPriceRepository {
	return assetPriceRepositoryHandler{Db: db}
}

func (h assetPriceRepositoryHandler) GetPriceVector() (domain.PriceVector, error) {
	query := table.AssetPrice.
		SELECT(table.AssetPrice.AllColumns)

	prices := []model.AssetPrice{}
	err := query.Query(h.Db, &prices)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset prices: %w", err)
	}

	vector := make(domain.PriceVector, len(prices))
	for _, p := range prices {
		vector[p.Symbol] = p.PriceUsd
	}

	return vector, nil
}

func (h assetPriceRepositoryHandler) Add(tx *sql.Tx, prices []model.AssetPrice) error {
	query := table.AssetPrice.
		INSERT(table.AssetPrice.AllColumns).
		MODELS(prices).
		ON_CONFLICT(table.AssetPrice.Symbol).
		DO_UPDATE(postgres.SET(
			table.AssetPrice.PriceUsd.SET(table.AssetPrice.EXCLUDED.PriceUsd),
			table.AssetPrice.LastUpdated.SET(table.AssetPrice.EXCLUDED.LastUpdated),
		))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add asset prices: %w", err)
	}

	return nil
}
