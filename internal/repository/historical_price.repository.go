package repository

import (
	"database/sql"
	"fmt"
	"time"

	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/db/models/postgres/public/table"
	"aavevar/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type HistoricalPriceRepository interface {
	// List returns closes for one symbol in date order, inclusive on
	// both ends.
	List(symbol string, start, end time.Time) ([]domain.AssetClose, error)
	ListSymbols() ([]string, error)
	Add(tx *sql.Tx, prices []model.HistoricalPrice) error
}

type historicalPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewHistoricalPriceRepository(db *sql.DB) HistoricalPriceRepository {
	return historicalPriceRepositoryHandler{Db: db}
}

func (h historicalPriceRepositoryHandler) List(symbol string, start, end time.Time) ([]domain.AssetClose, error) {
	query := table.HistoricalPrice.
		SELECT(table.HistoricalPrice.AllColumns).
		WHERE(postgres.AND(
			table.HistoricalPrice.Symbol.EQ(postgres.String(symbol)),
			table.HistoricalPrice.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
		)).
		ORDER_BY(table.HistoricalPrice.Date.ASC())

	prices := []model.HistoricalPrice{}
	err := query.Query(h.Db, &prices)
	if err != nil {
		return nil, fmt.Errorf("failed to list historical prices for %s: %w", symbol, err)
	}

	closes := make([]domain.AssetClose, len(prices))
	for i, p := range prices {
		closes[i] = domain.AssetClose{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  p.ClosePrice,
		}
	}

	return closes, nil
}

func (h historicalPriceRepositoryHandler) ListSymbols() ([]string, error) {
	query := postgres.
		SELECT(table.HistoricalPrice.Symbol).
		DISTINCT().
		FROM(table.HistoricalPrice).
		ORDER_BY(table.HistoricalPrice.Symbol.ASC())

	rows := []model.HistoricalPrice{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list historical price symbols: %w", err)
	}

	symbols := make([]string, len(rows))
	for i, r := range rows {
		symbols[i] = r.Symbol
	}
	return symbols, nil
}

func (h historicalPriceRepositoryHandler) Add(tx *sql.Tx, prices []model.HistoricalPrice) error {
	query := table.HistoricalPrice.
		INSERT(table.HistoricalPrice.MutableColumns).
		MODELS(prices).
		ON_CONFLICT(table.HistoricalPrice.Symbol, table.HistoricalPrice.Date).
		DO_UPDATE(postgres.SET(
			table.HistoricalPrice.ClosePrice.SET(table.HistoricalPrice.EXCLUDED.ClosePrice),
		))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add historical prices: %w", err)
	}

	return nil
}
