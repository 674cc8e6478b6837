package service

import (
	"database/sql"
	"fmt"
	"math"
	"sort"
	"time"

	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/domain"
	"aavevar/internal/repository"

	"github.com/montanaflynn/stats"
)

// CovarianceService rebuilds the covariance matrix of daily log
// returns from stored historical closes. Fetching the closes from a
// price API is someone else's job - this starts from the
// historical_price table.
type CovarianceService interface {
	RecalculateMatrix(start, end time.Time) (*domain.CovarianceSnapshot, error)
}

type covarianceServiceHandler struct {
	Db                        *sql.DB
	HistoricalPriceRepository repository.HistoricalPriceRepository
	AssetCovarianceRepository repository.AssetCovarianceRepository
}

func NewCovarianceService(
	db *sql.DB,
	historicalPriceRepository repository.HistoricalPriceRepository,
	assetCovarianceRepository repository.AssetCovarianceRepository,
) CovarianceService {
	return covarianceServiceHandler{
		Db:                        db,
		HistoricalPriceRepository: historicalPriceRepository,
		AssetCovarianceRepository: assetCovarianceRepository,
	}
}

func (h covarianceServiceHandler) RecalculateMatrix(start, end time.Time) (*domain.CovarianceSnapshot, error) {
	symbols, err := h.HistoricalPriceRepository.ListSymbols()
	if err != nil {
		return nil, err
	}
	if len(symbols) < 2 {
		return nil, fmt.Errorf("need at least 2 assets with history to build a covariance matrix, have %d", len(symbols))
	}

	returnsBySymbol := map[string]map[string]float64{}
	for _, symbol := range symbols {
		closes, err := h.HistoricalPriceRepository.List(symbol, start, end)
		if err != nil {
			return nil, err
		}
		returnsBySymbol[symbol] = logReturnsByDate(closes)
	}

	dates := commonDates(symbols, returnsBySymbol)
	if len(dates) < 2 {
		return nil, fmt.Errorf("only %d overlapping return observations across assets", len(dates))
	}

	series := make([][]float64, len(symbols))
	for i, symbol := range symbols {
		series[i] = make([]float64, len(dates))
		for j, date := range dates {
			series[i][j] = returnsBySymbol[symbol][date]
		}
	}

	snapshot, entries, err := buildCovarianceEntries(symbols, series)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = h.AssetCovarianceRepository.Replace(tx, entries)
	if err != nil {
		return nil, err
	}
	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit covariance matrix: %w", err)
	}

	return snapshot, nil
}

// buildCovarianceEntries computes the sample covariance matrix over
// aligned return series, plus the pairwise correlations stored
// alongside it for inspection.
func buildCovarianceEntries(symbols []string, series [][]float64) (*domain.CovarianceSnapshot, []model.AssetCovariance, error) {
	snapshot := &domain.CovarianceSnapshot{
		Symbols: symbols,
		Matrix:  make([][]float64, len(symbols)),
	}
	for i := range symbols {
		snapshot.Matrix[i] = make([]float64, len(symbols))
	}

	entries := []model.AssetCovariance{}
	for i := range symbols {
		for j := range symbols {
			cov, err := stats.Covariance(series[i], series[j])
			if err != nil {
				return nil, nil, fmt.Errorf("failed to compute covariance of %s and %s: %w", symbols[i], symbols[j], err)
			}
			snapshot.Matrix[i][j] = cov

			// Pearson returns 0 for a constant series rather than
			// dividing by a zero stdev
			corr, err := stats.Pearson(series[i], series[j])
			if err != nil {
				return nil, nil, fmt.Errorf("failed to compute correlation of %s and %s: %w", symbols[i], symbols[j], err)
			}
			entries = append(entries, model.AssetCovariance{
				Asset1:      symbols[i],
				Asset2:      symbols[j],
				Covariance:  cov,
				Correlation: &corr,
			})
		}
	}
	return snapshot, entries, nil
}

func logReturnsByDate(closes []domain.AssetClose) map[string]float64 {
	returns := map[string]float64{}
	for i := 1; i < len(closes); i++ {
		if closes[i-1].Price <= 0 || closes[i].Price <= 0 {
			continue
		}
		key := closes[i].Date.Format(time.DateOnly)
		returns[key] = math.Log(closes[i].Price / closes[i-1].Price)
	}
	return returns
}

func commonDates(symbols []string, returnsBySymbol map[string]map[string]float64) []string {
	counts := map[string]int{}
	for _, symbol := range symbols {
		for date := range returnsBySymbol[symbol] {
			counts[date]++
		}
	}

	dates := []string{}
	for date, count := range counts {
		if count == len(symbols) {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}
