package domain

import (
	"fmt"
)

// PriceVector holds one USD price per asset symbol. A symbol missing
// from the vector resolves to price 0 - that is the documented
// "unresolved asset price" rule, not an error. It applies both to the
// current-price snapshot and to simulated per-scenario prices.
type PriceVector map[string]float64

func (p PriceVector) Get(symbol string) float64 {
	return p[symbol]
}

// CovarianceSnapshot is the ordered asset list plus the symmetric
// covariance matrix of daily log returns over that list. The asset
// ordering here is the single source of truth for every return and
// price vector produced during a run.
type CovarianceSnapshot struct {
	Symbols []string
	// Matrix is row-major, len(Symbols) x len(Symbols).
	Matrix [][]float64
}

func (c CovarianceSnapshot) NumAssets() int {
	return len(c.Symbols)
}

func (c CovarianceSnapshot) Validate() error {
	n := len(c.Symbols)
	if n == 0 {
		return fmt.Errorf("covariance snapshot has no assets")
	}
	if len(c.Matrix) != n {
		return fmt.Errorf("covariance matrix has %d rows, expected %d", len(c.Matrix), n)
	}
	for i, row := range c.Matrix {
		if len(row) != n {
			return fmt.Errorf("covariance matrix row %d has %d columns, expected %d", i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		if c.Matrix[i][i] < 0 {
			return fmt.Errorf("negative variance %f for %s", c.Matrix[i][i], c.Symbols[i])
		}
		for j := i + 1; j < n; j++ {
			if c.Matrix[i][j] != c.Matrix[j][i] {
				return fmt.Errorf("covariance matrix is not symmetric at (%s, %s)", c.Symbols[i], c.Symbols[j])
			}
		}
	}
	return nil
}

// MarketSnapshot bundles everything the engine reads but never writes:
// current prices, the covariance of returns, and the E-Mode table.
type MarketSnapshot struct {
	Prices     PriceVector
	Covariance CovarianceSnapshot
	EModes     EModeTable
}
