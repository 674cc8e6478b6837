package internal

import (
	"aavevar/internal/domain"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	// starting diagonal jitter, as a fraction of the largest variance
	baseJitterFraction = 1e-10
	maxJitterAttempts  = 6
)

// ShockGenerator draws correlated one-day log returns r ~ N(0, Σ) via
// a Cholesky factor of Σ applied to iid standard normals, and maps
// each draw to simulated prices P_sim = P_current * exp(r).
//
// The random source is owned by the run that built the generator and
// must never be shared across concurrent runs.
type ShockGenerator struct {
	symbols []string
	lower   *mat.TriDense // nil when Σ is the zero matrix
	rng     *rand.Rand
	// Jitter is the diagonal bump that was needed to make Σ factor,
	// 0 when the matrix factored as given. Exposed so callers can log
	// and persist it.
	Jitter float64
}

// NewShockGenerator factors the covariance snapshot once up front.
//
// Near-singular input policy: if the Cholesky factorization fails, a
// small jitter (1e-10 of the largest variance, escalating x10 per
// attempt) is added to the diagonal and the factorization retried a
// bounded number of times. The all-zero matrix is a supported
// degenerate case and produces exactly zero returns, so a zero-shock
// run reproduces current prices bit for bit.
func NewShockGenerator(snapshot domain.CovarianceSnapshot, rng *rand.Rand) (*ShockGenerator, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("invalid covariance snapshot: %w", err)
	}

	n := snapshot.NumAssets()

	maxVariance := 0.0
	allZero := true
	sigma := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if snapshot.Matrix[i][i] > maxVariance {
			maxVariance = snapshot.Matrix[i][i]
		}
		for j := i; j < n; j++ {
			sigma.SetSym(i, j, snapshot.Matrix[i][j])
			if snapshot.Matrix[i][j] != 0 {
				allZero = false
			}
		}
	}

	if allZero {
		return &ShockGenerator{symbols: snapshot.Symbols, rng: rng}, nil
	}

	jitter := 0.0
	jitterStep := baseJitterFraction * maxVariance
	if jitterStep == 0 {
		jitterStep = baseJitterFraction
	}

	var chol mat.Cholesky
	for attempt := 0; attempt <= maxJitterAttempts; attempt++ {
		if attempt > 0 {
			if jitter == 0 {
				jitter = jitterStep
			} else {
				jitter *= 10
			}
			for i := 0; i < n; i++ {
				sigma.SetSym(i, i, snapshot.Matrix[i][i]+jitter)
			}
		}
		if chol.Factorize(sigma) {
			lower := mat.NewTriDense(n, mat.Lower, nil)
			chol.LTo(lower)
			return &ShockGenerator{
				symbols: snapshot.Symbols,
				lower:   lower,
				rng:     rng,
				Jitter:  jitter,
			}, nil
		}
	}

	return nil, fmt.Errorf("covariance matrix failed cholesky factorization after %d jitter attempts", maxJitterAttempts)
}

// SampleReturns draws one return vector, ordered like the snapshot's
// asset list.
func (g *ShockGenerator) SampleReturns() []float64 {
	n := len(g.symbols)
	returns := make([]float64, n)

	if g.lower == nil {
		return returns
	}

	z := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		z.SetVec(i, g.rng.NormFloat64())
	}

	r := mat.NewVecDense(n, returns)
	r.MulVec(g.lower, z)
	return returns
}

// PricesFromReturns converts one return vector into a simulated price
// vector. A return of exactly 0 reproduces the current price. An asset
// missing from the current price table simulates at price 0 in every
// scenario - the documented unresolved-asset-price rule.
func (g *ShockGenerator) PricesFromReturns(returns []float64, current domain.PriceVector) domain.PriceVector {
	prices := make(domain.PriceVector, len(g.symbols))
	for i, symbol := range g.symbols {
		if returns[i] == 0 {
			prices[symbol] = current.Get(symbol)
			continue
		}
		prices[symbol] = current.Get(symbol) * math.Exp(returns[i])
	}
	return prices
}

// GenerateScenarios draws s scenarios in index order from the run's
// random source. Sampling is intentionally single threaded so a seed
// always yields the same draws; evaluation can fan out afterwards.
func (g *ShockGenerator) GenerateScenarios(s int, current domain.PriceVector) []domain.Scenario {
	scenarios := make([]domain.Scenario, s)
	for i := 0; i < s; i++ {
		returns := g.SampleReturns()
		scenarios[i] = domain.Scenario{
			Index:   i,
			Returns: returns,
			Prices:  g.PricesFromReturns(returns, current),
		}
	}
	return scenarios
}

func (g *ShockGenerator) Symbols() []string {
	return g.symbols
}
