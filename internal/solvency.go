package internal

import (
	"aavevar/internal/domain"
	"math"
)

/**

solvency model: under a simulated price vector, an account's debt is
repriced leg by leg, and the collateral the protocol could recover is
every enabled collateral leg's value weighted by its liquidation
threshold. no liquidation bonus, no slippage, no partial fills - this
deliberately measures the theoretical recovery ceiling, so the bad
debt number is a floor on what liquidations would actually leave behind.

prices come from domain.PriceVector, where a missing symbol reads as 0.

*/

// CalculateAccountBadDebt returns the USD shortfall of recoverable
// collateral below owed debt for one account at the given prices.
// Always >= 0; an account that stays solvent contributes 0.
//
// When the account is in an E-Mode category that exists in the table,
// the category threshold applies uniformly to every enabled collateral
// leg, replacing the per-leg thresholds. That mirrors how the protocol
// reports E-Mode accounts, even for legs outside the category's
// correlated asset set.
func CalculateAccountBadDebt(account domain.Account, prices domain.PriceVector, emodes domain.EModeTable) float64 {
	emodeLT, hasEmodeLT := emodes.Threshold(account.EModeCategoryID)

	totalDebt := account.TotalDebtAt(prices)

	recoverable := 0.0
	for _, leg := range account.CollateralLegs {
		if !leg.Enabled {
			continue
		}

		lt := leg.LiquidationThreshold
		if hasEmodeLT {
			lt = emodeLT
		}

		recoverable += leg.Amount * prices.Get(leg.Symbol) * lt
	}

	return math.Max(0, totalDebt-recoverable)
}

// CalculateScenarioBadDebt sums bad debt over the whole registry for
// one price vector. Accounts are independent, so the order of the sum
// only matters up to float rounding.
func CalculateScenarioBadDebt(accounts []domain.Account, prices domain.PriceVector, emodes domain.EModeTable) float64 {
	total := 0.0
	for _, account := range accounts {
		total += CalculateAccountBadDebt(account, prices, emodes)
	}
	return total
}
