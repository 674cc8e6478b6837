package domain

// CollateralLeg is a single supplied asset on an account. Legs with
// Enabled=false are ignored entirely when computing recoverable value.
type CollateralLeg struct {
	Symbol               string
	Amount               float64
	LiquidationThreshold float64
	Enabled              bool
}

type DebtLeg struct {
	Symbol string
	Amount float64
}

// Account is one borrower's position set, loaded once per run and
// treated as read-only afterwards. EModeCategoryID of 0 means the
// account is not in any E-Mode category.
type Account struct {
	ID              string
	EModeCategoryID int
	CollateralLegs  []CollateralLeg
	DebtLegs        []DebtLeg
}

func (a Account) TotalDebtAt(prices PriceVector) float64 {
	total := 0.0
	for _, leg := range a.DebtLegs {
		total += leg.Amount * prices.Get(leg.Symbol)
	}
	return total
}

// EModeCategory carries all the category fields the protocol exposes;
// only LiquidationThreshold participates in solvency evaluation.
type EModeCategory struct {
	ID                   int
	Label                string
	LTV                  float64
	LiquidationThreshold float64
	LiquidationBonus     float64
}

// EModeTable maps category id -> category. A lookup miss means the
// account falls back to per-leg liquidation thresholds.
type EModeTable map[int]EModeCategory

func (t EModeTable) Threshold(categoryID int) (float64, bool) {
	if categoryID == 0 {
		return 0, false
	}
	category, ok := t[categoryID]
	if !ok {
		return 0, false
	}
	return category.LiquidationThreshold, true
}
