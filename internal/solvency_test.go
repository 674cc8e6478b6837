package internal

import (
	"testing"

	"aavevar/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCalculateAccountBadDebt(t *testing.T) {
	t.Run("solvent account contributes zero", func(t *testing.T) {
		account := domain.Account{
			ID: "0xabc",
			CollateralLegs: []domain.CollateralLeg{
				{Symbol: "Y", Amount: 2_000_000, LiquidationThreshold: 0.8, Enabled: true},
			},
			DebtLegs: []domain.DebtLeg{
				{Symbol: "X", Amount: 1_000_000},
			},
		}
		prices := domain.PriceVector{"X": 1, "Y": 1}

		badDebt := CalculateAccountBadDebt(account, prices, nil)

		require.Equal(t, float64(0), badDebt)
	})

	t.Run("collateral crash produces shortfall", func(t *testing.T) {
		account := domain.Account{
			ID: "0xabc",
			CollateralLegs: []domain.CollateralLeg{
				{Symbol: "Y", Amount: 2_000_000, LiquidationThreshold: 0.8, Enabled: true},
			},
			DebtLegs: []domain.DebtLeg{
				{Symbol: "X", Amount: 1_000_000},
			},
		}
		prices := domain.PriceVector{"X": 1, "Y": 0.3}

		badDebt := CalculateAccountBadDebt(account, prices, nil)

		// debt 1,000,000 vs recoverable 2,000,000 * 0.3 * 0.8 = 480,000
		require.InDelta(t, 520_000, badDebt, 1e-6)
	})

	t.Run("no debt means no bad debt regardless of collateral", func(t *testing.T) {
		account := domain.Account{
			ID: "0xdef",
			CollateralLegs: []domain.CollateralLeg{
				{Symbol: "Y", Amount: 100, LiquidationThreshold: 0.5, Enabled: true},
			},
		}

		badDebt := CalculateAccountBadDebt(account, domain.PriceVector{"Y": 1}, nil)

		require.Equal(t, float64(0), badDebt)
	})

	t.Run("disabled collateral recovers nothing", func(t *testing.T) {
		account := domain.Account{
			ID: "0xdef",
			CollateralLegs: []domain.CollateralLeg{
				{Symbol: "Y", Amount: 2_000_000, LiquidationThreshold: 0.8, Enabled: false},
			},
			DebtLegs: []domain.DebtLeg{
				{Symbol: "X", Amount: 1_000_000},
			},
		}
		prices := domain.PriceVector{"X": 1, "Y": 1}

		badDebt := CalculateAccountBadDebt(account, prices, nil)

		require.Equal(t, float64(1_000_000), badDebt)
	})

	t.Run("emode threshold overrides every enabled leg", func(t *testing.T) {
		account := domain.Account{
			ID:              "0xemode",
			EModeCategoryID: 1,
			CollateralLegs: []domain.CollateralLeg{
				{Symbol: "Y", Amount: 1_000_000, LiquidationThreshold: 0.5, Enabled: true},
				{Symbol: "Z", Amount: 500_000, LiquidationThreshold: 0.6, Enabled: true},
			},
			DebtLegs: []domain.DebtLeg{
				{Symbol: "X", Amount: 1_400_000},
			},
		}
		prices := domain.PriceVector{"X": 1, "Y": 1, "Z": 1}
		emodes := domain.EModeTable{
			1: {ID: 1, Label: "stablecoins", LiquidationThreshold: 0.95},
		}

		badDebt := CalculateAccountBadDebt(account, prices, emodes)

		// recoverable at 0.95 uniformly: 1,500,000 * 0.95 = 1,425,000
		require.Equal(t, float64(0), badDebt)

		// without the category the per-leg thresholds leave a shortfall
		badDebtNoEmode := CalculateAccountBadDebt(account, prices, nil)
		require.InDelta(t, 600_000, badDebtNoEmode, 1e-6)
	})

	t.Run("unknown emode category falls back to per-leg thresholds", func(t *testing.T) {
		account := domain.Account{
			ID:              "0xemode",
			EModeCategoryID: 7,
			CollateralLegs: []domain.CollateralLeg{
				{Symbol: "Y", Amount: 1_000_000, LiquidationThreshold: 0.5, Enabled: true},
			},
			DebtLegs: []domain.DebtLeg{
				{Symbol: "X", Amount: 800_000},
			},
		}
		prices := domain.PriceVector{"X": 1, "Y": 1}
		emodes := domain.EModeTable{
			1: {ID: 1, LiquidationThreshold: 0.95},
		}

		badDebt := CalculateAccountBadDebt(account, prices, emodes)

		require.InDelta(t, 300_000, badDebt, 1e-6)
	})

	t.Run("missing price reads as zero", func(t *testing.T) {
		account := domain.Account{
			ID: "0xmissing",
			CollateralLegs: []domain.CollateralLeg{
				{Symbol: "UNKNOWN", Amount: 1_000_000, LiquidationThreshold: 0.8, Enabled: true},
			},
			DebtLegs: []domain.DebtLeg{
				{Symbol: "X", Amount: 100},
			},
		}
		prices := domain.PriceVector{"X": 1}

		badDebt := CalculateAccountBadDebt(account, prices, nil)

		require.Equal(t, float64(100), badDebt)
	})
}

func TestCalculateScenarioBadDebt(t *testing.T) {
	t.Run("sums across accounts", func(t *testing.T) {
		accounts := []domain.Account{
			{
				ID: "0x1",
				CollateralLegs: []domain.CollateralLeg{
					{Symbol: "Y", Amount: 100, LiquidationThreshold: 0.8, Enabled: true},
				},
				DebtLegs: []domain.DebtLeg{{Symbol: "X", Amount: 200}},
			},
			{
				ID:       "0x2",
				DebtLegs: []domain.DebtLeg{{Symbol: "X", Amount: 50}},
			},
			{
				ID: "0x3",
				CollateralLegs: []domain.CollateralLeg{
					{Symbol: "Y", Amount: 10_000, LiquidationThreshold: 0.8, Enabled: true},
				},
				DebtLegs: []domain.DebtLeg{{Symbol: "X", Amount: 10}},
			},
		}
		prices := domain.PriceVector{"X": 1, "Y": 1}

		total := CalculateScenarioBadDebt(accounts, prices, nil)

		// 120 from the first account, 50 from the second, 0 from the third
		require.InDelta(t, 170, total, 1e-9)
	})

	t.Run("empty registry sums to zero", func(t *testing.T) {
		require.Equal(t, float64(0), CalculateScenarioBadDebt(nil, domain.PriceVector{}, nil))
	})
}
