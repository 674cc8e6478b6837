package repository

import (
	"database/sql"
	"fmt"

	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/db/models/postgres/public/table"
	"aavevar/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type AccountRepository interface {
	// ListTopBorrowers returns the top accounts by total debt, with
	// their positions assembled into collateral and debt legs. Only
	// accounts with outstanding debt participate in a simulation.
	ListTopBorrowers(limit int64) ([]domain.Account, error)
	Add(tx *sql.Tx, accounts []model.Account) error
	AddPositions(tx *sql.Tx, positions []model.Position) error
}

type accountRepositoryHandler struct {
	Db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return accountRepositoryHandler{Db: db}
}

func (h accountRepositoryHandler) ListTopBorrowers(limit int64) ([]domain.Account, error) {
	query := table.Account.
		SELECT(table.Account.AllColumns).
		WHERE(table.Account.TotalDebtUsd.GT(postgres.Float(0))).
		ORDER_BY(table.Account.TotalDebtUsd.DESC()).
		LIMIT(limit)

	accountModels := []model.Account{}
	err := query.Query(h.Db, &accountModels)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if len(accountModels) == 0 {
		return []domain.Account{}, nil
	}

	accountIDs := make([]postgres.Expression, len(accountModels))
	for i, a := range accountModels {
		accountIDs[i] = postgres.String(a.AccountID)
	}

	positionQuery := table.Position.
		SELECT(table.Position.AllColumns).
		WHERE(table.Position.AccountID.IN(accountIDs...)).
		ORDER_BY(table.Position.AccountID.ASC(), table.Position.ID.ASC())

	positionModels := []model.Position{}
	err = positionQuery.Query(h.Db, &positionModels)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	positionsByAccount := map[string][]model.Position{}
	for _, p := range positionModels {
		positionsByAccount[p.AccountID] = append(positionsByAccount[p.AccountID], p)
	}

	accounts := make([]domain.Account, 0, len(accountModels))
	for _, a := range accountModels {
		accounts = append(accounts, assembleAccount(a, positionsByAccount[a.AccountID]))
	}

	return accounts, nil
}

func assembleAccount(a model.Account, positions []model.Position) domain.Account {
	account := domain.Account{
		ID:              a.AccountID,
		EModeCategoryID: int(a.EmodeCategoryID),
	}

	for _, p := range positions {
		switch p.Side {
		case model.PositionSide_Collateral:
			leg := domain.CollateralLeg{
				Symbol: p.Symbol,
				Amount: p.Amount,
			}
			if p.LiquidationThreshold != nil {
				leg.LiquidationThreshold = *p.LiquidationThreshold
			}
			if p.UsageAsCollateralEnabled != nil {
				leg.Enabled = *p.UsageAsCollateralEnabled
			}
			account.CollateralLegs = append(account.CollateralLegs, leg)
		case model.PositionSide_Debt:
			account.DebtLegs = append(account.DebtLegs, domain.DebtLeg{
				Symbol: p.Symbol,
				Amount: p.Amount,
			})
		}
	}

	return account
}

func (h accountRepositoryHandler) Add(tx *sql.Tx, accounts []model.Account) error {
	query := table.Account.
		INSERT(table.Account.AllColumns).
		MODELS(accounts).
		ON_CONFLICT(table.Account.AccountID).
		DO_UPDATE(postgres.SET(
			table.Account.EmodeCategoryID.SET(table.Account.EXCLUDED.EmodeCategoryID),
			table.Account.TotalDebtUsd.SET(table.Account.EXCLUDED.TotalDebtUsd),
			table.Account.TotalCollateralUsd.SET(table.Account.EXCLUDED.TotalCollateralUsd),
			table.Account.HealthFactor.SET(table.Account.EXCLUDED.HealthFactor),
			table.Account.LastUpdated.SET(table.Account.EXCLUDED.LastUpdated),
		))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add accounts: %w", err)
	}

	return nil
}

func (h accountRepositoryHandler) AddPositions(tx *sql.Tx, positions []model.Position) error {
	query := table.Position.
		INSERT(table.Position.MutableColumns).
		MODELS(positions)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add positions: %w", err)
	}

	return nil
}
