package repository

import (
	"database/sql"
	"fmt"

	"aavevar/internal/db/models/postgres/public/model"
	"aavevar/internal/db/models/postgres/public/table"
	"aavevar/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type EmodeCategoryRepository interface {
	GetTable() (domain.EModeTable, error)
	Add(tx *sql.Tx, categories []model.EmodeCategory) error
}

type emodeCategoryRepositoryHandler struct {
	Db *sql.DB
}

func NewEmodeCategoryRepository(db *sql.DB) EmodeCategoryRepository {
	return emodeCategoryRepositoryHandler{Db: db}
}

func (h emodeCategoryRepositoryHandler) GetTable() (domain.EModeTable, error) {
	query := table.EmodeCategory.
		SELECT(table.EmodeCategory.AllColumns)

	categories := []model.EmodeCategory{}
	err := query.Query(h.Db, &categories)
	if err != nil {
		return nil, fmt.Errorf("failed to load e-mode categories: %w", err)
	}

	emodes := make(domain.EModeTable, len(categories))
	for _, c := range categories {
		category := domain.EModeCategory{
			ID: int(c.ID),
		}
		if c.Label != nil {
			category.Label = *c.Label
		}
		if c.Ltv != nil {
			category.LTV = *c.Ltv
		}
		if c.LiquidationThreshold != nil {
			category.LiquidationThreshold = *c.LiquidationThreshold
		}
		if c.LiquidationBonus != nil {
			category.LiquidationBonus = *c.LiquidationBonus
		}
		emodes[category.ID] = category
	}

	return emodes, nil
}

func (h emodeCategoryRepositoryHandler) Add(tx *sql.Tx, categories []model.EmodeCategory) error {
	query := table.EmodeCategory.
		INSERT(table.EmodeCategory.AllColumns).
		MODELS(categories).
		ON_CONFLICT(table.EmodeCategory.ID).
		DO_UPDATE(postgres.SET(
			table.EmodeCategory.Label.SET(table.EmodeCategory.EXCLUDED.Label),
			table.EmodeCategory.Ltv.SET(table.EmodeCategory.EXCLUDED.Ltv),
			table.EmodeCategory.LiquidationThreshold.SET(table.EmodeCategory.EXCLUDED.LiquidationThreshold),
			table.EmodeCategory.LiquidationBonus.SET(table.EmodeCategory.EXCLUDED.LiquidationBonus),
		))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add e-mode categories: %w", err)
	}

	return nil
}
