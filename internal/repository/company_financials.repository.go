package repository

import (
	"btctreasury/internal/db/models/postgres/public/model"
	"btctreasury/internal/db/models/postgres/public/table"
	"btctreasury/internal/domain"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type CompanyFinancialsRepository interface {
	// UpsertMany replaces any record already stored for the same date.
	UpsertMany(tx *sql.Tx, financials []domain.CompanyFinancials) error
	List(tx *sql.Tx, asOf *time.Time) ([]domain.CompanyFinancials, error)
}

type companyFinancialsRepositoryHandler struct {
	Db *sql.DB
}

func NewCompanyFinancialsRepository(db *sql.DB) CompanyFinancialsRepository {
	return companyFinancialsRepositoryHandler{Db: db}
}

func (h companyFinancialsRepositoryHandler) UpsertMany(tx *sql.Tx, financials []domain.CompanyFinancials) error {
	if len(financials) == 0 {
		return nil
	}
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	now := time.Now().UTC()
	models := make([]model.CompanyFinancials, 0, len(financials))
	for _, f := range financials {
		models = append(models, model.CompanyFinancials{
			CompanyFinancialsID: uuid.New(),
			Date:                f.Date,
			SharesOutstanding:   f.SharesOutstanding,
			Cash:                f.Cash,
			DebtFace:            f.DebtFace,
			DebtMarket:          f.DebtMarket,
			CreatedAt:           now,
		})
	}

	t := table.CompanyFinancials
	query := t.
		INSERT(t.AllColumns).
		MODELS(models).
		ON_CONFLICT(t.Date).
		DO_UPDATE(postgres.SET(
			t.SharesOutstanding.SET(t.EXCLUDED.SharesOutstanding),
			t.Cash.SET(t.EXCLUDED.Cash),
			t.DebtFace.SET(t.EXCLUDED.DebtFace),
			t.DebtMarket.SET(t.EXCLUDED.DebtMarket),
		))

	if _, err := query.Exec(db); err != nil {
		return fmt.Errorf("failed to upsert company financials: %w", err)
	}

	return nil
}

func (h companyFinancialsRepositoryHandler) List(tx *sql.Tx, asOf *time.Time) ([]domain.CompanyFinancials, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	query := table.CompanyFinancials.
		SELECT(table.CompanyFinancials.AllColumns).
		ORDER_BY(table.CompanyFinancials.Date.ASC())
	if asOf != nil {
		query = query.WHERE(table.CompanyFinancials.Date.LT_EQ(postgres.DateT(*asOf)))
	}

	result := []model.CompanyFinancials{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to list company financials: %w", err)
	}

	out := make([]domain.CompanyFinancials, 0, len(result))
	for _, m := range result {
		out = append(out, domain.CompanyFinancials{
			Date:              m.Date,
			SharesOutstanding: m.SharesOutstanding,
			Cash:              m.Cash,
			DebtFace:          m.DebtFace,
			DebtMarket:        m.DebtMarket,
		})
	}

	return out, nil
}
