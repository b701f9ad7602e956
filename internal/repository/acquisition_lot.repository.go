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
)

type AcquisitionLotRepository interface {
	AddMany(tx *sql.Tx, lots []domain.AcquisitionLot) error
	// List returns every lot dated on or before asOf, oldest first.
	// A nil asOf returns the full ledger.
	List(tx *sql.Tx, asOf *time.Time) ([]domain.AcquisitionLot, error)
}

type acquisitionLotRepositoryHandler struct {
	Db *sql.DB
}

func NewAcquisitionLotRepository(db *sql.DB) AcquisitionLotRepository {
	return acquisitionLotRepositoryHandler{Db: db}
}

func (h acquisitionLotRepositoryHandler) AddMany(tx *sql.Tx, lots []domain.AcquisitionLot) error {
	if len(lots) == 0 {
		return nil
	}
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	now := time.Now().UTC()
	models := make([]model.AcquisitionLot, 0, len(lots))
	for _, l := range lots {
		models = append(models, model.AcquisitionLot{
			AcquisitionLotID: l.ID,
			Date:             l.Date,
			QuantityAcquired: l.QuantityAcquired,
			AmountSpent:      l.AmountSpent,
			SourceType:       l.SourceType,
			ImpliedUnitPrice: l.ImpliedUnitPrice,
			Notes:            l.Notes,
			CreatedAt:        now,
		})
	}

	query := table.AcquisitionLot.
		INSERT(table.AcquisitionLot.AllColumns).
		MODELS(models)

	if _, err := query.Exec(db); err != nil {
		return fmt.Errorf("failed to insert acquisition lots: %w", err)
	}

	return nil
}

func (h acquisitionLotRepositoryHandler) List(tx *sql.Tx, asOf *time.Time) ([]domain.AcquisitionLot, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	query := table.AcquisitionLot.
		SELECT(table.AcquisitionLot.AllColumns).
		ORDER_BY(table.AcquisitionLot.Date.ASC(), table.AcquisitionLot.CreatedAt.ASC())
	if asOf != nil {
		query = query.WHERE(table.AcquisitionLot.Date.LT_EQ(postgres.DateT(*asOf)))
	}

	result := []model.AcquisitionLot{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to list acquisition lots: %w", err)
	}

	out := make([]domain.AcquisitionLot, 0, len(result))
	for _, m := range result {
		out = append(out, domain.AcquisitionLot{
			ID:               m.AcquisitionLotID,
			Date:             m.Date,
			QuantityAcquired: m.QuantityAcquired,
			AmountSpent:      m.AmountSpent,
			SourceType:       m.SourceType,
			ImpliedUnitPrice: m.ImpliedUnitPrice,
			Notes:            m.Notes,
		})
	}

	return out, nil
}
