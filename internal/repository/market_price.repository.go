package repository

import (
	"btctreasury/internal/db/models/postgres/public/model"
	"btctreasury/internal/db/models/postgres/public/table"
	"btctreasury/internal/domain"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type MarketPriceRepository interface {
	// AddMany upserts on (symbol, date); a later close for the same day wins.
	AddMany(tx *sql.Tx, prices []domain.MarketPriceObservation) error
	List(tx *sql.Tx, symbols []string, start, end time.Time) ([]domain.MarketPriceObservation, error)
	LatestDate(tx *sql.Tx, symbol string) (*time.Time, error)
}

type marketPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewMarketPriceRepository(db *sql.DB) MarketPriceRepository {
	return marketPriceRepositoryHandler{Db: db}
}

func (h marketPriceRepositoryHandler) AddMany(tx *sql.Tx, prices []domain.MarketPriceObservation) error {
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	now := time.Now().UTC()
	models := make([]model.MarketPrice, 0, len(prices))
	for _, p := range prices {
		if !p.Valid() {
			continue
		}
		currency := p.Currency
		if currency == "" {
			currency = "USD"
		}
		models = append(models, model.MarketPrice{
			MarketPriceID: uuid.New(),
			Date:          p.Date,
			Symbol:        strings.ToUpper(p.Symbol),
			ClosePrice:    p.ClosePrice,
			Currency:      currency,
			CreatedAt:     now,
		})
	}
	if len(models) == 0 {
		return nil
	}

	t := table.MarketPrice
	query := t.
		INSERT(t.AllColumns).
		MODELS(models).
		ON_CONFLICT(t.Symbol, t.Date).
		DO_UPDATE(postgres.SET(
			t.ClosePrice.SET(t.EXCLUDED.ClosePrice),
			t.Currency.SET(t.EXCLUDED.Currency),
		))

	if _, err := query.Exec(db); err != nil {
		return fmt.Errorf("failed to add market prices to db: %w", err)
	}

	return nil
}

func (h marketPriceRepositoryHandler) List(tx *sql.Tx, symbols []string, start, end time.Time) ([]domain.MarketPriceObservation, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	if len(symbols) == 0 {
		return []domain.MarketPriceObservation{}, nil
	}

	symbolExpr := make([]postgres.Expression, 0, len(symbols))
	for _, s := range symbols {
		symbolExpr = append(symbolExpr, postgres.String(strings.ToUpper(s)))
	}

	query := table.MarketPrice.
		SELECT(table.MarketPrice.AllColumns).
		WHERE(postgres.AND(
			table.MarketPrice.Symbol.IN(symbolExpr...),
			table.MarketPrice.Date.GT_EQ(postgres.DateT(start)),
			table.MarketPrice.Date.LT_EQ(postgres.DateT(end)),
		)).
		ORDER_BY(table.MarketPrice.Symbol.ASC(), table.MarketPrice.Date.ASC())

	result := []model.MarketPrice{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to list market prices: %w", err)
	}

	out := make([]domain.MarketPriceObservation, 0, len(result))
	for _, m := range result {
		out = append(out, domain.MarketPriceObservation{
			Date:       m.Date,
			Symbol:     m.Symbol,
			ClosePrice: m.ClosePrice,
			Currency:   m.Currency,
		})
	}

	return out, nil
}

// LatestDate returns nil when the symbol has never been ingested.
func (h marketPriceRepositoryHandler) LatestDate(tx *sql.Tx, symbol string) (*time.Time, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	query := table.MarketPrice.
		SELECT(table.MarketPrice.AllColumns).
		WHERE(table.MarketPrice.Symbol.EQ(postgres.String(strings.ToUpper(symbol)))).
		ORDER_BY(table.MarketPrice.Date.DESC()).
		LIMIT(1)

	result := []model.MarketPrice{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to get latest price date for %s: %w", symbol, err)
	}
	if len(result) == 0 {
		return nil, nil
	}

	return &result[0].Date, nil
}
