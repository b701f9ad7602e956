package repository

import (
	"btctreasury/internal/db/models/postgres/public/model"
	"btctreasury/internal/db/models/postgres/public/table"
	"btctreasury/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type DailySnapshotRepository interface {
	// Upsert stores one row per date; recomputing a date overwrites it.
	Upsert(tx *sql.Tx, nav domain.NAVMetrics) (*domain.DailySnapshot, error)
	Get(date time.Time) (*domain.DailySnapshot, error)
	List(start, end time.Time) ([]domain.DailySnapshot, error)
}

type dailySnapshotRepositoryHandler struct {
	Db *sql.DB
}

func NewDailySnapshotRepository(db *sql.DB) DailySnapshotRepository {
	return dailySnapshotRepositoryHandler{Db: db}
}

func snapshotFromModel(m model.DailySnapshot) domain.DailySnapshot {
	return domain.DailySnapshot{
		DailySnapshotID: m.DailySnapshotID,
		NAVMetrics: domain.NAVMetrics{
			AsOf:                m.Date,
			TotalQuantity:       m.TotalQuantity,
			PrimaryPrice:        m.PrimaryPrice,
			EquityPrice:         m.EquityPrice,
			AssetNav:            m.AssetNav,
			BalanceSheetNav:     m.BalanceSheetNav,
			MarketCap:           m.MarketCap,
			AssetPerShare:       m.AssetPerShare,
			PremiumToAssetNav:   m.PremiumToAssetNav,
			PremiumToBalanceNav: m.PremiumToBalanceNav,
			SharesOutstanding:   m.SharesOutstanding,
		},
	}
}

func (h dailySnapshotRepositoryHandler) Upsert(tx *sql.Tx, nav domain.NAVMetrics) (*domain.DailySnapshot, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	now := time.Now().UTC()
	m := model.DailySnapshot{
		DailySnapshotID:     uuid.New(),
		Date:                nav.AsOf,
		TotalQuantity:       nav.TotalQuantity,
		PrimaryPrice:        nav.PrimaryPrice,
		EquityPrice:         nav.EquityPrice,
		AssetNav:            nav.AssetNav,
		BalanceSheetNav:     nav.BalanceSheetNav,
		MarketCap:           nav.MarketCap,
		AssetPerShare:       nav.AssetPerShare,
		PremiumToAssetNav:   nav.PremiumToAssetNav,
		PremiumToBalanceNav: nav.PremiumToBalanceNav,
		SharesOutstanding:   nav.SharesOutstanding,
		CreatedAt:           now,
		ModifiedAt:          now,
	}

	t := table.DailySnapshot
	query := t.
		INSERT(t.AllColumns).
		MODEL(m).
		ON_CONFLICT(t.Date).
		DO_UPDATE(postgres.SET(
			t.TotalQuantity.SET(t.EXCLUDED.TotalQuantity),
			t.PrimaryPrice.SET(t.EXCLUDED.PrimaryPrice),
			t.EquityPrice.SET(t.EXCLUDED.EquityPrice),
			t.AssetNav.SET(t.EXCLUDED.AssetNav),
			t.BalanceSheetNav.SET(t.EXCLUDED.BalanceSheetNav),
			t.MarketCap.SET(t.EXCLUDED.MarketCap),
			t.AssetPerShare.SET(t.EXCLUDED.AssetPerShare),
			t.PremiumToAssetNav.SET(t.EXCLUDED.PremiumToAssetNav),
			t.PremiumToBalanceNav.SET(t.EXCLUDED.PremiumToBalanceNav),
			t.SharesOutstanding.SET(t.EXCLUDED.SharesOutstanding),
			t.ModifiedAt.SET(t.EXCLUDED.ModifiedAt),
		)).
		RETURNING(t.AllColumns)

	out := model.DailySnapshot{}
	if err := query.Query(db, &out); err != nil {
		return nil, fmt.Errorf("failed to upsert daily snapshot: %w", err)
	}

	result := snapshotFromModel(out)
	return &result, nil
}

func (h dailySnapshotRepositoryHandler) Get(date time.Time) (*domain.DailySnapshot, error) {
	query := table.DailySnapshot.
		SELECT(table.DailySnapshot.AllColumns).
		WHERE(table.DailySnapshot.Date.EQ(postgres.DateT(date)))

	result := model.DailySnapshot{}
	err := query.Query(h.Db, &result)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get daily snapshot: %w", err)
	}

	out := snapshotFromModel(result)
	return &out, nil
}

func (h dailySnapshotRepositoryHandler) List(start, end time.Time) ([]domain.DailySnapshot, error) {
	query := table.DailySnapshot.
		SELECT(table.DailySnapshot.AllColumns).
		WHERE(postgres.AND(
			table.DailySnapshot.Date.GT_EQ(postgres.DateT(start)),
			table.DailySnapshot.Date.LT_EQ(postgres.DateT(end)),
		)).
		ORDER_BY(table.DailySnapshot.Date.ASC())

	result := []model.DailySnapshot{}
	if err := query.Query(h.Db, &result); err != nil {
		return nil, fmt.Errorf("failed to list daily snapshots: %w", err)
	}

	out := make([]domain.DailySnapshot, 0, len(result))
	for _, m := range result {
		out = append(out, snapshotFromModel(m))
	}
	return out, nil
}
