package service

import (
	"btctreasury/internal/domain"
	mock_repository "btctreasury/internal/repository/mocks"
	"btctreasury/internal/util"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type navMocks struct {
	lots       *mock_repository.MockAcquisitionLotRepository
	financials *mock_repository.MockCompanyFinancialsRepository
	prices     *mock_repository.MockMarketPriceRepository
	positions  *mock_repository.MockUserPositionRepository
	snapshots  *mock_repository.MockDailySnapshotRepository
}

func newNavMocks(ctrl *gomock.Controller) navMocks {
	return navMocks{
		lots:       mock_repository.NewMockAcquisitionLotRepository(ctrl),
		financials: mock_repository.NewMockCompanyFinancialsRepository(ctrl),
		prices:     mock_repository.NewMockMarketPriceRepository(ctrl),
		positions:  mock_repository.NewMockUserPositionRepository(ctrl),
		snapshots:  mock_repository.NewMockDailySnapshotRepository(ctrl),
	}
}

func (m navMocks) service() NavService {
	return NewNavService(m.lots, m.financials, m.prices, m.positions, m.snapshots, util.DefaultConfig().Symbols)
}

func (m navMocks) expectLedger(lots []domain.AcquisitionLot, financials []domain.CompanyFinancials, prices []domain.MarketPriceObservation) {
	m.lots.EXPECT().List(nil, gomock.Any()).Return(lots, nil).AnyTimes()
	m.financials.EXPECT().List(nil, gomock.Any()).Return(financials, nil).AnyTimes()
	m.prices.EXPECT().List(nil, []string{"BTC", "MSTR"}, gomock.Any(), gomock.Any()).Return(prices, nil).AnyTimes()
}

func testLots() []domain.AcquisitionLot {
	return []domain.AcquisitionLot{
		{
			ID:               uuid.New(),
			Date:             util.NewDate(2023, 1, 1),
			QuantityAcquired: 100,
			AmountSpent:      2_000_000,
			SourceType:       domain.LotSourceCash,
			ImpliedUnitPrice: 20_000,
		},
		{
			ID:               uuid.New(),
			Date:             util.NewDate(2023, 6, 1),
			QuantityAcquired: 50,
			AmountSpent:      1_500_000,
			SourceType:       domain.LotSourceConvertibleNotes,
			ImpliedUnitPrice: 30_000,
		},
	}
}

func testFinancials() []domain.CompanyFinancials {
	return []domain.CompanyFinancials{
		{
			Date:              util.NewDate(2023, 3, 31),
			SharesOutstanding: util.FloatPointer(20_000),
			Cash:              util.FloatPointer(500_000),
			DebtMarket:        util.FloatPointer(1_000_000),
		},
	}
}

func testPrices() []domain.MarketPriceObservation {
	return []domain.MarketPriceObservation{
		{Date: util.NewDate(2023, 6, 30), Symbol: "BTC", ClosePrice: 30_000},
		{Date: util.NewDate(2023, 6, 30), Symbol: "MSTR", ClosePrice: 400},
	}
}

var testAsOf = util.NewDate(2023, 7, 1)

func Test_navServiceHandler_NAV(t *testing.T) {
	t.Run("values the ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newNavMocks(ctrl)
		m.expectLedger(testLots(), testFinancials(), testPrices())

		nav, err := m.service().NAV(context.Background(), testAsOf)
		require.NoError(t, err)
		require.Equal(t, 4_500_000.0, nav.AssetNav)
		require.Equal(t, 4_000_000.0, *nav.BalanceSheetNav)
		require.Equal(t, 8_000_000.0, *nav.MarketCap)
	})

	t.Run("no equity close is insufficient data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newNavMocks(ctrl)
		m.expectLedger(testLots(), nil, testPrices()[:1])

		_, err := m.service().NAV(context.Background(), testAsOf)
		var insufficient domain.InsufficientDataError
		require.True(t, errors.As(err, &insufficient))
		require.Equal(t, "nav as of 2023-07-01", insufficient.What)
	})

	t.Run("repository errors are wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newNavMocks(ctrl)
		m.lots.EXPECT().List(nil, gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := m.service().NAV(context.Background(), testAsOf)
		require.ErrorContains(t, err, "failed to load ledger: connection reset")
	})
}

func Test_navServiceHandler_Summary(t *testing.T) {
	t.Run("bundles every pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newNavMocks(ctrl)
		m.expectLedger(testLots(), testFinancials(), testPrices())
		m.positions.EXPECT().GetActive(nil).Return(&domain.Position{
			Label:         "main",
			IsActive:      true,
			Quantity:      100,
			AvgEntryPrice: 320,
		}, nil)

		out, err := m.service().Summary(context.Background(), testAsOf)
		require.NoError(t, err)
		require.Equal(t, testAsOf, out.AsOf)
		require.NotNil(t, out.Nav)
		require.Equal(t, 2, out.Tranches.Portfolio.LotCount)
		require.Equal(t, 40_000.0, out.Position.CurrentValue)
		require.InDelta(t, 0.75, *out.Position.ImpliedExposure, 1e-9)
	})

	t.Run("tranches survive a missing equity close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newNavMocks(ctrl)
		m.expectLedger(testLots(), nil, testPrices()[:1])
		m.positions.EXPECT().GetActive(nil).Return(nil, nil)

		out, err := m.service().Summary(context.Background(), testAsOf)
		require.NoError(t, err)
		require.Nil(t, out.Nav)
		require.Nil(t, out.Position)
		require.NotNil(t, out.Tranches)
	})

	t.Run("empty ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newNavMocks(ctrl)
		m.expectLedger(nil, nil, nil)
		m.positions.EXPECT().GetActive(nil).Return(nil, nil)

		_, err := m.service().Summary(context.Background(), testAsOf)
		require.ErrorAs(t, err, &domain.InsufficientDataError{})
	})
}

func Test_navServiceHandler_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newNavMocks(ctrl)
	m.expectLedger(testLots(), testFinancials(), testPrices())

	id := uuid.New()
	m.snapshots.EXPECT().
		Upsert(nil, gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, nav domain.NAVMetrics) (*domain.DailySnapshot, error) {
			require.Equal(t, testAsOf, nav.AsOf)
			return &domain.DailySnapshot{
				DailySnapshotID: id,
				NAVMetrics: domain.NAVMetrics{
					AsOf:     nav.AsOf,
					AssetNav: nav.AssetNav,
				},
			}, nil
		})

	out, err := m.service().Snapshot(context.Background(), testAsOf)
	require.NoError(t, err)
	require.Equal(t, id, out.DailySnapshotID)
	require.NotNil(t, out.BalanceSheetNavPerShare)
	require.Equal(t, "", cmp.Diff(util.FloatPointer(200), out.BalanceSheetNavPerShare))
}

func Test_navServiceHandler_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newNavMocks(ctrl)

	_, err := m.service().History(context.Background(), testAsOf, testAsOf.AddDate(0, 0, -1))
	require.ErrorAs(t, err, &domain.InvalidInputError{})

	m.snapshots.EXPECT().List(testAsOf, testAsOf).Return([]domain.DailySnapshot{}, nil)
	out, err := m.service().History(context.Background(), testAsOf, testAsOf)
	require.NoError(t, err)
	require.Empty(t, out)
}
