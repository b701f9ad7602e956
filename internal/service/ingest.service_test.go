package service

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/ingest"
	mock_repository "btctreasury/internal/repository/mocks"
	"btctreasury/internal/util"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePriceSource struct {
	mu    sync.Mutex
	calls map[string][2]time.Time
	bars  []ingest.DailyBar
	err   error
}

func (f *fakePriceSource) DailyBars(ticker string, start, end time.Time) ([]ingest.DailyBar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string][2]time.Time{}
	}
	f.calls[ticker] = [2]time.Time{start, end}
	return f.bars, f.err
}

type ingestMocks struct {
	source     *fakePriceSource
	prices     *mock_repository.MockMarketPriceRepository
	lots       *mock_repository.MockAcquisitionLotRepository
	financials *mock_repository.MockCompanyFinancialsRepository
}

func newIngestMocks(ctrl *gomock.Controller) ingestMocks {
	return ingestMocks{
		source:     &fakePriceSource{},
		prices:     mock_repository.NewMockMarketPriceRepository(ctrl),
		lots:       mock_repository.NewMockAcquisitionLotRepository(ctrl),
		financials: mock_repository.NewMockCompanyFinancialsRepository(ctrl),
	}
}

func (m ingestMocks) service() IngestService {
	return NewIngestService(m.source, m.prices, m.lots, m.financials, util.DefaultConfig().Symbols)
}

func Test_ingestServiceHandler_IngestPrices(t *testing.T) {
	end := util.NewDate(2024, 3, 1)

	t.Run("resumes after the last stored close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newIngestMocks(ctrl)
		m.source.bars = []ingest.DailyBar{
			{Date: util.NewDate(2024, 2, 28), Close: decimal.NewFromInt(61_000)},
			{Date: util.NewDate(2024, 2, 29), Close: decimal.Zero},
		}
		m.prices.EXPECT().LatestDate(nil, "BTC").Return(util.TimePointer(util.NewDate(2024, 2, 27)), nil)
		m.prices.EXPECT().AddMany(nil, []domain.MarketPriceObservation{
			{Date: util.NewDate(2024, 2, 28), Symbol: "BTC", ClosePrice: 61_000, Currency: "USD"},
		}).Return(nil)

		n, err := m.service().IngestPrices(context.Background(), "BTC", "BTC-USD", time.Time{}, end)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, [2]time.Time{util.NewDate(2024, 2, 28), end}, m.source.calls["BTC-USD"])
	})

	t.Run("first ingest starts from the default date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newIngestMocks(ctrl)
		m.prices.EXPECT().LatestDate(nil, "MSTR").Return(nil, nil)
		m.prices.EXPECT().AddMany(nil, []domain.MarketPriceObservation{}).Return(nil)

		_, err := m.service().IngestPrices(context.Background(), "MSTR", "MSTR", time.Time{}, end)
		require.NoError(t, err)
		require.Equal(t, defaultIngestStart, m.source.calls["MSTR"][0])
	})

	t.Run("up to date is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newIngestMocks(ctrl)
		m.prices.EXPECT().LatestDate(nil, "BTC").Return(util.TimePointer(end), nil)

		n, err := m.service().IngestPrices(context.Background(), "BTC", "BTC-USD", time.Time{}, end)
		require.NoError(t, err)
		require.Equal(t, 0, n)
		require.Empty(t, m.source.calls)
	})
}

func Test_ingestServiceHandler_IngestConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newIngestMocks(ctrl)
	m.source.err = errors.New("rate limited")
	m.prices.EXPECT().LatestDate(nil, gomock.Any()).Return(nil, nil).Times(2)

	err := m.service().IngestConfigured(context.Background(), util.NewDate(2024, 3, 1))
	require.ErrorContains(t, err, "rate limited")
	require.Len(t, m.source.calls, 2)
}

func Test_ingestServiceHandler_ImportLots(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newIngestMocks(ctrl)
	m.lots.EXPECT().
		AddMany(nil, gomock.Len(2)).
		Return(nil)

	n, err := m.service().ImportLots(context.Background(), strings.NewReader(`date,quantity_acquired,amount_spent,source_type,notes
2020-08-11,21454,250000000,cash,
2020-09-14,16796,175000000,cash,
`))
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func Test_ingestServiceHandler_ImportFinancials(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newIngestMocks(ctrl)

	_, err := m.service().ImportFinancials(context.Background(), strings.NewReader("date,shares_outstanding,cash,debt_face,debt_market\nnot-a-date,1,,,\n"))
	require.Error(t, err)
}
