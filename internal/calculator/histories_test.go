package calculator

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPriceHistory(t *testing.T) {
	observations := []domain.MarketPriceObservation{
		{Date: util.NewDate(2024, 1, 3), Symbol: "BTC", ClosePrice: 43000},
		{Date: util.NewDate(2024, 1, 1), Symbol: "BTC", ClosePrice: 42000},
		{Date: util.NewDate(2024, 1, 2), Symbol: "MSTR", ClosePrice: 600},
		{Date: util.NewDate(2024, 1, 4), Symbol: "btc", ClosePrice: 0},
		{Date: util.NewDate(2024, 1, 5), Symbol: "BTC", ClosePrice: 44000},
		{Date: util.NewDate(2024, 1, 5), Symbol: "BTC", ClosePrice: 44500},
	}
	h := NewPriceHistory("BTC", observations)

	t.Run("keeps only usable closes for the symbol", func(t *testing.T) {
		require.Equal(t, 3, h.Len())
		require.Equal(t, "", cmp.Diff([]domain.DatedValue{
			{Date: util.NewDate(2024, 1, 1), Value: 42000},
			{Date: util.NewDate(2024, 1, 3), Value: 43000},
			{Date: util.NewDate(2024, 1, 5), Value: 44500},
		}, h.Series()))
	})

	t.Run("before first observation", func(t *testing.T) {
		_, ok := h.AsOf(util.NewDate(2023, 12, 31))
		require.False(t, ok)
	})

	t.Run("on an observation date", func(t *testing.T) {
		v, ok := h.AsOf(util.NewDate(2024, 1, 3))
		require.True(t, ok)
		require.Equal(t, 43000.0, v.Value)
	})

	t.Run("zero close falls back to the previous one", func(t *testing.T) {
		v, ok := h.AsOf(util.NewDate(2024, 1, 4))
		require.True(t, ok)
		require.Equal(t, 43000.0, v.Value)
		require.Equal(t, util.NewDate(2024, 1, 3), v.Date)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		v, ok := h.AsOf(time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC))
		require.True(t, ok)
		require.Equal(t, 42000.0, v.Value)
	})

	t.Run("between is inclusive", func(t *testing.T) {
		out := h.Between(util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 3))
		require.Len(t, out, 2)
		require.Empty(t, h.Between(util.NewDate(2025, 1, 1), util.NewDate(2025, 2, 1)))
	})
}

func TestFinancialsHistory(t *testing.T) {
	h := NewFinancialsHistory([]domain.CompanyFinancials{
		{Date: util.NewDate(2024, 6, 30), SharesOutstanding: util.FloatPointer(200)},
		{Date: util.NewDate(2024, 3, 31), SharesOutstanding: util.FloatPointer(100)},
	})

	require.Nil(t, h.AsOf(util.NewDate(2024, 1, 1)))
	require.Equal(t, 100.0, *h.AsOf(util.NewDate(2024, 5, 1)).SharesOutstanding)
	require.Equal(t, 200.0, *h.AsOf(util.NewDate(2024, 6, 30)).SharesOutstanding)
}

func TestLotLedger(t *testing.T) {
	lots := []domain.AcquisitionLot{
		{Date: util.NewDate(2023, 6, 1), QuantityAcquired: 50},
		{Date: util.NewDate(2023, 1, 1), QuantityAcquired: 100},
		{Date: util.NewDate(2023, 9, 1), QuantityAcquired: 25},
	}
	l := NewLotLedger(lots)

	require.Equal(t, 0.0, l.TotalQuantity(util.NewDate(2022, 12, 31)))
	require.Equal(t, 100.0, l.TotalQuantity(util.NewDate(2023, 1, 1)))
	require.Equal(t, 150.0, l.TotalQuantity(util.NewDate(2023, 6, 1)))
	require.Equal(t, 175.0, l.TotalQuantity(util.NewDate(2024, 1, 1)))
	require.Len(t, l.AsOf(util.NewDate(2023, 7, 1)), 2)
	require.Equal(t, util.NewDate(2023, 1, 1), l.AsOf(util.NewDate(2023, 7, 1))[0].Date)
}
