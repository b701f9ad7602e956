package ingest

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToObservations(t *testing.T) {
	bars := []DailyBar{
		{Date: time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC), Close: decimal.RequireFromString("42000.5")},
		{Date: time.Date(2024, 1, 3, 14, 30, 0, 0, time.UTC), Close: decimal.Zero},
		{Date: time.Date(2024, 1, 4, 14, 30, 0, 0, time.UTC), Close: decimal.RequireFromString("43100")},
	}

	out := ToObservations("btc", bars)
	require.Equal(t, "", cmp.Diff([]domain.MarketPriceObservation{
		{Date: util.NewDate(2024, 1, 2), Symbol: "BTC", ClosePrice: 42000.5, Currency: "USD"},
		{Date: util.NewDate(2024, 1, 4), Symbol: "BTC", ClosePrice: 43100, Currency: "USD"},
	}, out))
}
