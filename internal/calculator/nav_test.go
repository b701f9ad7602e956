package calculator

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLots() []domain.AcquisitionLot {
	return []domain.AcquisitionLot{
		{
			Date:             util.NewDate(2023, 1, 1),
			QuantityAcquired: 100,
			AmountSpent:      2_000_000,
			SourceType:       domain.LotSourceCash,
			ImpliedUnitPrice: 20_000,
		},
		{
			Date:             util.NewDate(2023, 6, 1),
			QuantityAcquired: 50,
			AmountSpent:      1_500_000,
			SourceType:       domain.LotSourceConvertibleNotes,
			ImpliedUnitPrice: 30_000,
		},
	}
}

func testPrices() []domain.MarketPriceObservation {
	return []domain.MarketPriceObservation{
		{Date: util.NewDate(2023, 6, 30), Symbol: "BTC", ClosePrice: 30_000},
		{Date: util.NewDate(2023, 6, 30), Symbol: "MSTR", ClosePrice: 400},
	}
}

func TestComputeNAV(t *testing.T) {
	asOf := util.NewDate(2023, 7, 1)

	t.Run("full balance sheet", func(t *testing.T) {
		ledger := NewLedger(testLots(), []domain.CompanyFinancials{
			{
				Date:              util.NewDate(2023, 3, 31),
				SharesOutstanding: util.FloatPointer(20_000),
				Cash:              util.FloatPointer(500_000),
				DebtMarket:        util.FloatPointer(1_000_000),
			},
		}, testPrices(), "BTC", "MSTR")

		nav := ComputeNAV(ledger, asOf)
		require.NotNil(t, nav)
		require.Equal(t, 150.0, nav.TotalQuantity)
		require.Equal(t, 4_500_000.0, nav.AssetNav)
		require.Equal(t, 4_000_000.0, *nav.BalanceSheetNav)
		require.Equal(t, 8_000_000.0, *nav.MarketCap)
		require.InDelta(t, 0.0075, *nav.AssetPerShare, 1e-12)
		require.InDelta(t, 200.0, *nav.BalanceSheetNavPerShare, 1e-9)
		require.InDelta(t, 8.0/4.5-1, *nav.PremiumToAssetNav, 1e-12)
		require.InDelta(t, 1.0, *nav.PremiumToBalanceNav, 1e-12)
	})

	t.Run("no financials leaves ratios absent", func(t *testing.T) {
		nav := ComputeNAV(NewLedger(testLots(), nil, testPrices(), "BTC", "MSTR"), asOf)
		require.NotNil(t, nav)
		require.Equal(t, 4_500_000.0, nav.AssetNav)
		require.Nil(t, nav.BalanceSheetNav)
		require.Nil(t, nav.MarketCap)
		require.Nil(t, nav.PremiumToAssetNav)
		require.Nil(t, nav.PremiumToBalanceNav)
		require.Nil(t, nav.AssetPerShare)
	})

	t.Run("cash without debt has no balance sheet nav", func(t *testing.T) {
		ledger := NewLedger(testLots(), []domain.CompanyFinancials{
			{Date: util.NewDate(2023, 3, 31), SharesOutstanding: util.FloatPointer(20_000), Cash: util.FloatPointer(1)},
		}, testPrices(), "BTC", "MSTR")
		nav := ComputeNAV(ledger, asOf)
		require.Nil(t, nav.BalanceSheetNav)
		require.Nil(t, nav.PremiumToBalanceNav)
		require.NotNil(t, nav.PremiumToAssetNav)
	})

	t.Run("negative balance sheet nav has no premium", func(t *testing.T) {
		ledger := NewLedger(testLots(), []domain.CompanyFinancials{
			{
				Date:              util.NewDate(2023, 3, 31),
				SharesOutstanding: util.FloatPointer(20_000),
				Cash:              util.FloatPointer(0),
				DebtMarket:        util.FloatPointer(10_000_000),
			},
		}, testPrices(), "BTC", "MSTR")
		nav := ComputeNAV(ledger, asOf)
		require.Equal(t, -5_500_000.0, *nav.BalanceSheetNav)
		require.Nil(t, nav.PremiumToBalanceNav)
		require.NotNil(t, nav.PremiumToAssetNav)
	})

	t.Run("zero shares outstanding", func(t *testing.T) {
		ledger := NewLedger(testLots(), []domain.CompanyFinancials{
			{Date: util.NewDate(2023, 3, 31), SharesOutstanding: util.FloatPointer(0)},
		}, testPrices(), "BTC", "MSTR")
		nav := ComputeNAV(ledger, asOf)
		require.Nil(t, nav.MarketCap)
		require.Nil(t, nav.AssetPerShare)
		require.Nil(t, nav.PremiumToAssetNav)
	})

	t.Run("absent without lots", func(t *testing.T) {
		require.Nil(t, ComputeNAV(NewLedger(testLots(), nil, testPrices(), "BTC", "MSTR"), util.NewDate(2022, 12, 31)))
	})

	t.Run("absent without an equity close", func(t *testing.T) {
		prices := []domain.MarketPriceObservation{
			{Date: util.NewDate(2023, 6, 30), Symbol: "BTC", ClosePrice: 30_000},
			{Date: util.NewDate(2023, 6, 30), Symbol: "MSTR", ClosePrice: 0},
		}
		require.Nil(t, ComputeNAV(NewLedger(testLots(), nil, prices, "BTC", "MSTR"), asOf))
	})

	t.Run("absent without a primary close before the date", func(t *testing.T) {
		require.Nil(t, ComputeNAV(NewLedger(testLots(), nil, testPrices(), "BTC", "MSTR"), util.NewDate(2023, 6, 15)))
	})
}
