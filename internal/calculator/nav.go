package calculator

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"time"
)

// ComputeNAV values the treasury on asOf. It returns nil when no lot was
// acquired by asOf or either asset has no close on or before asOf.
// Financials are optional; the fields that need them stay nil.
func ComputeNAV(ledger Ledger, asOf time.Time) *domain.NAVMetrics {
	if len(ledger.Lots.AsOf(asOf)) == 0 {
		return nil
	}
	totalQuantity := ledger.Lots.TotalQuantity(asOf)

	primary, ok := ledger.Primary.AsOf(asOf)
	if !ok {
		return nil
	}
	equity, ok := ledger.Equity.AsOf(asOf)
	if !ok {
		return nil
	}

	out := &domain.NAVMetrics{
		AsOf:          util.TruncateToDate(asOf),
		TotalQuantity: totalQuantity,
		PrimaryPrice:  primary.Value,
		EquityPrice:   equity.Value,
		AssetNav:      totalQuantity * primary.Value,
	}

	financials := ledger.Financials.AsOf(asOf)
	if financials == nil {
		return out
	}
	out.SharesOutstanding = financials.SharesOutstanding
	out.Cash = financials.Cash
	out.DebtMarket = financials.DebtMarket

	if financials.Cash != nil && financials.DebtMarket != nil {
		out.BalanceSheetNav = util.FloatPointer(out.AssetNav + *financials.Cash - *financials.DebtMarket)
	}

	shares := financials.SharesOutstanding
	if shares == nil || *shares <= 0 {
		return out
	}

	marketCap := *shares * equity.Value
	out.MarketCap = &marketCap
	out.AssetPerShare = util.FloatPointer(totalQuantity / *shares)
	if out.BalanceSheetNav != nil {
		out.BalanceSheetNavPerShare = util.FloatPointer(*out.BalanceSheetNav / *shares)
	}

	out.PremiumToAssetNav = premium(marketCap, out.AssetNav)
	if out.BalanceSheetNav != nil {
		out.PremiumToBalanceNav = premium(marketCap, *out.BalanceSheetNav)
	}

	return out
}

// premium is market/nav - 1, undefined for a non-positive nav.
func premium(marketCap, nav float64) *float64 {
	if nav <= 0 {
		return nil
	}
	return util.FloatPointer(marketCap/nav - 1)
}
