package calculator

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AnalyzeTranches marks every lot acquired by asOf to the latest primary
// close. It returns nil when there are no such lots or no price.
//
// Portfolio totals are summed in decimal so permuting the lots cannot
// change them.
func AnalyzeTranches(ledger Ledger, asOf time.Time) *domain.TrancheAnalysis {
	lots := ledger.Lots.AsOf(asOf)
	if len(lots) == 0 {
		return nil
	}
	price, ok := ledger.Primary.AsOf(asOf)
	if !ok {
		return nil
	}
	currentPrice := decimal.NewFromFloat(price.Value)

	totalQuantity := decimal.Zero
	totalSpent := decimal.Zero
	totalValue := decimal.Zero
	tranches := make([]domain.TrancheSummary, 0, len(lots))

	for _, lot := range lots {
		quantity := decimal.NewFromFloat(lot.QuantityAcquired)
		spent := decimal.NewFromFloat(lot.AmountSpent)
		value := quantity.Mul(currentPrice)
		pnl := value.Sub(spent)

		// zero cost basis (gifted coins) reports 0%, not infinity
		pnlPct := 0.0
		if spent.IsPositive() {
			pnlPct = pnl.Div(spent).Mul(hundred).InexactFloat64()
		}

		tranches = append(tranches, domain.TrancheSummary{
			LotID:            lot.ID,
			Date:             lot.Date,
			QuantityAcquired: lot.QuantityAcquired,
			AmountSpent:      lot.AmountSpent,
			SourceType:       lot.SourceType,
			ImpliedUnitPrice: lot.ImpliedUnitPrice,
			CurrentPrice:     price.Value,
			CurrentValue:     value.InexactFloat64(),
			UnrealizedPnl:    pnl.InexactFloat64(),
			UnrealizedPnlPct: pnlPct,
			AgeDays:          util.DaysBetween(lot.Date, asOf),
			Notes:            lot.Notes,
		})

		totalQuantity = totalQuantity.Add(quantity)
		totalSpent = totalSpent.Add(spent)
		totalValue = totalValue.Add(value)
	}

	totalPnl := totalValue.Sub(totalSpent)
	portfolio := domain.PortfolioSummary{
		TotalQuantity: totalQuantity.InexactFloat64(),
		TotalSpent:    totalSpent.InexactFloat64(),
		CurrentValue:  totalValue.InexactFloat64(),
		UnrealizedPnl: totalPnl.InexactFloat64(),
		LotCount:      len(lots),
	}
	if totalSpent.IsPositive() {
		portfolio.UnrealizedPnlPct = util.FloatPointer(totalPnl.Div(totalSpent).Mul(hundred).InexactFloat64())
	}
	portfolio.WeightedAvgCost = WeightedAverageCost(totalSpent, totalQuantity)

	return &domain.TrancheAnalysis{
		Tranches:  tranches,
		Portfolio: portfolio,
	}
}

// WeightedAverageCost is spent/quantity, absent for zero quantity.
func WeightedAverageCost(totalSpent, totalQuantity decimal.Decimal) *float64 {
	if totalQuantity.IsZero() {
		return nil
	}
	return util.FloatPointer(totalSpent.Div(totalQuantity).InexactFloat64())
}
