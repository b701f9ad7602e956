package calculator

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistory is one symbol's closes in ascending date order. Observations
// without a usable price are dropped on construction, so a lookup never
// returns zero as a price.
type PriceHistory struct {
	Symbol string
	dates  []time.Time
	prices []float64
}

// NewPriceHistory keeps the observations for symbol. When a date repeats, the
// later observation in the input wins.
func NewPriceHistory(symbol string, observations []domain.MarketPriceObservation) PriceHistory {
	byDate := map[time.Time]float64{}
	for _, o := range observations {
		if !strings.EqualFold(o.Symbol, symbol) || !o.Valid() {
			continue
		}
		byDate[util.TruncateToDate(o.Date)] = o.ClosePrice
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	prices := make([]float64, len(dates))
	for i, d := range dates {
		prices[i] = byDate[d]
	}

	return PriceHistory{
		Symbol: symbol,
		dates:  dates,
		prices: prices,
	}
}

func (h PriceHistory) Len() int {
	return len(h.dates)
}

// AsOf returns the most recent close on or before date.
func (h PriceHistory) AsOf(date time.Time) (*domain.DatedValue, bool) {
	i := searchAfter(h.dates, date) - 1
	if i < 0 {
		return nil, false
	}
	return &domain.DatedValue{Date: h.dates[i], Value: h.prices[i]}, true
}

// Between returns closes with start <= date <= end.
func (h PriceHistory) Between(start, end time.Time) []domain.DatedValue {
	from := searchBefore(h.dates, start)
	to := searchAfter(h.dates, end)
	out := []domain.DatedValue{}
	for i := from; i < to; i++ {
		out = append(out, domain.DatedValue{Date: h.dates[i], Value: h.prices[i]})
	}
	return out
}

func (h PriceHistory) Series() []domain.DatedValue {
	out := make([]domain.DatedValue, len(h.dates))
	for i := range h.dates {
		out[i] = domain.DatedValue{Date: h.dates[i], Value: h.prices[i]}
	}
	return out
}

// FinancialsHistory answers "latest balance sheet as of" queries.
type FinancialsHistory struct {
	records []domain.CompanyFinancials
	dates   []time.Time
}

func NewFinancialsHistory(records []domain.CompanyFinancials) FinancialsHistory {
	sorted := append([]domain.CompanyFinancials{}, records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	dates := make([]time.Time, len(sorted))
	for i, r := range sorted {
		dates[i] = util.TruncateToDate(r.Date)
	}
	return FinancialsHistory{
		records: sorted,
		dates:   dates,
	}
}

func (h FinancialsHistory) AsOf(date time.Time) *domain.CompanyFinancials {
	i := searchAfter(h.dates, date) - 1
	if i < 0 {
		return nil
	}
	out := h.records[i]
	return &out
}

// LotLedger is the acquisition history ordered by date. Input order does
// not matter.
type LotLedger struct {
	lots  []domain.AcquisitionLot
	dates []time.Time
}

func NewLotLedger(lots []domain.AcquisitionLot) LotLedger {
	sorted := append([]domain.AcquisitionLot{}, lots...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	dates := make([]time.Time, len(sorted))
	for i, l := range sorted {
		dates[i] = util.TruncateToDate(l.Date)
	}
	return LotLedger{
		lots:  sorted,
		dates: dates,
	}
}

// AsOf returns the lots acquired on or before date, oldest first.
func (l LotLedger) AsOf(date time.Time) []domain.AcquisitionLot {
	return l.lots[:searchAfter(l.dates, date)]
}

func (l LotLedger) Len() int {
	return len(l.lots)
}

// TotalQuantity sums lot quantities acquired on or before date. The sum is
// exact, so it does not depend on lot order.
func (l LotLedger) TotalQuantity(date time.Time) float64 {
	total := decimal.Zero
	for _, lot := range l.AsOf(date) {
		total = total.Add(decimal.NewFromFloat(lot.QuantityAcquired))
	}
	return total.InexactFloat64()
}

// Ledger is everything the valuation pipelines read.
type Ledger struct {
	Lots       LotLedger
	Financials FinancialsHistory
	Primary    PriceHistory
	Equity     PriceHistory
}

func NewLedger(
	lots []domain.AcquisitionLot,
	financials []domain.CompanyFinancials,
	prices []domain.MarketPriceObservation,
	primarySymbol string,
	equitySymbol string,
) Ledger {
	return Ledger{
		Lots:       NewLotLedger(lots),
		Financials: NewFinancialsHistory(financials),
		Primary:    NewPriceHistory(primarySymbol, prices),
		Equity:     NewPriceHistory(equitySymbol, prices),
	}
}

// searchAfter is the index of the first date strictly after t's calendar day.
func searchAfter(dates []time.Time, t time.Time) int {
	day := util.TruncateToDate(t)
	return sort.Search(len(dates), func(i int) bool {
		return dates[i].After(day)
	})
}

// searchBefore is the index of the first date on or after t's calendar day.
func searchBefore(dates []time.Time, t time.Time) int {
	day := util.TruncateToDate(t)
	return sort.Search(len(dates), func(i int) bool {
		return !dates[i].Before(day)
	})
}
