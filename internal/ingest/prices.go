package ingest

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"fmt"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

// DailyBar is one close as reported by a price source.
type DailyBar struct {
	Date  time.Time
	Close decimal.Decimal
}

type PriceSource interface {
	DailyBars(ticker string, start, end time.Time) ([]DailyBar, error)
}

type yahooChartSource struct{}

// NewYahooChartSource reads daily bars from the Yahoo chart endpoint.
func NewYahooChartSource() PriceSource {
	return yahooChartSource{}
}

func (yahooChartSource) DailyBars(ticker string, start, end time.Time) ([]DailyBar, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   ticker,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []DailyBar{}
	for iter.Next() {
		bar := iter.Bar()
		out = append(out, DailyBar{
			Date:  time.Unix(int64(bar.Timestamp), 0).UTC(),
			Close: bar.Close,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", ticker, err)
	}

	return out, nil
}

// ToObservations labels bars with the internal symbol. Non-positive closes
// are dropped so a gap in the source stays a gap.
func ToObservations(symbol string, bars []DailyBar) []domain.MarketPriceObservation {
	out := make([]domain.MarketPriceObservation, 0, len(bars))
	for _, b := range bars {
		if !b.Close.IsPositive() {
			continue
		}
		out = append(out, domain.MarketPriceObservation{
			Date:       util.TruncateToDate(b.Date),
			Symbol:     strings.ToUpper(symbol),
			ClosePrice: b.Close.InexactFloat64(),
			Currency:   "USD",
		})
	}
	return out
}
