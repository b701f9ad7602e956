package domain

import "time"

type ReturnsMetrics struct {
	Symbol           string       `json:"symbol"`
	DailyReturns     []DatedValue `json:"dailyReturns"`
	CumulativeReturn float64      `json:"cumulativeReturn"`
	AnnualizedReturn float64      `json:"annualizedReturn"`
	Volatility       float64      `json:"volatility"`
	SharpeRatio      *float64     `json:"sharpeRatio"`
}

type BetaMetrics struct {
	Beta         float64              `json:"beta"`
	Correlation  float64              `json:"correlation"`
	Alpha        float64              `json:"alpha"`
	RSquared     float64              `json:"rSquared"`
	Observations int                  `json:"observations"`
	RollingBeta  map[int][]DatedValue `json:"rollingBeta,omitempty"`
}

type Drawdown struct {
	PeakDate     time.Time `json:"peakDate"`
	TroughDate   time.Time `json:"troughDate"`
	Value        float64   `json:"value"`
	DurationDays int       `json:"durationDays"`
}

type DrawdownMetrics struct {
	Series          []DatedValue `json:"series"`
	MaxDrawdown     Drawdown     `json:"maxDrawdown"`
	CurrentDrawdown float64      `json:"currentDrawdown"`
	TopDrawdowns    []Drawdown   `json:"topDrawdowns"`
}

// PerformanceReport is the combined historical view of one symbol against
// the benchmark asset.
type PerformanceReport struct {
	Returns   *ReturnsMetrics  `json:"returns"`
	Beta      *BetaMetrics     `json:"beta"`
	Drawdowns *DrawdownMetrics `json:"drawdowns"`
}
