package calculator

import (
	"btctreasury/internal/domain"
	"math"
	"time"

	"github.com/montanaflynn/stats"
)

// DailyReturns is the simple percentage change between consecutive closes.
func DailyReturns(prices []domain.DatedValue) []domain.DatedValue {
	if len(prices) < 2 {
		return []domain.DatedValue{}
	}
	out := make([]domain.DatedValue, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		out = append(out, domain.DatedValue{
			Date:  prices[i].Date,
			Value: (prices[i].Value - prices[i-1].Value) / prices[i-1].Value,
		})
	}
	return out
}

// ComputeReturns summarises an ascending price series. It needs at least
// two closes and returns nil otherwise. Sharpe is nil when volatility is 0.
func ComputeReturns(symbol string, prices []domain.DatedValue, cfg Config) (*domain.ReturnsMetrics, error) {
	if len(prices) < 2 {
		return nil, nil
	}

	daily := DailyReturns(prices)
	values := dailyValues(daily)

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	periods := float64(cfg.TradingDaysPerYear)
	annualizedReturn := math.Pow(1+mean, periods) - 1

	// one return has no sample deviation
	volatility := 0.0
	if len(values) > 1 {
		stdev, err := stats.StandardDeviationSample(values)
		if err != nil {
			return nil, err
		}
		volatility = stdev * math.Sqrt(periods)
	}

	var sharpe *float64
	if volatility > 0 {
		s := (annualizedReturn - cfg.RiskFreeRate) / volatility
		sharpe = &s
	}

	return &domain.ReturnsMetrics{
		Symbol:           symbol,
		DailyReturns:     daily,
		CumulativeReturn: prices[len(prices)-1].Value/prices[0].Value - 1,
		AnnualizedReturn: annualizedReturn,
		Volatility:       volatility,
		SharpeRatio:      sharpe,
	}, nil
}

// ComputeBeta regresses dependent returns on primary returns over the
// dates both series share. It returns nil with fewer than
// cfg.MinBetaObservations pairs or a flat primary series.
func ComputeBeta(primaryReturns, dependentReturns []domain.DatedValue, cfg Config) (*domain.BetaMetrics, error) {
	dates, x, y := alignReturns(primaryReturns, dependentReturns)
	if len(x) < cfg.MinBetaObservations || len(x) < 2 {
		return nil, nil
	}

	fit, err := regress(x, y)
	if err != nil {
		return nil, err
	}
	if fit == nil {
		return nil, nil
	}

	correlation, err := stats.Correlation(x, y)
	if err != nil {
		return nil, err
	}

	out := &domain.BetaMetrics{
		Beta:         fit.beta,
		Correlation:  correlation,
		Alpha:        fit.alpha * float64(cfg.TradingDaysPerYear),
		RSquared:     fit.rSquared,
		Observations: len(x),
	}

	for _, window := range cfg.RollingWindows {
		if len(x) < window {
			continue
		}
		rolling, err := rollingBeta(dates, x, y, window)
		if err != nil {
			return nil, err
		}
		if out.RollingBeta == nil {
			out.RollingBeta = map[int][]domain.DatedValue{}
		}
		out.RollingBeta[window] = rolling
	}

	return out, nil
}

type linearFit struct {
	alpha    float64
	beta     float64
	rSquared float64
}

// regress is ordinary least squares with sample covariance over sample
// variance. nil when x is flat.
func regress(x, y []float64) (*linearFit, error) {
	variance, err := stats.SampleVariance(x)
	if err != nil {
		return nil, err
	}
	if variance == 0 {
		return nil, nil
	}
	covariance, err := stats.Covariance(x, y)
	if err != nil {
		return nil, err
	}
	meanX, err := stats.Mean(x)
	if err != nil {
		return nil, err
	}
	meanY, err := stats.Mean(y)
	if err != nil {
		return nil, err
	}

	beta := covariance / variance
	alpha := meanY - beta*meanX

	ssRes := 0.0
	ssTot := 0.0
	for i := range x {
		residual := y[i] - (alpha + beta*x[i])
		ssRes += residual * residual
		ssTot += (y[i] - meanY) * (y[i] - meanY)
	}
	rSquared := 0.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return &linearFit{
		alpha:    alpha,
		beta:     beta,
		rSquared: rSquared,
	}, nil
}

// rollingBeta reports one beta per window end. Windows where the primary
// series is flat are skipped.
func rollingBeta(dates []time.Time, x, y []float64, window int) ([]domain.DatedValue, error) {
	out := []domain.DatedValue{}
	for end := window; end <= len(x); end++ {
		fit, err := regress(x[end-window:end], y[end-window:end])
		if err != nil {
			return nil, err
		}
		if fit == nil {
			continue
		}
		out = append(out, domain.DatedValue{
			Date:  dates[end-1],
			Value: fit.beta,
		})
	}
	return out, nil
}

// alignReturns inner-joins two ascending return series on date.
func alignReturns(a, b []domain.DatedValue) ([]time.Time, []float64, []float64) {
	byDate := make(map[time.Time]float64, len(b))
	for _, v := range b {
		byDate[v.Date] = v.Value
	}
	dates := []time.Time{}
	x := []float64{}
	y := []float64{}
	for _, v := range a {
		other, ok := byDate[v.Date]
		if !ok || math.IsNaN(v.Value) || math.IsNaN(other) {
			continue
		}
		dates = append(dates, v.Date)
		x = append(x, v.Value)
		y = append(y, other)
	}
	return dates, x, y
}

func dailyValues(series []domain.DatedValue) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = v.Value
	}
	return out
}

// ComputePerformance bundles returns, beta against the primary asset and
// drawdowns for one symbol. Any part without enough history is nil.
func ComputePerformance(
	symbol string,
	prices []domain.DatedValue,
	drawdownPrices []domain.DatedValue,
	primaryPrices []domain.DatedValue,
	cfg Config,
) (*domain.PerformanceReport, error) {
	returns, err := ComputeReturns(symbol, prices, cfg)
	if err != nil {
		return nil, err
	}

	var beta *domain.BetaMetrics
	if primaryPrices != nil {
		beta, err = ComputeBeta(DailyReturns(primaryPrices), DailyReturns(prices), cfg)
		if err != nil {
			return nil, err
		}
	}

	return &domain.PerformanceReport{
		Returns:   returns,
		Beta:      beta,
		Drawdowns: ComputeDrawdowns(drawdownPrices, cfg),
	}, nil
}
