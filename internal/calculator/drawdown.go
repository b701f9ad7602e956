package calculator

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"math"
	"sort"
)

// ComputeDrawdowns measures each close against the running maximum. It
// returns nil for fewer than two closes.
//
// The max drawdown starts at the highest close up to and including its
// trough. Top drawdowns are strict local minima of the drawdown series
// deeper than cfg.DrawdownThreshold, each walked back to the close where the
// decline began, most severe first.
func ComputeDrawdowns(prices []domain.DatedValue, cfg Config) *domain.DrawdownMetrics {
	if len(prices) < 2 {
		return nil
	}

	series := make([]domain.DatedValue, len(prices))
	runningMax := math.Inf(-1)
	trough := 0
	for i, p := range prices {
		runningMax = math.Max(runningMax, p.Value)
		series[i] = domain.DatedValue{
			Date:  p.Date,
			Value: (p.Value - runningMax) / runningMax,
		}
		if series[i].Value < series[trough].Value {
			trough = i
		}
	}

	peak := 0
	for i := 1; i <= trough; i++ {
		if prices[i].Value > prices[peak].Value {
			peak = i
		}
	}

	return &domain.DrawdownMetrics{
		Series:          series,
		MaxDrawdown:     newDrawdown(prices, series, peak, trough),
		CurrentDrawdown: series[len(series)-1].Value,
		TopDrawdowns:    topDrawdowns(prices, series, cfg.DrawdownThreshold, cfg.TopDrawdowns),
	}
}

func topDrawdowns(prices, series []domain.DatedValue, threshold float64, n int) []domain.Drawdown {
	out := []domain.Drawdown{}
	for i := 1; i < len(series)-1; i++ {
		v := series[i].Value
		if !(v < series[i-1].Value && v < series[i+1].Value) || v >= -threshold {
			continue
		}
		peak := i - 1
		for peak > 0 && prices[peak].Value < prices[peak-1].Value {
			peak--
		}
		out = append(out, newDrawdown(prices, series, peak, i))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func newDrawdown(prices, series []domain.DatedValue, peak, trough int) domain.Drawdown {
	return domain.Drawdown{
		PeakDate:     prices[peak].Date,
		TroughDate:   prices[trough].Date,
		Value:        series[trough].Value,
		DurationDays: util.DaysBetween(prices[peak].Date, prices[trough].Date),
	}
}
