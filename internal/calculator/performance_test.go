package calculator

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func dailySeries(start time.Time, values ...float64) []domain.DatedValue {
	out := make([]domain.DatedValue, len(values))
	for i, v := range values {
		out[i] = domain.DatedValue{Date: start.AddDate(0, 0, i), Value: v}
	}
	return out
}

func TestComputeReturns(t *testing.T) {
	cfg := DefaultConfig()
	start := util.NewDate(2024, 1, 1)

	t.Run("up then down", func(t *testing.T) {
		out, err := ComputeReturns("BTC", dailySeries(start, 100, 110, 99), cfg)
		require.NoError(t, err)
		require.Len(t, out.DailyReturns, 2)
		require.InDelta(t, 0.1, out.DailyReturns[0].Value, 1e-12)
		require.InDelta(t, -0.1, out.DailyReturns[1].Value, 1e-12)
		require.InDelta(t, -0.01, out.CumulativeReturn, 1e-12)
		require.InDelta(t, 0, out.AnnualizedReturn, 1e-9)
		require.InDelta(t, math.Sqrt(0.02)*math.Sqrt(252), out.Volatility, 1e-9)
		require.NotNil(t, out.SharpeRatio)
	})

	t.Run("risk free rate lowers sharpe", func(t *testing.T) {
		prices := dailySeries(start, 100, 101, 103, 102, 105)
		base, err := ComputeReturns("BTC", prices, cfg)
		require.NoError(t, err)
		c := cfg
		c.RiskFreeRate = 0.05
		withRate, err := ComputeReturns("BTC", prices, c)
		require.NoError(t, err)
		require.InDelta(t, *base.SharpeRatio-0.05/base.Volatility, *withRate.SharpeRatio, 1e-12)
	})

	t.Run("flat prices have no sharpe", func(t *testing.T) {
		out, err := ComputeReturns("BTC", dailySeries(start, 100, 100, 100), cfg)
		require.NoError(t, err)
		require.Equal(t, 0.0, out.Volatility)
		require.Nil(t, out.SharpeRatio)
	})

	t.Run("two closes give one return and no volatility", func(t *testing.T) {
		out, err := ComputeReturns("BTC", dailySeries(start, 100, 120), cfg)
		require.NoError(t, err)
		require.Equal(t, 0.0, out.Volatility)
		require.Nil(t, out.SharpeRatio)
		require.InDelta(t, 0.2, out.CumulativeReturn, 1e-12)
	})

	t.Run("one close is absent", func(t *testing.T) {
		out, err := ComputeReturns("BTC", dailySeries(start, 100), cfg)
		require.NoError(t, err)
		require.Nil(t, out)
	})
}

func linearReturns(n int, alpha, beta float64) ([]domain.DatedValue, []domain.DatedValue) {
	start := util.NewDate(2024, 1, 1)
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = 0.02 * math.Sin(float64(i)*1.3)
		y[i] = alpha + beta*x[i]
	}
	return dailySeries(start, x...), dailySeries(start, y...)
}

func TestComputeBeta(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("exact linear relation", func(t *testing.T) {
		x, y := linearReturns(40, 0.001, 2)
		out, err := ComputeBeta(x, y, cfg)
		require.NoError(t, err)
		require.InDelta(t, 2, out.Beta, 1e-9)
		require.InDelta(t, 0.001*252, out.Alpha, 1e-7)
		require.InDelta(t, 1, out.Correlation, 1e-9)
		require.InDelta(t, 1, out.RSquared, 1e-9)
		require.Equal(t, 40, out.Observations)

		require.Len(t, out.RollingBeta, 1)
		rolling := out.RollingBeta[30]
		require.Len(t, rolling, 11)
		require.Equal(t, x[29].Date, rolling[0].Date)
		for _, v := range rolling {
			require.InDelta(t, 2, v.Value, 1e-9)
		}
	})

	t.Run("long history fills every window", func(t *testing.T) {
		x, y := linearReturns(120, 0, 1.5)
		out, err := ComputeBeta(x, y, cfg)
		require.NoError(t, err)
		require.Len(t, out.RollingBeta[30], 91)
		require.Len(t, out.RollingBeta[90], 31)
	})

	t.Run("only shared dates are paired", func(t *testing.T) {
		x, y := linearReturns(15, 0, 1.5)
		out, err := ComputeBeta(x, y[:9], cfg)
		require.NoError(t, err)
		require.Nil(t, out)

		out, err = ComputeBeta(x, y[3:], cfg)
		require.NoError(t, err)
		require.Equal(t, 12, out.Observations)
		require.Nil(t, out.RollingBeta)
	})

	t.Run("flat primary returns are absent", func(t *testing.T) {
		x := dailySeries(util.NewDate(2024, 1, 1), make([]float64, 20)...)
		_, y := linearReturns(20, 0, 1)
		out, err := ComputeBeta(x, y, cfg)
		require.NoError(t, err)
		require.Nil(t, out)
	})
}

func TestComputePerformance(t *testing.T) {
	start := util.NewDate(2024, 1, 1)
	prices := make([]float64, 60)
	primary := make([]float64, 60)
	for i := range prices {
		primary[i] = 40_000 * (1 + 0.05*math.Sin(float64(i)/3))
		prices[i] = 400 * (1 + 0.1*math.Sin(float64(i)/3))
	}

	out, err := ComputePerformance("MSTR", dailySeries(start, prices...), dailySeries(start, prices...), dailySeries(start, primary...), DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, out.Returns)
	require.NotNil(t, out.Beta)
	require.NotNil(t, out.Drawdowns)
	require.True(t, out.Beta.Beta > 1)

	out, err = ComputePerformance("MSTR", dailySeries(start, prices...), nil, nil, DefaultConfig())
	require.NoError(t, err)
	require.Nil(t, out.Beta)
	require.Nil(t, out.Drawdowns)
}
