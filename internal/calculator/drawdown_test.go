package calculator

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestComputeDrawdowns(t *testing.T) {
	start := util.NewDate(2024, 1, 1)
	day := func(i int) domain.DatedValue {
		return domain.DatedValue{Date: start.AddDate(0, 0, i)}
	}

	t.Run("max drawdown and local minima", func(t *testing.T) {
		prices := dailySeries(start, 100, 120, 90, 110, 130, 100, 104, 80, 140)
		cfg := DefaultConfig()
		cfg.TopDrawdowns = 2

		out := ComputeDrawdowns(prices, cfg)
		require.NotNil(t, out)
		require.Len(t, out.Series, 9)
		require.Equal(t, 0.0, out.CurrentDrawdown)

		approx := cmpopts.EquateApprox(0, 1e-12)
		require.Equal(t, "", cmp.Diff(domain.Drawdown{
			PeakDate:     day(4).Date,
			TroughDate:   day(7).Date,
			Value:        80.0/130 - 1,
			DurationDays: 3,
		}, out.MaxDrawdown, approx))

		require.Equal(t, "", cmp.Diff([]domain.Drawdown{
			{
				PeakDate:     day(6).Date,
				TroughDate:   day(7).Date,
				Value:        80.0/130 - 1,
				DurationDays: 1,
			},
			{
				PeakDate:     day(1).Date,
				TroughDate:   day(2).Date,
				Value:        -0.25,
				DurationDays: 1,
			},
		}, out.TopDrawdowns, approx))
	})

	t.Run("threshold filters shallow dips", func(t *testing.T) {
		prices := dailySeries(start, 100, 97, 100, 80, 100)
		out := ComputeDrawdowns(prices, DefaultConfig())
		require.Len(t, out.TopDrawdowns, 1)
		require.InDelta(t, -0.2, out.TopDrawdowns[0].Value, 1e-12)
	})

	t.Run("backtracks through a steady decline", func(t *testing.T) {
		prices := dailySeries(start, 100, 95, 90, 85, 88)
		out := ComputeDrawdowns(prices, DefaultConfig())
		require.Len(t, out.TopDrawdowns, 1)
		require.Equal(t, day(0).Date, out.TopDrawdowns[0].PeakDate)
		require.Equal(t, day(3).Date, out.TopDrawdowns[0].TroughDate)
		require.Equal(t, 3, out.TopDrawdowns[0].DurationDays)
		require.InDelta(t, 88.0/100-1, out.CurrentDrawdown, 1e-12)
	})

	t.Run("monotonic rise has no drawdown", func(t *testing.T) {
		out := ComputeDrawdowns(dailySeries(start, 1, 2, 3), DefaultConfig())
		require.Equal(t, 0.0, out.MaxDrawdown.Value)
		require.Equal(t, 0, out.MaxDrawdown.DurationDays)
		require.Empty(t, out.TopDrawdowns)
	})

	t.Run("too short", func(t *testing.T) {
		require.Nil(t, ComputeDrawdowns(dailySeries(start, 1), DefaultConfig()))
	})
}
