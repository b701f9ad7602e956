package calculator

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestComputePositionMetrics(t *testing.T) {
	position := &domain.Position{
		Label:         "brokerage",
		IsActive:      true,
		Quantity:      100,
		AvgEntryPrice: 320,
	}

	t.Run("with asset per share", func(t *testing.T) {
		nav := &domain.NAVMetrics{
			EquityPrice:   400,
			AssetPerShare: util.FloatPointer(0.5),
		}
		out := ComputePositionMetrics(position, nav)
		require.Equal(t, "", cmp.Diff(&domain.PositionMetrics{
			Label:            "brokerage",
			Quantity:         100,
			AvgEntryPrice:    320,
			CurrentPrice:     400,
			CurrentValue:     40_000,
			CostBasis:        32_000,
			UnrealizedPnl:    8_000,
			UnrealizedPnlPct: 25,
			ImpliedExposure:  util.FloatPointer(50),
			AssetPerShare:    util.FloatPointer(0.5),
		}, out))
	})

	t.Run("without shares outstanding", func(t *testing.T) {
		out := ComputePositionMetrics(position, &domain.NAVMetrics{EquityPrice: 400})
		require.Nil(t, out.ImpliedExposure)
		require.Nil(t, out.AssetPerShare)
	})

	t.Run("zero entry price", func(t *testing.T) {
		p := *position
		p.AvgEntryPrice = 0
		out := ComputePositionMetrics(&p, &domain.NAVMetrics{EquityPrice: 400})
		require.Equal(t, 0.0, out.UnrealizedPnlPct)
	})

	t.Run("absent inputs", func(t *testing.T) {
		require.Nil(t, ComputePositionMetrics(nil, &domain.NAVMetrics{}))
		require.Nil(t, ComputePositionMetrics(position, nil))
	})
}

func TestPlanActivation(t *testing.T) {
	a := domain.Position{PositionID: uuid.New(), IsActive: true}
	b := domain.Position{PositionID: uuid.New(), IsActive: false}
	c := domain.Position{PositionID: uuid.New(), IsActive: true}

	t.Run("deactivates every other active position", func(t *testing.T) {
		out := PlanActivation([]domain.Position{a, b, c}, b.PositionID)
		require.Equal(t, []uuid.UUID{a.PositionID, c.PositionID}, out)
	})

	t.Run("reactivating the active one is a no-op", func(t *testing.T) {
		out := PlanActivation([]domain.Position{a, b}, a.PositionID)
		require.Empty(t, out)
	})
}

func TestActivePosition(t *testing.T) {
	older := domain.Position{PositionID: uuid.New(), IsActive: true, CreatedAt: time.Unix(100, 0)}
	newer := domain.Position{PositionID: uuid.New(), IsActive: true, CreatedAt: time.Unix(200, 0)}
	inactive := domain.Position{PositionID: uuid.New(), CreatedAt: time.Unix(300, 0)}

	require.Nil(t, ActivePosition([]domain.Position{inactive}))
	require.Equal(t, newer.PositionID, ActivePosition([]domain.Position{older, inactive, newer}).PositionID)
}
