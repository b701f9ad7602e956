package calculator

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"

	"github.com/google/uuid"
)

// ComputePositionMetrics marks a personal equity position to the equity
// close in nav. Returns nil without a position or a valuation.
func ComputePositionMetrics(position *domain.Position, nav *domain.NAVMetrics) *domain.PositionMetrics {
	if position == nil || nav == nil {
		return nil
	}

	currentValue := position.Quantity * nav.EquityPrice
	costBasis := position.CostBasis()
	pnl := currentValue - costBasis

	pnlPct := 0.0
	if costBasis > 0 {
		pnlPct = pnl / costBasis * 100
	}

	out := &domain.PositionMetrics{
		Label:            position.Label,
		Quantity:         position.Quantity,
		AvgEntryPrice:    position.AvgEntryPrice,
		CurrentPrice:     nav.EquityPrice,
		CurrentValue:     currentValue,
		CostBasis:        costBasis,
		UnrealizedPnl:    pnl,
		UnrealizedPnlPct: pnlPct,
		AssetPerShare:    nav.AssetPerShare,
	}
	if nav.AssetPerShare != nil {
		out.ImpliedExposure = util.FloatPointer(position.Quantity * *nav.AssetPerShare)
	}
	return out
}

// PlanActivation returns the ids of currently active positions that must be
// deactivated for activate to become the single active one. The caller
// applies the plan atomically.
func PlanActivation(existing []domain.Position, activate uuid.UUID) []uuid.UUID {
	out := []uuid.UUID{}
	for _, p := range existing {
		if p.IsActive && p.PositionID != activate {
			out = append(out, p.PositionID)
		}
	}
	return out
}

// ActivePosition picks the active position, preferring the most recently
// created if the store ever holds more than one.
func ActivePosition(positions []domain.Position) *domain.Position {
	var out *domain.Position
	for i := range positions {
		p := positions[i]
		if !p.IsActive {
			continue
		}
		if out == nil || p.CreatedAt.After(out.CreatedAt) {
			out = &p
		}
	}
	return out
}
