package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Position is a personal equity holding. At most one position is active at a
// time; see calculator.PlanActivation.
type Position struct {
	PositionID    uuid.UUID `json:"positionID"`
	Label         string    `json:"label"`
	CreatedAt     time.Time `json:"createdAt"`
	IsActive      bool      `json:"isActive"`
	Quantity      float64   `json:"quantity"`
	AvgEntryPrice float64   `json:"avgEntryPrice"`
}

// NewPosition validates a holding before it is recorded. It is created
// inactive; activation is a separate ledger transition.
func NewPosition(label string, quantity, avgEntryPrice float64, createdAt time.Time) (Position, error) {
	if label == "" {
		return Position{}, InvalidInputError{Field: "label", Reason: "must not be empty"}
	}
	if quantity <= 0 {
		return Position{}, InvalidInputError{
			Field:  "quantity",
			Reason: fmt.Sprintf("must be > 0, got %f", quantity),
		}
	}
	if avgEntryPrice < 0 {
		return Position{}, InvalidInputError{
			Field:  "avgEntryPrice",
			Reason: fmt.Sprintf("must be >= 0, got %f", avgEntryPrice),
		}
	}
	return Position{
		PositionID:    uuid.New(),
		Label:         label,
		CreatedAt:     createdAt,
		Quantity:      quantity,
		AvgEntryPrice: avgEntryPrice,
	}, nil
}

func (p Position) CostBasis() float64 {
	return p.Quantity * p.AvgEntryPrice
}

type PositionMetrics struct {
	Label            string   `json:"label"`
	Quantity         float64  `json:"quantity"`
	AvgEntryPrice    float64  `json:"avgEntryPrice"`
	CurrentPrice     float64  `json:"currentPrice"`
	CurrentValue     float64  `json:"currentValue"`
	CostBasis        float64  `json:"costBasis"`
	UnrealizedPnl    float64  `json:"unrealizedPnl"`
	UnrealizedPnlPct float64  `json:"unrealizedPnlPct"`
	ImpliedExposure  *float64 `json:"impliedExposure"`
	AssetPerShare    *float64 `json:"assetPerShare"`
}
