package domain

import (
	"time"

	"github.com/google/uuid"
)

// NAVMetrics is the point-in-time valuation of the treasury against the
// company's market capitalisation. Pointer fields are absent when an input
// they depend on is missing or the ratio is undefined.
type NAVMetrics struct {
	AsOf                    time.Time `json:"asOf"`
	TotalQuantity           float64   `json:"totalQuantity"`
	PrimaryPrice            float64   `json:"primaryPrice"`
	EquityPrice             float64   `json:"equityPrice"`
	AssetNav                float64   `json:"assetNav"`
	BalanceSheetNav         *float64  `json:"balanceSheetNav"`
	MarketCap               *float64  `json:"marketCap"`
	AssetPerShare           *float64  `json:"assetPerShare"`
	BalanceSheetNavPerShare *float64  `json:"balanceSheetNavPerShare"`
	PremiumToAssetNav       *float64  `json:"premiumToAssetNav"`
	PremiumToBalanceNav     *float64  `json:"premiumToBalanceNav"`
	SharesOutstanding       *float64  `json:"sharesOutstanding"`
	Cash                    *float64  `json:"cash"`
	DebtMarket              *float64  `json:"debtMarket"`
}

// DailySnapshot is what the ledger store keeps per date.
type DailySnapshot struct {
	DailySnapshotID uuid.UUID `json:"dailySnapshotID"`
	NAVMetrics
}

type TrancheSummary struct {
	LotID            uuid.UUID `json:"lotID"`
	Date             time.Time `json:"date"`
	QuantityAcquired float64   `json:"quantityAcquired"`
	AmountSpent      float64   `json:"amountSpent"`
	SourceType       string    `json:"sourceType"`
	ImpliedUnitPrice float64   `json:"impliedUnitPrice"`
	CurrentPrice     float64   `json:"currentPrice"`
	CurrentValue     float64   `json:"currentValue"`
	UnrealizedPnl    float64   `json:"unrealizedPnl"`
	UnrealizedPnlPct float64   `json:"unrealizedPnlPct"`
	AgeDays          int       `json:"ageDays"`
	Notes            *string   `json:"notes,omitempty"`
}

type PortfolioSummary struct {
	TotalQuantity    float64  `json:"totalQuantity"`
	TotalSpent       float64  `json:"totalSpent"`
	CurrentValue     float64  `json:"currentValue"`
	UnrealizedPnl    float64  `json:"unrealizedPnl"`
	UnrealizedPnlPct *float64 `json:"unrealizedPnlPct"`
	WeightedAvgCost  *float64 `json:"weightedAvgCost"`
	LotCount         int      `json:"lotCount"`
}

type TrancheAnalysis struct {
	Tranches  []TrancheSummary `json:"tranches"`
	Portfolio PortfolioSummary `json:"portfolio"`
}

// TreasurySummary bundles the independent valuation pipelines for one date.
type TreasurySummary struct {
	AsOf     time.Time        `json:"asOf"`
	Nav      *NAVMetrics      `json:"nav"`
	Tranches *TrancheAnalysis `json:"tranches"`
	Position *PositionMetrics `json:"position"`
}
