package service

import (
	"btctreasury/internal/calculator"
	"btctreasury/internal/domain"
	"btctreasury/internal/logger"
	"btctreasury/internal/metrics"
	"btctreasury/internal/repository"
	"btctreasury/internal/util"
	"context"
	"fmt"
	"time"
)

type NavService interface {
	NAV(ctx context.Context, asOf time.Time) (*domain.NAVMetrics, error)
	Tranches(ctx context.Context, asOf time.Time) (*domain.TrancheAnalysis, error)
	Summary(ctx context.Context, asOf time.Time) (*domain.TreasurySummary, error)
	Snapshot(ctx context.Context, asOf time.Time) (*domain.DailySnapshot, error)
	History(ctx context.Context, start, end time.Time) ([]domain.DailySnapshot, error)
}

type navServiceHandler struct {
	ledgerLoader
	PositionRepository repository.UserPositionRepository
	SnapshotRepository repository.DailySnapshotRepository
}

func NewNavService(
	lotRepository repository.AcquisitionLotRepository,
	financialsRepository repository.CompanyFinancialsRepository,
	marketPriceRepository repository.MarketPriceRepository,
	positionRepository repository.UserPositionRepository,
	snapshotRepository repository.DailySnapshotRepository,
	symbols util.SymbolsConfig,
) NavService {
	return navServiceHandler{
		ledgerLoader: ledgerLoader{
			LotRepository:         lotRepository,
			FinancialsRepository:  financialsRepository,
			MarketPriceRepository: marketPriceRepository,
			Symbols:               symbols,
		},
		PositionRepository: positionRepository,
		SnapshotRepository: snapshotRepository,
	}
}

func (h navServiceHandler) NAV(ctx context.Context, asOf time.Time) (*domain.NAVMetrics, error) {
	ledger, err := h.load(asOf, historyStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	nav := calculator.ComputeNAV(ledger, asOf)
	if nav == nil {
		logger.FromContext(ctx).Warnf("no nav for %s: lots=%d", asOf.Format(time.DateOnly), ledger.Lots.Len())
		return nil, insufficient("nav", asOf)
	}
	return nav, nil
}

func (h navServiceHandler) Tranches(ctx context.Context, asOf time.Time) (*domain.TrancheAnalysis, error) {
	ledger, err := h.load(asOf, historyStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	out := calculator.AnalyzeTranches(ledger, asOf)
	if out == nil {
		return nil, insufficient("tranches", asOf)
	}
	return out, nil
}

// Summary runs the valuation pipelines over one ledger read. Each part is
// independent: a missing equity close leaves Nav and Position nil but still
// returns the tranche view.
func (h navServiceHandler) Summary(ctx context.Context, asOf time.Time) (*domain.TreasurySummary, error) {
	profile := domain.GetProfile(ctx)

	_, endSpan := profile.StartNewSpan("load ledger")
	ledger, err := h.load(asOf, historyStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	active, err := h.PositionRepository.GetActive(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get active position: %w", err)
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("compute summary")
	defer endSpan()

	nav := calculator.ComputeNAV(ledger, asOf)
	out := &domain.TreasurySummary{
		AsOf:     asOf,
		Nav:      nav,
		Tranches: calculator.AnalyzeTranches(ledger, asOf),
		Position: calculator.ComputePositionMetrics(active, nav),
	}
	if out.Nav == nil && out.Tranches == nil {
		return nil, insufficient("summary", asOf)
	}

	return out, nil
}

func (h navServiceHandler) Snapshot(ctx context.Context, asOf time.Time) (*domain.DailySnapshot, error) {
	nav, err := h.NAV(ctx, asOf)
	if err != nil {
		return nil, err
	}

	snapshot, err := h.SnapshotRepository.Upsert(nil, *nav)
	if err != nil {
		return nil, fmt.Errorf("failed to record snapshot: %w", err)
	}
	// the stored row drops the per-share and input fields
	snapshot.NAVMetrics = *nav

	if nav.PremiumToAssetNav != nil {
		metrics.SnapshotPremium.Set(*nav.PremiumToAssetNav)
	}
	logger.FromContext(ctx).Infow("recorded daily snapshot",
		"date", asOf.Format(time.DateOnly),
		"assetNav", nav.AssetNav,
		"totalQuantity", nav.TotalQuantity,
	)

	return snapshot, nil
}

func (h navServiceHandler) History(ctx context.Context, start, end time.Time) ([]domain.DailySnapshot, error) {
	if end.Before(start) {
		return nil, domain.InvalidInputError{Field: "end", Reason: "must not be before start"}
	}
	return h.SnapshotRepository.List(start, end)
}
