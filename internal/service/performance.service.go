package service

import (
	"btctreasury/internal/calculator"
	"btctreasury/internal/domain"
	"btctreasury/internal/logger"
	"btctreasury/internal/repository"
	"btctreasury/internal/util"
	"context"
	"fmt"
	"strings"
	"time"
)

type PerformanceService interface {
	// Performance reports returns and drawdowns for symbol, plus beta
	// against the primary asset unless symbol is the primary asset.
	Performance(ctx context.Context, symbol string, asOf time.Time) (*domain.PerformanceReport, error)
}

// RiskFreeRateSource supplies an annualised rate for the Sharpe ratio.
type RiskFreeRateSource interface {
	RiskFreeRate(ctx context.Context, asOf time.Time) (float64, error)
}

type performanceServiceHandler struct {
	MarketPriceRepository repository.MarketPriceRepository
	// RiskFreeRates is optional; without it the configured rate is used
	RiskFreeRates RiskFreeRateSource
	Analytics     util.AnalyticsConfig
	PrimarySymbol string
}

func NewPerformanceService(
	marketPriceRepository repository.MarketPriceRepository,
	riskFreeRates RiskFreeRateSource,
	cfg util.Config,
) PerformanceService {
	return performanceServiceHandler{
		MarketPriceRepository: marketPriceRepository,
		RiskFreeRates:         riskFreeRates,
		Analytics:             cfg.Analytics,
		PrimarySymbol:         cfg.Symbols.Primary,
	}
}

// riskFreeRate falls back to the configured rate when the source fails, so
// a rate outage never blocks the report.
func (h performanceServiceHandler) riskFreeRate(ctx context.Context, asOf time.Time) float64 {
	if h.RiskFreeRates == nil {
		return h.Analytics.RiskFreeRate
	}
	rate, err := h.RiskFreeRates.RiskFreeRate(ctx, asOf)
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to get risk free rate for %s, using %f: %v", asOf.Format(time.DateOnly), h.Analytics.RiskFreeRate, err)
		return h.Analytics.RiskFreeRate
	}
	return rate
}

func (h performanceServiceHandler) Performance(ctx context.Context, symbol string, asOf time.Time) (*domain.PerformanceReport, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.InvalidInputError{Field: "symbol", Reason: "must not be empty"}
	}

	returnsStart := asOf.AddDate(0, 0, -h.Analytics.ReturnsLookbackDays)
	drawdownStart := asOf.AddDate(0, 0, -h.Analytics.DrawdownLookbackDays)
	start := returnsStart
	if drawdownStart.Before(start) {
		start = drawdownStart
	}

	symbols := []string{symbol}
	includeBeta := symbol != strings.ToUpper(h.PrimarySymbol)
	if includeBeta {
		symbols = append(symbols, h.PrimarySymbol)
	}
	prices, err := h.MarketPriceRepository.List(nil, symbols, start, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices for %s: %w", symbol, err)
	}

	history := calculator.NewPriceHistory(symbol, prices)
	var primary []domain.DatedValue
	if includeBeta {
		primary = calculator.NewPriceHistory(h.PrimarySymbol, prices).Between(returnsStart, asOf)
	}

	cfg := calculator.ConfigFrom(h.Analytics)
	cfg.RiskFreeRate = h.riskFreeRate(ctx, asOf)

	report, err := calculator.ComputePerformance(
		symbol,
		history.Between(returnsStart, asOf),
		history.Between(drawdownStart, asOf),
		primary,
		cfg,
	)
	if err != nil {
		return nil, err
	}
	if report.Returns == nil && report.Drawdowns == nil {
		return nil, insufficient(fmt.Sprintf("price history for %s", symbol), asOf)
	}

	return report, nil
}
