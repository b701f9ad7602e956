package service

import (
	"btctreasury/internal/ingest"
	"btctreasury/internal/logger"
	"btctreasury/internal/metrics"
	"btctreasury/internal/repository"
	"btctreasury/internal/util"
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultIngestStart is the first close fetched for a symbol with no
// stored history.
var defaultIngestStart = util.NewDate(2020, 8, 1)

type IngestService interface {
	// IngestPrices fetches daily closes for ticker and stores them under
	// symbol. A zero start resumes from the last stored close.
	IngestPrices(ctx context.Context, symbol, ticker string, start, end time.Time) (int, error)
	// IngestConfigured refreshes the primary and equity symbols.
	IngestConfigured(ctx context.Context, end time.Time) error
	ImportLots(ctx context.Context, r io.Reader) (int, error)
	ImportFinancials(ctx context.Context, r io.Reader) (int, error)
}

type ingestServiceHandler struct {
	PriceSource           ingest.PriceSource
	MarketPriceRepository repository.MarketPriceRepository
	LotRepository         repository.AcquisitionLotRepository
	FinancialsRepository  repository.CompanyFinancialsRepository
	Symbols               util.SymbolsConfig
}

func NewIngestService(
	priceSource ingest.PriceSource,
	marketPriceRepository repository.MarketPriceRepository,
	lotRepository repository.AcquisitionLotRepository,
	financialsRepository repository.CompanyFinancialsRepository,
	symbols util.SymbolsConfig,
) IngestService {
	return ingestServiceHandler{
		PriceSource:           priceSource,
		MarketPriceRepository: marketPriceRepository,
		LotRepository:         lotRepository,
		FinancialsRepository:  financialsRepository,
		Symbols:               symbols,
	}
}

func (h ingestServiceHandler) IngestPrices(ctx context.Context, symbol, ticker string, start, end time.Time) (int, error) {
	if start.IsZero() {
		latest, err := h.MarketPriceRepository.LatestDate(nil, symbol)
		if err != nil {
			return 0, err
		}
		start = defaultIngestStart
		if latest != nil {
			start = latest.AddDate(0, 0, 1)
		}
	}
	if end.Before(start) {
		return 0, nil
	}

	bars, err := h.PriceSource.DailyBars(ticker, start, end)
	if err != nil {
		return 0, err
	}
	observations := ingest.ToObservations(symbol, bars)
	if err := h.MarketPriceRepository.AddMany(nil, observations); err != nil {
		return 0, err
	}

	metrics.IngestedRows.WithLabelValues("market_price").Add(float64(len(observations)))
	logger.FromContext(ctx).Infow("ingested prices",
		"symbol", symbol,
		"ticker", ticker,
		"rows", len(observations),
		"dropped", len(bars)-len(observations),
	)

	return len(observations), nil
}

func (h ingestServiceHandler) IngestConfigured(ctx context.Context, end time.Time) error {
	g, gctx := errgroup.WithContext(ctx)
	targets := map[string]string{
		h.Symbols.Primary: h.Symbols.PrimaryTicker,
		h.Symbols.Equity:  h.Symbols.EquityTicker,
	}
	for symbol, ticker := range targets {
		g.Go(func() error {
			if _, err := h.IngestPrices(gctx, symbol, ticker, time.Time{}, end); err != nil {
				return fmt.Errorf("failed to ingest %s: %w", symbol, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (h ingestServiceHandler) ImportLots(ctx context.Context, r io.Reader) (int, error) {
	lots, err := ingest.ParseLots(r)
	if err != nil {
		return 0, err
	}
	if err := h.LotRepository.AddMany(nil, lots); err != nil {
		return 0, err
	}

	metrics.IngestedRows.WithLabelValues("acquisition_lot").Add(float64(len(lots)))
	logger.FromContext(ctx).Infof("imported %d acquisition lots", len(lots))
	return len(lots), nil
}

func (h ingestServiceHandler) ImportFinancials(ctx context.Context, r io.Reader) (int, error) {
	financials, err := ingest.ParseFinancials(r)
	if err != nil {
		return 0, err
	}
	if err := h.FinancialsRepository.UpsertMany(nil, financials); err != nil {
		return 0, err
	}

	metrics.IngestedRows.WithLabelValues("company_financials").Add(float64(len(financials)))
	logger.FromContext(ctx).Infof("imported %d company financials records", len(financials))
	return len(financials), nil
}
