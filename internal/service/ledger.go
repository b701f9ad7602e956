package service

import (
	"btctreasury/internal/calculator"
	"btctreasury/internal/domain"
	"btctreasury/internal/repository"
	"btctreasury/internal/util"
	"fmt"
	"time"
)

// ledgerLoader reads everything the valuation pipelines need for one date
// and hands it to calculator as immutable point-in-time histories.
type ledgerLoader struct {
	LotRepository         repository.AcquisitionLotRepository
	FinancialsRepository  repository.CompanyFinancialsRepository
	MarketPriceRepository repository.MarketPriceRepository
	Symbols               util.SymbolsConfig
}

// historyStart is early enough that every "latest close on or before"
// lookup sees the full ledger.
var historyStart = util.NewDate(2009, 1, 3)

func (l ledgerLoader) load(asOf time.Time, priceStart time.Time) (calculator.Ledger, error) {
	lots, err := l.LotRepository.List(nil, &asOf)
	if err != nil {
		return calculator.Ledger{}, err
	}
	financials, err := l.FinancialsRepository.List(nil, &asOf)
	if err != nil {
		return calculator.Ledger{}, err
	}
	prices, err := l.MarketPriceRepository.List(nil, []string{l.Symbols.Primary, l.Symbols.Equity}, priceStart, asOf)
	if err != nil {
		return calculator.Ledger{}, err
	}

	return calculator.NewLedger(lots, financials, prices, l.Symbols.Primary, l.Symbols.Equity), nil
}

func insufficient(what string, asOf time.Time) error {
	return domain.InsufficientDataError{What: fmt.Sprintf("%s as of %s", what, asOf.Format(time.DateOnly))}
}
