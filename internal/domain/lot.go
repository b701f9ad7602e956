package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// source types seen in treasury filings
const (
	LotSourceConvertibleNotes = "convertible_notes"
	LotSourceEquityRaise      = "equity_raise"
	LotSourceATM              = "atm"
	LotSourceCash             = "cash"
)

// AcquisitionLot is one discrete purchase of the treasury asset. It is
// immutable once recorded; ImpliedUnitPrice is fixed at creation.
type AcquisitionLot struct {
	ID               uuid.UUID `json:"id"`
	Date             time.Time `json:"date"`
	QuantityAcquired float64   `json:"quantityAcquired"`
	AmountSpent      float64   `json:"amountSpent"`
	SourceType       string    `json:"sourceType"`
	ImpliedUnitPrice float64   `json:"impliedUnitPrice"`
	Notes            *string   `json:"notes,omitempty"`
}

// NewAcquisitionLot validates the inputs and computes the implied unit price
// once. Zero spend is allowed (gifted or transferred-in coins); zero quantity
// is not.
func NewAcquisitionLot(date time.Time, quantity, spent float64, sourceType string, notes *string) (AcquisitionLot, error) {
	if quantity <= 0 {
		return AcquisitionLot{}, InvalidInputError{
			Field:  "quantityAcquired",
			Reason: fmt.Sprintf("must be > 0, got %f", quantity),
		}
	}
	if spent < 0 {
		return AcquisitionLot{}, InvalidInputError{
			Field:  "amountSpent",
			Reason: fmt.Sprintf("must be >= 0, got %f", spent),
		}
	}
	return AcquisitionLot{
		ID:               uuid.New(),
		Date:             date,
		QuantityAcquired: quantity,
		AmountSpent:      spent,
		SourceType:       sourceType,
		ImpliedUnitPrice: spent / quantity,
		Notes:            notes,
	}, nil
}

// CompanyFinancials is the balance sheet snapshot effective from Date until
// the next record.
type CompanyFinancials struct {
	Date              time.Time `json:"date"`
	SharesOutstanding *float64  `json:"sharesOutstanding"`
	Cash              *float64  `json:"cash"`
	DebtFace          *float64  `json:"debtFace"`
	DebtMarket        *float64  `json:"debtMarket"`
}
