package ingest

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// LotRow is one line of an acquisition ledger export.
type LotRow struct {
	Date             string  `csv:"date"`
	QuantityAcquired float64 `csv:"quantity_acquired"`
	AmountSpent      float64 `csv:"amount_spent"`
	SourceType       string  `csv:"source_type"`
	Notes            string  `csv:"notes"`
}

// FinancialsRow keeps numbers as text so blank cells stay absent rather
// than becoming zero.
type FinancialsRow struct {
	Date              string `csv:"date"`
	SharesOutstanding string `csv:"shares_outstanding"`
	Cash              string `csv:"cash"`
	DebtFace          string `csv:"debt_face"`
	DebtMarket        string `csv:"debt_market"`
}

// ParseLots validates every row and computes implied unit prices once.
// The first bad row fails the whole file.
func ParseLots(r io.Reader) ([]domain.AcquisitionLot, error) {
	rows := []*LotRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse lots csv: %w", err)
	}

	out := make([]domain.AcquisitionLot, 0, len(rows))
	for i, row := range rows {
		date, err := util.ParseDate(strings.TrimSpace(row.Date))
		if err != nil {
			return nil, fmt.Errorf("failed to parse date on lot row %d: %w", i+1, err)
		}
		var notes *string
		if n := strings.TrimSpace(row.Notes); n != "" {
			notes = &n
		}
		sourceType := strings.TrimSpace(row.SourceType)
		if sourceType == "" {
			sourceType = domain.LotSourceCash
		}
		lot, err := domain.NewAcquisitionLot(date, row.QuantityAcquired, row.AmountSpent, sourceType, notes)
		if err != nil {
			return nil, fmt.Errorf("lot row %d: %w", i+1, err)
		}
		out = append(out, lot)
	}

	return out, nil
}

func ParseFinancials(r io.Reader) ([]domain.CompanyFinancials, error) {
	rows := []*FinancialsRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse financials csv: %w", err)
	}

	out := make([]domain.CompanyFinancials, 0, len(rows))
	for i, row := range rows {
		date, err := util.ParseDate(strings.TrimSpace(row.Date))
		if err != nil {
			return nil, fmt.Errorf("failed to parse date on financials row %d: %w", i+1, err)
		}
		f := domain.CompanyFinancials{Date: date}
		fields := []struct {
			name string
			raw  string
			dst  **float64
		}{
			{"shares_outstanding", row.SharesOutstanding, &f.SharesOutstanding},
			{"cash", row.Cash, &f.Cash},
			{"debt_face", row.DebtFace, &f.DebtFace},
			{"debt_market", row.DebtMarket, &f.DebtMarket},
		}
		for _, field := range fields {
			v, err := parseOptionalFloat(field.raw)
			if err != nil {
				return nil, fmt.Errorf("financials row %d: %w", i+1, domain.InvalidInputError{
					Field:  field.name,
					Reason: err.Error(),
				})
			}
			*field.dst = v
		}
		out = append(out, f)
	}

	return out, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
