// Package risk summarises simulated terminal prices as return distributions:
// value at risk, expected shortfall, moments and percentiles.
package risk

import (
	"btctreasury/internal/domain"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// ComputeRisk turns terminal prices into simple returns against
// initialPrice and summarises them. VaR and CVaR are reported as positive
// loss magnitudes at 95% and 99% confidence.
func ComputeRisk(terminalPrices []float64, initialPrice float64) (domain.RiskSummary, error) {
	if len(terminalPrices) == 0 {
		return domain.RiskSummary{}, domain.InvalidInputError{Field: "terminalPrices", Reason: "must not be empty"}
	}
	if !(initialPrice > 0) || math.IsInf(initialPrice, 0) {
		return domain.RiskSummary{}, domain.InvalidInputError{
			Field:  "initialPrice",
			Reason: fmt.Sprintf("must be a finite value > 0, got %v", initialPrice),
		}
	}

	returns := make([]float64, len(terminalPrices))
	for i, p := range terminalPrices {
		returns[i] = (p - initialPrice) / initialPrice
	}
	return summarizeReturns(returns)
}

// ComputePortfolioRisk values a holding of quantity units at every terminal
// price and summarises the resulting value distribution.
func ComputePortfolioRisk(terminalPrices []float64, initialPrice, quantity float64) (domain.RiskSummary, error) {
	if !(quantity > 0) {
		return domain.RiskSummary{}, domain.InvalidInputError{
			Field:  "quantity",
			Reason: fmt.Sprintf("must be > 0, got %v", quantity),
		}
	}
	values := make([]float64, len(terminalPrices))
	for i, p := range terminalPrices {
		values[i] = quantity * p
	}
	return ComputeRisk(values, quantity*initialPrice)
}

// ComputeHoldingsImpact values quantity units of the primary asset at the
// mean, median, 5th and 95th percentile terminal price.
func ComputeHoldingsImpact(terminalPrices []float64, initialPrice, quantity, totalCost float64) (*domain.HoldingsImpact, error) {
	if len(terminalPrices) == 0 {
		return nil, domain.InvalidInputError{Field: "terminalPrices", Reason: "must not be empty"}
	}
	if !(quantity > 0) {
		return nil, domain.InvalidInputError{Field: "quantity", Reason: fmt.Sprintf("must be > 0, got %v", quantity)}
	}
	sorted := append([]float64{}, terminalPrices...)
	sort.Float64s(sorted)

	mean, err := stats.Mean(sorted)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean terminal price: %w", err)
	}
	meanValue := quantity * mean
	medianValue := quantity * Percentile(sorted, 50)

	return &domain.HoldingsImpact{
		Quantity:       quantity,
		TotalCost:      totalCost,
		CurrentValue:   quantity * initialPrice,
		MeanValue:      meanValue,
		MedianValue:    medianValue,
		P5Value:        quantity * Percentile(sorted, 5),
		P95Value:       quantity * Percentile(sorted, 95),
		MeanGainLoss:   meanValue - totalCost,
		MedianGainLoss: medianValue - totalCost,
	}, nil
}

// VarCvar returns the loss magnitudes at the given confidence level (0.95
// means the worst 5% of outcomes). CVaR is the mean of returns at or below
// -VaR, falling back to VaR when that tail is empty.
func VarCvar(sortedReturns []float64, confidence float64) (float64, float64) {
	v := -Percentile(sortedReturns, (1-confidence)*100)

	threshold := -v
	tailSum := 0.0
	tailCount := 0
	for _, r := range sortedReturns {
		if r > threshold {
			break
		}
		tailSum += r
		tailCount++
	}

	cvar := v
	if tailCount > 0 {
		cvar = -tailSum / float64(tailCount)
	}
	// the tail mean can only round below the quantile, never truly sit above it
	return v, math.Max(cvar, v)
}

func summarizeReturns(returns []float64) (domain.RiskSummary, error) {
	sorted := append([]float64{}, returns...)
	sort.Float64s(sorted)

	var95, cvar95 := VarCvar(sorted, 0.95)
	var99, cvar99 := VarCvar(sorted, 0.99)

	mean, err := stats.Mean(sorted)
	if err != nil {
		return domain.RiskSummary{}, fmt.Errorf("failed to compute mean return: %w", err)
	}
	std, err := stats.StandardDeviationPopulation(sorted)
	if err != nil {
		return domain.RiskSummary{}, fmt.Errorf("failed to compute return std: %w", err)
	}

	percentiles := make(map[int]float64, len(domain.RiskPercentiles))
	for _, p := range domain.RiskPercentiles {
		percentiles[p] = Percentile(sorted, float64(p))
	}

	return domain.RiskSummary{
		Var95:        var95,
		Cvar95:       cvar95,
		Var99:        var99,
		Cvar99:       cvar99,
		MeanReturn:   mean,
		MedianReturn: Percentile(sorted, 50),
		StdReturn:    std,
		Percentiles:  percentiles,
	}, nil
}

// RiskReportInput carries the terminal distributions of one simulation.
// Dependent and portfolio sections are optional.
type RiskReportInput struct {
	Outcome domain.SimulationOutcome
	// PositionQuantity, when > 0, adds a portfolio section valued on the
	// dependent asset.
	PositionQuantity float64
	// TreasuryQuantity, when > 0, adds a holdings section valued on the
	// primary asset against TreasuryCost.
	TreasuryQuantity float64
	TreasuryCost     float64
}

// BuildRiskReport summarises every asset a simulation carries.
func BuildRiskReport(in RiskReportInput) (*domain.RiskReport, error) {
	primary, err := ComputeRisk(in.Outcome.TerminalPrimaryPrices(), in.Outcome.InitialPrimaryPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to compute primary risk: %w", err)
	}
	report := &domain.RiskReport{Primary: primary}

	if in.TreasuryQuantity > 0 {
		report.Holdings, err = ComputeHoldingsImpact(in.Outcome.TerminalPrimaryPrices(), in.Outcome.InitialPrimaryPrice, in.TreasuryQuantity, in.TreasuryCost)
		if err != nil {
			return nil, fmt.Errorf("failed to compute holdings impact: %w", err)
		}
	}

	dependentTerminal := in.Outcome.TerminalDependentPrices()
	if dependentTerminal == nil || in.Outcome.InitialDependentPrice == nil {
		return report, nil
	}

	dependent, err := ComputeRisk(dependentTerminal, *in.Outcome.InitialDependentPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dependent risk: %w", err)
	}
	report.Dependent = &dependent

	if in.PositionQuantity > 0 {
		portfolio, err := ComputePortfolioRisk(dependentTerminal, *in.Outcome.InitialDependentPrice, in.PositionQuantity)
		if err != nil {
			return nil, fmt.Errorf("failed to compute portfolio risk: %w", err)
		}
		report.Portfolio = &portfolio
	}

	return report, nil
}
