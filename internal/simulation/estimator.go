package simulation

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

type EstimatorConfig struct {
	MinObservations int
	// PeriodsPerYear scales the per-period alpha and residual std to the
	// annual units the simulator expects. 1 leaves them per-period.
	PeriodsPerYear            float64
	DefaultAlpha              float64
	DefaultBeta               float64
	DefaultResidualVolatility float64
}

func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		MinObservations:           util.DefaultMinRegressionObservations,
		PeriodsPerYear:            util.DefaultTradingDaysPerYear,
		DefaultAlpha:              util.DefaultAlpha,
		DefaultBeta:               util.DefaultBeta,
		DefaultResidualVolatility: util.DefaultResidualVolatility,
	}
}

func EstimatorConfigFrom(a util.AnalyticsConfig) EstimatorConfig {
	return EstimatorConfig{
		MinObservations:           a.MinRegressionObservations,
		PeriodsPerYear:            float64(a.TradingDaysPerYear),
		DefaultAlpha:              a.DefaultAlpha,
		DefaultBeta:               a.DefaultBeta,
		DefaultResidualVolatility: a.DefaultResidualVolatility,
	}
}

// BetaEstimate is the fitted factor model. Alpha and ResidualVolatility are
// annualised; the Period fields are the raw regression outputs.
type BetaEstimate struct {
	Alpha                    float64 `json:"alpha"`
	Beta                     float64 `json:"beta"`
	ResidualVolatility       float64 `json:"residualVolatility"`
	PeriodAlpha              float64 `json:"periodAlpha"`
	PeriodResidualVolatility float64 `json:"periodResidualVolatility"`
	Observations             int     `json:"observations"`
	UsedDefaults             bool    `json:"usedDefaults"`
}

// Estimate fits dependent = alpha + beta*primary + e by ordinary least
// squares over aligned return pairs. Pairs where either side is NaN are
// dropped first. With fewer than MinObservations pairs left, or a primary
// series with no variance, the configured defaults come back with
// UsedDefaults set.
func Estimate(primaryReturns, dependentReturns []float64, cfg EstimatorConfig) (BetaEstimate, error) {
	if len(primaryReturns) != len(dependentReturns) {
		return BetaEstimate{}, domain.InvalidInputError{
			Field:  "returns",
			Reason: fmt.Sprintf("series must be aligned, got %d and %d points", len(primaryReturns), len(dependentReturns)),
		}
	}
	if cfg.PeriodsPerYear <= 0 {
		cfg.PeriodsPerYear = 1
	}

	x, y := dropNaNPairs(primaryReturns, dependentReturns)

	defaults := BetaEstimate{
		Alpha:                    cfg.DefaultAlpha,
		Beta:                     cfg.DefaultBeta,
		ResidualVolatility:       cfg.DefaultResidualVolatility,
		PeriodAlpha:              cfg.DefaultAlpha / cfg.PeriodsPerYear,
		PeriodResidualVolatility: cfg.DefaultResidualVolatility / math.Sqrt(cfg.PeriodsPerYear),
		Observations:             len(x),
		UsedDefaults:             true,
	}
	if len(x) < cfg.MinObservations || len(x) < 2 {
		return defaults, nil
	}

	variance, err := stats.SampleVariance(x)
	if err != nil {
		return BetaEstimate{}, fmt.Errorf("failed to compute primary variance: %w", err)
	}
	if variance == 0 {
		return defaults, nil
	}
	covariance, err := stats.Covariance(x, y)
	if err != nil {
		return BetaEstimate{}, fmt.Errorf("failed to compute covariance: %w", err)
	}
	meanX, err := stats.Mean(x)
	if err != nil {
		return BetaEstimate{}, err
	}
	meanY, err := stats.Mean(y)
	if err != nil {
		return BetaEstimate{}, err
	}

	beta := covariance / variance
	alpha := meanY - beta*meanX

	residuals := make([]float64, len(x))
	for i := range x {
		residuals[i] = y[i] - (alpha + beta*x[i])
	}
	residualStd, err := stats.StandardDeviationPopulation(residuals)
	if err != nil {
		return BetaEstimate{}, fmt.Errorf("failed to compute residual std: %w", err)
	}

	return BetaEstimate{
		Alpha:                    alpha * cfg.PeriodsPerYear,
		Beta:                     beta,
		ResidualVolatility:       residualStd * math.Sqrt(cfg.PeriodsPerYear),
		PeriodAlpha:              alpha,
		PeriodResidualVolatility: residualStd,
		Observations:             len(x),
	}, nil
}

// LogReturns turns a price series into per-step log returns. Non-positive
// prices yield NaN, which Estimate drops.
func LogReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i] <= 0 || prices[i-1] <= 0 {
			out[i-1] = math.NaN()
			continue
		}
		out[i-1] = math.Log(prices[i] / prices[i-1])
	}
	return out
}

func dropNaNPairs(a, b []float64) ([]float64, []float64) {
	x := make([]float64, 0, len(a))
	y := make([]float64, 0, len(b))
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		x = append(x, a[i])
		y = append(y, b[i])
	}
	return x, y
}
