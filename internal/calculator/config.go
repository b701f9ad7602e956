package calculator

import "btctreasury/internal/util"

// Config carries every tunable the analytics use. Nothing in this package
// reads a package-level default directly.
type Config struct {
	TradingDaysPerYear  int
	RiskFreeRate        float64
	MinBetaObservations int
	RollingWindows      []int
	DrawdownThreshold   float64
	TopDrawdowns        int
}

func DefaultConfig() Config {
	return Config{
		TradingDaysPerYear:  util.DefaultTradingDaysPerYear,
		MinBetaObservations: util.DefaultMinRegressionObservations,
		RollingWindows:      append([]int{}, util.DefaultRollingWindows...),
		DrawdownThreshold:   util.DefaultDrawdownThreshold,
		TopDrawdowns:        util.DefaultTopDrawdowns,
	}
}

func ConfigFrom(a util.AnalyticsConfig) Config {
	return Config{
		TradingDaysPerYear:  a.TradingDaysPerYear,
		RiskFreeRate:        a.RiskFreeRate,
		MinBetaObservations: a.MinRegressionObservations,
		RollingWindows:      append([]int{}, a.RollingWindows...),
		DrawdownThreshold:   a.DrawdownThreshold,
		TopDrawdowns:        a.TopDrawdowns,
	}
}
