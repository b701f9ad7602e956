package domain

// RiskPercentiles are the reported return quantiles, in percent points.
var RiskPercentiles = []int{1, 5, 10, 25, 50, 75, 90, 95, 99}

// RiskSummary describes a distribution of simple returns. VaR and CVaR are
// positive loss magnitudes; percentiles are signed returns keyed by
// percentile.
type RiskSummary struct {
	Var95        float64         `json:"var_95"`
	Cvar95       float64         `json:"cvar_95"`
	Var99        float64         `json:"var_99"`
	Cvar99       float64         `json:"cvar_99"`
	MeanReturn   float64         `json:"mean_return"`
	MedianReturn float64         `json:"median_return"`
	StdReturn    float64         `json:"std_return"`
	Percentiles  map[int]float64 `json:"percentiles"`
}

// HoldingsImpact values the treasury's primary asset holdings at points of
// the simulated terminal price distribution against their total cost.
type HoldingsImpact struct {
	Quantity       float64 `json:"quantity"`
	TotalCost      float64 `json:"totalCost"`
	CurrentValue   float64 `json:"currentValue"`
	MeanValue      float64 `json:"meanValue"`
	MedianValue    float64 `json:"medianValue"`
	P5Value        float64 `json:"p5Value"`
	P95Value       float64 `json:"p95Value"`
	MeanGainLoss   float64 `json:"meanGainLoss"`
	MedianGainLoss float64 `json:"medianGainLoss"`
}

// RiskReport is the serialised summary of one simulation run.
type RiskReport struct {
	Primary   RiskSummary     `json:"primary"`
	Dependent *RiskSummary    `json:"dependent,omitempty"`
	Portfolio *RiskSummary    `json:"portfolio,omitempty"`
	Holdings  *HoldingsImpact `json:"holdings,omitempty"`
}
