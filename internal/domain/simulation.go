package domain

import (
	"time"

	"github.com/google/uuid"
)

// SimulationOutcome holds every simulated path. Rows are paths, column 0 is
// the initial price. It is never persisted; only summaries are.
type SimulationOutcome struct {
	PrimaryPaths          [][]float64 `json:"-"`
	DependentPaths        [][]float64 `json:"-"`
	InitialPrimaryPrice   float64     `json:"initialPrimaryPrice"`
	InitialDependentPrice *float64    `json:"initialDependentPrice"`
	NumPaths              int         `json:"numPaths"`
	HorizonDays           int         `json:"horizonDays"`
}

func (o SimulationOutcome) TerminalPrimaryPrices() []float64 {
	return terminal(o.PrimaryPaths)
}

// TerminalDependentPrices returns nil for a primary-only simulation.
func (o SimulationOutcome) TerminalDependentPrices() []float64 {
	if o.DependentPaths == nil {
		return nil
	}
	return terminal(o.DependentPaths)
}

func terminal(paths [][]float64) []float64 {
	out := make([]float64, len(paths))
	for i, p := range paths {
		out[i] = p[len(p)-1]
	}
	return out
}

// PathStatistics describes the terminal price distribution in price terms.
type PathStatistics struct {
	InitialPrice float64     `json:"initialPrice"`
	Mean         float64     `json:"mean"`
	Median       float64     `json:"median"`
	Std          float64     `json:"std"`
	Min          float64     `json:"min"`
	Max          float64     `json:"max"`
	P5           float64     `json:"p5"`
	P25          float64     `json:"p25"`
	P75          float64     `json:"p75"`
	P95          float64     `json:"p95"`
	SamplePaths  [][]float64 `json:"samplePaths,omitempty"`
}

// SimulationRun is the durable record of one simulation request.
type SimulationRun struct {
	SimulationRunID   uuid.UUID          `json:"simulationRunID"`
	CreatedAt         time.Time          `json:"createdAt"`
	ScenarioName      string             `json:"scenarioName"`
	HorizonDays       int                `json:"horizonDays"`
	NumPaths          int                `json:"numPaths"`
	Seed              *uint64            `json:"seed"`
	ResidualSeed      *uint64            `json:"residualSeed"`
	InputSnapshotDate time.Time          `json:"inputSnapshotDate"`
	Scenario          ScenarioParameters `json:"scenario"`
	Results           RiskReport         `json:"results"`
}
