// Package simulation generates correlated price paths for the treasury asset
// and the equity that holds it, and calibrates the factor model linking them.
//
// Cost is O(num_paths * horizon_days) time and memory per asset. Every call
// owns its random streams, so concurrent calls never interfere and a seeded
// call is reproducible regardless of scheduling.
package simulation

import (
	"btctreasury/internal/domain"
	"fmt"
	"math"
	"math/rand/v2"
)

// DefaultDt is one trading day in years.
const DefaultDt = 1.0 / 252

// PCG stream selectors. The residual stream is independent of the primary
// stream even when both are seeded with the same value.
const (
	primaryStream  uint64 = 0x9e3779b97f4a7c15
	residualStream uint64 = 0xbf58476d1ce4e5b9
)

// RandSource is the capability the simulator draws shocks from. *rand.Rand
// satisfies it.
type RandSource interface {
	NormFloat64() float64
}

// NewRandSource returns a call-scoped generator. A nil seed draws a fresh
// seed, making the stream non-deterministic.
func NewRandSource(seed *uint64, stream uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, stream))
}

// MaxMatrixCells bounds NumPaths*(HorizonDays+1) for a single path matrix.
const MaxMatrixCells = 1 << 30

type PrimaryInput struct {
	InitialPrice float64
	HorizonDays  int
	NumPaths     int
	Drift        float64
	Volatility   float64
	// Dt is the step length in years. Zero means DefaultDt.
	Dt   float64
	Seed *uint64
}

type JointInput struct {
	PrimaryInput
	InitialDependentPrice float64
	Beta                  float64
	Alpha                 float64
	ResidualVolatility    float64
	// ResidualSeed seeds the idiosyncratic noise. When nil, Seed is used on
	// a separate stream.
	ResidualSeed *uint64
}

func (in PrimaryInput) dt() float64 {
	if in.Dt == 0 {
		return DefaultDt
	}
	return in.Dt
}

func (in PrimaryInput) validate() error {
	if !(in.InitialPrice > 0) || math.IsInf(in.InitialPrice, 0) {
		return domain.InvalidInputError{Field: "initialPrice", Reason: fmt.Sprintf("must be a finite value > 0, got %v", in.InitialPrice)}
	}
	if in.HorizonDays < 1 {
		return domain.InvalidInputError{Field: "horizonDays", Reason: fmt.Sprintf("must be >= 1, got %d", in.HorizonDays)}
	}
	if in.NumPaths < 1 {
		return domain.InvalidInputError{Field: "numPaths", Reason: fmt.Sprintf("must be >= 1, got %d", in.NumPaths)}
	}
	if in.NumPaths > MaxMatrixCells/(in.HorizonDays+1) {
		return domain.InvalidInputError{Field: "numPaths", Reason: fmt.Sprintf("%d paths of %d steps exceeds %d cells", in.NumPaths, in.HorizonDays, MaxMatrixCells)}
	}
	if !(in.Volatility >= 0) || math.IsInf(in.Volatility, 0) {
		return domain.InvalidInputError{Field: "volatility", Reason: fmt.Sprintf("must be a finite value >= 0, got %v", in.Volatility)}
	}
	if math.IsNaN(in.Drift) || math.IsInf(in.Drift, 0) {
		return domain.InvalidInputError{Field: "drift", Reason: fmt.Sprintf("must be finite, got %v", in.Drift)}
	}
	if in.Dt < 0 || math.IsNaN(in.Dt) || math.IsInf(in.Dt, 0) {
		return domain.InvalidInputError{Field: "dt", Reason: fmt.Sprintf("must be a finite value > 0, got %v", in.Dt)}
	}
	return nil
}

func (in JointInput) validate() error {
	if err := in.PrimaryInput.validate(); err != nil {
		return err
	}
	if !(in.InitialDependentPrice > 0) || math.IsInf(in.InitialDependentPrice, 0) {
		return domain.InvalidInputError{Field: "initialDependentPrice", Reason: fmt.Sprintf("must be a finite value > 0, got %v", in.InitialDependentPrice)}
	}
	if !(in.ResidualVolatility >= 0) || math.IsInf(in.ResidualVolatility, 0) {
		return domain.InvalidInputError{Field: "residualVolatility", Reason: fmt.Sprintf("must be a finite value >= 0, got %v", in.ResidualVolatility)}
	}
	if math.IsNaN(in.Beta) || math.IsInf(in.Beta, 0) || math.IsNaN(in.Alpha) || math.IsInf(in.Alpha, 0) {
		return domain.InvalidInputError{Field: "beta/alpha", Reason: "must be finite"}
	}
	return nil
}

// SimulatePrimary returns GBM paths of shape [NumPaths][HorizonDays+1] with
// column 0 equal to InitialPrice.
func SimulatePrimary(in PrimaryInput) ([][]float64, error) {
	return SimulatePrimaryWith(in, NewRandSource(in.Seed, primaryStream))
}

// SimulatePrimaryWith is SimulatePrimary with an injected randomness source.
func SimulatePrimaryWith(in PrimaryInput, rng RandSource) ([][]float64, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	paths, _ := simulateGBM(in, rng)
	return paths, nil
}

// SimulateJoint simulates the primary asset, then drives the dependent asset
// with the factor model
//
//	r_dep = alpha*dt + beta*r_primary + residualVol*sqrt(dt)*Z
//
// applied to per-step log returns.
func SimulateJoint(in JointInput) (*domain.SimulationOutcome, error) {
	residualSeed := in.ResidualSeed
	if residualSeed == nil {
		residualSeed = in.Seed
	}
	return SimulateJointWith(
		in,
		NewRandSource(in.Seed, primaryStream),
		NewRandSource(residualSeed, residualStream),
	)
}

func SimulateJointWith(in JointInput, primaryRng, residualRng RandSource) (*domain.SimulationOutcome, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	primaryPaths, logReturns := simulateGBM(in.PrimaryInput, primaryRng)

	dt := in.dt()
	alphaTerm := in.Alpha * dt
	noiseScale := in.ResidualVolatility * math.Sqrt(dt)

	steps := in.HorizonDays + 1
	dependentPaths := newMatrix(in.NumPaths, steps)
	for i := 0; i < in.NumPaths; i++ {
		row := dependentPaths[i]
		row[0] = in.InitialDependentPrice
		cumulative := 0.0
		for j := 0; j < in.HorizonDays; j++ {
			r := alphaTerm + in.Beta*logReturns[i][j] + noiseScale*residualRng.NormFloat64()
			cumulative += r
			row[j+1] = in.InitialDependentPrice * math.Exp(cumulative)
		}
	}

	initialDependent := in.InitialDependentPrice
	return &domain.SimulationOutcome{
		PrimaryPaths:          primaryPaths,
		DependentPaths:        dependentPaths,
		InitialPrimaryPrice:   in.InitialPrice,
		InitialDependentPrice: &initialDependent,
		NumPaths:              in.NumPaths,
		HorizonDays:           in.HorizonDays,
	}, nil
}

// simulateGBM draws shocks path by path, step by step, and returns the price
// paths and the log returns that produced them.
func simulateGBM(in PrimaryInput, rng RandSource) ([][]float64, [][]float64) {
	dt := in.dt()
	drift := (in.Drift - 0.5*in.Volatility*in.Volatility) * dt
	diffusion := in.Volatility * math.Sqrt(dt)

	paths := newMatrix(in.NumPaths, in.HorizonDays+1)
	logReturns := newMatrix(in.NumPaths, in.HorizonDays)

	for i := 0; i < in.NumPaths; i++ {
		row := paths[i]
		row[0] = in.InitialPrice
		cumulative := 0.0
		for j := 0; j < in.HorizonDays; j++ {
			r := drift + diffusion*rng.NormFloat64()
			logReturns[i][j] = r
			cumulative += r
			row[j+1] = in.InitialPrice * math.Exp(cumulative)
		}
	}

	return paths, logReturns
}

// newMatrix allocates rows over one contiguous backing array.
func newMatrix(rows, cols int) [][]float64 {
	backing := make([]float64, rows*cols)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return out
}
