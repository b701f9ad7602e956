package service

import (
	"btctreasury/internal/calculator"
	"btctreasury/internal/domain"
	"btctreasury/internal/logger"
	"btctreasury/internal/metrics"
	"btctreasury/internal/repository"
	"btctreasury/internal/risk"
	"btctreasury/internal/scenario"
	"btctreasury/internal/simulation"
	"btctreasury/internal/util"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxParallelRuns bounds RunMany; each run holds its full path matrices.
const maxParallelRuns = 4

type SimulationRequest struct {
	Scenario     string                   `json:"scenario"`
	Overrides    domain.ScenarioOverrides `json:"overrides"`
	AsOf         time.Time                `json:"asOf"`
	Seed         *uint64                  `json:"seed"`
	ResidualSeed *uint64                  `json:"residualSeed"`
	// Calibrate replaces the scenario's beta, alpha and residual volatility
	// with estimates from recent aligned returns.
	Calibrate       bool `json:"calibrate"`
	SamplePaths     int  `json:"samplePaths"`
	ExcludePosition bool `json:"excludePosition"`
}

type SimulationResult struct {
	Run            domain.SimulationRun     `json:"run"`
	Calibration    *simulation.BetaEstimate `json:"calibration,omitempty"`
	PrimaryPaths   *domain.PathStatistics   `json:"primaryPaths"`
	DependentPaths *domain.PathStatistics   `json:"dependentPaths"`
	Position       *domain.PositionMetrics  `json:"position,omitempty"`
}

type SimulationService interface {
	Run(ctx context.Context, req SimulationRequest) (*SimulationResult, error)
	// RunMany simulates several requests concurrently. Results keep the
	// order of reqs; the first failure cancels the rest.
	RunMany(ctx context.Context, reqs []SimulationRequest) ([]SimulationResult, error)
	Get(ctx context.Context, runID uuid.UUID) (*domain.SimulationRun, error)
	List(ctx context.Context, limit int64) ([]domain.SimulationRun, error)
	Scenarios() []domain.ScenarioParameters
}

type simulationServiceHandler struct {
	Registry                *scenario.Registry
	NavService              NavService
	PositionRepository      repository.UserPositionRepository
	MarketPriceRepository   repository.MarketPriceRepository
	SimulationRunRepository repository.SimulationRunRepository
	EstimatorConfig         simulation.EstimatorConfig
	Config                  util.Config
}

func NewSimulationService(
	registry *scenario.Registry,
	navService NavService,
	positionRepository repository.UserPositionRepository,
	marketPriceRepository repository.MarketPriceRepository,
	simulationRunRepository repository.SimulationRunRepository,
	cfg util.Config,
) SimulationService {
	return simulationServiceHandler{
		Registry:                registry,
		NavService:              navService,
		PositionRepository:      positionRepository,
		MarketPriceRepository:   marketPriceRepository,
		SimulationRunRepository: simulationRunRepository,
		EstimatorConfig:         simulation.EstimatorConfigFrom(cfg.Analytics),
		Config:                  cfg,
	}
}

func (h simulationServiceHandler) Scenarios() []domain.ScenarioParameters {
	return h.Registry.List()
}

func (h simulationServiceHandler) Run(ctx context.Context, req SimulationRequest) (*SimulationResult, error) {
	start := time.Now()
	log := logger.FromContext(ctx)
	profile := domain.GetProfile(ctx)

	name := req.Scenario
	if name == "" {
		name = h.Config.Simulation.DefaultScenario
	}
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = util.TruncateToDate(time.Now())
	}

	params, err := h.Registry.Resolve(name, req.Overrides)
	if err != nil {
		return nil, err
	}
	// divide rather than multiply so huge overrides cannot wrap past the limit
	if limit := h.Config.Simulation.MaxPathSteps; params.HorizonDays > 0 && params.NumPaths > limit/params.HorizonDays {
		return nil, domain.InvalidInputError{
			Field:  "numPaths",
			Reason: fmt.Sprintf("num_paths %d * horizon_days %d exceeds limit %d", params.NumPaths, params.HorizonDays, limit),
		}
	}

	_, endSpan := profile.StartNewSpan("load inputs")
	nav, err := h.NavService.NAV(ctx, asOf)
	if err != nil {
		return nil, err
	}
	tranches, err := h.NavService.Tranches(ctx, asOf)
	if err != nil {
		return nil, err
	}
	var active *domain.Position
	if !req.ExcludePosition {
		active, err = h.PositionRepository.GetActive(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get active position: %w", err)
		}
	}

	var calibration *simulation.BetaEstimate
	if req.Calibrate {
		estimate, err := h.calibrate(asOf)
		if err != nil {
			return nil, fmt.Errorf("failed to calibrate %s: %w", name, err)
		}
		if estimate.UsedDefaults {
			log.Warnf("calibration for %s fell back to defaults (%d observations)", name, estimate.Observations)
		}
		params.Beta = estimate.Beta
		params.Alpha = estimate.Alpha
		params.ResidualVolatility = estimate.ResidualVolatility
		calibration = &estimate
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("simulate paths")
	outcome, err := simulation.SimulateJoint(simulation.JointInput{
		PrimaryInput: simulation.PrimaryInput{
			InitialPrice: nav.PrimaryPrice,
			HorizonDays:  params.HorizonDays,
			NumPaths:     params.NumPaths,
			Drift:        params.PrimaryDrift,
			Volatility:   params.PrimaryVolatility,
			Seed:         req.Seed,
		},
		InitialDependentPrice: nav.EquityPrice,
		Beta:                  params.Beta,
		Alpha:                 params.Alpha,
		ResidualVolatility:    params.ResidualVolatility,
		ResidualSeed:          req.ResidualSeed,
	})
	if err != nil {
		metrics.ObserveSimulation(params.Name, params.NumPaths, params.HorizonDays, time.Since(start), err)
		return nil, err
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("summarise risk")
	quantity := 0.0
	if active != nil {
		quantity = active.Quantity
	}
	report, err := risk.BuildRiskReport(risk.RiskReportInput{
		Outcome:          *outcome,
		PositionQuantity: quantity,
		TreasuryQuantity: nav.TotalQuantity,
		TreasuryCost:     tranches.Portfolio.TotalSpent,
	})
	if err != nil {
		return nil, err
	}
	primaryStats, err := risk.ComputePathStatistics(outcome.PrimaryPaths, outcome.InitialPrimaryPrice, req.SamplePaths)
	if err != nil {
		return nil, err
	}
	dependentStats, err := risk.ComputePathStatistics(outcome.DependentPaths, *outcome.InitialDependentPrice, req.SamplePaths)
	if err != nil {
		return nil, err
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("record run")
	defer endSpan()
	run, err := h.SimulationRunRepository.Add(nil, domain.SimulationRun{
		ScenarioName:      params.Name,
		HorizonDays:       params.HorizonDays,
		NumPaths:          params.NumPaths,
		Seed:              req.Seed,
		ResidualSeed:      req.ResidualSeed,
		InputSnapshotDate: asOf,
		Scenario:          params,
		Results:           *report,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record simulation run: %w", err)
	}

	elapsed := time.Since(start)
	metrics.ObserveSimulation(params.Name, params.NumPaths, params.HorizonDays, elapsed, nil)
	log.Infow("simulation complete",
		"runID", run.SimulationRunID.String(),
		"scenario", params.Name,
		"numPaths", params.NumPaths,
		"horizonDays", params.HorizonDays,
		"calibrated", calibration != nil,
		"elapsedMs", elapsed.Milliseconds(),
	)

	return &SimulationResult{
		Run:            *run,
		Calibration:    calibration,
		PrimaryPaths:   primaryStats,
		DependentPaths: dependentStats,
		Position:       calculator.ComputePositionMetrics(active, nav),
	}, nil
}

// calibrate fits the factor model on log returns of closes both assets
// share within the lookback window.
func (h simulationServiceHandler) calibrate(asOf time.Time) (simulation.BetaEstimate, error) {
	symbols := h.Config.Symbols
	start := asOf.AddDate(0, 0, -h.Config.Analytics.ReturnsLookbackDays)
	prices, err := h.MarketPriceRepository.List(nil, []string{symbols.Primary, symbols.Equity}, start, asOf)
	if err != nil {
		return simulation.BetaEstimate{}, err
	}

	primary, dependent := alignedCloses(
		calculator.NewPriceHistory(symbols.Primary, prices).Series(),
		calculator.NewPriceHistory(symbols.Equity, prices).Series(),
	)
	return simulation.Estimate(simulation.LogReturns(primary), simulation.LogReturns(dependent), h.EstimatorConfig)
}

// alignedCloses keeps only dates present in both series.
func alignedCloses(primary, dependent []domain.DatedValue) ([]float64, []float64) {
	byDate := make(map[time.Time]float64, len(dependent))
	for _, d := range dependent {
		byDate[d.Date] = d.Value
	}
	x := []float64{}
	y := []float64{}
	for _, p := range primary {
		if v, ok := byDate[p.Date]; ok {
			x = append(x, p.Value)
			y = append(y, v)
		}
	}
	return x, y
}

func (h simulationServiceHandler) RunMany(ctx context.Context, reqs []SimulationRequest) ([]SimulationResult, error) {
	results := make([]SimulationResult, len(reqs))
	// profiles are not safe to share between goroutines
	runCtx := context.WithValue(ctx, domain.ContextProfileKey, nil)

	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(maxParallelRuns)
	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := h.Run(gctx, req)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", req.Scenario, err)
			}
			results[i] = *out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (h simulationServiceHandler) Get(ctx context.Context, runID uuid.UUID) (*domain.SimulationRun, error) {
	run, err := h.SimulationRunRepository.Get(runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, domain.InsufficientDataError{What: fmt.Sprintf("simulation run %s not found", runID.String())}
	}
	return run, nil
}

func (h simulationServiceHandler) List(ctx context.Context, limit int64) ([]domain.SimulationRun, error) {
	if limit <= 0 {
		limit = 50
	}
	return h.SimulationRunRepository.List(limit)
}
