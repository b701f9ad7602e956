package cmd

import (
	"btctreasury/api"
	"btctreasury/internal/ingest"
	"btctreasury/internal/logger"
	"btctreasury/internal/repository"
	"btctreasury/internal/scenario"
	"btctreasury/internal/service"
	"btctreasury/internal/util"
	interestrate "btctreasury/pkg/interest_rate"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type Dependencies struct {
	Config             *util.Config
	Db                 *sql.DB
	Logger             *zap.SugaredLogger
	NavService         service.NavService
	PositionService    service.PositionService
	SimulationService  service.SimulationService
	PerformanceService service.PerformanceService
	IngestService      service.IngestService
}

func (d Dependencies) ApiHandler() *api.ApiHandler {
	return &api.ApiHandler{
		Db:                 d.Db,
		Logger:             d.Logger,
		NavService:         d.NavService,
		PositionService:    d.PositionService,
		SimulationService:  d.SimulationService,
		PerformanceService: d.PerformanceService,
	}
}

func CloseDependencies(deps *Dependencies) {
	if err := deps.Db.Close(); err != nil {
		deps.Logger.Errorf("failed to close db: %v", err)
	}
	_ = deps.Logger.Sync()
}

func InitializeDependencies() (*Dependencies, error) {
	cfg, err := util.LoadConfig(util.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewDependencies(*cfg)
}

// NewDependencies wires every repository and service against one
// connection pool. The pool is lazy; nothing touches the database until a
// command needs it.
func NewDependencies(cfg util.Config) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dbConn, err := util.NewDb(cfg.Db)
	if err != nil {
		return nil, err
	}

	registry, err := scenario.NewRegistry(cfg.Simulation.ScenarioFile)
	if err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}

	lotRepository := repository.NewAcquisitionLotRepository(dbConn)
	financialsRepository := repository.NewCompanyFinancialsRepository(dbConn)
	marketPriceRepository := repository.NewMarketPriceRepository(dbConn)
	positionRepository := repository.NewUserPositionRepository(dbConn)
	simulationRunRepository := repository.NewSimulationRunRepository(dbConn)
	snapshotRepository := repository.NewDailySnapshotRepository(dbConn)

	navService := service.NewNavService(
		lotRepository,
		financialsRepository,
		marketPriceRepository,
		positionRepository,
		snapshotRepository,
		cfg.Symbols,
	)
	positionService := service.NewPositionService(
		dbConn,
		positionRepository,
		navService,
	)
	simulationService := service.NewSimulationService(
		registry,
		navService,
		positionRepository,
		marketPriceRepository,
		simulationRunRepository,
		cfg,
	)
	var riskFreeRates service.RiskFreeRateSource
	if cfg.Analytics.TreasuryRiskFreeRate {
		riskFreeRates = interestrate.NewClient()
	}
	performanceService := service.NewPerformanceService(
		marketPriceRepository,
		riskFreeRates,
		cfg,
	)
	ingestService := service.NewIngestService(
		ingest.NewYahooChartSource(),
		marketPriceRepository,
		lotRepository,
		financialsRepository,
		cfg.Symbols,
	)

	return &Dependencies{
		Config:             &cfg,
		Db:                 dbConn,
		Logger:             logger.New(),
		NavService:         navService,
		PositionService:    positionService,
		SimulationService:  simulationService,
		PerformanceService: performanceService,
		IngestService:      ingestService,
	}, nil
}
