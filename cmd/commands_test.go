package cmd

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/service"
	mock_service "btctreasury/internal/service/mocks"
	"btctreasury/internal/util"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type cliMocks struct {
	navService        *mock_service.MockNavService
	positionService   *mock_service.MockPositionService
	simulationService *mock_service.MockSimulationService
	ingestService     *mock_service.MockIngestService
	deps              *Dependencies
}

func newCliMocks(t *testing.T) cliMocks {
	ctrl := gomock.NewController(t)
	m := cliMocks{
		navService:        mock_service.NewMockNavService(ctrl),
		positionService:   mock_service.NewMockPositionService(ctrl),
		simulationService: mock_service.NewMockSimulationService(ctrl),
		ingestService:     mock_service.NewMockIngestService(ctrl),
	}
	m.deps = &Dependencies{
		Config:            util.DefaultConfig(),
		Logger:            zap.NewNop().Sugar(),
		NavService:        m.navService,
		PositionService:   m.positionService,
		SimulationService: m.simulationService,
		IngestService:     m.ingestService,
	}
	return m
}

func (m cliMocks) run(args ...string) (string, error) {
	root := NewRootCommand(func() (*Dependencies, error) { return m.deps, nil })
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRiskCommand(t *testing.T) {
	t.Run("flags become overrides", func(t *testing.T) {
		m := newCliMocks(t)
		horizon := 30
		m.simulationService.EXPECT().
			RunMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reqs []service.SimulationRequest) ([]service.SimulationResult, error) {
				require.Equal(t, "", cmp.Diff([]service.SimulationRequest{
					{
						Scenario:  "bear",
						AsOf:      util.NewDate(2024, 3, 1),
						Overrides: domain.ScenarioOverrides{HorizonDays: &horizon},
						Seed:      util.Uint64Pointer(7),
					},
				}, reqs))
				return []service.SimulationResult{
					{Run: domain.SimulationRun{
						ScenarioName: "bear",
						Results: domain.RiskReport{
							Primary:   domain.RiskSummary{Var95: 0.42},
							Dependent: &domain.RiskSummary{Var95: 0.61},
							Holdings:  &domain.HoldingsImpact{TotalCost: 3_500_000, MedianValue: 4_100_000},
						},
					}},
				}, nil
			})

		out, err := m.run("risk", "--scenario", "bear", "--horizon", "30", "--seed", "7", "--as-of", "2024-03-01")
		require.NoError(t, err)
		require.Contains(t, out, "42.00%")
		require.Contains(t, out, "61.00%")
		require.Contains(t, out, "bear treasury: cost 3500000")
		require.NotContains(t, out, "position")
	})

	t.Run("compare runs each scenario", func(t *testing.T) {
		m := newCliMocks(t)
		m.simulationService.EXPECT().
			RunMany(gomock.Any(), gomock.Len(3)).
			Return([]service.SimulationResult{}, nil)

		_, err := m.run("risk", "--compare", "base,bull,bear")
		require.NoError(t, err)
	})

	t.Run("bad date", func(t *testing.T) {
		m := newCliMocks(t)
		_, err := m.run("risk", "--as-of", "yesterday")
		invalid := domain.InvalidInputError{}
		require.True(t, errors.As(err, &invalid))
		require.Equal(t, "as-of", invalid.Field)
	})
}

func TestPositionCommand(t *testing.T) {
	t.Run("list marks the active position", func(t *testing.T) {
		m := newCliMocks(t)
		active := domain.Position{PositionID: uuid.New(), Label: "brokerage", IsActive: true, Quantity: 10}
		inactive := domain.Position{PositionID: uuid.New(), Label: "old", Quantity: 5}
		m.positionService.EXPECT().
			List(gomock.Any()).
			Return([]domain.Position{inactive, active}, nil)

		out, err := m.run("position", "list")
		require.NoError(t, err)
		require.Contains(t, out, "*  "+active.PositionID.String())
		require.NotContains(t, out, "*  "+inactive.PositionID.String())
	})

	t.Run("set", func(t *testing.T) {
		m := newCliMocks(t)
		m.positionService.EXPECT().
			Set(gomock.Any(), "default", 12.5, 310.0).
			Return(&domain.Position{PositionID: uuid.New(), Label: "default", Quantity: 12.5, AvgEntryPrice: 310}, nil)

		out, err := m.run("position", "set", "--quantity", "12.5", "--avg-entry-price", "310")
		require.NoError(t, err)
		require.Contains(t, out, "12.5000 @ 310.00")
	})

	t.Run("activate needs a uuid", func(t *testing.T) {
		m := newCliMocks(t)
		_, err := m.run("position", "activate", "nope")
		require.Error(t, err)
	})
}

func TestIngestPricesCommand(t *testing.T) {
	t.Run("configured symbols by default", func(t *testing.T) {
		m := newCliMocks(t)
		m.ingestService.EXPECT().
			IngestConfigured(gomock.Any(), util.NewDate(2024, 5, 1)).
			Return(nil)

		_, err := m.run("ingest-prices", "--end", "2024-05-01")
		require.NoError(t, err)
	})

	t.Run("single symbol", func(t *testing.T) {
		m := newCliMocks(t)
		m.ingestService.EXPECT().
			IngestPrices(gomock.Any(), "btc", "BTC-USD", util.NewDate(2024, 1, 1), util.NewDate(2024, 5, 1)).
			Return(3, nil)

		out, err := m.run("ingest-prices", "--symbol", "btc", "--ticker", "BTC-USD", "--start", "2024-01-01", "--end", "2024-05-01")
		require.NoError(t, err)
		require.Equal(t, "stored 3 closes for BTC\n", out)
	})
}

func TestTranchesCommand(t *testing.T) {
	m := newCliMocks(t)
	m.navService.EXPECT().
		Tranches(gomock.Any(), util.NewDate(2023, 7, 1)).
		Return(&domain.TrancheAnalysis{
			Tranches: []domain.TrancheSummary{
				{Date: util.NewDate(2023, 1, 1), QuantityAcquired: 100, AmountSpent: 2_000_000, CurrentValue: 3_000_000, UnrealizedPnl: 1_000_000, UnrealizedPnlPct: 50, AgeDays: 181},
			},
			Portfolio: domain.PortfolioSummary{TotalQuantity: 100, TotalSpent: 2_000_000, LotCount: 1},
		}, nil)

	out, err := m.run("tranches", "--as-of", "2023-07-01")
	require.NoError(t, err)
	require.Contains(t, out, "2023-01-01")
	require.Contains(t, out, "1 lots")
	require.Contains(t, out, "n/a")
}

func TestLoadFailure(t *testing.T) {
	root := NewRootCommand(func() (*Dependencies, error) { return nil, errors.New("no config") })
	root.SetArgs([]string{"nav"})
	root.SetOut(&bytes.Buffer{})
	require.EqualError(t, root.Execute(), "no config")
}
