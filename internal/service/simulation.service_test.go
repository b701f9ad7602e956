package service

import (
	"btctreasury/internal/domain"
	mock_repository "btctreasury/internal/repository/mocks"
	"btctreasury/internal/scenario"
	"btctreasury/internal/util"
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type simulationMocks struct {
	navMocks
	runs *mock_repository.MockSimulationRunRepository
}

func newSimulationMocks(ctrl *gomock.Controller) simulationMocks {
	return simulationMocks{
		navMocks: newNavMocks(ctrl),
		runs:     mock_repository.NewMockSimulationRunRepository(ctrl),
	}
}

func (m simulationMocks) service(cfg *util.Config) SimulationService {
	if cfg == nil {
		cfg = util.DefaultConfig()
	}
	return NewSimulationService(
		scenario.DefaultRegistry(),
		m.navMocks.service(),
		m.positions,
		m.prices,
		m.runs,
		*cfg,
	)
}

// expectRecord stores whatever run the service builds and hands it back
// with an id.
func (m simulationMocks) expectRecord() {
	m.runs.EXPECT().
		Add(nil, gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, run domain.SimulationRun) (*domain.SimulationRun, error) {
			run.SimulationRunID = uuid.New()
			return &run, nil
		}).
		AnyTimes()
}

func smallRequest(name string) SimulationRequest {
	return SimulationRequest{
		Scenario: name,
		Overrides: domain.ScenarioOverrides{
			HorizonDays: util.IntPointer(20),
			NumPaths:    util.IntPointer(200),
		},
		AsOf: testAsOf,
		Seed: util.Uint64Pointer(7),
	}
}

func Test_simulationServiceHandler_Run(t *testing.T) {
	t.Run("seeded run is reproducible and recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newSimulationMocks(ctrl)
		m.expectLedger(testLots(), testFinancials(), testPrices())
		m.positions.EXPECT().GetActive(nil).Return(&domain.Position{Label: "main", IsActive: true, Quantity: 10, AvgEntryPrice: 350}, nil).Times(2)
		m.expectRecord()

		svc := m.service(nil)
		first, err := svc.Run(context.Background(), smallRequest("bear"))
		require.NoError(t, err)
		second, err := svc.Run(context.Background(), smallRequest("bear"))
		require.NoError(t, err)

		require.Equal(t, "bear", first.Run.ScenarioName)
		require.Equal(t, 20, first.Run.HorizonDays)
		require.Equal(t, 200, first.Run.NumPaths)
		require.Equal(t, testAsOf, first.Run.InputSnapshotDate)
		require.Equal(t, uint64(7), *first.Run.Seed)
		require.Equal(t, 30_000.0, first.PrimaryPaths.InitialPrice)
		require.Equal(t, 400.0, first.DependentPaths.InitialPrice)
		require.NotNil(t, first.Run.Results.Dependent)
		require.NotNil(t, first.Run.Results.Portfolio)
		require.Equal(t, 150.0, first.Run.Results.Holdings.Quantity)
		require.Equal(t, 3_500_000.0, first.Run.Results.Holdings.TotalCost)
		require.Equal(t, 4_500_000.0, first.Run.Results.Holdings.CurrentValue)
		require.Equal(t, "main", first.Position.Label)
		require.NotEqual(t, first.Run.SimulationRunID, second.Run.SimulationRunID)

		require.Equal(t, "", cmp.Diff(first.Run.Results, second.Run.Results))
		require.Equal(t, "", cmp.Diff(first.PrimaryPaths, second.PrimaryPaths))
	})

	t.Run("overrides never mutate the preset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newSimulationMocks(ctrl)
		m.expectLedger(testLots(), testFinancials(), testPrices())
		m.expectRecord()

		req := smallRequest("base")
		req.ExcludePosition = true
		req.SamplePaths = 3
		out, err := m.service(nil).Run(context.Background(), req)
		require.NoError(t, err)
		require.Nil(t, out.Run.Results.Portfolio)
		require.Nil(t, out.Position)
		require.Len(t, out.PrimaryPaths.SamplePaths, 3)
		require.Len(t, out.PrimaryPaths.SamplePaths[0], 21)

		base, err := scenario.DefaultRegistry().Lookup("base")
		require.NoError(t, err)
		require.Equal(t, 365, base.HorizonDays)
		require.Equal(t, 5000, base.NumPaths)
	})

	t.Run("unknown scenario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newSimulationMocks(ctrl)

		_, err := m.service(nil).Run(context.Background(), smallRequest("moon"))
		var unknown domain.UnknownScenarioError
		require.True(t, errors.As(err, &unknown))
		require.Equal(t, []string{"base", "bear", "bull", "hyper"}, unknown.Available)
	})

	t.Run("path step guard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newSimulationMocks(ctrl)
		cfg := util.DefaultConfig()
		cfg.Simulation.MaxPathSteps = 1000

		_, err := m.service(cfg).Run(context.Background(), smallRequest("base"))
		var invalid domain.InvalidInputError
		require.True(t, errors.As(err, &invalid))
		require.Equal(t, "numPaths", invalid.Field)
	})

	t.Run("path step guard does not wrap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newSimulationMocks(ctrl)

		req := smallRequest("base")
		req.Overrides.NumPaths = util.IntPointer(1 << 62)
		req.Overrides.HorizonDays = util.IntPointer(4)
		_, err := m.service(nil).Run(context.Background(), req)
		var invalid domain.InvalidInputError
		require.True(t, errors.As(err, &invalid))
		require.Equal(t, "numPaths", invalid.Field)

		req.Overrides.NumPaths = util.IntPointer(1 << 32)
		req.Overrides.HorizonDays = util.IntPointer(1 << 32)
		_, err = m.service(nil).Run(context.Background(), req)
		require.ErrorAs(t, err, &domain.InvalidInputError{})
	})

	t.Run("no nav means no simulation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newSimulationMocks(ctrl)
		m.expectLedger(nil, nil, testPrices())

		_, err := m.service(nil).Run(context.Background(), smallRequest("base"))
		require.ErrorAs(t, err, &domain.InsufficientDataError{})
	})

	t.Run("calibration replaces the factor model", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newSimulationMocks(ctrl)

		// equity moves exactly twice the primary's log return
		history := []domain.MarketPriceObservation{}
		btc, mstr := 30_000.0, 400.0
		for i := 0; i < 40; i++ {
			date := testAsOf.AddDate(0, 0, -40+i)
			r := 0.02 * math.Sin(float64(i))
			btc *= math.Exp(r)
			mstr *= math.Exp(2 * r)
			history = append(history,
				domain.MarketPriceObservation{Date: date, Symbol: "BTC", ClosePrice: btc},
				domain.MarketPriceObservation{Date: date, Symbol: "MSTR", ClosePrice: mstr},
			)
		}
		m.prices.EXPECT().
			List(nil, []string{"BTC", "MSTR"}, testAsOf.AddDate(0, 0, -90), testAsOf).
			Return(history, nil)
		// registered after the lookback window so the NAV read falls through to it
		m.expectLedger(testLots(), testFinancials(), testPrices())
		m.positions.EXPECT().GetActive(nil).Return(nil, nil)
		m.expectRecord()

		req := smallRequest("base")
		req.Calibrate = true
		out, err := m.service(nil).Run(context.Background(), req)
		require.NoError(t, err)
		require.False(t, out.Calibration.UsedDefaults)
		require.Equal(t, 39, out.Calibration.Observations)
		require.InDelta(t, 2, out.Run.Scenario.Beta, 1e-9)
		require.InDelta(t, 0, out.Run.Scenario.ResidualVolatility, 1e-9)
	})
}

func Test_simulationServiceHandler_RunMany(t *testing.T) {
	t.Run("keeps request order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newSimulationMocks(ctrl)
		m.expectLedger(testLots(), testFinancials(), testPrices())
		m.positions.EXPECT().GetActive(nil).Return(nil, nil).AnyTimes()
		m.expectRecord()

		names := []string{"bear", "base", "bull", "hyper", "base"}
		reqs := []SimulationRequest{}
		for _, n := range names {
			reqs = append(reqs, smallRequest(n))
		}

		out, err := m.service(nil).RunMany(context.Background(), reqs)
		require.NoError(t, err)
		require.Len(t, out, len(names))
		for i, n := range names {
			require.Equal(t, n, out[i].Run.ScenarioName)
		}
		require.Equal(t, "", cmp.Diff(out[1].Run.Results, out[4].Run.Results))
	})

	t.Run("one failure fails the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newSimulationMocks(ctrl)
		m.expectLedger(testLots(), testFinancials(), testPrices())
		m.positions.EXPECT().GetActive(nil).Return(nil, nil).AnyTimes()
		m.expectRecord()

		_, err := m.service(nil).RunMany(context.Background(), []SimulationRequest{
			smallRequest("base"),
			smallRequest("moon"),
		})
		require.ErrorContains(t, err, "scenario moon")
		require.ErrorAs(t, err, &domain.UnknownScenarioError{})
	})
}

func Test_simulationServiceHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newSimulationMocks(ctrl)
	id := uuid.New()
	m.runs.EXPECT().Get(id).Return(nil, nil)

	_, err := m.service(nil).Get(context.Background(), id)
	require.ErrorAs(t, err, &domain.InsufficientDataError{})
}

func Test_alignedCloses(t *testing.T) {
	d := func(day int) domain.DatedValue { return domain.DatedValue{Date: util.NewDate(2024, 1, day)} }
	primary := []domain.DatedValue{d(1), d(2), d(3), d(4)}
	dependent := []domain.DatedValue{d(2), d(4), d(5)}
	for i := range primary {
		primary[i].Value = float64(i + 1)
	}
	for i := range dependent {
		dependent[i].Value = float64(10 * (i + 1))
	}

	x, y := alignedCloses(primary, dependent)
	require.Equal(t, []float64{2, 4}, x)
	require.Equal(t, []float64{10, 20}, y)
}
