package service

import (
	"btctreasury/internal/domain"
	mock_repository "btctreasury/internal/repository/mocks"
	"btctreasury/internal/util"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_positionServiceHandler_Show(t *testing.T) {
	t.Run("values the active position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newNavMocks(ctrl)
		m.expectLedger(testLots(), testFinancials(), testPrices())
		m.positions.EXPECT().GetActive(nil).Return(&domain.Position{
			Label:         "main",
			IsActive:      true,
			Quantity:      100,
			AvgEntryPrice: 500,
		}, nil)

		out, err := NewPositionService(nil, m.positions, m.service()).Show(context.Background(), testAsOf)
		require.NoError(t, err)
		require.Equal(t, -10_000.0, out.UnrealizedPnl)
		require.Equal(t, -20.0, out.UnrealizedPnlPct)
	})

	t.Run("no active position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newNavMocks(ctrl)
		m.positions.EXPECT().GetActive(nil).Return(nil, nil)

		_, err := NewPositionService(nil, m.positions, m.service()).Show(context.Background(), testAsOf)
		require.ErrorAs(t, err, &domain.InsufficientDataError{})
	})
}

func Test_positionServiceHandler_Set(t *testing.T) {
	t.Run("rejects invalid holdings before touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positions := mock_repository.NewMockUserPositionRepository(ctrl)
		svc := NewPositionService(nil, positions, nil)

		_, err := svc.Set(context.Background(), "main", 0, 100)
		require.ErrorAs(t, err, &domain.InvalidInputError{})
		_, err = svc.Set(context.Background(), "", 10, 100)
		require.ErrorAs(t, err, &domain.InvalidInputError{})
	})

	t.Run("deactivates the previous position in the same transaction", func(t *testing.T) {
		db, err := util.NewTestDb()
		require.NoError(t, err)
		if err := db.Ping(); err != nil {
			t.Skipf("no test database: %v", err)
		}

		ctrl := gomock.NewController(t)
		positions := mock_repository.NewMockUserPositionRepository(ctrl)
		previous := domain.Position{PositionID: uuid.New(), IsActive: true, CreatedAt: time.Unix(0, 0)}
		positions.EXPECT().List(nil).Return([]domain.Position{previous}, nil)

		var added domain.Position
		positions.EXPECT().
			Add(gomock.Not(gomock.Nil()), gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, p domain.Position) (*domain.Position, error) {
				added = p
				return &p, nil
			})
		positions.EXPECT().
			Activate(gomock.Not(gomock.Nil()), gomock.Any(), []uuid.UUID{previous.PositionID}).
			DoAndReturn(func(_ *sql.Tx, id uuid.UUID, _ []uuid.UUID) error {
				require.Equal(t, added.PositionID, id)
				return nil
			})

		out, err := NewPositionService(db, positions, nil).Set(context.Background(), "main", 100, 320)
		require.NoError(t, err)
		require.True(t, out.IsActive)
		require.Equal(t, "main", out.Label)
	})
}

func Test_positionServiceHandler_Activate(t *testing.T) {
	ctrl := gomock.NewController(t)
	positions := mock_repository.NewMockUserPositionRepository(ctrl)
	positions.EXPECT().List(nil).Return([]domain.Position{{PositionID: uuid.New()}}, nil)

	err := NewPositionService(nil, positions, nil).Activate(context.Background(), uuid.New())
	require.ErrorAs(t, err, &domain.InsufficientDataError{})
}
