package repository

import (
	"btctreasury/internal/db/models/postgres/public/model"
	"btctreasury/internal/db/models/postgres/public/table"
	"btctreasury/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type UserPositionRepository interface {
	Add(tx *sql.Tx, p domain.Position) (*domain.Position, error)
	List(tx *sql.Tx) ([]domain.Position, error)
	GetActive(tx *sql.Tx) (*domain.Position, error)
	// Activate deactivates every id in deactivate and marks positionID active.
	// The caller owns tx so the switch is atomic.
	Activate(tx *sql.Tx, positionID uuid.UUID, deactivate []uuid.UUID) error
}

type userPositionRepositoryHandler struct {
	Db *sql.DB
}

func NewUserPositionRepository(db *sql.DB) UserPositionRepository {
	return userPositionRepositoryHandler{Db: db}
}

func positionFromModel(m model.UserPosition) domain.Position {
	return domain.Position{
		PositionID:    m.UserPositionID,
		Label:         m.Label,
		CreatedAt:     m.CreatedAt,
		IsActive:      m.IsActive,
		Quantity:      m.Quantity,
		AvgEntryPrice: m.AvgEntryPrice,
	}
}

func (h userPositionRepositoryHandler) Add(tx *sql.Tx, p domain.Position) (*domain.Position, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	now := time.Now().UTC()
	if p.PositionID == uuid.Nil {
		p.PositionID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	m := model.UserPosition{
		UserPositionID: p.PositionID,
		Label:          p.Label,
		Quantity:       p.Quantity,
		AvgEntryPrice:  p.AvgEntryPrice,
		IsActive:       false,
		CreatedAt:      p.CreatedAt,
		ModifiedAt:     now,
	}

	query := table.UserPosition.
		INSERT(table.UserPosition.AllColumns).
		MODEL(m).
		RETURNING(table.UserPosition.AllColumns)

	out := model.UserPosition{}
	if err := query.Query(db, &out); err != nil {
		return nil, fmt.Errorf("failed to insert user position: %w", err)
	}

	result := positionFromModel(out)
	return &result, nil
}

func (h userPositionRepositoryHandler) List(tx *sql.Tx) ([]domain.Position, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	query := table.UserPosition.
		SELECT(table.UserPosition.AllColumns).
		ORDER_BY(table.UserPosition.CreatedAt.ASC())

	result := []model.UserPosition{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to list user positions: %w", err)
	}

	out := make([]domain.Position, 0, len(result))
	for _, m := range result {
		out = append(out, positionFromModel(m))
	}
	return out, nil
}

func (h userPositionRepositoryHandler) GetActive(tx *sql.Tx) (*domain.Position, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	query := table.UserPosition.
		SELECT(table.UserPosition.AllColumns).
		WHERE(table.UserPosition.IsActive.IS_TRUE()).
		ORDER_BY(table.UserPosition.CreatedAt.DESC()).
		LIMIT(1)

	result := model.UserPosition{}
	err := query.Query(db, &result)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get active user position: %w", err)
	}

	out := positionFromModel(result)
	return &out, nil
}

func (h userPositionRepositoryHandler) Activate(tx *sql.Tx, positionID uuid.UUID, deactivate []uuid.UUID) error {
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	now := postgres.TimestampT(time.Now().UTC())

	if len(deactivate) > 0 {
		ids := make([]postgres.Expression, 0, len(deactivate))
		for _, id := range deactivate {
			ids = append(ids, postgres.UUID(id))
		}
		query := table.UserPosition.
			UPDATE(table.UserPosition.IsActive, table.UserPosition.ModifiedAt).
			SET(postgres.Bool(false), now).
			WHERE(table.UserPosition.UserPositionID.IN(ids...))
		if _, err := query.Exec(db); err != nil {
			return fmt.Errorf("failed to deactivate user positions: %w", err)
		}
	}

	query := table.UserPosition.
		UPDATE(table.UserPosition.IsActive, table.UserPosition.ModifiedAt).
		SET(postgres.Bool(true), now).
		WHERE(table.UserPosition.UserPositionID.EQ(postgres.UUID(positionID)))

	res, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to activate user position %s: %w", positionID.String(), err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("failed to activate user position %s: not found", positionID.String())
	}

	return nil
}
