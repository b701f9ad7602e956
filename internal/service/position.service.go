package service

import (
	"btctreasury/internal/calculator"
	"btctreasury/internal/domain"
	"btctreasury/internal/logger"
	"btctreasury/internal/repository"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PositionService interface {
	// Show values the active position; InsufficientDataError when there is
	// no active position or no NAV for the date.
	Show(ctx context.Context, asOf time.Time) (*domain.PositionMetrics, error)
	List(ctx context.Context) ([]domain.Position, error)
	// Set records a new holding and makes it the only active one.
	Set(ctx context.Context, label string, quantity, avgEntryPrice float64) (*domain.Position, error)
	Activate(ctx context.Context, positionID uuid.UUID) error
}

type positionServiceHandler struct {
	Db                 *sql.DB
	PositionRepository repository.UserPositionRepository
	NavService         NavService
}

func NewPositionService(
	db *sql.DB,
	positionRepository repository.UserPositionRepository,
	navService NavService,
) PositionService {
	return positionServiceHandler{
		Db:                 db,
		PositionRepository: positionRepository,
		NavService:         navService,
	}
}

func (h positionServiceHandler) Show(ctx context.Context, asOf time.Time) (*domain.PositionMetrics, error) {
	active, err := h.PositionRepository.GetActive(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get active position: %w", err)
	}
	if active == nil {
		return nil, domain.InsufficientDataError{What: "no active position"}
	}

	nav, err := h.NavService.NAV(ctx, asOf)
	if err != nil {
		return nil, err
	}

	return calculator.ComputePositionMetrics(active, nav), nil
}

func (h positionServiceHandler) List(ctx context.Context) ([]domain.Position, error) {
	return h.PositionRepository.List(nil)
}

func (h positionServiceHandler) Set(ctx context.Context, label string, quantity, avgEntryPrice float64) (*domain.Position, error) {
	position, err := domain.NewPosition(label, quantity, avgEntryPrice, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	existing, err := h.PositionRepository.List(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	deactivate := calculator.PlanActivation(existing, position.PositionID)

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	inserted, err := h.PositionRepository.Add(tx, position)
	if err != nil {
		return nil, err
	}
	if err := h.PositionRepository.Activate(tx, inserted.PositionID, deactivate); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit position: %w", err)
	}
	inserted.IsActive = true

	logger.FromContext(ctx).Infow("set active position",
		"positionID", inserted.PositionID.String(),
		"label", inserted.Label,
		"deactivated", len(deactivate),
	)

	return inserted, nil
}

func (h positionServiceHandler) Activate(ctx context.Context, positionID uuid.UUID) error {
	existing, err := h.PositionRepository.List(nil)
	if err != nil {
		return fmt.Errorf("failed to list positions: %w", err)
	}
	found := false
	for _, p := range existing {
		if p.PositionID == positionID {
			found = true
			break
		}
	}
	if !found {
		return domain.InsufficientDataError{What: fmt.Sprintf("position %s not found", positionID.String())}
	}

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := h.PositionRepository.Activate(tx, positionID, calculator.PlanActivation(existing, positionID)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activation: %w", err)
	}

	return nil
}
