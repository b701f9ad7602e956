package repository

import (
	"btctreasury/internal/db/models/postgres/public/model"
	"btctreasury/internal/db/models/postgres/public/table"
	"btctreasury/internal/domain"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type SimulationRunRepository interface {
	Add(tx *sql.Tx, run domain.SimulationRun) (*domain.SimulationRun, error)
	Get(runID uuid.UUID) (*domain.SimulationRun, error)
	List(limit int64) ([]domain.SimulationRun, error)
}

type simulationRunRepositoryHandler struct {
	Db *sql.DB
}

func NewSimulationRunRepository(db *sql.DB) SimulationRunRepository {
	return simulationRunRepositoryHandler{Db: db}
}

// seeds are unsigned; postgres has no uint64 so the bits are stored as bigint
func seedToDb(seed *uint64) *int64 {
	if seed == nil {
		return nil
	}
	v := int64(*seed)
	return &v
}

func seedFromDb(seed *int64) *uint64 {
	if seed == nil {
		return nil
	}
	v := uint64(*seed)
	return &v
}

func simulationRunToModel(run domain.SimulationRun) (*model.SimulationRun, error) {
	scenarioBytes, err := json.Marshal(run.Scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario: %w", err)
	}
	resultBytes, err := json.Marshal(run.Results)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal results summary: %w", err)
	}

	return &model.SimulationRun{
		SimulationRunID:    run.SimulationRunID,
		CreatedAt:          run.CreatedAt,
		ScenarioName:       run.ScenarioName,
		HorizonDays:        int32(run.HorizonDays),
		NumPaths:           int32(run.NumPaths),
		Seed:               seedToDb(run.Seed),
		ResidualSeed:       seedToDb(run.ResidualSeed),
		InputSnapshotDate:  run.InputSnapshotDate,
		ScenarioJSON:       string(scenarioBytes),
		ResultsSummaryJSON: string(resultBytes),
	}, nil
}

func simulationRunFromModel(m model.SimulationRun) (*domain.SimulationRun, error) {
	out := &domain.SimulationRun{
		SimulationRunID:   m.SimulationRunID,
		CreatedAt:         m.CreatedAt,
		ScenarioName:      m.ScenarioName,
		HorizonDays:       int(m.HorizonDays),
		NumPaths:          int(m.NumPaths),
		Seed:              seedFromDb(m.Seed),
		ResidualSeed:      seedFromDb(m.ResidualSeed),
		InputSnapshotDate: m.InputSnapshotDate,
	}
	if err := json.Unmarshal([]byte(m.ScenarioJSON), &out.Scenario); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario for run %s: %w", m.SimulationRunID.String(), err)
	}
	if err := json.Unmarshal([]byte(m.ResultsSummaryJSON), &out.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results for run %s: %w", m.SimulationRunID.String(), err)
	}
	return out, nil
}

func (h simulationRunRepositoryHandler) Add(tx *sql.Tx, run domain.SimulationRun) (*domain.SimulationRun, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	if run.SimulationRunID == uuid.Nil {
		run.SimulationRunID = uuid.New()
	}
	run.CreatedAt = time.Now().UTC()
	m, err := simulationRunToModel(run)
	if err != nil {
		return nil, err
	}

	query := table.SimulationRun.
		INSERT(table.SimulationRun.AllColumns).
		MODEL(*m).
		RETURNING(table.SimulationRun.AllColumns)

	out := model.SimulationRun{}
	if err := query.Query(db, &out); err != nil {
		return nil, fmt.Errorf("failed to insert simulation run: %w", err)
	}

	return simulationRunFromModel(out)
}

func (h simulationRunRepositoryHandler) Get(runID uuid.UUID) (*domain.SimulationRun, error) {
	query := table.SimulationRun.
		SELECT(table.SimulationRun.AllColumns).
		WHERE(table.SimulationRun.SimulationRunID.EQ(postgres.UUID(runID)))

	result := model.SimulationRun{}
	err := query.Query(h.Db, &result)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get simulation run %s: %w", runID.String(), err)
	}

	return simulationRunFromModel(result)
}

func (h simulationRunRepositoryHandler) List(limit int64) ([]domain.SimulationRun, error) {
	query := table.SimulationRun.
		SELECT(table.SimulationRun.AllColumns).
		ORDER_BY(table.SimulationRun.CreatedAt.DESC()).
		LIMIT(limit)

	result := []model.SimulationRun{}
	if err := query.Query(h.Db, &result); err != nil {
		return nil, fmt.Errorf("failed to list simulation runs: %w", err)
	}

	out := make([]domain.SimulationRun, 0, len(result))
	for _, m := range result {
		run, err := simulationRunFromModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *run)
	}
	return out, nil
}
