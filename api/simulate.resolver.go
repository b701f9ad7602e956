package api

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/service"
	"btctreasury/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type scenariosResponse struct {
	Scenarios []domain.ScenarioParameters `json:"scenarios"`
}

func (m ApiHandler) scenarios(c *gin.Context) {
	c.JSON(200, scenariosResponse{
		Scenarios: m.SimulationService.Scenarios(),
	})
}

type simulateRequest struct {
	Scenario        string                   `json:"scenario"`
	Overrides       domain.ScenarioOverrides `json:"overrides"`
	AsOf            string                   `json:"asOf"`
	Seed            *uint64                  `json:"seed"`
	ResidualSeed    *uint64                  `json:"residualSeed"`
	Calibrate       bool                     `json:"calibrate"`
	SamplePaths     int                      `json:"samplePaths"`
	ExcludePosition bool                     `json:"excludePosition"`
}

func (r simulateRequest) toServiceRequest() (service.SimulationRequest, error) {
	asOf, err := util.ParseDateOrToday(r.AsOf)
	if err != nil {
		return service.SimulationRequest{}, domain.InvalidInputError{Field: "asOf", Reason: "expected YYYY-MM-DD"}
	}
	if r.SamplePaths < 0 {
		return service.SimulationRequest{}, domain.InvalidInputError{Field: "samplePaths", Reason: "must be >= 0"}
	}
	return service.SimulationRequest{
		Scenario:        r.Scenario,
		Overrides:       r.Overrides,
		AsOf:            asOf,
		Seed:            r.Seed,
		ResidualSeed:    r.ResidualSeed,
		Calibrate:       r.Calibrate,
		SamplePaths:     r.SamplePaths,
		ExcludePosition: r.ExcludePosition,
	}, nil
}

func (m ApiHandler) simulate(c *gin.Context) {
	var requestBody simulateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(domain.InvalidInputError{Field: "body", Reason: err.Error()}, c)
		return
	}

	req, err := requestBody.toServiceRequest()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := m.SimulationService.Run(c.Request.Context(), req)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}

type listSimulationsResponse struct {
	Runs []domain.SimulationRun `json:"runs"`
}

func (m ApiHandler) listSimulations(c *gin.Context) {
	var limit int64
	if s := c.Query("limit"); s != "" {
		l, err := strconv.ParseInt(s, 10, 64)
		if err != nil || l <= 0 {
			returnErrorJson(domain.InvalidInputError{Field: "limit", Reason: "must be a positive integer"}, c)
			return
		}
		limit = l
	}

	runs, err := m.SimulationService.List(c.Request.Context(), limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if runs == nil {
		runs = []domain.SimulationRun{}
	}

	c.JSON(200, listSimulationsResponse{Runs: runs})
}

func (m ApiHandler) getSimulation(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("runID"))
	if err != nil {
		returnErrorJson(domain.InvalidInputError{Field: "runID", Reason: "expected a uuid"}, c)
		return
	}

	run, err := m.SimulationService.Get(c.Request.Context(), runID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, run)
}
