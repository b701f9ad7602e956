package api

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/logger"
	"btctreasury/internal/metrics"
	"btctreasury/internal/service"
	"btctreasury/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                 *sql.DB
	Logger             *zap.SugaredLogger
	NavService         service.NavService
	PositionService    service.PositionService
	SimulationService  service.SimulationService
	PerformanceService service.PerformanceService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(metrics.GinMiddleware())
	router.Use(m.requestContextMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to btctreasury"})
	})
	router.GET("/health", m.health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.GET("/summary", m.summary)
	router.GET("/nav", m.nav)
	router.GET("/nav/history", m.navHistory)
	router.GET("/tranches", m.tranches)
	router.GET("/position", m.getPosition)
	router.POST("/position", m.setPosition)
	router.GET("/scenarios", m.scenarios)
	router.POST("/simulate", m.simulate)
	router.GET("/simulate", m.listSimulations)
	router.GET("/simulate/:runID", m.getSimulation)
	router.GET("/performance/:symbol", m.performance)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// errorStatus maps the typed errors services return to a response code.
func errorStatus(err error) int {
	invalidInput := domain.InvalidInputError{}
	unknownScenario := domain.UnknownScenarioError{}
	insufficientData := domain.InsufficientDataError{}
	switch {
	case errors.As(err, &invalidInput), errors.As(err, &unknownScenario):
		return http.StatusBadRequest
	case errors.As(err, &insufficientData):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatus(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	lg := logger.FromContext(c.Request.Context())
	if code >= 500 {
		lg.Errorw("request failed", "path", c.FullPath(), "error", err)
	} else {
		lg.Infow("request rejected", "path", c.FullPath(), "status", code, "error", err)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// requestContextMiddleware gives every request a logger and a profile so
// services can record spans, then logs the request once it completes.
func (m ApiHandler) requestContextMiddleware(c *gin.Context) {
	lg := m.Logger
	if lg == nil {
		lg = logger.FromContext(c.Request.Context())
	}
	lg = lg.With("method", c.Request.Method, "path", c.Request.URL.Path)

	profile, endProfile := domain.NewProfile()
	ctx := logger.WithLogger(c.Request.Context(), lg)
	ctx = context.WithValue(ctx, domain.ContextProfileKey, profile)
	c.Request = c.Request.WithContext(ctx)

	start := time.Now()
	c.Next()
	endProfile()

	lg.Infow(
		"handled request",
		"status", c.Writer.Status(),
		"elapsedMs", time.Since(start).Milliseconds(),
		"spans", len(profile.Spans),
	)
}

// parseAsOf reads the optional asOf query parameter, defaulting to today.
func parseAsOf(c *gin.Context) (time.Time, error) {
	asOf, err := util.ParseDateOrToday(c.Query("asOf"))
	if err != nil {
		return time.Time{}, domain.InvalidInputError{Field: "asOf", Reason: "expected YYYY-MM-DD"}
	}
	return asOf, nil
}
