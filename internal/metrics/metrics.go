// Package metrics holds the Prometheus collectors for simulations,
// ingestion and the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treasury_simulations_total",
		Help: "Simulation runs, partitioned by scenario and outcome",
	}, []string{"scenario", "status"})

	SimulationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "treasury_simulation_duration_seconds",
		Help:    "Wall time to simulate and summarise one scenario",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"scenario"})

	SimulatedPathSteps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "treasury_simulated_path_steps_total",
		Help: "num_paths * horizon_days summed over all runs",
	})

	IngestedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treasury_ingested_rows_total",
		Help: "Rows written by the ingest jobs",
	}, []string{"kind"})

	SnapshotPremium = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "treasury_snapshot_premium_to_asset_nav",
		Help: "Premium to asset NAV of the most recent snapshot",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treasury_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "treasury_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 5.0},
	}, []string{"method", "path"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}

// GinMiddleware records request counts and latency by route pattern.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveSimulation records one finished run.
func ObserveSimulation(scenario string, numPaths, horizonDays int, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	SimulationsTotal.WithLabelValues(scenario, status).Inc()
	if err == nil {
		SimulationDuration.WithLabelValues(scenario).Observe(elapsed.Seconds())
		SimulatedPathSteps.Add(float64(numPaths) * float64(horizonDays))
	}
}
