package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
db:
  host: localhost
  port: "5440"
`))
		require.NoError(t, err)
		require.Equal(t, 252, cfg.Analytics.TradingDaysPerYear)
		require.Equal(t, 1.5, cfg.Analytics.DefaultBeta)
		require.Equal(t, 0.30, cfg.Analytics.DefaultResidualVolatility)
		require.Equal(t, 0.05, cfg.Analytics.DrawdownThreshold)
		require.Equal(t, []int{30, 90}, cfg.Analytics.RollingWindows)
		require.Equal(t, "BTC", cfg.Symbols.Primary)
		require.Equal(t, "MSTR", cfg.Symbols.Equity)
		require.Equal(t, "base", cfg.Simulation.DefaultScenario)
	})

	t.Run("overrides and env substitution", func(t *testing.T) {
		t.Setenv("TEST_DB_PASSWORD", "secret123")
		cfg, err := ParseConfig([]byte(`
db:
  password: ${TEST_DB_PASSWORD}
analytics:
  defaultBeta: 2.1
  drawdownThreshold: 0.1
  tradingDaysPerYear: 365
  treasuryRiskFreeRate: true
`))
		require.NoError(t, err)
		require.Equal(t, "secret123", cfg.Db.Password)
		require.Equal(t, 2.1, cfg.Analytics.DefaultBeta)
		require.Equal(t, 0.1, cfg.Analytics.DrawdownThreshold)
		require.Equal(t, 365, cfg.Analytics.TradingDaysPerYear)
		require.True(t, cfg.Analytics.TreasuryRiskFreeRate)
	})

	t.Run("invalid threshold", func(t *testing.T) {
		_, err := ParseConfig([]byte(`
analytics:
  drawdownThreshold: 1.5
`))
		require.Error(t, err)
	})

	t.Run("same symbols", func(t *testing.T) {
		_, err := ParseConfig([]byte(`
symbols:
  primary: MSTR
  equity: MSTR
`))
		require.Error(t, err)
	})
}

func TestDbConfig_ToConnectionStr(t *testing.T) {
	c := DbConfig{Host: "h", Port: "5432", User: "u", Password: "p", Database: "d"}
	require.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", c.ToConnectionStr())
}
