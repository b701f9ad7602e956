package util

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaults for anything the config file leaves out
const (
	DefaultTradingDaysPerYear        = 252
	DefaultBeta                      = 1.5
	DefaultAlpha                     = 0.0
	DefaultResidualVolatility        = 0.30
	DefaultMinRegressionObservations = 10
	DefaultDrawdownThreshold         = 0.05
	DefaultTopDrawdowns              = 5
	DefaultReturnsLookbackDays       = 90
	DefaultDrawdownLookbackDays      = 365
	DefaultPrimarySymbol             = "BTC"
	DefaultEquitySymbol              = "MSTR"
	DefaultPrimaryTicker             = "BTC-USD"
	DefaultEquityTicker              = "MSTR"
	DefaultScenario                  = "base"
	DefaultMaxPathSteps              = 50_000_000
	DefaultApiPort                   = 3009
)

var DefaultRollingWindows = []int{30, 90}

type Config struct {
	Env        string           `yaml:"env"`
	Db         DbConfig         `yaml:"db"`
	Analytics  AnalyticsConfig  `yaml:"analytics"`
	Symbols    SymbolsConfig    `yaml:"symbols"`
	Simulation SimulationConfig `yaml:"simulation"`
	Api        ApiConfig        `yaml:"api"`
}

type DbConfig struct {
	Host      string `yaml:"host"`
	User      string `yaml:"user"`
	Port      string `yaml:"port"`
	Password  string `yaml:"password"`
	Database  string `yaml:"database"`
	EnableSsl bool   `yaml:"enableSsl"`
}

func (t DbConfig) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

type AnalyticsConfig struct {
	TradingDaysPerYear        int     `yaml:"tradingDaysPerYear"`
	DefaultBeta               float64 `yaml:"defaultBeta"`
	DefaultAlpha              float64 `yaml:"defaultAlpha"`
	DefaultResidualVolatility float64 `yaml:"defaultResidualVolatility"`
	MinRegressionObservations int     `yaml:"minRegressionObservations"`
	DrawdownThreshold         float64 `yaml:"drawdownThreshold"`
	TopDrawdowns              int     `yaml:"topDrawdowns"`
	RollingWindows            []int   `yaml:"rollingWindows"`
	RiskFreeRate              float64 `yaml:"riskFreeRate"`
	ReturnsLookbackDays       int     `yaml:"returnsLookbackDays"`
	DrawdownLookbackDays      int     `yaml:"drawdownLookbackDays"`
	// use the published 3 month treasury yield instead of riskFreeRate
	TreasuryRiskFreeRate bool `yaml:"treasuryRiskFreeRate"`
}

type SymbolsConfig struct {
	Primary       string `yaml:"primary"`
	Equity        string `yaml:"equity"`
	PrimaryTicker string `yaml:"primaryTicker"`
	EquityTicker  string `yaml:"equityTicker"`
}

type SimulationConfig struct {
	DefaultScenario string `yaml:"defaultScenario"`
	ScenarioFile    string `yaml:"scenarioFile"`
	// upper bound on num_paths * horizon_days per request
	MaxPathSteps int `yaml:"maxPathSteps"`
}

type ApiConfig struct {
	Port int `yaml:"port"`
}

// ConfigPath picks the file the same way for every entrypoint.
func ConfigPath() string {
	switch strings.ToLower(os.Getenv("TREASURY_ENV")) {
	case "dev":
		return "config-dev.yaml"
	case "test":
		return "config-test.yaml"
	}
	if p := os.Getenv("TREASURY_CONFIG"); p != "" {
		return p
	}
	return "/go/src/app/config.yaml"
}

// LoadConfig reads a yaml config, expanding ${VAR} references from the
// environment, and fills defaults.
func LoadConfig(path string) (*Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	return ParseConfig(f)
}

func ParseConfig(b []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(b))

	cfg := Config{}
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfig is used when no file is present (tests, one-off cli runs).
func DefaultConfig() *Config {
	cfg := Config{}
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	a := &c.Analytics
	if a.TradingDaysPerYear == 0 {
		a.TradingDaysPerYear = DefaultTradingDaysPerYear
	}
	if a.DefaultBeta == 0 {
		a.DefaultBeta = DefaultBeta
	}
	if a.DefaultResidualVolatility == 0 {
		a.DefaultResidualVolatility = DefaultResidualVolatility
	}
	if a.MinRegressionObservations == 0 {
		a.MinRegressionObservations = DefaultMinRegressionObservations
	}
	if a.DrawdownThreshold == 0 {
		a.DrawdownThreshold = DefaultDrawdownThreshold
	}
	if a.TopDrawdowns == 0 {
		a.TopDrawdowns = DefaultTopDrawdowns
	}
	if len(a.RollingWindows) == 0 {
		a.RollingWindows = append([]int{}, DefaultRollingWindows...)
	}
	if a.ReturnsLookbackDays == 0 {
		a.ReturnsLookbackDays = DefaultReturnsLookbackDays
	}
	if a.DrawdownLookbackDays == 0 {
		a.DrawdownLookbackDays = DefaultDrawdownLookbackDays
	}

	s := &c.Symbols
	if s.Primary == "" {
		s.Primary = DefaultPrimarySymbol
	}
	if s.Equity == "" {
		s.Equity = DefaultEquitySymbol
	}
	if s.PrimaryTicker == "" {
		s.PrimaryTicker = DefaultPrimaryTicker
	}
	if s.EquityTicker == "" {
		s.EquityTicker = DefaultEquityTicker
	}

	if c.Simulation.DefaultScenario == "" {
		c.Simulation.DefaultScenario = DefaultScenario
	}
	if c.Simulation.MaxPathSteps == 0 {
		c.Simulation.MaxPathSteps = DefaultMaxPathSteps
	}
	if c.Api.Port == 0 {
		c.Api.Port = DefaultApiPort
	}
}

func (c *Config) Validate() error {
	if c.Analytics.TradingDaysPerYear < 1 {
		return errors.New("analytics.tradingDaysPerYear must be >= 1")
	}
	if c.Analytics.MinRegressionObservations < 2 {
		return errors.New("analytics.minRegressionObservations must be >= 2")
	}
	if c.Analytics.DrawdownThreshold < 0 || c.Analytics.DrawdownThreshold >= 1 {
		return fmt.Errorf("analytics.drawdownThreshold must be in [0, 1), got %f", c.Analytics.DrawdownThreshold)
	}
	for _, w := range c.Analytics.RollingWindows {
		if w < 2 {
			return fmt.Errorf("analytics.rollingWindows entries must be >= 2, got %d", w)
		}
	}
	if c.Symbols.Primary == c.Symbols.Equity {
		return errors.New("symbols.primary and symbols.equity must differ")
	}
	return nil
}
