// Package scenario holds the named simulation presets and the helpers for
// deriving ad-hoc scenarios from them.
package scenario

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultHorizonDays = 365
	defaultNumPaths    = 5000
)

var presets = []domain.ScenarioParameters{
	{
		Name:               "bear",
		Description:        "Bear market: negative returns, high volatility",
		PrimaryDrift:       -0.30,
		PrimaryVolatility:  1.00,
		Beta:               1.8,
		Alpha:              -0.05,
		ResidualVolatility: 0.40,
		HorizonDays:        defaultHorizonDays,
		NumPaths:           defaultNumPaths,
	},
	{
		Name:               "base",
		Description:        "Base case: moderate growth, typical volatility",
		PrimaryDrift:       0.20,
		PrimaryVolatility:  0.80,
		Beta:               1.5,
		Alpha:              0.0,
		ResidualVolatility: 0.30,
		HorizonDays:        defaultHorizonDays,
		NumPaths:           defaultNumPaths,
	},
	{
		Name:               "bull",
		Description:        "Bull market: strong returns, moderate volatility",
		PrimaryDrift:       0.60,
		PrimaryVolatility:  0.70,
		Beta:               1.7,
		Alpha:              0.10,
		ResidualVolatility: 0.35,
		HorizonDays:        defaultHorizonDays,
		NumPaths:           defaultNumPaths,
	},
	{
		Name:               "hyper",
		Description:        "Hyper bull: extreme growth, increasing volatility",
		PrimaryDrift:       1.50,
		PrimaryVolatility:  1.20,
		Beta:               2.0,
		Alpha:              0.20,
		ResidualVolatility: 0.50,
		HorizonDays:        defaultHorizonDays,
		NumPaths:           defaultNumPaths,
	},
}

// Registry is a read-only set of presets keyed by lower-cased name. Lookup
// hands out copies, so callers cannot change what later lookups see.
type Registry struct {
	scenarios map[string]domain.ScenarioParameters
}

func DefaultRegistry() *Registry {
	r := &Registry{scenarios: map[string]domain.ScenarioParameters{}}
	for _, p := range presets {
		r.scenarios[p.Name] = p
	}
	return r
}

// Lookup matches name case-insensitively.
func (r *Registry) Lookup(name string) (domain.ScenarioParameters, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	s, ok := r.scenarios[key]
	if !ok {
		return domain.ScenarioParameters{}, domain.UnknownScenarioError{
			Name:      name,
			Available: r.Names(),
		}
	}
	return s, nil
}

// Names lists registered scenarios alphabetically.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) List() []domain.ScenarioParameters {
	out := []domain.ScenarioParameters{}
	for _, name := range r.Names() {
		out = append(out, r.scenarios[name])
	}
	return out
}

// Resolve looks up a preset and applies overrides to a copy of it.
func (r *Registry) Resolve(name string, overrides domain.ScenarioOverrides) (domain.ScenarioParameters, error) {
	s, err := r.Lookup(name)
	if err != nil {
		return domain.ScenarioParameters{}, err
	}
	out := s.WithOverrides(overrides)
	if err := Validate(out); err != nil {
		return domain.ScenarioParameters{}, err
	}
	return out, nil
}

// Extend returns a new registry containing r plus extra. A scenario in extra
// replaces a preset only when it carries the same name.
func (r *Registry) Extend(extra ...domain.ScenarioParameters) (*Registry, error) {
	out := &Registry{scenarios: make(map[string]domain.ScenarioParameters, len(r.scenarios)+len(extra))}
	for k, v := range r.scenarios {
		out.scenarios[k] = v
	}
	for _, s := range extra {
		if err := Validate(s); err != nil {
			return nil, fmt.Errorf("invalid scenario %q: %w", s.Name, err)
		}
		s.Name = strings.ToLower(strings.TrimSpace(s.Name))
		out.scenarios[s.Name] = s
	}
	return out, nil
}

func Validate(s domain.ScenarioParameters) error {
	if strings.TrimSpace(s.Name) == "" {
		return domain.InvalidInputError{Field: "name", Reason: "must not be empty"}
	}
	if !(s.PrimaryVolatility >= 0) || math.IsInf(s.PrimaryVolatility, 0) {
		return domain.InvalidInputError{Field: "primary_volatility", Reason: fmt.Sprintf("must be a finite value >= 0, got %v", s.PrimaryVolatility)}
	}
	if !(s.ResidualVolatility >= 0) || math.IsInf(s.ResidualVolatility, 0) {
		return domain.InvalidInputError{Field: "residual_volatility", Reason: fmt.Sprintf("must be a finite value >= 0, got %v", s.ResidualVolatility)}
	}
	if s.HorizonDays < 1 {
		return domain.InvalidInputError{Field: "horizon_days", Reason: fmt.Sprintf("must be >= 1, got %d", s.HorizonDays)}
	}
	if s.NumPaths < 1 {
		return domain.InvalidInputError{Field: "num_paths", Reason: fmt.Sprintf("must be >= 1, got %d", s.NumPaths)}
	}
	return nil
}

type CustomInput struct {
	Name               string
	Description        string
	PrimaryDrift       float64
	PrimaryVolatility  float64
	Beta               *float64
	Alpha              *float64
	ResidualVolatility *float64
	HorizonDays        *int
	NumPaths           *int
}

// NewCustom builds an unregistered scenario, filling the factor model and
// run size from the usual defaults.
func NewCustom(in CustomInput) (domain.ScenarioParameters, error) {
	s := domain.ScenarioParameters{
		Name:               in.Name,
		Description:        in.Description,
		PrimaryDrift:       in.PrimaryDrift,
		PrimaryVolatility:  in.PrimaryVolatility,
		Beta:               util.DefaultBeta,
		Alpha:              util.DefaultAlpha,
		ResidualVolatility: util.DefaultResidualVolatility,
		HorizonDays:        defaultHorizonDays,
		NumPaths:           defaultNumPaths,
	}
	if in.Beta != nil {
		s.Beta = *in.Beta
	}
	if in.Alpha != nil {
		s.Alpha = *in.Alpha
	}
	if in.ResidualVolatility != nil {
		s.ResidualVolatility = *in.ResidualVolatility
	}
	if in.HorizonDays != nil {
		s.HorizonDays = *in.HorizonDays
	}
	if in.NumPaths != nil {
		s.NumPaths = *in.NumPaths
	}
	if err := Validate(s); err != nil {
		return domain.ScenarioParameters{}, err
	}
	return s, nil
}

func ToJSON(s domain.ScenarioParameters) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal scenario: %w", err)
	}
	return string(b), nil
}

func FromJSON(s string) (domain.ScenarioParameters, error) {
	out := domain.ScenarioParameters{}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return domain.ScenarioParameters{}, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	return out, nil
}

type scenarioFile struct {
	Scenarios []domain.ScenarioParameters `yaml:"scenarios"`
}

// LoadFile reads additional scenarios from a yaml file of the form
//
//	scenarios:
//	  - name: crash
//	    primaryDrift: -0.8
//	    ...
func LoadFile(path string) ([]domain.ScenarioParameters, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	f := scenarioFile{}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}
	return f.Scenarios, nil
}

// NewRegistry is the presets extended by the scenario file, when one is
// configured.
func NewRegistry(scenarioFile string) (*Registry, error) {
	r := DefaultRegistry()
	if scenarioFile == "" {
		return r, nil
	}
	extra, err := LoadFile(scenarioFile)
	if err != nil {
		return nil, err
	}
	return r.Extend(extra...)
}
