package scenario

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	r := DefaultRegistry()

	t.Run("every preset round trips", func(t *testing.T) {
		for _, name := range []string{"bear", "base", "bull", "hyper"} {
			s, err := r.Lookup(strings.ToUpper(name))
			require.NoError(t, err)
			require.Equal(t, name, s.Name)
			require.Equal(t, 365, s.HorizonDays)
			require.Equal(t, 5000, s.NumPaths)
		}
	})

	t.Run("base preset values", func(t *testing.T) {
		s, err := r.Lookup("Base")
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(domain.ScenarioParameters{
			Name:               "base",
			Description:        "Base case: moderate growth, typical volatility",
			PrimaryDrift:       0.20,
			PrimaryVolatility:  0.80,
			Beta:               1.5,
			Alpha:              0,
			ResidualVolatility: 0.30,
			HorizonDays:        365,
			NumPaths:           5000,
		}, s))
	})

	t.Run("unknown name lists alternatives", func(t *testing.T) {
		_, err := r.Lookup("moon")
		var unknown domain.UnknownScenarioError
		require.ErrorAs(t, err, &unknown)
		require.Equal(t, []string{"base", "bear", "bull", "hyper"}, unknown.Available)
		require.Contains(t, err.Error(), "moon")
	})

	t.Run("overrides never touch the preset", func(t *testing.T) {
		derived, err := r.Resolve("bull", domain.ScenarioOverrides{
			HorizonDays: util.IntPointer(30),
			Beta:        util.FloatPointer(2.5),
		})
		require.NoError(t, err)
		require.Equal(t, 30, derived.HorizonDays)
		require.Equal(t, 2.5, derived.Beta)

		preset, err := r.Lookup("bull")
		require.NoError(t, err)
		require.Equal(t, 365, preset.HorizonDays)
		require.Equal(t, 1.7, preset.Beta)
	})

	t.Run("invalid overrides are rejected", func(t *testing.T) {
		_, err := r.Resolve("base", domain.ScenarioOverrides{NumPaths: util.IntPointer(0)})
		require.ErrorAs(t, err, &domain.InvalidInputError{})
	})
}

func TestRegistry_Extend(t *testing.T) {
	r := DefaultRegistry()
	crash := domain.ScenarioParameters{
		Name:              "Crash",
		PrimaryDrift:      -0.8,
		PrimaryVolatility: 1.5,
		Beta:              2,
		HorizonDays:       90,
		NumPaths:          1000,
	}

	extended, err := r.Extend(crash)
	require.NoError(t, err)

	s, err := extended.Lookup("crash")
	require.NoError(t, err)
	require.Equal(t, "crash", s.Name)

	_, err = r.Lookup("crash")
	require.Error(t, err)

	_, err = r.Extend(domain.ScenarioParameters{Name: "broken"})
	require.Error(t, err)
}

func TestNewCustom(t *testing.T) {
	s, err := NewCustom(CustomInput{
		Name:              "mine",
		PrimaryDrift:      0.1,
		PrimaryVolatility: 0.5,
	})
	require.NoError(t, err)
	require.Equal(t, 1.5, s.Beta)
	require.Equal(t, 0.0, s.Alpha)
	require.Equal(t, 0.30, s.ResidualVolatility)
	require.Equal(t, 365, s.HorizonDays)
	require.Equal(t, 5000, s.NumPaths)

	_, err = NewCustom(CustomInput{Name: "bad", PrimaryVolatility: -1})
	require.Error(t, err)
}

func TestJSON(t *testing.T) {
	r := DefaultRegistry()
	s, err := r.Lookup("hyper")
	require.NoError(t, err)

	out, err := ToJSON(s)
	require.NoError(t, err)
	require.Contains(t, out, `"primary_drift":1.5`)
	require.Contains(t, out, `"residual_volatility":0.5`)

	back, err := FromJSON(out)
	require.NoError(t, err)
	require.Equal(t, "", cmp.Diff(s, back))
}

func TestNewRegistry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	err := os.WriteFile(path, []byte(`
scenarios:
  - name: winter
    description: long grind down
    primaryDrift: -0.5
    primaryVolatility: 0.9
    beta: 1.9
    alpha: -0.1
    residualVolatility: 0.45
    horizonDays: 730
    numPaths: 2000
  - name: base
    description: house view
    primaryDrift: 0.3
    primaryVolatility: 0.6
    beta: 1.4
    residualVolatility: 0.25
    horizonDays: 365
    numPaths: 5000
`), 0o600)
	require.NoError(t, err)

	r, err := NewRegistry(path)
	require.NoError(t, err)

	winter, err := r.Lookup("winter")
	require.NoError(t, err)
	require.Equal(t, 730, winter.HorizonDays)
	require.Equal(t, -0.1, winter.Alpha)

	base, err := r.Lookup("base")
	require.NoError(t, err)
	require.Equal(t, "house view", base.Description)

	require.Equal(t, []string{"base", "bear", "bull", "hyper", "winter"}, r.Names())

	_, err = NewRegistry(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
