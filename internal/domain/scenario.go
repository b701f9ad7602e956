package domain

// ScenarioParameters is a named set of simulation inputs. Drift and
// volatilities are annualised; HorizonDays counts simulation steps.
type ScenarioParameters struct {
	Name               string  `json:"name" yaml:"name"`
	Description        string  `json:"description" yaml:"description"`
	PrimaryDrift       float64 `json:"primary_drift" yaml:"primaryDrift"`
	PrimaryVolatility  float64 `json:"primary_volatility" yaml:"primaryVolatility"`
	Beta               float64 `json:"beta" yaml:"beta"`
	Alpha              float64 `json:"alpha" yaml:"alpha"`
	ResidualVolatility float64 `json:"residual_volatility" yaml:"residualVolatility"`
	HorizonDays        int     `json:"horizon_days" yaml:"horizonDays"`
	NumPaths           int     `json:"num_paths" yaml:"numPaths"`
}

// ScenarioOverrides replaces any non-nil field of a preset. Applying it
// produces a new value; the preset is untouched.
type ScenarioOverrides struct {
	Name               *string  `json:"name,omitempty"`
	Description        *string  `json:"description,omitempty"`
	PrimaryDrift       *float64 `json:"primaryDrift,omitempty"`
	PrimaryVolatility  *float64 `json:"primaryVolatility,omitempty"`
	Beta               *float64 `json:"beta,omitempty"`
	Alpha              *float64 `json:"alpha,omitempty"`
	ResidualVolatility *float64 `json:"residualVolatility,omitempty"`
	HorizonDays        *int     `json:"horizonDays,omitempty"`
	NumPaths           *int     `json:"numPaths,omitempty"`
}

func (s ScenarioParameters) WithOverrides(o ScenarioOverrides) ScenarioParameters {
	out := s
	if o.Name != nil {
		out.Name = *o.Name
	}
	if o.Description != nil {
		out.Description = *o.Description
	}
	if o.PrimaryDrift != nil {
		out.PrimaryDrift = *o.PrimaryDrift
	}
	if o.PrimaryVolatility != nil {
		out.PrimaryVolatility = *o.PrimaryVolatility
	}
	if o.Beta != nil {
		out.Beta = *o.Beta
	}
	if o.Alpha != nil {
		out.Alpha = *o.Alpha
	}
	if o.ResidualVolatility != nil {
		out.ResidualVolatility = *o.ResidualVolatility
	}
	if o.HorizonDays != nil {
		out.HorizonDays = *o.HorizonDays
	}
	if o.NumPaths != nil {
		out.NumPaths = *o.NumPaths
	}
	return out
}
