// Package lca defines the life-cycle assessment result consumed by routecmp.
// The metrics are computed upstream by the LCA engine; this package only
// decodes and validates them.
package lca

import "errors"

// ErrMissingScenario is returned when an assessment has no scenario.
var ErrMissingScenario = errors.New("missing scenario")

// AssessmentResult is one LCA engine response.
type AssessmentResult struct {
	// Scenario names the assessed route; its first word identifies it,
	// e.g. "Recycled Route Analysis".
	Scenario             string               `json:"scenario" yaml:"scenario"`
	Material             string               `json:"material" yaml:"material"`
	EnvironmentalImpacts EnvironmentalImpacts `json:"environmentalImpacts" yaml:"environmentalImpacts"`
	CircularityMetrics   CircularityMetrics   `json:"circularityMetrics" yaml:"circularityMetrics"`
}

// EnvironmentalImpacts holds the computed environmental metrics.
type EnvironmentalImpacts struct {
	CarbonFootprint float64 `json:"carbonFootprint" yaml:"carbonFootprint"` // kg CO₂e
}

// CircularityMetrics holds the computed circularity metrics as 0–1 fractions.
type CircularityMetrics struct {
	CircularityScore   float64 `json:"circularityScore" yaml:"circularityScore"`
	ResourceEfficiency float64 `json:"resourceEfficiency" yaml:"resourceEfficiency"`
}

// Validate checks the input constraints the comparator relies on.
// Fractions outside 0–1 are left alone; they are displayed as given.
func (r *AssessmentResult) Validate() error {
	if r.Scenario == "" {
		return ErrMissingScenario
	}
	return nil
}
