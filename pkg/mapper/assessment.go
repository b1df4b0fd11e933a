// Package mapper converts assessment results into visualization patterns.
package mapper

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/routecmp/pkg/lca"
	"github.com/dkoosis/routecmp/pkg/pattern"
	"github.com/dkoosis/routecmp/pkg/route"
)

const (
	panelTitle    = "Route Comparison Analysis"
	panelSubtitle = "Comparative performance across all manufacturing routes"
	currentSuffix = " (Current)"
	captionPrefix = "Current Route: "
)

// RouteColor returns the fixed hex colour for a route: green for recycled,
// blue for mixed, red for virgin.
func RouteColor(r route.Route) string {
	switch r {
	case route.Recycled:
		return "#10B981"
	case route.Both:
		return "#3B82F6"
	case route.Ore:
		return "#EF4444"
	default:
		return "#94A3B8"
	}
}

// FromAssessment builds the full comparison panel for an assessment:
// header, three pies (carbon, circularity, efficiency), the route grid,
// and a notice when the scenario names no known route.
//
// Pie slices come from the reference tables while captions read the
// assessment's live metrics, so the current route's slice and its caption
// can disagree.
func FromAssessment(result *lca.AssessmentResult) []pattern.Pattern {
	if result == nil {
		return nil
	}
	set := route.Derive(result)

	patterns := []pattern.Pattern{
		&pattern.Header{
			Title:    panelTitle,
			Subtitle: panelSubtitle,
			Material: displayMaterial(result.Material),
			Current:  string(set.Current),
			Matched:  set.Matched(),
		},
		carbonPie(set, result),
		circularityPie(set, result),
		efficiencyPie(set, result),
		routeGrid(set),
	}

	if !set.Matched() {
		patterns = append(patterns, &pattern.Notice{
			Level:   "warning",
			Message: fmt.Sprintf("scenario %q does not start with a known route (Recycled, Both, Ore); no route is marked current", result.Scenario),
		})
	}
	return patterns
}

// displayMaterial title-cases the material for display without lowering
// acronyms such as "PVC".
func displayMaterial(material string) string {
	return cases.Title(language.English, cases.NoLower).String(material)
}

func carbonPie(set route.ComparisonSet, result *lca.AssessmentResult) *pattern.Pie {
	return buildPie(set, pattern.MetricCarbon, "Carbon Footprint Comparison", DatasetCarbon,
		func(m route.Metrics) (float64, string) {
			return m.CarbonFootprint, FormatCarbon(m.CarbonFootprint)
		},
		captionPrefix+FormatCarbon(result.EnvironmentalImpacts.CarbonFootprint))
}

func circularityPie(set route.ComparisonSet, result *lca.AssessmentResult) *pattern.Pie {
	live := RoundHalfUp(result.CircularityMetrics.CircularityScore * 100)
	return buildPie(set, pattern.MetricCircularity, "Circularity Score Comparison", DatasetCircularity,
		func(m route.Metrics) (float64, string) {
			return float64(m.CircularityScore), FormatCircularity(m.CircularityScore)
		},
		captionPrefix+FormatCircularity(live))
}

func efficiencyPie(set route.ComparisonSet, result *lca.AssessmentResult) *pattern.Pie {
	live := RoundHalfUp(result.CircularityMetrics.ResourceEfficiency * 100)
	return buildPie(set, pattern.MetricEfficiency, "Resource Efficiency Comparison", DatasetEfficiency,
		func(m route.Metrics) (float64, string) {
			return float64(m.ResourceEfficiency), FormatEfficiency(m.ResourceEfficiency)
		},
		captionPrefix+FormatEfficiency(live))
}

func buildPie(set route.ComparisonSet, metric pattern.MetricKind, title, dataset string,
	value func(route.Metrics) (float64, string), caption string,
) *pattern.Pie {
	pie := &pattern.Pie{
		Metric:  metric,
		Label:   title,
		Dataset: dataset,
		Caption: caption,
		Slices:  make([]pattern.PieSlice, 0, len(route.All())),
	}
	for _, r := range route.All() {
		v, display := value(set.Get(r))
		label := r.ChartLabel()
		pie.Slices = append(pie.Slices, pattern.PieSlice{
			Route:   string(r),
			Label:   label,
			Value:   v,
			Display: display,
			Tooltip: Tooltip(dataset, label, v),
			Color:   RouteColor(r),
			Current: set.IsCurrent(r),
		})
	}
	return pie
}

func routeGrid(set route.ComparisonSet) *pattern.RouteGrid {
	grid := &pattern.RouteGrid{
		Label: "Route Performance Summary",
		Cards: make([]pattern.RouteCard, 0, len(route.All())),
	}
	for _, r := range route.All() {
		m := set.Get(r)
		title := r.Label()
		if set.IsCurrent(r) {
			title += currentSuffix
		}
		grid.Cards = append(grid.Cards, pattern.RouteCard{
			Route:   string(r),
			Title:   title,
			Color:   RouteColor(r),
			Current: set.IsCurrent(r),
			Lines: []string{
				"Carbon: " + FormatCarbon(m.CarbonFootprint),
				"Circularity: " + FormatCircularity(m.CircularityScore),
				"Efficiency: " + FormatEfficiency(m.ResourceEfficiency),
			},
		})
	}
	return grid
}
