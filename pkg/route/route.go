// Package route derives the three-way manufacturing route comparison from an
// assessment result. Values for every route come from fixed reference tables
// selected by material category; only the current-route marker depends on
// the assessment's scenario.
package route

import (
	"strings"

	"github.com/dkoosis/routecmp/pkg/lca"
)

// Route identifies a manufacturing pathway.
type Route string

const (
	Recycled Route = "Recycled"
	Both     Route = "Both" // mixed recycled and virgin feedstock
	Ore      Route = "Ore"  // virgin feedstock
)

// All returns the routes in display order.
func All() []Route {
	return []Route{Recycled, Both, Ore}
}

// Valid reports whether r is one of the three fixed routes.
func (r Route) Valid() bool {
	switch r {
	case Recycled, Both, Ore:
		return true
	}
	return false
}

// Label is the summary card title.
func (r Route) Label() string {
	switch r {
	case Recycled:
		return "Recycled Route"
	case Both:
		return "Mixed Route"
	case Ore:
		return "Virgin Route"
	default:
		return string(r) + " Route"
	}
}

// ChartLabel is the legend label used on the pie charts.
func (r Route) ChartLabel() string {
	switch r {
	case Recycled:
		return "Recycled Route"
	case Both:
		return "Mixed Route (Both)"
	case Ore:
		return "Virgin Route (Ore)"
	default:
		return r.Label()
	}
}

// CurrentRoute returns the scenario text before the first space, or the
// whole scenario when it has none. The token is returned verbatim; use
// Route.Valid to check it names a known route.
func CurrentRoute(scenario string) Route {
	head, _, _ := strings.Cut(scenario, " ")
	return Route(head)
}

// ComparisonSet is the per-route comparison for one assessment.
type ComparisonSet struct {
	Current Route
	Routes  map[Route]Metrics
}

// IsCurrent reports whether r is the assessed route.
func (c ComparisonSet) IsCurrent(r Route) bool {
	return c.Current == r
}

// Matched reports whether the scenario named one of the fixed routes.
func (c ComparisonSet) Matched() bool {
	return c.Current.Valid()
}

// Get returns the metrics for r, zero if absent.
func (c ComparisonSet) Get(r Route) Metrics {
	return c.Routes[r]
}

// Derive builds the comparison set for an assessment. It is a pure function
// of the result's scenario and material; the live metrics are not consulted.
func Derive(result *lca.AssessmentResult) ComparisonSet {
	if result == nil {
		return ComparisonSet{Routes: Table(CategoryOther)}
	}
	return ComparisonSet{
		Current: CurrentRoute(result.Scenario),
		Routes:  Table(CategoryOf(result.Material)),
	}
}
