package pattern

// RouteGrid is the summary grid with one card per route.
type RouteGrid struct {
	Label string
	Cards []RouteCard
}

// RouteCard summarizes one route's reference metrics.
type RouteCard struct {
	Route   string
	Title   string // e.g. "Mixed Route (Current)"
	Color   string
	Current bool
	Lines   []string // e.g. "Carbon: 8.64 kg CO₂e"
}

func (g *RouteGrid) Type() PatternType { return PatternTypeRouteGrid }
