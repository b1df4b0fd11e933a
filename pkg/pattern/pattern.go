// Package pattern defines the semantic data types for the route comparison panel.
// Patterns are pure data; renderers decide presentation.
package pattern

// PatternType identifies the kind of visualization pattern.
type PatternType string

const (
	PatternTypeHeader    PatternType = "header"
	PatternTypePie       PatternType = "pie"
	PatternTypeRouteGrid PatternType = "route-grid"
	PatternTypeNotice    PatternType = "notice"
)

// Pattern is the interface all visualization patterns implement.
// Patterns hold data; renderers decide how to present it.
type Pattern interface {
	Type() PatternType
}
