// Package render provides output renderers for the route comparison patterns.
package render

import "github.com/dkoosis/routecmp/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}
