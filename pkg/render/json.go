package render

import (
	"encoding/json"

	"github.com/dkoosis/routecmp/pkg/pattern"
)

// JSON renders patterns as structured JSON for automation. Alongside the
// raw patterns it emits a per-route comparison keyed by metric, so
// consumers need not walk the pie slices.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonOutput struct {
	Version    string          `json:"version"`
	Comparison *jsonComparison `json:"comparison,omitempty"`
	Patterns   []jsonPattern   `json:"patterns"`
}

type jsonPattern struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type jsonComparison struct {
	Current  string                        `json:"current"`
	Matched  bool                          `json:"matched"`
	Material string                        `json:"material,omitempty"`
	Routes   []jsonRoute                   `json:"routes"`
	Captions map[pattern.MetricKind]string `json:"captions,omitempty"`
}

type jsonRoute struct {
	Route   string                         `json:"route"`
	Current bool                           `json:"current"`
	Metrics map[pattern.MetricKind]float64 `json:"metrics"`
}

// Render formats all patterns as JSON.
func (j *JSON) Render(patterns []pattern.Pattern) string {
	out := jsonOutput{
		Version:    "1.0",
		Comparison: comparisonOf(patterns),
		Patterns:   make([]jsonPattern, 0, len(patterns)),
	}
	for _, p := range patterns {
		out.Patterns = append(out.Patterns, jsonPattern{
			Type: string(p.Type()),
			Data: p,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}

// comparisonOf folds the header and pies into per-route metrics, in the
// order routes first appear. Nil when there is nothing to compare.
func comparisonOf(patterns []pattern.Pattern) *jsonComparison {
	var cmp jsonComparison
	index := map[string]int{}
	seen := false
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Header:
			cmp.Current, cmp.Matched, cmp.Material = v.Current, v.Matched, v.Material
			seen = true
		case *pattern.Pie:
			seen = true
			if v.Caption != "" {
				if cmp.Captions == nil {
					cmp.Captions = map[pattern.MetricKind]string{}
				}
				cmp.Captions[v.Metric] = v.Caption
			}
			for _, s := range v.Slices {
				i, ok := index[s.Route]
				if !ok {
					i = len(cmp.Routes)
					index[s.Route] = i
					cmp.Routes = append(cmp.Routes, jsonRoute{Route: s.Route, Metrics: map[pattern.MetricKind]float64{}})
				}
				cmp.Routes[i].Metrics[v.Metric] = s.Value
				cmp.Routes[i].Current = cmp.Routes[i].Current || s.Current
			}
		}
	}
	if !seen {
		return nil
	}
	if cmp.Routes == nil {
		cmp.Routes = []jsonRoute{}
	}
	return &cmp
}
