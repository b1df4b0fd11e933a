package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/routecmp/pkg/lca"
	"github.com/dkoosis/routecmp/pkg/mapper"
	"github.com/dkoosis/routecmp/pkg/pattern"
)

func orePatterns() []pattern.Pattern {
	return mapper.FromAssessment(&lca.AssessmentResult{
		Scenario:             "Ore Route Analysis",
		Material:             "Aluminium",
		EnvironmentalImpacts: lca.EnvironmentalImpacts{CarbonFootprint: 12.347},
		CircularityMetrics:   lca.CircularityMetrics{CircularityScore: 0.1, ResourceEfficiency: 0.2},
	})
}

func unknownPatterns() []pattern.Pattern {
	return mapper.FromAssessment(&lca.AssessmentResult{Scenario: "Unknown Path", Material: "Steel"})
}

func TestTerminal_RendersPanel(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render(orePatterns())

	for _, want := range []string{
		"Route Comparison Analysis",
		"Comparative performance across all manufacturing routes",
		"Current: Ore Route",
		"Material: Aluminium",
		"Carbon Footprint Comparison",
		"Circularity Score Comparison",
		"Resource Efficiency Comparison",
		"Virgin Route (Ore): 16.90 kg CO₂e",
		"Current Route: 12.35 kg CO₂e",
		"Current Route: 10/100",
		"Current Route: 20%",
		"Virgin Route (Current)",
		"Efficiency: 90%",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Recycled Route (Current)")
}

func TestTerminal_MonoUsesDistinctGlyphs(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render(orePatterns())
	assert.Contains(t, out, "##")
	assert.Contains(t, out, "==")
	assert.Contains(t, out, "...")
}

func TestTerminal_WideLayoutPlacesCardsSideBySide(t *testing.T) {
	out := NewTerminal(MonoTheme(), 120).Render(orePatterns())
	found := false
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Recycled Route") && strings.Contains(line, "Virgin Route (Current)") {
			found = true
			break
		}
	}
	assert.True(t, found, "expected card titles on one line in wide layout:\n%s", out)
}

func TestTerminal_NarrowLayoutStacksCards(t *testing.T) {
	out := NewTerminal(MonoTheme(), 60).Render(orePatterns())
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Mixed Route") && strings.Contains(line, "Virgin Route (Current)") {
			t.Fatalf("expected stacked cards at narrow width, got:\n%s", out)
		}
	}
}

func TestTerminal_UnknownScenarioShowsWarning(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render(unknownPatterns())
	assert.Contains(t, out, "Current: Unknown Route")
	assert.Contains(t, out, "does not start with a known route")
	assert.NotContains(t, out, "(Current)")
}

func TestTerminal_DefaultWidth(t *testing.T) {
	r := NewTerminal(DefaultTheme(), 0)
	assert.Equal(t, 80, r.width)
}

func TestAllocateCells(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		width  int
		want   []int
	}{
		{"aluminium carbon", []float64{0.89, 8.64, 16.90}, 60, []int{2, 20, 38}},
		{"circularity", []float64{92, 48, 8}, 60, []int{37, 20, 3}},
		{"even split", []float64{1, 1}, 5, []int{3, 2}},
		{"all zero", []float64{0, 0, 0}, 10, []int{0, 0, 0}},
		{"negative ignored", []float64{-5, 1}, 4, []int{0, 4}},
		{"zero width", []float64{1, 2}, 0, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := allocateCells(tt.values, tt.width)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLLM_RendersPlainText(t *testing.T) {
	out := NewLLM().Render(orePatterns())

	assert.True(t, strings.HasPrefix(out, "SCOPE: 3 routes, current=Ore, material=Aluminium\n"), out)
	assert.Contains(t, out, "## Carbon Footprint Comparison")
	assert.Contains(t, out, "  Virgin Route (Ore): 16.90 kg CO₂e (63.9%) [current]")
	assert.Contains(t, out, "  Recycled Route: 92/100")
	assert.Contains(t, out, "  Current Route: 12.35 kg CO₂e")
	assert.Contains(t, out, "  Virgin Route (Current) | Carbon: 16.90 kg CO₂e | Circularity: 8/100 | Efficiency: 15%")
	assert.NotContains(t, out, "\033[")
}

func TestLLM_UnmatchedScope(t *testing.T) {
	out := NewLLM().Render(unknownPatterns())
	assert.Contains(t, out, `current=none (scenario token "Unknown")`)
	assert.Contains(t, out, "\nWARN scenario")
	assert.NotContains(t, out, "[current]")
}

func TestJSON_Render(t *testing.T) {
	out := NewJSON().Render(orePatterns())

	var decoded struct {
		Version  string `json:"version"`
		Patterns []struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "1.0", decoded.Version)
	require.Len(t, decoded.Patterns, 5)
	assert.Equal(t, "header", decoded.Patterns[0].Type)
	assert.Equal(t, "pie", decoded.Patterns[1].Type)
	assert.Equal(t, "route-grid", decoded.Patterns[4].Type)
}

func TestJSON_ComparisonSummary(t *testing.T) {
	out := NewJSON().Render(orePatterns())

	var decoded struct {
		Comparison struct {
			Current  string            `json:"current"`
			Matched  bool              `json:"matched"`
			Material string            `json:"material"`
			Captions map[string]string `json:"captions"`
			Routes   []struct {
				Route   string             `json:"route"`
				Current bool               `json:"current"`
				Metrics map[string]float64 `json:"metrics"`
			} `json:"routes"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	c := decoded.Comparison
	assert.Equal(t, "Ore", c.Current)
	assert.True(t, c.Matched)
	assert.Equal(t, "Aluminium", c.Material)
	assert.Equal(t, "Current Route: 12.35 kg CO₂e", c.Captions["carbon"])

	require.Len(t, c.Routes, 3)
	assert.Equal(t, []string{"Recycled", "Both", "Ore"}, []string{c.Routes[0].Route, c.Routes[1].Route, c.Routes[2].Route})
	assert.False(t, c.Routes[0].Current)
	assert.True(t, c.Routes[2].Current)
	assert.Equal(t, map[string]float64{"carbon": 16.9, "circularity": 8, "efficiency": 15}, c.Routes[2].Metrics)
	assert.InDelta(t, 0.89, c.Routes[0].Metrics["carbon"], 1e-9)
}

func TestJSON_NoComparisonWithoutPatterns(t *testing.T) {
	out := NewJSON().Render(nil)
	assert.NotContains(t, out, "comparison")
	assert.Contains(t, out, `"patterns": []`)
}

func TestSVG_RenderPie(t *testing.T) {
	pies := []*pattern.Pie{}
	for _, p := range orePatterns() {
		if pie, ok := p.(*pattern.Pie); ok {
			pies = append(pies, pie)
		}
	}
	require.Len(t, pies, 3)

	doc, err := NewSVG(240).RenderPie(pies[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "<svg"), string(doc[:min(len(doc), 80)]))
}

func TestSVG_RenderPieRejectsEmpty(t *testing.T) {
	_, err := NewSVG(0).RenderPie(&pattern.Pie{})
	require.Error(t, err)
}

func TestSVG_Panel(t *testing.T) {
	doc, err := NewSVG(200).Panel(orePatterns())
	require.NoError(t, err)
	out := string(doc)

	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.GreaterOrEqual(t, strings.Count(out, "<svg"), 4)
	assert.Contains(t, out, "Route Comparison Analysis")
	assert.Contains(t, out, "Current: Ore Route")
	assert.Contains(t, out, "Circularity Score Comparison")
	assert.Contains(t, out, "Current Route: 12.35 kg CO₂e")
}

func TestSVG_PanelIncludesLegendAndSummaryGrid(t *testing.T) {
	doc, err := NewSVG(200).Panel(orePatterns())
	require.NoError(t, err)
	out := string(doc)

	assert.Contains(t, out, "Route Performance Summary")
	assert.Contains(t, out, "Virgin Route (Current)")
	assert.Contains(t, out, "Mixed Route (Both)")
	assert.Contains(t, out, "Virgin Route (Ore)")
	assert.Contains(t, out, "Carbon: 16.90 kg CO₂e")
	assert.Equal(t, 1, strings.Count(out, "(Current)"), "only the current card is marked")
}

func TestSVG_PanelUnmatchedMarksNoCard(t *testing.T) {
	doc, err := NewSVG(200).Panel(unknownPatterns())
	require.NoError(t, err)
	out := string(doc)

	assert.Contains(t, out, "Route Performance Summary")
	assert.NotContains(t, out, "(Current)")
	assert.Contains(t, out, "#FBBF24", "unmatched badge uses the warning colour")
}

func TestSVG_PanelWithoutPies(t *testing.T) {
	_, err := NewSVG(200).Panel([]pattern.Pattern{&pattern.Header{Title: "x"}})
	require.Error(t, err)

	out := NewSVG(200).Render(nil)
	assert.Contains(t, out, "<!-- routecmp:")
}

func TestHTML_Page(t *testing.T) {
	doc, err := NewHTML(200).Page(orePatterns())
	require.NoError(t, err)
	out := string(doc)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Route Comparison Analysis</title>")
	assert.Contains(t, out, "Current: Ore Route")
	assert.Contains(t, out, "Virgin Route (Current)")
	assert.Contains(t, out, "Current Route: 12.35 kg CO₂e")
	assert.Contains(t, out, "Mixed Route (Both)")
	assert.GreaterOrEqual(t, strings.Count(out, "<svg"), 3)
}

func TestHTML_OnlyCurrentCardIsMarked(t *testing.T) {
	doc, err := NewHTML(200).Page(orePatterns())
	require.NoError(t, err)
	out := string(doc)

	assert.Equal(t, 1, strings.Count(out, "(Current)"), "legend entries stay unmarked")
	assert.Contains(t, out, "<h5")
	assert.Contains(t, out, "Virgin Route (Current)</h5>")
}

func TestHTML_UnmatchedBadgeAndNotice(t *testing.T) {
	out := NewHTML(200).Render(unknownPatterns())
	assert.Contains(t, out, `class="badge unmatched"`)
	assert.Contains(t, out, "Unknown Path")
	assert.NotContains(t, out, "(Current)")
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "orca", ThemeByName("orca").Name)
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("nope").Name)
	assert.False(t, MonoTheme().RouteColors)
}
