package lca

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aluminiumJSON = `{
  "scenario": "Recycled Route Analysis",
  "material": "Aluminium",
  "environmentalImpacts": {"carbonFootprint": 1.234},
  "circularityMetrics": {"circularityScore": 0.875, "resourceEfficiency": 0.9}
}`

func TestRead_DecodesNestedMetrics(t *testing.T) {
	res, err := Read(strings.NewReader(aluminiumJSON))
	require.NoError(t, err)

	assert.Equal(t, "Recycled Route Analysis", res.Scenario)
	assert.Equal(t, "Aluminium", res.Material)
	assert.InDelta(t, 1.234, res.EnvironmentalImpacts.CarbonFootprint, 1e-9)
	assert.InDelta(t, 0.875, res.CircularityMetrics.CircularityScore, 1e-9)
	assert.InDelta(t, 0.9, res.CircularityMetrics.ResourceEfficiency, 1e-9)
}

func TestRead_RejectsMissingScenario(t *testing.T) {
	_, err := Read(strings.NewReader(`{"material":"Steel"}`))
	require.ErrorIs(t, err, ErrMissingScenario)
}

func TestRead_RejectsMalformedJSON(t *testing.T) {
	_, err := Read(strings.NewReader(`{"scenario":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode assessment")
}

func TestReadYAML_DecodesCamelCaseKeys(t *testing.T) {
	input := `scenario: Ore Route Analysis
material: Copper
environmentalImpacts:
  carbonFootprint: 4.5
circularityMetrics:
  circularityScore: 0.1
  resourceEfficiency: 0.2
`
	res, err := ReadYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Ore Route Analysis", res.Scenario)
	assert.Equal(t, "Copper", res.Material)
	assert.InDelta(t, 4.5, res.EnvironmentalImpacts.CarbonFootprint, 1e-9)
	assert.InDelta(t, 0.2, res.CircularityMetrics.ResourceEfficiency, 1e-9)
}

func TestReadBytes_DispatchesOnFormat(t *testing.T) {
	fromJSON, err := ReadBytes([]byte(aluminiumJSON))
	require.NoError(t, err)
	assert.Equal(t, "Aluminium", fromJSON.Material)

	fromYAML, err := ReadBytes([]byte("scenario: Both Route\nmaterial: Steel\n"))
	require.NoError(t, err)
	assert.Equal(t, "Both Route", fromYAML.Scenario)

	_, err = ReadBytes([]byte("not an assessment"))
	require.Error(t, err)
}

func TestReadBytes_MalformedJSONReportsDecodeError(t *testing.T) {
	_, err := ReadBytes([]byte(`{"scenario": "Ore", "material":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode assessment")
	assert.NotContains(t, err.Error(), "unrecognized")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte(aluminiumJSON), 0o600))

	res, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Recycled Route Analysis", res.Scenario)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open assessment file")
}

func TestValidate_AllowsEmptyMaterialAndOutOfRangeFractions(t *testing.T) {
	res := &AssessmentResult{
		Scenario:           "Unknown Path",
		CircularityMetrics: CircularityMetrics{CircularityScore: 1.4, ResourceEfficiency: -0.1},
	}
	assert.NoError(t, res.Validate())
}
