package lca

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/routecmp/internal/detect"
)

// ReadFile parses an assessment file from disk, JSON or YAML.
func ReadFile(path string) (*AssessmentResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open assessment file: %w", err)
	}
	return ReadBytes(data)
}

// ReadBytes sniffs the encoding of data and parses it.
func ReadBytes(data []byte) (*AssessmentResult, error) {
	switch detect.Sniff(data) {
	case detect.JSON:
		return Read(bytes.NewReader(data))
	case detect.YAML:
		return ReadYAML(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unrecognized assessment format (expected JSON or YAML)")
	}
}

// Read parses a JSON assessment from an io.Reader.
func Read(r io.Reader) (*AssessmentResult, error) {
	var res AssessmentResult
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode assessment: %w", err)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

// ReadYAML parses a YAML assessment from an io.Reader.
func ReadYAML(r io.Reader) (*AssessmentResult, error) {
	var res AssessmentResult
	if err := yaml.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode assessment yaml: %w", err)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}
