// Package detect sniffs input to determine the assessment encoding.
package detect

import "bytes"

// Format represents a recognized input format.
type Format int

const (
	Unknown Format = iota
	JSON           // single JSON assessment document
	YAML           // YAML assessment document with a top-level scenario key
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Sniff examines the first bytes of input to determine format.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}

	// A leading brace is JSON even when malformed, so the decoder reports
	// the real syntax error.
	if data[0] == '{' {
		return JSON
	}

	if hasTopLevelKey(data, "scenario") {
		return YAML
	}
	return Unknown
}

// hasTopLevelKey looks for an unindented "key:" line, skipping the
// document marker and comments.
func hasTopLevelKey(data []byte, key string) bool {
	prefix := []byte(key + ":")
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 || line[0] == '#' || bytes.Equal(line, []byte("---")) {
			continue
		}
		if bytes.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
