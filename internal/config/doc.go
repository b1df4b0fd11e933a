// Package config handles configuration loading and merging for routecmp.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--format, --theme, --width, --debug)
//  2. Environment variables (ROUTECMP_FORMAT, ROUTECMP_THEME, ROUTECMP_DEBUG, NO_COLOR)
//  3. YAML config file (.routecmp.yaml in local directory or ~/.config/routecmp/.routecmp.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - Format: auto, terminal, llm, json, svg or html
//   - Theme: default, orca or mono
//   - Width: terminal width override; 0 detects it from the terminal
//   - WarnUnmatched: log a warning when the scenario names no known route
//
// # Environment Variables
//
//   - NO_COLOR: any non-empty value forces the mono theme
//   - ROUTECMP_DEBUG: "true" or "1" enables debug logging
package config
