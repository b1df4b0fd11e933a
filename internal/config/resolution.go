package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
)

// Source names where a resolved value came from.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{"auto", "terminal", "llm", "json", "svg", "html"}

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath string
	Format     string
	Theme      string
	Width      int
	Debug      bool

	// Flags to track if they were explicitly set by the user
	FormatSet bool
	ThemeSet  bool
	WidthSet  bool
	DebugSet  bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Format        string
	Theme         string
	Width         int
	NoColor       bool
	WarnUnmatched bool
	Debug         bool

	// ConfigFile is the file that was read, empty if none.
	ConfigFile string

	// Resolution metadata (for debugging)
	FormatSource string
	ThemeSource  string
	DebugSource  string
}

// ResolveConfig loads the config file and resolves every setting with
// explicit priority order: CLI > env > file > default.
func ResolveConfig(cli CliFlags) (*ResolvedConfig, error) {
	appCfg, path, err := LoadConfig(cli.ConfigPath)
	if err != nil {
		return nil, err
	}
	resolved := Resolve(cli, appCfg)
	resolved.ConfigFile = path
	if err := validate(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// Resolve merges flags, environment and file config. It does no I/O beyond
// reading the environment.
func Resolve(cli CliFlags, appCfg *AppConfig) *ResolvedConfig {
	if appCfg == nil {
		appCfg = &AppConfig{}
	}
	r := &ResolvedConfig{WarnUnmatched: true}

	r.Format, r.FormatSource = resolveString(cli.FormatSet, cli.Format, "ROUTECMP_FORMAT", appCfg.Format, DefaultFormat)
	r.Theme, r.ThemeSource = resolveString(cli.ThemeSet, cli.Theme, "ROUTECMP_THEME", appCfg.Theme, DefaultTheme)

	switch {
	case cli.WidthSet:
		r.Width = cli.Width
	case appCfg.Width > 0:
		r.Width = appCfg.Width
	}

	r.Debug, r.DebugSource = appCfg.Debug, SourceFile
	if !appCfg.Debug {
		r.DebugSource = SourceDefault
	}
	if cli.DebugSet {
		r.Debug, r.DebugSource = cli.Debug, SourceCLI
	} else if env := getEnvBool("ROUTECMP_DEBUG"); env != nil {
		r.Debug, r.DebugSource = *env, SourceEnv
	}

	if appCfg.WarnUnmatched != nil {
		r.WarnUnmatched = *appCfg.WarnUnmatched
	}

	// NO_COLOR wins over any theme choice.
	if os.Getenv("NO_COLOR") != "" {
		r.NoColor = true
		r.Theme = "mono"
	}
	return r
}

func resolveString(cliSet bool, cliVal, envKey, fileVal, def string) (string, string) {
	if cliSet && cliVal != "" {
		return cliVal, SourceCLI
	}
	if v := os.Getenv(envKey); v != "" {
		return v, SourceEnv
	}
	if fileVal != "" {
		return fileVal, SourceFile
	}
	return def, SourceDefault
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func validate(cfg *ResolvedConfig) error {
	if !slices.Contains(ValidFormats, cfg.Format) {
		return fmt.Errorf("invalid format %q (expected one of %v)", cfg.Format, ValidFormats)
	}
	if cfg.Width < 0 {
		return fmt.Errorf("width must not be negative, got: %d", cfg.Width)
	}
	return nil
}
