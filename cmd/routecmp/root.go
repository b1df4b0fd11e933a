package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dkoosis/routecmp/internal/config"
	"github.com/dkoosis/routecmp/internal/logging"
	"github.com/dkoosis/routecmp/pkg/lca"
	"github.com/dkoosis/routecmp/pkg/mapper"
	"github.com/dkoosis/routecmp/pkg/pattern"
	"github.com/dkoosis/routecmp/pkg/render"
	"github.com/dkoosis/routecmp/pkg/route"
)

const defaultWidth = 80

type options struct {
	configPath string
	format     string
	theme      string
	width      int
	output     string
	debug      bool
	pieSize    int
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "routecmp [file|-]",
		Short: "Compare Recycled, Mixed and Virgin manufacturing routes for an LCA result",
		Long: `routecmp reads a life-cycle assessment result (JSON or YAML) and renders
carbon footprint, circularity and resource efficiency for the three fixed
manufacturing routes, marking the route the assessment was run for.

Reads stdin when no file or "-" is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return renderCommand(cmd, opts, path)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (default: ./"+config.FileName+", then $XDG_CONFIG_HOME/routecmp/)")
	pf.StringVar(&opts.theme, "theme", config.DefaultTheme, "Theme: default, orca, mono")
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", config.DefaultFormat, "Output format: auto, terminal, llm, json, svg, html")
	f.IntVar(&opts.width, "width", 0, "Terminal width (0 = detect)")
	f.StringVarP(&opts.output, "output", "o", "", "Write output to file instead of stdout")
	f.IntVar(&opts.pieSize, "pie-size", 0, "Pie size in pixels for svg and html output")

	cmd.AddCommand(newViewCommand(opts))
	cmd.AddCommand(newVersionCommand())
	return cmd
}

// resolve merges flags with env and config file settings.
func resolve(cmd *cobra.Command, opts *options) (*config.ResolvedConfig, error) {
	changed := cmd.Flags().Changed
	return config.ResolveConfig(config.CliFlags{
		ConfigPath: opts.configPath,
		Format:     opts.format,
		Theme:      opts.theme,
		Width:      opts.width,
		Debug:      opts.debug,
		FormatSet:  changed("format"),
		ThemeSet:   changed("theme"),
		WidthSet:   changed("width"),
		DebugSet:   changed("debug"),
	})
}

func renderCommand(cmd *cobra.Command, opts *options, path string) error {
	cfg, err := resolve(cmd, opts)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.Debug)
	defer func() { _ = logger.Sync() }()
	logger.Debug("resolved config",
		zap.String("file", cfg.ConfigFile),
		zap.String("format", cfg.Format), zap.String("format_source", cfg.FormatSource),
		zap.String("theme", cfg.Theme), zap.String("theme_source", cfg.ThemeSource),
		zap.Int("width", cfg.Width))

	result, err := readAssessment(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	set := route.Derive(result)
	if !set.Matched() && cfg.WarnUnmatched {
		logger.Warn("scenario does not name a known route",
			zap.String("scenario", result.Scenario),
			zap.String("current", string(set.Current)))
	}
	patterns := mapper.FromAssessment(result)

	// A file target is never a terminal, so auto resolves to llm there.
	var target io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		target = nil
	}
	mode := resolveFormat(cfg.Format, target)
	logger.Debug("rendering", zap.String("mode", mode), zap.Int("patterns", len(patterns)))
	body, err := renderPatterns(mode, cfg, opts.pieSize, target, patterns)
	if err != nil {
		return err
	}

	if opts.output == "" {
		if _, err := io.WriteString(target, body); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if err := writeFile(opts.output, body); err != nil {
		return err
	}
	logger.Debug("wrote output", zap.String("path", opts.output))
	return nil
}

// writeFile writes body to path, reporting close errors since the data
// may only reach disk on close.
func writeFile(path, body string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write output: %w", cerr)
		}
	}()
	if _, err := io.WriteString(f, body); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// readAssessment decodes the assessment at path, or stdin when path is "-".
func readAssessment(stdin io.Reader, path string) (*lca.AssessmentResult, error) {
	if path != "-" {
		result, err := lca.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return result, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("no input on stdin")
	}
	result, err := lca.ReadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return result, nil
}

func renderPatterns(mode string, cfg *config.ResolvedConfig, pieSize int, w io.Writer, patterns []pattern.Pattern) (string, error) {
	switch mode {
	case "json":
		return render.NewJSON().Render(patterns), nil
	case "llm":
		return render.NewLLM().Render(patterns), nil
	case "svg":
		doc, err := render.NewSVG(pieSize).Panel(patterns)
		if err != nil {
			return "", fmt.Errorf("render svg: %w", err)
		}
		return string(doc), nil
	case "html":
		page, err := render.NewHTML(pieSize).Page(patterns)
		if err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
		return string(page), nil
	default:
		width := cfg.Width
		if width <= 0 {
			width = termWidth(w)
		}
		return render.NewTerminal(render.ThemeByName(cfg.Theme), width).Render(patterns), nil
	}
}

// resolveFormat maps "auto" to terminal on a TTY and llm when piped.
func resolveFormat(format string, w io.Writer) string {
	if format != config.DefaultFormat {
		return format
	}
	if isTTYWriter(w) {
		return "terminal"
	}
	return "llm"
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return defaultWidth
}
