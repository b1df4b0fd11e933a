package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons

	// RouteColors enables the per-route slice and card colours. When false,
	// routes are told apart by SliceGlyphs alone.
	RouteColors bool
	SliceGlyphs []rune
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Current string
	Warn    string
	Info    string
	Bullet  string
}

// glyph returns the bar glyph for slice i.
func (th Theme) glyph(i int) rune {
	if len(th.SliceGlyphs) == 0 {
		return '█'
	}
	return th.SliceGlyphs[i%len(th.SliceGlyphs)]
}

// routeStyle returns a foreground style for a slice or card colour.
func (th Theme) routeStyle(hex string) lipgloss.Style {
	if !th.RouteColors || hex == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Current: "◀",
			Warn:    "⚠",
			Info:    "●",
			Bullet:  "·",
		},
		RouteColors: true,
		SliceGlyphs: []rune{'█'},
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:    "orca",
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Current: "<",
			Warn:    "!",
			Info:    "·",
			Bullet:  "·",
		},
		RouteColors: true,
		SliceGlyphs: []rune{'▇'},
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Primary: lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Current: "<",
			Warn:    "!",
			Info:    "*",
			Bullet:  "-",
		},
		RouteColors: false,
		SliceGlyphs: []rune{'#', '=', '.'},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string {
	return []string{"default", "orca", "mono"}
}
