package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/routecmp/pkg/pattern"
)

const (
	// gridBreakpoint is the width at which route cards sit side by side.
	gridBreakpoint = 96
	maxBarWidth    = 60
	cardGap        = 2
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Header:
		return t.renderHeader(v)
	case *pattern.Pie:
		return t.renderPie(v)
	case *pattern.RouteGrid:
		return t.renderGrid(v)
	case *pattern.Notice:
		return t.renderNotice(v)
	default:
		return ""
	}
}

func (t *Terminal) renderHeader(h *pattern.Header) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(h.Title))
	sb.WriteString("\n")
	if h.Subtitle != "" {
		sb.WriteString(t.theme.Muted.Render(h.Subtitle))
		sb.WriteString("\n")
	}

	badgeStyle := t.theme.Primary
	if !h.Matched {
		badgeStyle = t.theme.Warning
	}
	sb.WriteString(badgeStyle.Render(t.theme.Icons.Info + " " + h.Badge()))
	if h.Material != "" {
		sb.WriteString(t.theme.Muted.Render("  " + t.theme.Icons.Bullet + " Material: " + h.Material))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (t *Terminal) renderPie(p *pattern.Pie) string {
	if len(p.Slices) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(p.Label))
	sb.WriteString("\n")

	barWidth := t.width - 4
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	values := make([]float64, len(p.Slices))
	for i, s := range p.Slices {
		values[i] = s.Value
	}
	cells := allocateCells(values, barWidth)

	sb.WriteString("  ")
	for i, s := range p.Slices {
		if cells[i] == 0 {
			continue
		}
		seg := strings.Repeat(string(t.theme.glyph(i)), cells[i])
		sb.WriteString(t.theme.routeStyle(s.Color).Render(seg))
	}
	sb.WriteString("\n")

	maxTip := 0
	for _, s := range p.Slices {
		if w := runewidth.StringWidth(s.Tooltip); w > maxTip {
			maxTip = w
		}
	}
	for i, s := range p.Slices {
		sb.WriteString("  ")
		sb.WriteString(t.theme.routeStyle(s.Color).Render(string(t.theme.glyph(i))))
		sb.WriteString(" ")
		line := padRight(s.Tooltip, maxTip)
		if s.Current {
			line = t.theme.Bold.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("  %5.1f%%", p.Share(i)*100)))
		if s.Current {
			sb.WriteString(" ")
			sb.WriteString(t.theme.Primary.Render(t.theme.Icons.Current + " current"))
		}
		sb.WriteString("\n")
	}

	if p.Caption != "" {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Primary.Render(p.Caption))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderGrid(g *pattern.RouteGrid) string {
	if len(g.Cards) == 0 {
		return ""
	}
	sideBySide := t.width >= gridBreakpoint

	cardWidth := t.width - 2 // borders
	if sideBySide {
		cardWidth = (t.width-cardGap*(len(g.Cards)-1))/len(g.Cards) - 2
	}

	rendered := make([]string, 0, len(g.Cards))
	for _, c := range g.Cards {
		rendered = append(rendered, t.renderCard(c, cardWidth))
	}

	var body string
	if sideBySide {
		gap := strings.Repeat(" ", cardGap)
		parts := make([]string, 0, len(rendered)*2)
		for i, r := range rendered {
			if i > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, r)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}

	var sb strings.Builder
	if g.Label != "" {
		sb.WriteString(t.theme.Bold.Render(g.Label))
		sb.WriteString("\n")
	}
	sb.WriteString(body)
	sb.WriteString("\n")
	return sb.String()
}

func (t *Terminal) renderCard(c pattern.RouteCard, width int) string {
	titleStyle := t.theme.routeStyle(c.Color).Bold(true)
	content := make([]string, 0, len(c.Lines)+1)
	content = append(content, titleStyle.Render(c.Title))
	for _, line := range c.Lines {
		content = append(content, t.theme.Muted.Render(line))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width)
	if c.Current {
		box = box.Border(lipgloss.ThickBorder())
	}
	if t.theme.RouteColors && c.Color != "" {
		box = box.BorderForeground(lipgloss.Color(c.Color))
	}
	return box.Render(strings.Join(content, "\n"))
}

func (t *Terminal) renderNotice(n *pattern.Notice) string {
	icon, style := t.theme.Icons.Info, t.theme.Muted
	if n.Level == "warning" {
		icon, style = t.theme.Icons.Warn, t.theme.Warning
	}
	return style.Render(icon+" "+n.Message) + "\n"
}

// allocateCells splits width cells across values in proportion, using the
// largest-remainder method so the counts always sum to width. Negative
// values count as zero; an all-zero input yields all-zero cells.
func allocateCells(values []float64, width int) []int {
	cells := make([]int, len(values))
	if width <= 0 || len(values) == 0 {
		return cells
	}
	var total float64
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		return cells
	}

	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, 0, len(values))
	used := 0
	for i, v := range values {
		if v <= 0 {
			continue
		}
		exact := v / total * float64(width)
		cells[i] = int(exact)
		used += cells[i]
		rems = append(rems, rem{idx: i, frac: exact - float64(cells[i])})
	}
	// Larger remainder first; ties keep slice order.
	sort.SliceStable(rems, func(i, j int) bool { return rems[i].frac > rems[j].frac })
	for i := 0; used < width && len(rems) > 0; i++ {
		cells[rems[i%len(rems)].idx]++
		used++
	}
	return cells
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
