package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/routecmp/pkg/pattern"
)

// LLM renders patterns as terse plain text optimized for AI consumption.
// Zero ANSI codes, fixed route order, SCOPE line first.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns for LLM consumption.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	var notices []*pattern.Notice

	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Header:
			sb.WriteString("SCOPE: " + scopeLine(v) + "\n")
		case *pattern.Pie:
			l.renderPie(&sb, v)
		case *pattern.RouteGrid:
			l.renderGrid(&sb, v)
		case *pattern.Notice:
			notices = append(notices, v)
		}
	}

	// Notices go last so the data block stays contiguous.
	for _, n := range notices {
		level := "NOTE"
		if n.Level == "warning" {
			level = "WARN"
		}
		sb.WriteString("\n" + level + " " + n.Message + "\n")
	}
	return sb.String()
}

func scopeLine(h *pattern.Header) string {
	parts := []string{"3 routes"}
	if h.Matched {
		parts = append(parts, "current="+h.Current)
	} else {
		parts = append(parts, fmt.Sprintf("current=none (scenario token %q)", h.Current))
	}
	if h.Material != "" {
		parts = append(parts, "material="+h.Material)
	}
	return strings.Join(parts, ", ")
}

func (l *LLM) renderPie(sb *strings.Builder, p *pattern.Pie) {
	sb.WriteString("\n## " + p.Label + "\n")
	for i, s := range p.Slices {
		marker := ""
		if s.Current {
			marker = " [current]"
		}
		fmt.Fprintf(sb, "  %s (%.1f%%)%s\n", s.Tooltip, p.Share(i)*100, marker)
	}
	if p.Caption != "" {
		sb.WriteString("  " + p.Caption + "\n")
	}
}

func (l *LLM) renderGrid(sb *strings.Builder, g *pattern.RouteGrid) {
	label := g.Label
	if label == "" {
		label = "Routes"
	}
	sb.WriteString("\n## " + label + "\n")
	for _, c := range g.Cards {
		sb.WriteString("  " + c.Title)
		for _, line := range c.Lines {
			sb.WriteString(" | " + line)
		}
		sb.WriteString("\n")
	}
}
