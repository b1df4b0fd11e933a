package render

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dkoosis/routecmp/pkg/pattern"
)

const (
	defaultPieSize = 320
	panelPadding   = 24
	headerHeight   = 72
	chartTitleGap  = 28
	captionHeight  = 36
	legendRow      = 18
	gridTitleGap   = 36
	cardHeight     = 96
	cardRow        = 20
)

// sliceAlpha matches an 80% opaque fill with a solid border.
const sliceAlpha = 204

var errNoSlices = errors.New("pie has no slices")

// SVG renders pie patterns as SVG documents via go-chart.
type SVG struct {
	size int
}

// NewSVG creates an SVG renderer drawing pies size pixels square.
func NewSVG(size int) *SVG {
	if size <= 0 {
		size = defaultPieSize
	}
	return &SVG{size: size}
}

// RenderPie renders a single pie as a standalone SVG document.
func (s *SVG) RenderPie(p *pattern.Pie) ([]byte, error) {
	if p == nil || len(p.Slices) == 0 {
		return nil, errNoSlices
	}
	values := make([]chart.Value, 0, len(p.Slices))
	for _, sl := range p.Slices {
		c := hexColor(sl.Color)
		values = append(values, chart.Value{
			Label: sl.Label,
			Value: sl.Value,
			Style: chart.Style{
				FillColor:   c.WithAlpha(sliceAlpha),
				StrokeColor: c,
				StrokeWidth: 2,
				FontColor:   drawing.ColorWhite,
			},
		})
	}

	pie := chart.PieChart{
		Width:  s.size,
		Height: s.size,
		Values: values,
	}
	var buf bytes.Buffer
	if err := pie.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render %s pie: %w", p.Metric, err)
	}
	return stripXMLProlog(buf.Bytes()), nil
}

// Panel renders the header, every pie with its legend and caption, and the
// route summary cards into one SVG document.
func (s *SVG) Panel(patterns []pattern.Pattern) ([]byte, error) {
	var header *pattern.Header
	var pies []*pattern.Pie
	var grid *pattern.RouteGrid
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Header:
			header = v
		case *pattern.Pie:
			pies = append(pies, v)
		case *pattern.RouteGrid:
			grid = v
		}
	}
	if len(pies) == 0 {
		return nil, errors.New("no pies to render")
	}

	legendRows := 0
	for _, p := range pies {
		legendRows = max(legendRows, len(p.Slices))
	}
	colWidth := s.size + panelPadding
	width := panelPadding + colWidth*len(pies)
	chartHeight := chartTitleGap + s.size + captionHeight + legendRows*legendRow
	height := headerHeight + chartHeight + panelPadding
	if grid != nil && len(grid.Cards) > 0 {
		height += gridTitleGap + cardHeight
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="sans-serif">`+"\n", width, height)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#0F172A"/>`+"\n", width, height)
	if header != nil {
		badgeFill := "#60A5FA"
		if !header.Matched {
			badgeFill = "#FBBF24"
		}
		fmt.Fprintf(&sb, `<text x="%d" y="32" font-size="22" font-weight="bold" fill="#FFFFFF">%s</text>`+"\n",
			panelPadding, html.EscapeString(header.Title))
		fmt.Fprintf(&sb, `<text x="%d" y="56" font-size="13" fill="#CBD5E1">%s</text>`+"\n",
			panelPadding, html.EscapeString(header.Subtitle))
		fmt.Fprintf(&sb, `<text x="%d" y="32" font-size="13" fill="%s" text-anchor="end">%s</text>`+"\n",
			width-panelPadding, badgeFill, html.EscapeString(header.Badge()))
	}

	for i, p := range pies {
		doc, err := s.RenderPie(p)
		if err != nil {
			return nil, err
		}
		x := panelPadding + i*colWidth
		fmt.Fprintf(&sb, `<g transform="translate(%d,%d)">`+"\n", x, headerHeight)
		fmt.Fprintf(&sb, `<text x="%d" y="18" font-size="15" font-weight="bold" fill="#FFFFFF" text-anchor="middle">%s</text>`+"\n",
			s.size/2, html.EscapeString(p.Label))
		sb.WriteString(nestAt(doc, chartTitleGap))
		sb.WriteString("\n")
		y := chartTitleGap + s.size + 16
		for _, sl := range p.Slices {
			fmt.Fprintf(&sb, `<circle cx="6" cy="%d" r="5" fill="%s"/>`+"\n", y-4, html.EscapeString(sl.Color))
			fmt.Fprintf(&sb, `<text x="18" y="%d" font-size="12" fill="#E2E8F0"><title>%s</title>%s</text>`+"\n",
				y, html.EscapeString(sl.Tooltip), html.EscapeString(sl.Label))
			y += legendRow
		}
		fmt.Fprintf(&sb, `<text x="%d" y="%d" font-size="13" fill="#60A5FA" text-anchor="middle">%s</text>`+"\n",
			s.size/2, y+12, html.EscapeString(p.Caption))
		sb.WriteString("</g>\n")
	}

	if grid != nil && len(grid.Cards) > 0 {
		s.writeGrid(&sb, grid, width, headerHeight+chartHeight)
	}
	sb.WriteString("</svg>\n")
	return []byte(sb.String()), nil
}

// writeGrid draws the summary cards in one row starting at y.
func (s *SVG) writeGrid(sb *strings.Builder, g *pattern.RouteGrid, width, y int) {
	label := g.Label
	if label == "" {
		label = "Routes"
	}
	fmt.Fprintf(sb, `<text x="%d" y="%d" font-size="15" font-weight="bold" fill="#FFFFFF">%s</text>`+"\n",
		panelPadding, y+20, html.EscapeString(label))

	n := len(g.Cards)
	cardWidth := (width - panelPadding*(n+1)) / n
	top := y + gridTitleGap
	for i, c := range g.Cards {
		x := panelPadding + i*(cardWidth+panelPadding)
		stroke := 1
		if c.Current {
			stroke = 3
		}
		color := html.EscapeString(c.Color)
		fmt.Fprintf(sb, `<rect x="%d" y="%d" width="%d" height="%d" rx="8" fill="none" stroke="%s" stroke-width="%d"/>`+"\n",
			x, top, cardWidth, cardHeight-4, color, stroke)
		fmt.Fprintf(sb, `<text x="%d" y="%d" font-size="14" font-weight="bold" fill="%s">%s</text>`+"\n",
			x+12, top+20, color, html.EscapeString(c.Title))
		for j, line := range c.Lines {
			fmt.Fprintf(sb, `<text x="%d" y="%d" font-size="12" fill="#CBD5E1">%s</text>`+"\n",
				x+12, top+20+(j+1)*cardRow, html.EscapeString(line))
		}
	}
}

// Render implements Renderer. Errors are reported as an XML comment since
// the interface has no error return; use Panel to handle them.
func (s *SVG) Render(patterns []pattern.Pattern) string {
	doc, err := s.Panel(patterns)
	if err != nil {
		return "<!-- routecmp: " + html.EscapeString(err.Error()) + " -->\n"
	}
	return string(doc)
}

// hexColor parses "#RRGGBB"; unparseable input yields gray.
func hexColor(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return drawing.ColorFromHex("94A3B8")
	}
	return drawing.ColorFromHex(hex)
}

func stripXMLProlog(doc []byte) []byte {
	doc = bytes.TrimSpace(doc)
	if bytes.HasPrefix(doc, []byte("<?xml")) {
		if end := bytes.Index(doc, []byte("?>")); end >= 0 {
			doc = bytes.TrimSpace(doc[end+2:])
		}
	}
	return doc
}

// nestAt offsets a standalone SVG document vertically so it can be
// embedded as a child element.
func nestAt(doc []byte, y int) string {
	s := string(doc)
	if strings.HasPrefix(s, "<svg ") {
		return fmt.Sprintf(`<svg y="%d" `, y) + s[len("<svg "):]
	}
	return s
}
