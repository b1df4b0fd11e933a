package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"

	"github.com/dkoosis/routecmp/pkg/pattern"
)

// HTML renders a standalone page with SVG pies and route cards.
type HTML struct {
	svg *SVG
}

// NewHTML creates an HTML renderer whose pies are size pixels square.
func NewHTML(size int) *HTML {
	return &HTML{svg: NewSVG(size)}
}

type htmlChart struct {
	Title   string
	SVG     template.HTML
	Caption string
	Legend  []pattern.PieSlice
}

type htmlPage struct {
	Header  *pattern.Header
	Charts  []htmlChart
	Grid    *pattern.RouteGrid
	Notices []*pattern.Notice
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{with .Header}}{{.Title}}{{else}}Route Comparison{{end}}</title>
<style>
body{margin:0;padding:32px;background:#0F172A;color:#E2E8F0;font-family:system-ui,sans-serif}
.panel{border:1px solid rgba(255,255,255,.2);border-radius:16px;padding:32px;background:rgba(255,255,255,.06)}
.head{display:flex;justify-content:space-between;align-items:center;margin-bottom:32px}
.head h3{margin:0 0 8px;font-size:24px;color:#fff}
.head p{margin:0;color:#CBD5E1}
.badge{padding:8px 16px;border-radius:999px;border:1px solid rgba(59,130,246,.3);background:rgba(59,130,246,.2);color:#60A5FA;font-size:14px}
.badge.unmatched{border-color:rgba(245,158,11,.3);background:rgba(245,158,11,.2);color:#FBBF24}
.charts,.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(280px,1fr));gap:32px}
.chart{border:1px solid rgba(71,85,105,.3);border-radius:12px;padding:24px;background:rgba(30,41,59,.3);text-align:center}
.chart h4{margin:0 0 16px;color:#fff}
.chart svg{max-width:100%;height:auto}
.legend{list-style:none;padding:0;margin:12px 0 0;font-size:13px;text-align:left}
.legend .dot,.card .dot{display:inline-block;width:10px;height:10px;border-radius:50%;margin-right:8px}
.caption{margin-top:16px;font-size:14px;color:#CBD5E1}
.cards{margin-top:32px;gap:16px}
.card{border-radius:8px;padding:16px;border:1px solid}
.card h5{margin:0 0 8px;font-size:15px}
.card p{margin:4px 0;font-size:14px;color:#CBD5E1}
.notice{margin-top:24px;color:#FBBF24}
</style>
</head>
<body>
<div class="panel">
{{with .Header}}<div class="head">
<div><h3>{{.Title}}</h3><p>{{.Subtitle}}</p></div>
<div class="badge{{if not .Matched}} unmatched{{end}}">{{.Badge}}</div>
</div>{{end}}
<div class="charts">
{{range .Charts}}<div class="chart">
<h4>{{.Title}}</h4>
{{.SVG}}
<ul class="legend">{{range .Legend}}<li title="{{.Tooltip}}"><span class="dot" style="background:{{.Color}}"></span>{{.Label}}</li>{{end}}</ul>
<div class="caption">{{.Caption}}</div>
</div>
{{end}}</div>
{{with .Grid}}<div class="cards">
{{range .Cards}}<div class="card" style="border-color:{{.Color}}">
<h5 style="color:{{.Color}}"><span class="dot" style="background:{{.Color}}"></span>{{.Title}}</h5>
{{range .Lines}}<p>{{.}}</p>{{end}}
</div>
{{end}}</div>{{end}}
{{range .Notices}}<p class="notice">{{.Message}}</p>{{end}}
</div>
</body>
</html>
`))

// Page renders the full HTML document.
func (h *HTML) Page(patterns []pattern.Pattern) ([]byte, error) {
	var page htmlPage
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Header:
			page.Header = v
		case *pattern.Pie:
			doc, err := h.svg.RenderPie(v)
			if err != nil {
				return nil, err
			}
			page.Charts = append(page.Charts, htmlChart{
				Title: v.Label,
				// go-chart output is generated from our own values, not user markup.
				SVG:     template.HTML(doc), //nolint:gosec
				Caption: v.Caption,
				Legend:  v.Slices,
			})
		case *pattern.RouteGrid:
			page.Grid = v
		case *pattern.Notice:
			page.Notices = append(page.Notices, v)
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return buf.Bytes(), nil
}

// Render implements Renderer; errors become an HTML comment.
func (h *HTML) Render(patterns []pattern.Pattern) string {
	doc, err := h.Page(patterns)
	if err != nil {
		return "<!-- routecmp: " + html.EscapeString(err.Error()) + " -->\n"
	}
	return string(doc)
}
