package pattern

// MetricKind identifies which comparison metric a chart shows.
type MetricKind string

const (
	MetricCarbon      MetricKind = "carbon"
	MetricCircularity MetricKind = "circularity"
	MetricEfficiency  MetricKind = "efficiency"
)

// Pie is one comparison chart across the fixed routes.
type Pie struct {
	Metric  MetricKind
	Label   string // chart title, e.g. "Carbon Footprint Comparison"
	Dataset string // dataset label, e.g. "Carbon Footprint (kg CO₂e)"
	Slices  []PieSlice
	Caption string // live current-route readout shown under the chart
}

// PieSlice is a single route's share of a chart.
type PieSlice struct {
	Route   string
	Label   string  // legend label
	Value   float64 // slice magnitude (reference table value)
	Display string  // formatted value, e.g. "0.89 kg CO₂e"
	Tooltip string  // "label: display"
	Color   string  // hex colour, e.g. "#10B981"
	Current bool
}

func (p *Pie) Type() PatternType { return PatternTypePie }

// Total returns the sum of all slice values.
func (p *Pie) Total() float64 {
	var sum float64
	for _, s := range p.Slices {
		sum += s.Value
	}
	return sum
}

// Share returns slice i's fraction of the total; 0 when the total is 0
// or i is out of range.
func (p *Pie) Share(i int) float64 {
	if i < 0 || i >= len(p.Slices) {
		return 0
	}
	total := p.Total()
	if total == 0 {
		return 0
	}
	return p.Slices[i].Value / total
}
