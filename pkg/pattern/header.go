package pattern

// Header is the panel title with the current-route badge.
type Header struct {
	Title    string
	Subtitle string
	Material string // display name, e.g. "Aluminium"
	Current  string // raw current-route token from the scenario
	Matched  bool   // Current names one of the fixed routes
}

func (h *Header) Type() PatternType { return PatternTypeHeader }

// Badge returns the badge text, e.g. "Current: Ore Route".
func (h *Header) Badge() string {
	return "Current: " + h.Current + " Route"
}
