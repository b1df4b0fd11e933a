package route

// Metrics are the comparison values shown for one route.
type Metrics struct {
	CarbonFootprint    float64 `json:"carbonFootprint"`    // kg CO₂e
	CircularityScore   int     `json:"circularityScore"`   // 0–100
	ResourceEfficiency int     `json:"resourceEfficiency"` // percent
}

// MaterialCategory selects a reference table.
type MaterialCategory int

const (
	CategoryOther MaterialCategory = iota
	CategoryAluminium
)

// aluminium must match exactly; "aluminium" or "Aluminum" fall in CategoryOther.
const aluminium = "Aluminium"

// CategoryOf maps a material name to its table category.
func CategoryOf(material string) MaterialCategory {
	if material == aluminium {
		return CategoryAluminium
	}
	return CategoryOther
}

func (c MaterialCategory) String() string {
	if c == CategoryAluminium {
		return "aluminium"
	}
	return "other"
}

var carbonByCategory = map[MaterialCategory]map[Route]float64{
	CategoryAluminium: {Recycled: 0.89, Both: 8.64, Ore: 16.90},
	CategoryOther:     {Recycled: 0.74, Both: 2.58, Ore: 4.84},
}

// Circularity and efficiency do not vary by material.
var (
	circularityByRoute = map[Route]int{Recycled: 92, Both: 48, Ore: 8}
	efficiencyByRoute  = map[Route]int{Recycled: 90, Both: 55, Ore: 15}
)

// Table returns a fresh copy of the reference metrics for a category.
func Table(c MaterialCategory) map[Route]Metrics {
	carbon, ok := carbonByCategory[c]
	if !ok {
		carbon = carbonByCategory[CategoryOther]
	}
	out := make(map[Route]Metrics, len(All()))
	for _, r := range All() {
		out[r] = Metrics{
			CarbonFootprint:    carbon[r],
			CircularityScore:   circularityByRoute[r],
			ResourceEfficiency: efficiencyByRoute[r],
		}
	}
	return out
}
