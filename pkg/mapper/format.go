package mapper

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Dataset labels double as the tooltip dispatch key.
const (
	DatasetCarbon      = "Carbon Footprint (kg CO₂e)"
	DatasetCircularity = "Circularity Score"
	DatasetEfficiency  = "Resource Efficiency (%)"
)

const carbonUnit = "kg CO₂e"

// RoundHalfUp rounds x to the nearest integer with halves going towards +∞.
// math.Round sends -0.5 to -1; this sends it to 0.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// FormatCarbon formats a carbon footprint with two decimals and its unit.
func FormatCarbon(kg float64) string {
	return FixedTwo(kg) + " " + carbonUnit
}

// FixedTwo formats x with exactly two decimals. Ties in the exact binary
// value round away from zero, so 0.125 is "0.13" while 1.005 (stored just
// below 1.005) is "1.00". strconv rounds ties to even instead.
func FixedTwo(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', 2, 64)
	}
	neg := x < 0
	if neg {
		x = -x
	}
	// 53 mantissa bits times 100 fits well inside 128 bits, so the scaling is exact.
	f := new(big.Float).SetPrec(128).SetFloat64(x)
	f.Mul(f, big.NewFloat(100))
	f.Add(f, big.NewFloat(0.5))
	cents, _ := f.Int(nil)

	digits := cents.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	out := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if neg {
		out = "-" + out
	}
	return out
}

// FormatCircularity formats a 0–100 score as "N/100".
func FormatCircularity(score int) string {
	return strconv.Itoa(score) + "/100"
}

// FormatEfficiency formats a percentage as "N%".
func FormatEfficiency(pct int) string {
	return strconv.Itoa(pct) + "%"
}

// Tooltip formats a slice's hover text. Carbon and efficiency datasets get
// their units; every other dataset is shown out of 100.
func Tooltip(dataset, label string, value float64) string {
	switch dataset {
	case DatasetCarbon:
		return label + ": " + FormatCarbon(value)
	case DatasetEfficiency:
		return label + ": " + formatNumber(value) + "%"
	default:
		return label + ": " + formatNumber(value) + "/100"
	}
}

// formatNumber prints the shortest decimal that round-trips, so 90 is "90"
// and 47.5 is "47.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
