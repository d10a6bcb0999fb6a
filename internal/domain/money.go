package domain

import (
	"fmt"
	"math"
	"strings"
)

// Amounts are carried as int64 cents everywhere inside the core; floats
// appear only at the JSON/CSV boundary.

// UnitsToCents converts a currency-unit amount to cents, rounding half away
// from zero.
func UnitsToCents(units float64) int64 {
	return int64(math.Round(units * 100))
}

// CentsToUnits converts cents to currency units for JSON responses.
func CentsToUnits(cents int64) float64 {
	return float64(cents) / 100
}

// FormatCentsComma renders cents with two decimals and a comma as the
// decimal separator ("3050" -> "30,50"), the format the CSV consumers parse.
func FormatCentsComma(cents int64) string {
	return strings.Replace(fmt.Sprintf("%.2f", CentsToUnits(cents)), ".", ",", 1)
}
