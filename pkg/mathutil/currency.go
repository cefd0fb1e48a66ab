// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/mortgage-simulator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for display and for making logical comparisons. Residue that rounds
// to zero comes back as positive zero so it never prints as "-0.00".
func Round(val float64) float64 {
	rounded := math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
	if rounded == 0 {
		return 0
	}
	return rounded
}

// IsZero checks if a value is effectively zero (within one cent)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// CeilToStep rounds a value up to the next multiple of step. A non-positive
// step returns the value unchanged.
func CeilToStep(val, step float64) float64 {
	if step <= 0 {
		return val
	}
	return math.Ceil(val/step) * step
}

// PercentToFraction converts a percentage such as 2.3 into 0.023.
func PercentToFraction(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// FractionToPercent converts a fraction such as 0.023 into 2.3.
func FractionToPercent(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}
