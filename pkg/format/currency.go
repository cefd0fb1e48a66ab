// Package format renders amounts for summaries and tables.
package format

import (
	"github.com/iwvelando/mortgage-simulator/pkg/constants"
	"github.com/iwvelando/mortgage-simulator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns an amount with thousands separators followed by the
// currency symbol (e.g., "-1,234.56 €").
func Currency(amount float64) string {
	return NumericCurrency(amount) + " " + constants.CurrencySymbol
}

// NumericCurrency returns an amount with separators and no symbol (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	return printer.Sprintf("%.2f", mathutil.Round(amount))
}

// Percent returns a percentage with two decimals (e.g., "2.30%").
func Percent(percent float64) string {
	return printer.Sprintf("%.2f%%", percent)
}
