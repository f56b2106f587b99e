package export

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatNumber renders v as a grouped decimal string with at most two
// fraction digits, e.g. 1234567.891 -> "1,234,567.89". Non-finite values
// print as their literal tokens instead of aborting serialization.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatCount renders an integer with grouped thousands.
func FormatCount(n int) string {
	return printer.Sprint(number.Decimal(n))
}
