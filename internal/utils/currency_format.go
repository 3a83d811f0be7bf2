package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// symbolTrimSet is everything a formatted zero amount contains besides the
// currency symbol itself: digits, separators and the spaces CLDR inserts.
const symbolTrimSet = "0123456789.,   "

// CurrencySymbol derives the display symbol for an ISO 4217 code by formatting
// a zero amount in the given language and stripping the numeric part, the same
// way the mobile client derives it from the platform number formatter. Unknown
// codes and codes without a distinct symbol fall back to the code itself.
func CurrencySymbol(code, langTag string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}

	tag, err := language.Parse(langTag)
	if err != nil {
		tag = language.English
	}

	formatted := message.NewPrinter(tag).Sprintf("%v", currency.Symbol(unit.Amount(0)))
	symbol := strings.Trim(formatted, symbolTrimSet)
	if symbol == "" {
		return code
	}
	return symbol
}

// CurrencyPrecision returns the number of decimal digits conventionally shown
// for a currency (2 for USD, 0 for JPY). Unknown codes default to 2.
func CurrencyPrecision(code string) int {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// FormatWithCurrencyPrecision formats an amount with the correct precision for
// a given currency code.
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, code string) string {
	return amount.Round(int32(CurrencyPrecision(code))).String()
}
