// Package staticdata holds the reference tables bundled with the app: a static
// currency snapshot and a country table. Both are compiled in, never mutated at
// runtime, and serve only as fallback data sources.
package staticdata

import "github.com/jasonlam510/scount-currency-backend/internal/core/domain"

// staticSnapshot is the bundled currency snapshot, used when neither a cached
// nor a freshly fetched snapshot is available. Codes are pre-normalized.
var staticSnapshot = domain.Snapshot{
	"AED": {Name: "United Arab Emirates Dirham", Flag: "🇦🇪"},
	"ARS": {Name: "Argentine Peso", Flag: "🇦🇷"},
	"AUD": {Name: "Australian Dollar", Flag: "🇦🇺"},
	"BDT": {Name: "Bangladeshi Taka", Flag: "🇧🇩"},
	"BGN": {Name: "Bulgarian Lev", Flag: "🇧🇬"},
	"BRL": {Name: "Brazilian Real", Flag: "🇧🇷"},
	"CAD": {Name: "Canadian Dollar", Flag: "🇨🇦"},
	"CHF": {Name: "Swiss Franc", Flag: "🇨🇭"},
	"CLP": {Name: "Chilean Peso", Flag: "🇨🇱"},
	"CNY": {Name: "Chinese Renminbi Yuan", Flag: "🇨🇳"},
	"COP": {Name: "Colombian Peso", Flag: "🇨🇴"},
	"CZK": {Name: "Czech Koruna", Flag: "🇨🇿"},
	"DKK": {Name: "Danish Krone", Flag: "🇩🇰"},
	"EGP": {Name: "Egyptian Pound", Flag: "🇪🇬"},
	"EUR": {Name: "Euro", Flag: "🇪🇺"},
	"GBP": {Name: "British Pound", Flag: "🇬🇧"},
	"HKD": {Name: "Hong Kong Dollar", Flag: "🇭🇰"},
	"HUF": {Name: "Hungarian Forint", Flag: "🇭🇺"},
	"IDR": {Name: "Indonesian Rupiah", Flag: "🇮🇩"},
	"ILS": {Name: "Israeli New Sheqel", Flag: "🇮🇱"},
	"INR": {Name: "Indian Rupee", Flag: "🇮🇳"},
	"ISK": {Name: "Icelandic Króna", Flag: "🇮🇸"},
	"JPY": {Name: "Japanese Yen", Flag: "🇯🇵"},
	"KHR": {Name: "Cambodian Riel", Flag: "🇰🇭"},
	"KRW": {Name: "South Korean Won", Flag: "🇰🇷"},
	"KWD": {Name: "Kuwaiti Dinar", Flag: "🇰🇼"},
	"LAK": {Name: "Lao Kip", Flag: "🇱🇦"},
	"LKR": {Name: "Sri Lankan Rupee", Flag: "🇱🇰"},
	"MOP": {Name: "Macanese Pataca", Flag: "🇲🇴"},
	"MXN": {Name: "Mexican Peso", Flag: "🇲🇽"},
	"MYR": {Name: "Malaysian Ringgit", Flag: "🇲🇾"},
	"NOK": {Name: "Norwegian Krone", Flag: "🇳🇴"},
	"NZD": {Name: "New Zealand Dollar", Flag: "🇳🇿"},
	"PEN": {Name: "Peruvian Sol", Flag: "🇵🇪"},
	"PHP": {Name: "Philippine Peso", Flag: "🇵🇭"},
	"PKR": {Name: "Pakistani Rupee", Flag: "🇵🇰"},
	"PLN": {Name: "Polish Złoty", Flag: "🇵🇱"},
	"QAR": {Name: "Qatari Riyal", Flag: "🇶🇦"},
	"RON": {Name: "Romanian Leu", Flag: "🇷🇴"},
	"SAR": {Name: "Saudi Riyal", Flag: "🇸🇦"},
	"SEK": {Name: "Swedish Krona", Flag: "🇸🇪"},
	"SGD": {Name: "Singapore Dollar", Flag: "🇸🇬"},
	"THB": {Name: "Thai Baht", Flag: "🇹🇭"},
	"TRY": {Name: "Turkish Lira", Flag: "🇹🇷"},
	"TWD": {Name: "New Taiwan Dollar", Flag: "🇹🇼"},
	"USD": {Name: "US Dollar", Flag: "🇺🇸"},
	"VND": {Name: "Vietnamese Đồng", Flag: "🇻🇳"},
	"ZAR": {Name: "South African Rand", Flag: "🇿🇦"},
}

// CurrencySnapshot returns a copy of the bundled snapshot. Callers get their
// own map so the bundled data stays immutable.
func CurrencySnapshot() domain.Snapshot {
	out := make(domain.Snapshot, len(staticSnapshot))
	for code, entry := range staticSnapshot {
		out[code] = entry
	}
	return out
}

// HasCurrency reports whether the bundled snapshot knows the given code.
// The code must already be normalized.
func HasCurrency(code string) bool {
	_, ok := staticSnapshot[code]
	return ok
}

// FlagForCurrency returns the bundled flag for a code, or "" when the code is
// unknown or carries no flag.
func FlagForCurrency(code string) string {
	return staticSnapshot[code].Flag
}
