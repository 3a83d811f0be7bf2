package domain

import "strings"

// Currency is the display entity the picker works with. It is derived from the
// current snapshot plus the static reference tables and is never persisted as such.
type Currency struct {
	Code      string `json:"code"`      // ISO 4217 alpha-3, e.g. "USD"
	Name      string `json:"name"`      // e.g. "US Dollar"
	Symbol    string `json:"symbol"`    // e.g. "$"
	Emoji     string `json:"emoji"`     // flag glyph, e.g. "🇺🇸"
	SearchKey string `json:"searchKey"` // lowercase name+code+symbol, for substring search
}

// NormalizeCurrencyCode trims and uppercases a currency code. Every boundary
// (storage read, network read, user selection) runs codes through this before
// comparison or lookup.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// BuildSearchKey computes the lowercase search key for a currency. Recomputed
// whenever name, code or symbol change.
func BuildSearchKey(name, code, symbol string) string {
	return strings.ToLower(name + code + symbol)
}

// Section is one group of the sectioned picker payload: a letter bucket of the
// alphabetical list, or the synthetic suggestions group at the top.
type Section struct {
	Title string     `json:"title"`
	Items []Currency `json:"items"`
}
