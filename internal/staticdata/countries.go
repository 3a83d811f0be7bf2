package staticdata

import "github.com/jasonlam510/scount-currency-backend/internal/core/domain"

// countries is the bundled country reference table, in a fixed order so that
// "first matching country" lookups are deterministic.
var countries = []domain.Country{
	{Alpha2: "AE", Flag: "🇦🇪", CurrencyCode: "AED"},
	{Alpha2: "AR", Flag: "🇦🇷", CurrencyCode: "ARS"},
	{Alpha2: "AT", Flag: "🇦🇹", CurrencyCode: "EUR"},
	{Alpha2: "AU", Flag: "🇦🇺", CurrencyCode: "AUD"},
	{Alpha2: "BD", Flag: "🇧🇩", CurrencyCode: "BDT"},
	{Alpha2: "BE", Flag: "🇧🇪", CurrencyCode: "EUR"},
	{Alpha2: "BG", Flag: "🇧🇬", CurrencyCode: "BGN"},
	{Alpha2: "BR", Flag: "🇧🇷", CurrencyCode: "BRL"},
	{Alpha2: "CA", Flag: "🇨🇦", CurrencyCode: "CAD"},
	{Alpha2: "CH", Flag: "🇨🇭", CurrencyCode: "CHF"},
	{Alpha2: "CL", Flag: "🇨🇱", CurrencyCode: "CLP"},
	{Alpha2: "CN", Flag: "🇨🇳", CurrencyCode: "CNY"},
	{Alpha2: "CO", Flag: "🇨🇴", CurrencyCode: "COP"},
	{Alpha2: "CZ", Flag: "🇨🇿", CurrencyCode: "CZK"},
	{Alpha2: "DE", Flag: "🇩🇪", CurrencyCode: "EUR"},
	{Alpha2: "DK", Flag: "🇩🇰", CurrencyCode: "DKK"},
	{Alpha2: "EC", Flag: "🇪🇨", CurrencyCode: "USD"},
	{Alpha2: "EG", Flag: "🇪🇬", CurrencyCode: "EGP"},
	{Alpha2: "ES", Flag: "🇪🇸", CurrencyCode: "EUR"},
	{Alpha2: "FI", Flag: "🇫🇮", CurrencyCode: "EUR"},
	{Alpha2: "FR", Flag: "🇫🇷", CurrencyCode: "EUR"},
	{Alpha2: "GB", Flag: "🇬🇧", CurrencyCode: "GBP"},
	{Alpha2: "GR", Flag: "🇬🇷", CurrencyCode: "EUR"},
	{Alpha2: "HK", Flag: "🇭🇰", CurrencyCode: "HKD"},
	{Alpha2: "HU", Flag: "🇭🇺", CurrencyCode: "HUF"},
	{Alpha2: "ID", Flag: "🇮🇩", CurrencyCode: "IDR"},
	{Alpha2: "IE", Flag: "🇮🇪", CurrencyCode: "EUR"},
	{Alpha2: "IL", Flag: "🇮🇱", CurrencyCode: "ILS"},
	{Alpha2: "IN", Flag: "🇮🇳", CurrencyCode: "INR"},
	{Alpha2: "IS", Flag: "🇮🇸", CurrencyCode: "ISK"},
	{Alpha2: "IT", Flag: "🇮🇹", CurrencyCode: "EUR"},
	{Alpha2: "JP", Flag: "🇯🇵", CurrencyCode: "JPY"},
	{Alpha2: "KH", Flag: "🇰🇭", CurrencyCode: "KHR"},
	{Alpha2: "KR", Flag: "🇰🇷", CurrencyCode: "KRW"},
	{Alpha2: "KW", Flag: "🇰🇼", CurrencyCode: "KWD"},
	{Alpha2: "LA", Flag: "🇱🇦", CurrencyCode: "LAK"},
	{Alpha2: "LK", Flag: "🇱🇰", CurrencyCode: "LKR"},
	{Alpha2: "LT", Flag: "🇱🇹", CurrencyCode: "EUR"},
	{Alpha2: "LU", Flag: "🇱🇺", CurrencyCode: "EUR"},
	{Alpha2: "LV", Flag: "🇱🇻", CurrencyCode: "EUR"},
	{Alpha2: "MO", Flag: "🇲🇴", CurrencyCode: "MOP"},
	{Alpha2: "MX", Flag: "🇲🇽", CurrencyCode: "MXN"},
	{Alpha2: "MY", Flag: "🇲🇾", CurrencyCode: "MYR"},
	{Alpha2: "NL", Flag: "🇳🇱", CurrencyCode: "EUR"},
	{Alpha2: "NO", Flag: "🇳🇴", CurrencyCode: "NOK"},
	{Alpha2: "NZ", Flag: "🇳🇿", CurrencyCode: "NZD"},
	{Alpha2: "PE", Flag: "🇵🇪", CurrencyCode: "PEN"},
	{Alpha2: "PH", Flag: "🇵🇭", CurrencyCode: "PHP"},
	{Alpha2: "PK", Flag: "🇵🇰", CurrencyCode: "PKR"},
	{Alpha2: "PL", Flag: "🇵🇱", CurrencyCode: "PLN"},
	{Alpha2: "PT", Flag: "🇵🇹", CurrencyCode: "EUR"},
	{Alpha2: "QA", Flag: "🇶🇦", CurrencyCode: "QAR"},
	{Alpha2: "RO", Flag: "🇷🇴", CurrencyCode: "RON"},
	{Alpha2: "SA", Flag: "🇸🇦", CurrencyCode: "SAR"},
	{Alpha2: "SE", Flag: "🇸🇪", CurrencyCode: "SEK"},
	{Alpha2: "SG", Flag: "🇸🇬", CurrencyCode: "SGD"},
	{Alpha2: "TH", Flag: "🇹🇭", CurrencyCode: "THB"},
	{Alpha2: "TR", Flag: "🇹🇷", CurrencyCode: "TRY"},
	{Alpha2: "TW", Flag: "🇹🇼", CurrencyCode: "TWD"},
	{Alpha2: "US", Flag: "🇺🇸", CurrencyCode: "USD"},
	{Alpha2: "VN", Flag: "🇻🇳", CurrencyCode: "VND"},
	{Alpha2: "ZA", Flag: "🇿🇦", CurrencyCode: "ZAR"},
}

// CountryByAlpha2 looks up a country by its alpha-2 code (already normalized
// to uppercase).
func CountryByAlpha2(alpha2 string) (domain.Country, bool) {
	for _, c := range countries {
		if c.Alpha2 == alpha2 {
			return c, true
		}
	}
	return domain.Country{}, false
}

// CountryForCurrency finds a country using the given currency. A country whose
// alpha-2 equals preferredRegion wins; otherwise the first match in table order
// is returned.
func CountryForCurrency(currencyCode, preferredRegion string) (domain.Country, bool) {
	var first domain.Country
	found := false
	for _, c := range countries {
		if c.CurrencyCode != currencyCode {
			continue
		}
		if c.Alpha2 == preferredRegion {
			return c, true
		}
		if !found {
			first = c
			found = true
		}
	}
	return first, found
}
