package services

import (
	"strings"

	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
	"github.com/jasonlam510/scount-currency-backend/internal/staticdata"
	"golang.org/x/text/language"
)

// FallbackCurrencyCode is returned when nothing about the device locale
// resolves to a supported currency.
const FallbackCurrencyCode = "HKD"

// fallbackRegion is assumed when neither the reported region nor the language
// tag yields one.
const fallbackRegion = "HK"

// GetLocalCurrencyCode resolves the device's implied currency. It is pure with
// respect to its input and the static tables and always returns a code:
//  1. the directly reported currency code, if any;
//  2. the currency of the resolved region, when the country table knows the
//     region and the bundled snapshot supports that currency;
//  3. FallbackCurrencyCode.
func GetLocalCurrencyCode(loc domain.DeviceLocale) string {
	if code := domain.NormalizeCurrencyCode(loc.CurrencyCode); code != "" {
		return code
	}

	region := resolveRegion(loc)
	if country, ok := staticdata.CountryByAlpha2(region); ok && staticdata.HasCurrency(country.CurrencyCode) {
		return country.CurrencyCode
	}
	return FallbackCurrencyCode
}

// resolveRegion picks the device region: the reported region code when it
// looks like alpha-2, else the region explicitly present in the language tag
// (e.g. "zh-Hant-TW" -> "TW"), else the last alpha-2-looking tag segment, else
// the fixed fallback.
func resolveRegion(loc domain.DeviceLocale) string {
	if r := strings.ToUpper(strings.TrimSpace(loc.RegionCode)); isAlpha2(r) {
		return r
	}

	rawTag := strings.TrimSpace(loc.LanguageTag)
	if tag, err := language.Parse(rawTag); err == nil {
		// Exact confidence only: a region inferred from the language alone
		// (e.g. "fr" -> FR) is a guess, not something the device reported.
		if region, conf := tag.Region(); conf == language.Exact && region.IsCountry() {
			return region.String()
		}
	}

	segments := strings.FieldsFunc(rawTag, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i := len(segments) - 1; i >= 0; i-- {
		if s := strings.ToUpper(segments[i]); isAlpha2(s) {
			return s
		}
	}
	return fallbackRegion
}

func isAlpha2(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
