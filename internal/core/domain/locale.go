package domain

// DeviceLocale carries what the device locale API reports about the user's
// primary locale. Any field may be empty; resolution falls through the
// remaining fields and the static reference tables.
type DeviceLocale struct {
	CurrencyCode string `json:"currencyCode"` // directly reported currency, if any
	RegionCode   string `json:"regionCode"`   // alpha-2 region, if reported
	LanguageTag  string `json:"languageTag"`  // BCP-47 tag, e.g. "zh-Hant-TW"
}

// Country is one row of the bundled country reference table, used only as a
// fallback source for local-currency and flag resolution.
type Country struct {
	Alpha2       string `json:"alpha2"`
	Flag         string `json:"flag"`
	CurrencyCode string `json:"currencyCode"`
}
