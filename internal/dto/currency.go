package dto

import (
	"strings"

	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
)

// DeviceLocaleQuery carries what the mobile client reports about its locale.
// All fields are optional; resolution falls through the backend's fallback
// chain.
type DeviceLocaleQuery struct {
	Currency string `form:"currency"`
	Region   string `form:"region"`
	Lang     string `form:"lang"`
}

// ToDomain builds a DeviceLocale, falling back to the first Accept-Language
// entry when no explicit lang was sent.
func (q DeviceLocaleQuery) ToDomain(acceptLanguage string) domain.DeviceLocale {
	lang := q.Lang
	if lang == "" {
		lang = firstLanguage(acceptLanguage)
	}
	return domain.DeviceLocale{
		CurrencyCode: q.Currency,
		RegionCode:   q.Region,
		LanguageTag:  lang,
	}
}

// firstLanguage extracts the first tag of an Accept-Language header, dropping
// any quality weight ("zh-TW,zh;q=0.9" -> "zh-TW").
func firstLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	return strings.TrimSpace(first)
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Emoji     string `json:"emoji"`
	SearchKey string `json:"searchKey"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(cur domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:      cur.Code,
		Name:      cur.Name,
		Symbol:    cur.Symbol,
		Emoji:     cur.Emoji,
		SearchKey: cur.SearchKey,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of
// CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, cur := range currencies {
		res[i] = ToCurrencyResponse(cur)
	}
	return res
}

// CatalogResponse is the full-catalog payload. Error is advisory: the list is
// always populated from the best available snapshot tier.
type CatalogResponse struct {
	IsLoading  bool               `json:"isLoading"`
	Error      string             `json:"error,omitempty"`
	Currencies []CurrencyResponse `json:"currencies"`
}

// SectionResponse is one group of the sectioned picker payload.
type SectionResponse struct {
	Title string             `json:"title"`
	Items []CurrencyResponse `json:"items"`
}

// ToSectionsResponse converts domain sections to DTOs.
func ToSectionsResponse(sections []domain.Section) []SectionResponse {
	res := make([]SectionResponse, len(sections))
	for i, s := range sections {
		res[i] = SectionResponse{Title: s.Title, Items: ToListCurrencyResponse(s.Items)}
	}
	return res
}

// SectionsResponse is the sectioned-picker payload.
type SectionsResponse struct {
	IsLoading bool              `json:"isLoading"`
	Error     string            `json:"error,omitempty"`
	Sections  []SectionResponse `json:"sections"`
}

// LocalCurrencyResponse carries the resolved local currency code.
type LocalCurrencyResponse struct {
	Code string `json:"code"`
}

// CurrencyDetailResponse is a single currency, optionally with an amount
// formatted at the currency's precision.
type CurrencyDetailResponse struct {
	CurrencyResponse
	FormattedAmount string `json:"formattedAmount,omitempty"`
}
