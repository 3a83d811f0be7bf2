package services

import (
	"context"
	"sort"
	"strings"

	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
	portssvc "github.com/jasonlam510/scount-currency-backend/internal/core/ports/services"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultSuggestedCodes is the fixed default set ranked after the local
// currency and the recency history.
var DefaultSuggestedCodes = []string{"EUR", "USD", "GBP", "JPY"}

// suggestionsSectionTitle names the synthetic section prepended to the full
// picker when suggestions exist and no search is active.
const suggestionsSectionTitle = "Suggestions"

// BuildSuggestedCurrencyCodes ranks suggestion codes: the local code first,
// then the history in stored order (most recent use first), then the defaults,
// deduplicated on normalized codes.
func BuildSuggestedCurrencyCodes(localCode string, history []string, defaults []string) []string {
	out := make([]string, 0, 1+len(history)+len(defaults))
	seen := make(map[string]struct{})

	push := func(code string) {
		norm := domain.NormalizeCurrencyCode(code)
		if norm == "" {
			return
		}
		if _, dup := seen[norm]; dup {
			return
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}

	push(localCode)
	for _, code := range history {
		push(code)
	}
	for _, code := range defaults {
		push(code)
	}
	return out
}

// BuildSuggestions maps each suggested code to its full currency record,
// preserving input order and skipping codes absent from the domain (for
// instance a historical code that has since disappeared from the live list).
func BuildSuggestions(allSupported []domain.Currency, codes []string) []domain.Currency {
	byCode := make(map[string]domain.Currency, len(allSupported))
	for _, cur := range allSupported {
		byCode[cur.Code] = cur
	}

	out := make([]domain.Currency, 0, len(codes))
	for _, code := range codes {
		if cur, ok := byCode[domain.NormalizeCurrencyCode(code)]; ok {
			out = append(out, cur)
		}
	}
	return out
}

// FilterCurrencies performs a case-insensitive substring match against each
// currency's search key. An empty or whitespace-only query returns the input
// unchanged.
func FilterCurrencies(list []domain.Currency, query string) []domain.Currency {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	out := make([]domain.Currency, 0, len(list))
	for _, cur := range list {
		if strings.Contains(cur.SearchKey, q) {
			out = append(out, cur)
		}
	}
	return out
}

// SortCurrenciesAlpha returns a stably sorted copy of the list, alphabetical
// by name, locale-aware and case-insensitive. The input is not mutated.
func SortCurrenciesAlpha(list []domain.Currency) []domain.Currency {
	out := make([]domain.Currency, len(list))
	copy(out, list)

	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// BuildSections groups the already-sorted list into letter sections by the
// uppercased first character of the name, in first-appearance order. When
// suggestions are non-empty and no query is active, a synthetic suggestions
// section is prepended. Section titles double as index-jump targets.
func BuildSections(sorted []domain.Currency, suggestions []domain.Currency, query string) []domain.Section {
	sections := make([]domain.Section, 0, 28)
	if len(suggestions) > 0 && strings.TrimSpace(query) == "" {
		sections = append(sections, domain.Section{Title: suggestionsSectionTitle, Items: suggestions})
	}

	letterStart := len(sections)
	for _, cur := range sorted {
		title := sectionTitle(cur.Name)
		if n := len(sections); n > letterStart && sections[n-1].Title == title {
			sections[n-1].Items = append(sections[n-1].Items, cur)
			continue
		}
		sections = append(sections, domain.Section{Title: title, Items: []domain.Currency{cur}})
	}
	return sections
}

func sectionTitle(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return "#"
	}
	return strings.ToUpper(string(runes[0]))
}

// suggestionService wires the pure composer over the catalog and history.
type suggestionService struct {
	catalog portssvc.CatalogReaderSvc
	history portssvc.HistorySvcFacade
}

// NewSuggestionService creates the suggestion facade.
func NewSuggestionService(catalog portssvc.CatalogReaderSvc, history portssvc.HistorySvcFacade) portssvc.SuggestionSvcFacade {
	return &suggestionService{catalog: catalog, history: history}
}

var _ portssvc.SuggestionSvcFacade = (*suggestionService)(nil)

func (s *suggestionService) LocalCurrencyCode(loc domain.DeviceLocale) string {
	return GetLocalCurrencyCode(loc)
}

func (s *suggestionService) Suggested(ctx context.Context, deviceID string, loc domain.DeviceLocale) []domain.Currency {
	all := s.catalog.AllSupported(loc)
	codes := BuildSuggestedCurrencyCodes(
		GetLocalCurrencyCode(loc),
		s.history.List(ctx, deviceID),
		DefaultSuggestedCodes,
	)
	return BuildSuggestions(all, codes)
}

func (s *suggestionService) Sections(ctx context.Context, deviceID string, loc domain.DeviceLocale, query string) []domain.Section {
	all := s.catalog.AllSupported(loc)

	var suggestions []domain.Currency
	if strings.TrimSpace(query) == "" {
		codes := BuildSuggestedCurrencyCodes(
			GetLocalCurrencyCode(loc),
			s.history.List(ctx, deviceID),
			DefaultSuggestedCodes,
		)
		suggestions = BuildSuggestions(all, codes)
	}

	return BuildSections(FilterCurrencies(all, query), suggestions, query)
}
