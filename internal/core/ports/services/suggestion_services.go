package services

import (
	"context"

	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
)

// SuggestionSvcFacade composes the catalog, the device's history and the
// resolved local currency into the picker payloads.
type SuggestionSvcFacade interface {
	// LocalCurrencyCode resolves the device's implied currency. Total: it
	// always returns a code, falling back through region and country table to
	// the fixed default.
	LocalCurrencyCode(loc domain.DeviceLocale) string

	// Suggested returns the ranked suggestion list: local currency, then
	// recent picks, then the fixed defaults, deduplicated.
	Suggested(ctx context.Context, deviceID string, loc domain.DeviceLocale) []domain.Currency

	// Sections returns the sectioned picker payload: letter sections over the
	// sorted (and optionally query-filtered) catalog, preceded by a synthetic
	// suggestions section when suggestions exist and no query is active.
	Sections(ctx context.Context, deviceID string, loc domain.DeviceLocale, query string) []domain.Section
}
