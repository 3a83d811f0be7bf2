package services

import (
	"context"

	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
)

// CatalogReaderSvc defines read operations over the current domain snapshot.
type CatalogReaderSvc interface {
	// AllSupported derives the full currency list from the current snapshot,
	// sorted alphabetically by name. The device locale steers flag and symbol
	// resolution only; the set of currencies is the same for every caller.
	AllSupported(loc domain.DeviceLocale) []domain.Currency

	// CurrencyByCode derives a single currency from the current snapshot.
	CurrencyByCode(code string, loc domain.DeviceLocale) (domain.Currency, bool)

	// Status reports whether a bootstrap/refresh is in flight and the last
	// fetch error message ("" when the last fetch succeeded).
	Status() (loading bool, errMsg string)
}

// CatalogRefreshSvc defines the operations that replace the current snapshot.
type CatalogRefreshSvc interface {
	// Bootstrap loads the cached snapshot (if any), then attempts a network
	// fetch, falling back to the bundled snapshot when both are unavailable.
	// It always leaves a non-empty snapshot published and never returns an
	// error for fetch failures; those surface via Status.
	Bootstrap(ctx context.Context)

	// Refresh re-attempts the network fetch only. On failure the current
	// snapshot is left untouched and the error surfaces via Status.
	Refresh(ctx context.Context)
}

// CatalogSvcFacade combines all catalog-related service interfaces.
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogRefreshSvc
}
