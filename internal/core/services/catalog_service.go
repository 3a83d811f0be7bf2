package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/jasonlam510/scount-currency-backend/internal/apperrors"
	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
	portsrepo "github.com/jasonlam510/scount-currency-backend/internal/core/ports/repositories"
	portssvc "github.com/jasonlam510/scount-currency-backend/internal/core/ports/services"
	"github.com/jasonlam510/scount-currency-backend/internal/staticdata"
	"github.com/jasonlam510/scount-currency-backend/internal/utils"
	"golang.org/x/sync/singleflight"
)

// placeholderFlag is shown when no flag can be resolved for a currency.
const placeholderFlag = "🌐"

// SnapshotFetcher fetches the live currency list from the remote reference
// source.
type SnapshotFetcher interface {
	FetchCurrencies(ctx context.Context) (domain.Snapshot, error)
}

// catalogService owns the published domain snapshot. The fallback order is
// fixed: freshest fetched snapshot, else last cached, else the bundled static
// one. Bootstrap and Refresh share a single-flight group so at most one
// network fetch is in flight at a time.
type catalogService struct {
	cacheRepo portsrepo.SnapshotCacheRepository
	fetcher   SnapshotFetcher
	logger    *slog.Logger

	group singleflight.Group

	mu       sync.RWMutex
	snapshot domain.Snapshot
	loading  bool
	lastErr  string
}

// NewCatalogService creates the catalog service. Bootstrap must be called once
// before the first read; until then the published snapshot is empty.
func NewCatalogService(cacheRepo portsrepo.SnapshotCacheRepository, fetcher SnapshotFetcher, logger *slog.Logger) portssvc.CatalogSvcFacade {
	return &catalogService{
		cacheRepo: cacheRepo,
		fetcher:   fetcher,
		logger:    logger,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// Bootstrap publishes the cached snapshot first so readers have something
// before network latency resolves, then attempts a live fetch, and finally
// falls back to the bundled snapshot when both tiers came up empty. Fetch and
// storage failures degrade to the next tier instead of propagating.
func (s *catalogService) Bootstrap(ctx context.Context) {
	s.group.Do("catalog", func() (any, error) {
		s.setLoading(true)
		defer s.setLoading(false)

		cached, err := s.cacheRepo.LoadSnapshot(ctx)
		switch {
		case err == nil && len(cached) > 0:
			s.publish(cached.Normalized())
		case err != nil && !errors.Is(err, apperrors.ErrNotFound):
			s.logger.Warn("Failed to read snapshot cache", slog.String("error", err.Error()))
		}

		s.fetchAndStore(ctx)

		s.mu.Lock()
		if len(s.snapshot) == 0 {
			s.snapshot = staticdata.CurrencySnapshot()
		}
		s.mu.Unlock()
		return nil, nil
	})
}

// Refresh re-attempts the network fetch only. On failure the published
// snapshot is left untouched and the error surfaces via Status.
func (s *catalogService) Refresh(ctx context.Context) {
	s.group.Do("catalog", func() (any, error) {
		s.setLoading(true)
		defer s.setLoading(false)

		s.fetchAndStore(ctx)
		return nil, nil
	})
}

// fetchAndStore runs one network fetch. Success overwrites the cache and the
// published snapshot and clears the error; failure records the error only.
// A failed cache write is logged and does not block publishing.
func (s *catalogService) fetchAndStore(ctx context.Context) {
	fetched, err := s.fetcher.FetchCurrencies(ctx)
	if err != nil {
		s.logger.Warn("Currency fetch failed", slog.String("error", err.Error()))
		s.setError(err.Error())
		return
	}

	if err := s.cacheRepo.SaveSnapshot(ctx, fetched); err != nil {
		s.logger.Warn("Failed to persist snapshot cache", slog.String("error", err.Error()))
	}
	s.publish(fetched)
}

func (s *catalogService) publish(snapshot domain.Snapshot) {
	s.mu.Lock()
	s.snapshot = snapshot
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *catalogService) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

func (s *catalogService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Status reports whether a bootstrap/refresh is in flight and the last fetch
// error message.
func (s *catalogService) Status() (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading, s.lastErr
}

// AllSupported derives the full currency list from the published snapshot,
// sorted alphabetically by name.
func (s *catalogService) AllSupported(loc domain.DeviceLocale) []domain.Currency {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	region := normalizeRegion(loc.RegionCode)
	out := make([]domain.Currency, 0, len(snapshot))
	for code, entry := range snapshot {
		out = append(out, deriveCurrency(code, entry, region, loc.LanguageTag))
	}
	return SortCurrenciesAlpha(out)
}

// CurrencyByCode derives a single currency from the published snapshot.
func (s *catalogService) CurrencyByCode(code string, loc domain.DeviceLocale) (domain.Currency, bool) {
	norm := domain.NormalizeCurrencyCode(code)

	s.mu.RLock()
	entry, ok := s.snapshot[norm]
	s.mu.RUnlock()
	if !ok {
		return domain.Currency{}, false
	}
	return deriveCurrency(norm, entry, normalizeRegion(loc.RegionCode), loc.LanguageTag), true
}

// deriveCurrency builds the display entity for one snapshot entry. Flag
// resolution order: the entry's own flag, the bundled snapshot's flag, the
// country table (preferring the caller's region), then a globe placeholder.
func deriveCurrency(code string, entry domain.SnapshotEntry, region, langTag string) domain.Currency {
	code = domain.NormalizeCurrencyCode(code)

	emoji := entry.Flag
	if emoji == "" {
		emoji = staticdata.FlagForCurrency(code)
	}
	if emoji == "" {
		if country, ok := staticdata.CountryForCurrency(code, region); ok {
			emoji = country.Flag
		}
	}
	if emoji == "" {
		emoji = placeholderFlag
	}

	symbol := utils.CurrencySymbol(code, langTag)
	return domain.Currency{
		Code:      code,
		Name:      entry.Name,
		Symbol:    symbol,
		Emoji:     emoji,
		SearchKey: domain.BuildSearchKey(entry.Name, code, symbol),
	}
}

func normalizeRegion(region string) string {
	return strings.ToUpper(strings.TrimSpace(region))
}
