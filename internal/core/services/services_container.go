package services

import (
	"log/slog"

	portsrepo "github.com/jasonlam510/scount-currency-backend/internal/core/ports/repositories"
	portssvc "github.com/jasonlam510/scount-currency-backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, fetcher SnapshotFetcher, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Catalog = NewCatalogService(repos.SnapshotCacheRepo, fetcher, logger)
	container.History = NewHistoryService(repos.HistoryRepo, logger)

	// The suggestion facade composes the other two; it must come last.
	container.Suggestion = NewSuggestionService(container.Catalog, container.History)

	return container
}
