package pgsql

import (
	portsrepo "github.com/jasonlam510/scount-currency-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SnapshotCacheRepo: newPgxSnapshotCacheRepository(dbPool),
		HistoryRepo:       newPgxHistoryRepository(dbPool),
	}
}
