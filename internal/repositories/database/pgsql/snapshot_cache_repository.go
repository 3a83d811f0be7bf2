package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
	portsrepo "github.com/jasonlam510/scount-currency-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSnapshotCacheRepository persists the last fetched domain snapshot under a
// single well-known key. The cache is shared by all devices.
type PgxSnapshotCacheRepository struct {
	kvRepository
}

func newPgxSnapshotCacheRepository(pool *pgxpool.Pool) portsrepo.SnapshotCacheRepository {
	return &PgxSnapshotCacheRepository{
		kvRepository: kvRepository{BaseRepository: BaseRepository{Pool: pool}},
	}
}

var _ portsrepo.SnapshotCacheRepository = (*PgxSnapshotCacheRepository)(nil)

func (r *PgxSnapshotCacheRepository) LoadSnapshot(ctx context.Context) (domain.Snapshot, error) {
	raw, err := r.getValue(ctx, snapshotNamespace, snapshotKey)
	if err != nil {
		return nil, err
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("cached snapshot is malformed: %w", err)
	}
	return snapshot, nil
}

func (r *PgxSnapshotCacheRepository) SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return r.setValue(ctx, snapshotNamespace, snapshotKey, raw)
}
