package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	portsrepo "github.com/jasonlam510/scount-currency-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxHistoryRepository persists per-device selection history. The device ID is
// the storage namespace, so each device keeps its own list under the same key.
type PgxHistoryRepository struct {
	kvRepository
}

func newPgxHistoryRepository(pool *pgxpool.Pool) portsrepo.HistoryRepository {
	return &PgxHistoryRepository{
		kvRepository: kvRepository{BaseRepository: BaseRepository{Pool: pool}},
	}
}

var _ portsrepo.HistoryRepository = (*PgxHistoryRepository)(nil)

func (r *PgxHistoryRepository) LoadHistory(ctx context.Context, deviceID string) ([]string, error) {
	raw, err := r.getValue(ctx, deviceID, historyKey)
	if err != nil {
		return nil, err
	}

	var codes []string
	if err := json.Unmarshal(raw, &codes); err != nil {
		return nil, fmt.Errorf("stored history is malformed: %w", err)
	}
	return codes, nil
}

func (r *PgxHistoryRepository) SaveHistory(ctx context.Context, deviceID string, codes []string) error {
	raw, err := json.Marshal(codes)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	return r.setValue(ctx, deviceID, historyKey, raw)
}

func (r *PgxHistoryRepository) DeleteHistory(ctx context.Context, deviceID string) error {
	return r.deleteValue(ctx, deviceID, historyKey)
}
