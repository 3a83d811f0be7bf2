package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jasonlam510/scount-currency-backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
)

// Storage keys follow the app's general convention: a namespace column scopes
// each key, and writes overwrite wholesale (no partial merges).
const (
	snapshotNamespace = "catalog"
	snapshotKey       = "currency_domain_frankfurter_v1"
	historyKey        = "currency_history_v1"
)

// kvRepository implements the key-value contract over the kv_entries table.
type kvRepository struct {
	BaseRepository
}

func (r *kvRepository) getValue(ctx context.Context, namespace, key string) ([]byte, error) {
	query := `SELECT value FROM kv_entries WHERE namespace = $1 AND key = $2`

	var value []byte
	err := r.Pool.QueryRow(ctx, query, namespace, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read kv entry %s/%s: %w", namespace, key, err)
	}
	return value, nil
}

func (r *kvRepository) setValue(ctx context.Context, namespace, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (namespace, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := r.Pool.Exec(ctx, query, namespace, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to write kv entry %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (r *kvRepository) deleteValue(ctx context.Context, namespace, key string) error {
	query := `DELETE FROM kv_entries WHERE namespace = $1 AND key = $2`

	if _, err := r.Pool.Exec(ctx, query, namespace, key); err != nil {
		return fmt.Errorf("failed to delete kv entry %s/%s: %w", namespace, key, err)
	}
	return nil
}
