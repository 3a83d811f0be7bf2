package repositories

import (
	"context"

	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
)

// SnapshotCacheRepository persists the last successfully fetched domain
// snapshot. The cache is written wholesale on every successful fetch and read
// once during bootstrap.
type SnapshotCacheRepository interface {
	// LoadSnapshot returns the cached snapshot, or apperrors.ErrNotFound when
	// none has ever been written.
	LoadSnapshot(ctx context.Context) (domain.Snapshot, error)

	// SaveSnapshot overwrites the cached snapshot.
	SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error
}

// HistoryRepository persists the per-device currency selection history.
type HistoryRepository interface {
	// LoadHistory returns the stored code list for a device, or
	// apperrors.ErrNotFound when never written.
	LoadHistory(ctx context.Context, deviceID string) ([]string, error)

	// SaveHistory overwrites the stored code list for a device.
	SaveHistory(ctx context.Context, deviceID string, codes []string) error

	// DeleteHistory removes the stored code list for a device.
	DeleteHistory(ctx context.Context, deviceID string) error
}
