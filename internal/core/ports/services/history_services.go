package services

import "context"

// HistorySvcFacade manages the bounded, most-recent-first list of currency
// codes a device has picked. Persistence is best-effort: a failed write is
// logged and the in-memory result still returned, so a storage hiccup never
// blocks the selection the user just made.
type HistorySvcFacade interface {
	// Record moves code to the front of the device's history, deduplicated and
	// truncated to the maximum length, and returns the updated list. An empty
	// code (after normalization) is a no-op.
	Record(ctx context.Context, deviceID, code string) []string

	// List returns the device's history, most recent first. Absent or corrupt
	// stored data yields an empty list.
	List(ctx context.Context, deviceID string) []string

	// Clear removes the device's history.
	Clear(ctx context.Context, deviceID string) error
}
