package domain

import (
	"encoding/json"
	"fmt"
)

// SnapshotEntry is one currency in a domain snapshot. The remote source emits
// either a bare name string or a {name, flag} object per code; both decode into
// this one shape so nothing downstream branches on the wire form.
type SnapshotEntry struct {
	Name string `json:"name"`
	Flag string `json:"flag,omitempty"`
}

// UnmarshalJSON accepts both entry shapes the reference source produces.
func (e *SnapshotEntry) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		e.Name = name
		e.Flag = ""
		return nil
	}

	type plainEntry SnapshotEntry
	var obj plainEntry
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("snapshot entry is neither a string nor an object: %w", err)
	}
	*e = SnapshotEntry(obj)
	return nil
}

// Snapshot is the authoritative code -> entry mapping for all supported
// currencies at a point in time. Exactly one snapshot is current: freshest
// fetched, else last cached, else the bundled static one. Snapshots are
// replaced wholesale, never merged across sources.
type Snapshot map[string]SnapshotEntry

// Normalized returns a copy of the snapshot with every code normalized,
// dropping entries whose code normalizes to the empty string.
func (s Snapshot) Normalized() Snapshot {
	out := make(Snapshot, len(s))
	for code, entry := range s {
		norm := NormalizeCurrencyCode(code)
		if norm == "" {
			continue
		}
		out[norm] = entry
	}
	return out
}
