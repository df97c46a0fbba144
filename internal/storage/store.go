// Package storage persists world snapshots to named save slots.
package storage

import (
	"context"
	"time"
)

// SaveInfo describes one save slot.
type SaveInfo struct {
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at"`
}

// Store is the save-slot backend. Load returns (nil, nil) for a missing
// slot; corrupt slots return an error the caller reports in-fiction.
type Store interface {
	// Save writes a snapshot under the given slot name.
	Save(ctx context.Context, name string, snap *Snapshot) error

	// Load reads a snapshot by slot name. Returns nil if the slot
	// doesn't exist.
	Load(ctx context.Context, name string) (*Snapshot, error)

	// List returns all save slots, newest first.
	List(ctx context.Context) ([]SaveInfo, error)

	// Ping tests the backend connection.
	Ping(ctx context.Context) error

	// Close closes the backend connection.
	Close() error
}
