// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hvacops/internal/domain/entity"
)

// SnapshotStore owns the persisted snapshot document. Every entity service
// works read-modify-write against it: load a deep copy, mutate its own
// collection, save the whole document back.
type SnapshotStore interface {
	// Load returns a deep copy of the current snapshot, bootstrapping an
	// empty document with default business settings if none exists yet.
	Load(ctx context.Context) (*entity.Snapshot, error)

	// Save persists the given snapshot as the new current document.
	Save(ctx context.Context, snap *entity.Snapshot) error

	// Mutate runs fn against a deep copy of the current snapshot under the
	// store's write lock and persists the result if fn succeeds. Concurrent
	// mutations are serialized so no update is lost.
	Mutate(ctx context.Context, fn func(snap *entity.Snapshot) error) error
}
