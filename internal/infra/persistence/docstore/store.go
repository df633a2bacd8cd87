// Package docstore persists the snapshot document as a single JSON object in
// a blob bucket, with an in-process cache populated lazily on first access.
package docstore

import (
	"context"
	"encoding/json"
	"sync"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// DefaultKey is the blob key the snapshot document is stored under.
const DefaultKey = "data-store.json"

// Store implements repository.SnapshotStore over a blob bucket. All access
// goes through one mutex, so read-modify-write cycles via Mutate are
// serialized and concurrent writers cannot lose each other's updates.
type Store struct {
	bucket *blob.Bucket
	key    string

	mu    sync.Mutex
	cache *entity.Snapshot
}

var _ repository.SnapshotStore = (*Store)(nil)

// New creates a store over the given bucket. An empty key selects DefaultKey.
func New(bucket *blob.Bucket, key string) *Store {
	if key == "" {
		key = DefaultKey
	}

	return &Store{bucket: bucket, key: key}
}

// Load returns a deep copy of the current snapshot, bootstrapping a fresh
// document with empty collections and default business settings if none
// exists yet.
func (s *Store) Load(ctx context.Context) (*entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	return s.cache.Clone(), nil
}

// Save persists the given snapshot as the new current document.
func (s *Store) Save(ctx context.Context, snap *entity.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(ctx, snap.Clone())
}

// Mutate runs fn against a deep copy of the current snapshot and persists the
// result if fn succeeds. A failing fn leaves the document untouched.
func (s *Store) Mutate(ctx context.Context, fn func(snap *entity.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	working := s.cache.Clone()
	if err := fn(working); err != nil {
		return err
	}

	return s.write(ctx, working)
}

// ensureLoaded populates the cache from the bucket. Callers must hold mu.
func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.cache != nil {
		return nil
	}

	raw, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return s.write(ctx, entity.NewSnapshot())
		}

		return errors.Wrap(err, "read snapshot document")
	}

	snap := new(entity.Snapshot)
	if err := json.Unmarshal(raw, snap); err != nil {
		return errors.Wrap(err, "decode snapshot document")
	}
	s.cache = snap

	return nil
}

// write persists snap and installs it as the cache. Callers must hold mu.
func (s *Store) write(ctx context.Context, snap *entity.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode snapshot document")
	}

	if err := s.bucket.WriteAll(ctx, s.key, raw, nil); err != nil {
		return errors.Wrap(err, "write snapshot document")
	}
	s.cache = snap

	return nil
}
