package docstore

import (
	"context"
	"encoding/json"
	"testing"

	"hvacops/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) (*Store, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return New(bucket, ""), bucket
}

func TestStore_BootstrapsEmptySnapshot(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()

	snap, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Empty(t, snap.Customers)
	assert.Empty(t, snap.QuoteRequests)
	assert.Equal(t, 24, snap.BusinessSettings.CancellationWindowHours)
	assert.Equal(t, 14, snap.BusinessSettings.QuoteExpiryDays)

	// The bootstrap document must have been written to durable storage.
	raw, err := bucket.ReadAll(ctx, DefaultKey)
	require.NoError(t, err)

	persisted := new(entity.Snapshot)
	require.NoError(t, json.Unmarshal(raw, persisted))
	assert.Equal(t, snap.BusinessSettings, persisted.BusinessSettings)
}

func TestStore_SaveRoundTrip(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()

	snap, err := store.Load(ctx)
	require.NoError(t, err)

	snap.Customers = append(snap.Customers, entity.Customer{
		ID:             "cust-1",
		Name:           "Dana Frost",
		PrimaryAddress: "12 Cold Ln",
		Email:          "dana@example.com",
		Phone:          "555-0100",
	})
	require.NoError(t, store.Save(ctx, snap))

	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded.Customers, 1)
	assert.Equal(t, "cust-1", reloaded.Customers[0].ID)

	// A second store over the same bucket must see the persisted document.
	other := New(bucket, "")
	fresh, err := other.Load(ctx)
	require.NoError(t, err)
	require.Len(t, fresh.Customers, 1)
}

func TestStore_LoadReturnsDeepCopy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Load(ctx)
	require.NoError(t, err)
	first.Customers = append(first.Customers, entity.Customer{ID: "cust-rogue"})

	second, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, second.Customers, "mutating a loaded snapshot must not leak into the cache")
}

func TestStore_MutateFailureLeavesDocumentUntouched(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	boom := assert.AnError
	err := store.Mutate(ctx, func(snap *entity.Snapshot) error {
		snap.Customers = append(snap.Customers, entity.Customer{ID: "cust-x"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Customers)
}

func TestStore_MutatePersists(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Mutate(ctx, func(snap *entity.Snapshot) error {
		snap.Services = append(snap.Services, entity.ServiceOffering{ID: "svc-1", Name: "Tune-up"})
		return nil
	}))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Services, 1)
	assert.Equal(t, "Tune-up", snap.Services[0].Name)
}
