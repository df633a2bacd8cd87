package docstore

import (
	"context"
	"os"

	"hvacops/config"
	"hvacops/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// BucketParams holds dependencies for the blob bucket, injected by Fx.
type BucketParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewBucket opens the file-backed bucket holding the snapshot document and
// closes it on shutdown.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	path := params.Config.Store.Path
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create store directory %s", path)
	}

	bucket, err := fileblob.OpenBucket(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open store bucket at %s", path)
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

// NewSnapshotStore builds the snapshot store over the configured bucket.
func NewSnapshotStore(bucket *blob.Bucket, cfg *config.Config) repository.SnapshotStore {
	return New(bucket, cfg.Store.Key)
}
