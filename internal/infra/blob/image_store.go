// Package blob reads image objects from a cloud bucket through gocloud.dev,
// so the same code serves gs:// buckets in production and file:// buckets in
// development.
package blob

import (
	"context"
	"log/slog"

	"booking/config"
	"booking/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// Params defines the dependencies for the image store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// imageStore implements service.ImageStore on top of a gocloud bucket.
type imageStore struct {
	bucket *blob.Bucket
}

// NewImageStore opens the configured bucket and closes it on shutdown.
func NewImageStore(params Params) (service.ImageStore, error) {
	if params.Config.Blob == nil || params.Config.Blob.BucketURL == "" {
		return nil, errors.New("blob.bucketUrl must be configured")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Blob.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &imageStore{bucket: bucket}, nil
}

// Read returns the raw bytes of the object at the given path.
func (s *imageStore) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, path)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrap(err, "failed to read image object")
	}

	return data, nil
}

// Exists reports whether the object is present in the bucket.
func (s *imageStore) Exists(ctx context.Context, path string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, path)
	if err != nil {
		return false, errors.Wrap(err, "failed to check image object")
	}

	return exists, nil
}
