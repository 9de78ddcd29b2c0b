// Package storage implements the FileStore interface on top of
// gocloud.dev's portable blob API.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers: local filesystem for development, S3 for production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"

	"recruitcms/config"
	"recruitcms/internal/domain/lifecycle"
	"recruitcms/internal/domain/service"
)

// blobStore implements service.FileStore backed by a gocloud bucket.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the dependencies for the blob store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and registers its close on shutdown.
func New(params Params) (service.FileStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
	}, nil
}

// Save writes the content under the given key, overwriting any existing
// object.
func (s *blobStore) Save(ctx context.Context, key, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "failed to write upload to bucket")
	}

	return errors.Wrap(w.Close(), "failed to finalize upload")
}

// PublicURL returns the externally reachable URL for a stored key.
func (s *blobStore) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}
