// Package media implements the media placement contract on a blob bucket.
package media

import (
	"context"
	"path"
	"strings"

	"farha/config"
	domainerrors "farha/internal/domain/errors"
	"farha/internal/domain/service"
	"farha/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Local filesystem bucket driver for file:// URLs.
	_ "gocloud.dev/blob/fileblob"
)

// bucketStorage implements service.MediaStorage on a gocloud blob bucket.
type bucketStorage struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// New opens the configured bucket URL and manages its lifetime through fx.
func New(params Params) (service.MediaStorage, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewWithBucket(bucket), nil
}

// NewWithBucket wraps an already-open bucket. Used directly in tests.
func NewWithBucket(bucket *blob.Bucket) service.MediaStorage {
	return &bucketStorage{bucket: bucket}
}

// SaveImages writes each upload under the category prefix and returns the
// stored relative paths in input order. Keys carry a fresh UUID so two
// uploads sharing a filename never collide, within a call or across calls.
func (s *bucketStorage) SaveImages(ctx context.Context, files []service.Upload, category string) ([]string, error) {
	paths := make([]string, 0, len(files))

	for _, file := range files {
		key := path.Join(category, uuid.New().String()+"_"+sanitizeFilename(file.Filename))

		if err := s.bucket.WriteAll(ctx, key, file.Content, nil); err != nil {
			return nil, domainerrors.NewMediaStorageError(err, "failed to store "+file.Filename)
		}

		paths = append(paths, key)
	}

	return paths, nil
}

// sanitizeFilename strips path separators and whitespace so a client-supplied
// name cannot escape the category prefix.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" {
		return "upload"
	}

	return strings.ReplaceAll(name, " ", "_")
}
