package media

import (
	"context"
	"strings"
	"testing"

	"farha/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestSaveImages_PreservesOrderAndContent(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewWithBucket(bucket)
	ctx := context.Background()

	paths, err := storage.SaveImages(ctx, []service.Upload{
		{Filename: "first.jpg", Content: []byte("one")},
		{Filename: "second.jpg", Content: []byte("two")},
	}, "beauty-centers")

	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.True(t, strings.HasPrefix(paths[0], "beauty-centers/"))
	assert.True(t, strings.HasSuffix(paths[0], "_first.jpg"))
	assert.True(t, strings.HasSuffix(paths[1], "_second.jpg"))

	stored, err := bucket.ReadAll(ctx, paths[0])
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), stored)
}

func TestSaveImages_SameFilenameNeverCollides(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewWithBucket(bucket)
	ctx := context.Background()

	paths, err := storage.SaveImages(ctx, []service.Upload{
		{Filename: "photo.jpg", Content: []byte("a")},
		{Filename: "photo.jpg", Content: []byte("b")},
	}, "beauty-centers")

	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.NotEqual(t, paths[0], paths[1])
}

func TestSaveImages_ZeroFiles(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewWithBucket(bucket)

	paths, err := storage.SaveImages(context.Background(), nil, "beauty-centers")

	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "photo.jpg", want: "photo.jpg"},
		{name: "spaces", in: "my photo.jpg", want: "my_photo.jpg"},
		{name: "path traversal", in: "../../etc/passwd", want: "passwd"},
		{name: "windows separators", in: `C:\uploads\photo.jpg`, want: "photo.jpg"},
		{name: "empty", in: "", want: "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		})
	}
}
