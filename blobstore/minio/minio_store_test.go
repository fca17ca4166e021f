package minio

import (
	"errors"
	"io"
	"testing"

	"github.com/hupe1980/hybridize/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NotFound"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestStore_Key(t *testing.T) {
	s := NewStore(nil, "b", "runs/")
	assert.Equal(t, "runs/CURRENT", s.key("CURRENT"))
	assert.Equal(t, "runs/snapshots/000001.snap", s.key("snapshots/000001.snap"))

	s = NewStore(nil, "b", "")
	assert.Equal(t, "CURRENT", s.key("CURRENT"))
}

// TestMinioStore_Integration requires a running MinIO instance.
func TestMinioStore_Integration(t *testing.T) {
	store, err := Connect("localhost:9000", "minioadmin", "minioadmin", false, "test-hybridize", "test-prefix/")
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := t.Context()
	if _, err := store.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}
	require.NoError(t, store.EnsureBucket(ctx))

	data := []byte("hello minio world")
	require.NoError(t, store.Put(ctx, "snapshots/test.snap", data))

	blob, err := store.Open(ctx, "snapshots/test.snap")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "minio", string(buf))

	buf = make([]byte, 10)
	n, err = blob.ReadAt(ctx, buf, int64(len(data)-5))
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "world", string(buf[:n]))
	require.NoError(t, blob.Close())

	got, err := blobstore.Get(ctx, store, "snapshots/test.snap")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "snapshots/")
	require.NoError(t, err)
	assert.Contains(t, names, "snapshots/test.snap")

	require.NoError(t, store.Delete(ctx, "snapshots/test.snap"))
	_, err = store.Open(ctx, "snapshots/test.snap")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
