package blobstore

import (
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := t.Context()

	data := []byte("snapshot")
	require.NoError(t, store.Put(ctx, "snapshots/1", data))

	// Put copies its input.
	data[0] = 'X'

	got, err := Get(ctx, store, "snapshots/1")
	require.NoError(t, err)
	assert.Equal(t, "snapshot", string(got))

	blob, err := store.Open(ctx, "snapshots/1")
	require.NoError(t, err)

	// Replacing the blob does not affect an open handle.
	require.NoError(t, store.Put(ctx, "snapshots/1", []byte("replaced")))
	got, err = ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "snapshot", string(got))

	_, err = blob.ReadAt(ctx, make([]byte, 1), 100)
	assert.ErrorIs(t, err, io.EOF)

	names, err := store.List(ctx, "snap")
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshots/1"}, names)

	require.NoError(t, store.Delete(ctx, "snapshots/1"))
	_, err = store.Open(ctx, "snapshots/1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_EmptyBlob(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put(t.Context(), "empty", nil))

	got, err := Get(t.Context(), store, "empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := t.Context()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("blob-%02d", i)
			assert.NoError(t, store.Put(ctx, name, []byte(name)))
			got, err := Get(ctx, store, name)
			assert.NoError(t, err)
			assert.Equal(t, name, string(got))
		}()
	}
	wg.Wait()

	names, err := store.List(ctx, "blob-")
	require.NoError(t, err)
	assert.Len(t, names, 16)
}
