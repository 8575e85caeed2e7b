package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract exercises the Store behavior every implementation must share.
func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "a/one", []byte("first")))
	require.NoError(t, s.Put(ctx, "a/two", []byte("second")))
	require.NoError(t, s.Put(ctx, "b/three", []byte("third")))

	rc, err := s.Open(ctx, "a/one")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "first", string(data))

	// Overwrite replaces content.
	require.NoError(t, s.Put(ctx, "a/one", []byte("rewritten")))
	rc, err = s.Open(ctx, "a/one")
	require.NoError(t, err)
	data, _ = io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "rewritten", string(data))

	names, err := s.List(ctx, "a/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/one", "a/two"}, names)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, s.Delete(ctx, "a/one"))
	_, err = s.Open(ctx, "a/one")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing blob is not an error.
	assert.NoError(t, s.Delete(ctx, "a/one"))
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	buf := []byte("original")
	require.NoError(t, s.Put(ctx, "x", buf))
	buf[0] = 'X' // caller mutation must not leak in

	rc, err := s.Open(ctx, "x")
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "original", string(data))
}

func TestLocalStore(t *testing.T) {
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, s)
}

func TestLocalStoreCanceledContext(t *testing.T) {
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, s.Put(ctx, "x", []byte("1")))
	_, err = s.Open(ctx, "x")
	assert.Error(t, err)
	_, err = s.List(ctx, "")
	assert.Error(t, err)
}

func TestCachingStore(t *testing.T) {
	storeContract(t, NewCachingStore(NewMemoryStore(), NewMemoryStore()))
}

func TestCachingStoreFillsOnMiss(t *testing.T) {
	ctx := context.Background()
	remote := NewMemoryStore()
	cache := NewMemoryStore()
	s := NewCachingStore(remote, cache)

	require.NoError(t, remote.Put(ctx, "snap", []byte("payload")))

	// First read goes through the remote and lands in the cache.
	rc, err := s.Open(ctx, "snap")
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "payload", string(data))

	cached, err := cache.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"snap"}, cached)

	// Later reads are served even if the remote loses the blob.
	require.NoError(t, remote.Delete(ctx, "snap"))
	rc, err = s.Open(ctx, "snap")
	require.NoError(t, err)
	rc.Close()
}

func TestCachingStorePutInvalidates(t *testing.T) {
	ctx := context.Background()
	remote := NewMemoryStore()
	cache := NewMemoryStore()
	s := NewCachingStore(remote, cache)

	require.NoError(t, s.Put(ctx, "snap", []byte("v1")))
	rc, err := s.Open(ctx, "snap") // warms the cache
	require.NoError(t, err)
	rc.Close()

	require.NoError(t, s.Put(ctx, "snap", []byte("v2")))
	rc, err = s.Open(ctx, "snap")
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "v2", string(data))
}

func TestCachingStorePrefetch(t *testing.T) {
	ctx := context.Background()
	remote := NewMemoryStore()
	cache := NewMemoryStore()
	s := NewCachingStore(remote, cache)

	names := []string{"s/1", "s/2", "s/3", "s/4", "s/5", "s/6"}
	for _, name := range names {
		require.NoError(t, remote.Put(ctx, name, []byte(name)))
	}

	require.NoError(t, s.Prefetch(ctx, names...))

	cached, err := cache.List(ctx, "s/")
	require.NoError(t, err)
	assert.Equal(t, names, cached)

	// Missing remote blobs fail the prefetch.
	assert.ErrorIs(t, s.Prefetch(ctx, "s/absent"), ErrNotFound)
}
