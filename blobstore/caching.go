package blobstore

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"
)

// CachingStore layers a local Store in front of a remote one. Reads are
// served from the cache when possible; misses are fetched from the remote,
// written through to the cache, and served from there. Snapshots are
// immutable, so cached blobs never go stale while they exist; Put and Delete
// invalidate the cached copy.
type CachingStore struct {
	remote Store
	cache  Store
}

// NewCachingStore wraps remote with cache.
func NewCachingStore(remote, cache Store) *CachingStore {
	return &CachingStore{remote: remote, cache: cache}
}

// Put writes through to the remote and drops any cached copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return err
	}
	return s.remote.Put(ctx, name, data)
}

// Open serves from the cache, fetching from the remote on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.cache.Open(ctx, name)
	if err == nil {
		return rc, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if err := s.fill(ctx, name); err != nil {
		return nil, err
	}
	return s.cache.Open(ctx, name)
}

// Delete removes the blob from the remote and the cache.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return err
	}
	return s.remote.Delete(ctx, name)
}

// List queries the remote; the cache holds a subset by construction.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.remote.List(ctx, prefix)
}

// Prefetch warms the cache with the named blobs, fetching them from the
// remote in parallel. Blobs already cached are skipped; a missing remote blob
// fails the whole prefetch.
func (s *CachingStore) Prefetch(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, name := range names {
		g.Go(func() error {
			rc, err := s.cache.Open(ctx, name)
			if err == nil {
				return rc.Close()
			}
			if !errors.Is(err, ErrNotFound) {
				return err
			}
			return s.fill(ctx, name)
		})
	}
	return g.Wait()
}

// fill copies one blob from the remote into the cache.
func (s *CachingStore) fill(ctx context.Context, name string) error {
	rc, err := s.remote.Open(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	return s.cache.Put(ctx, name, data)
}
