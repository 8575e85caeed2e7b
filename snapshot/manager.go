package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/genarena"
	"github.com/hupe1980/genarena/blobstore"
)

// Manager saves and loads named snapshots through a blob store.
//
// The Manager itself carries no arena type: Save and Load are package-level
// generic functions that take a Manager, so one Manager can serve arenas of
// different value types side by side.
type Manager struct {
	store  blobstore.Store
	logger *Logger
	opts   []Option
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the manager's logger. Nil restores the no-op default.
func WithLogger(l *Logger) ManagerOption {
	return func(m *Manager) {
		if l == nil {
			l = NoopLogger()
		}
		m.logger = l
	}
}

// WithWriteOptions sets the snapshot options (codec, compression) applied on
// every Save.
func WithWriteOptions(opts ...Option) ManagerOption {
	return func(m *Manager) {
		m.opts = opts
	}
}

// NewManager creates a Manager over the given blob store.
func NewManager(store blobstore.Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// List returns the names of all stored snapshots with the given prefix.
func (m *Manager) List(ctx context.Context, prefix string) ([]string, error) {
	return m.store.List(ctx, prefix)
}

// Delete removes a stored snapshot.
func (m *Manager) Delete(ctx context.Context, name string) error {
	return m.store.Delete(ctx, name)
}

// Inspect reads only the header of a stored snapshot.
func (m *Manager) Inspect(ctx context.Context, name string) (Info, error) {
	rc, err := m.store.Open(ctx, name)
	if err != nil {
		return Info{}, err
	}
	defer rc.Close()
	return Peek(rc)
}

// Save writes a snapshot of the arena under the given name.
func Save[T any](ctx context.Context, m *Manager, name string, a *genarena.Arena[T]) error {
	start := time.Now()

	var buf bytes.Buffer
	if err := Write(&buf, a, m.opts...); err != nil {
		return err
	}
	if err := m.store.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("snapshot: store %q: %w", name, err)
	}

	m.logger.InfoContext(ctx, "snapshot saved",
		"name", name,
		"entries", a.Len(),
		"bytes", buf.Len(),
		"duration", time.Since(start),
	)
	return nil
}

// Load reads the named snapshot and reconstructs its arena.
func Load[T any](ctx context.Context, m *Manager, name string) (*genarena.Arena[T], error) {
	start := time.Now()

	rc, err := m.store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %q: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %q: %w", name, err)
	}
	a, err := Read[T](bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode %q: %w", name, err)
	}

	m.logger.InfoContext(ctx, "snapshot loaded",
		"name", name,
		"entries", a.Len(),
		"bytes", len(data),
		"duration", time.Since(start),
	)
	return a, nil
}
