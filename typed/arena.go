package typed

import (
	"iter"

	"github.com/hupe1980/genarena"
)

// Arena wraps a genarena.Arena so that every handle crossing its boundary is
// typed. All operations forward to the core arena; the wrapper adds no state
// beyond the inner arena itself.
type Arena[T any] struct {
	inner *genarena.Arena[T]
}

// New creates a typed arena with the core default capacity.
func New[T any]() *Arena[T] {
	return &Arena[T]{inner: genarena.New[T]()}
}

// WithCapacity creates a typed arena with n preallocated slots.
func WithCapacity[T any](n int) *Arena[T] {
	return &Arena[T]{inner: genarena.WithCapacity[T](n)}
}

// Wrap adopts an existing core arena. The caller must not keep mutating the
// core arena directly while the typed wrapper is in use.
func Wrap[T any](a *genarena.Arena[T]) *Arena[T] {
	return &Arena[T]{inner: a}
}

// Inner returns the wrapped core arena, for interop with code that works on
// bare handles (serialization, snapshots).
func (a *Arena[T]) Inner() *genarena.Arena[T] { return a.inner }

// Insert inserts value, growing when full.
func (a *Arena[T]) Insert(value T) Handle[T] {
	return Handle[T]{inner: a.inner.Insert(value)}
}

// TryInsert inserts value without growing; it fails with genarena.ErrFull
// when no free slot exists.
func (a *Arena[T]) TryInsert(value T) (Handle[T], error) {
	h, err := a.inner.TryInsert(value)
	if err != nil {
		return Handle[T]{}, err
	}
	return Handle[T]{inner: h}, nil
}

// InsertWith inserts a value built by create, which receives its own future
// handle.
func (a *Arena[T]) InsertWith(create func(Handle[T]) T) Handle[T] {
	h := a.inner.InsertWith(func(h genarena.Handle) T {
		return create(Handle[T]{inner: h})
	})
	return Handle[T]{inner: h}
}

// Remove removes the value addressed by h.
func (a *Arena[T]) Remove(h Handle[T]) (T, bool) {
	return a.inner.Remove(h.inner)
}

// Get returns a pointer to the value addressed by h.
func (a *Arena[T]) Get(h Handle[T]) (*T, bool) {
	return a.inner.Get(h.inner)
}

// Get2 resolves two handles in one call; see genarena.Arena.Get2 for the
// aliasing contract.
func (a *Arena[T]) Get2(h1, h2 Handle[T]) (first, second *T) {
	return a.inner.Get2(h1.inner, h2.inner)
}

// GetAt looks up a slot by bare index and returns the current occupant's
// typed handle alongside the value.
func (a *Arena[T]) GetAt(index int) (*T, Handle[T], bool) {
	v, h, ok := a.inner.GetAt(index)
	return v, Handle[T]{inner: h}, ok
}

// Must returns the value addressed by h, panicking when absent.
func (a *Arena[T]) Must(h Handle[T]) *T { return a.inner.Must(h.inner) }

// Contains reports whether h currently resolves.
func (a *Arena[T]) Contains(h Handle[T]) bool { return a.inner.Contains(h.inner) }

// Len returns the number of stored values.
func (a *Arena[T]) Len() int { return a.inner.Len() }

// IsEmpty reports whether the arena holds no values.
func (a *Arena[T]) IsEmpty() bool { return a.inner.IsEmpty() }

// Cap returns the slot capacity.
func (a *Arena[T]) Cap() int { return a.inner.Cap() }

// Clear releases every value; see genarena.Arena.Clear.
func (a *Arena[T]) Clear() { a.inner.Clear() }

// Retain removes every value for which pred returns false.
func (a *Arena[T]) Retain(pred func(Handle[T], *T) bool) {
	a.inner.Retain(func(h genarena.Handle, v *T) bool {
		return pred(Handle[T]{inner: h}, v)
	})
}

// Drain returns a draining iterator with typed handles; see
// genarena.Arena.Drain for the removal and Close semantics.
func (a *Arena[T]) Drain() *Drain[T] {
	return &Drain[T]{inner: a.inner.Drain()}
}

// Drain removes and yields every entry of a typed arena.
type Drain[T any] struct {
	inner *genarena.Drain[T]
}

// Len returns the exact number of entries not yet drained.
func (d *Drain[T]) Len() int { return d.inner.Len() }

// Next removes and yields the next entry from the front.
func (d *Drain[T]) Next() (Handle[T], T, bool) {
	h, v, ok := d.inner.Next()
	return Handle[T]{inner: h}, v, ok
}

// NextBack removes and yields the next entry from the back.
func (d *Drain[T]) NextBack() (Handle[T], T, bool) {
	h, v, ok := d.inner.NextBack()
	return Handle[T]{inner: h}, v, ok
}

// Close removes every entry the drain has not yielded yet.
func (d *Drain[T]) Close() { d.inner.Close() }

// All returns a range-over-func view with typed handles.
func (a *Arena[T]) All() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		for h, v := range a.inner.All() {
			if !yield(Handle[T]{inner: h}, v) {
				return
			}
		}
	}
}
