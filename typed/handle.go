package typed

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/genarena"
)

// Handle is a genarena.Handle tagged with the value type it addresses.
// The tag exists only in the type system; a Handle[T] is exactly one bare
// handle wide at runtime.
type Handle[T any] struct {
	inner genarena.Handle
}

// WrapHandle tags a bare handle.
func WrapHandle[T any](h genarena.Handle) Handle[T] {
	return Handle[T]{inner: h}
}

// HandleFromRawParts reconstructs a typed handle from its raw parts.
func HandleFromRawParts[T any](index int, generation uint64) Handle[T] {
	return Handle[T]{inner: genarena.NewHandle(index, generation)}
}

// Unwrap returns the bare handle.
func (h Handle[T]) Unwrap() genarena.Handle { return h.inner }

// Index returns the slot index addressed by the handle.
func (h Handle[T]) Index() int { return h.inner.Index() }

// Generation returns the generation stamp carried by the handle.
func (h Handle[T]) Generation() uint64 { return h.inner.Generation() }

// RawParts decomposes the handle into its slot index and generation.
func (h Handle[T]) RawParts() (index int, generation uint64) {
	return h.inner.RawParts()
}

func (h Handle[T]) String() string {
	var zero T
	return fmt.Sprintf("%T:%v", zero, h.inner)
}

// MarshalJSON encodes the handle like a bare genarena.Handle; the type tag is
// compile-time only and never persisted.
func (h Handle[T]) MarshalJSON() ([]byte, error) {
	return h.inner.MarshalJSON()
}

// UnmarshalJSON decodes the bare handle form.
func (h *Handle[T]) UnmarshalJSON(data []byte) error {
	return h.inner.UnmarshalJSON(data)
}

// DynHandle is a handle whose value type is carried as a runtime tag instead
// of a type parameter. Use it where handles of different kinds must share a
// field or container.
type DynHandle struct {
	inner genarena.Handle
	typ   reflect.Type
}

// Dyn erases the compile-time tag of h into a runtime one.
func Dyn[T any](h Handle[T]) DynHandle {
	return DynHandle{inner: h.inner, typ: reflect.TypeFor[T]()}
}

// Type returns the runtime tag.
func (d DynHandle) Type() reflect.Type { return d.typ }

// Unwrap returns the bare handle without checking the tag.
func (d DynHandle) Unwrap() genarena.Handle { return d.inner }

// As converts the dynamic handle back to a typed one. Asking for a type other
// than the one the handle was issued for is a caller contract violation and
// panics.
func As[T any](d DynHandle) Handle[T] {
	if want := reflect.TypeFor[T](); d.typ != want {
		panic(fmt.Sprintf("typed: handle tagged %v used as %v", d.typ, want))
	}
	return Handle[T]{inner: d.inner}
}

// TryAs is the non-panicking variant of As.
func TryAs[T any](d DynHandle) (Handle[T], bool) {
	if d.typ != reflect.TypeFor[T]() {
		return Handle[T]{}, false
	}
	return Handle[T]{inner: d.inner}, true
}

// Pair aggregates two typed handles of possibly different kinds.
type Pair[A, B any] struct {
	First  Handle[A]
	Second Handle[B]
}

// NewPair builds a Pair from its parts.
func NewPair[A, B any](first Handle[A], second Handle[B]) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}
