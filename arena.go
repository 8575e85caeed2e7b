package genarena

import (
	"fmt"
	"math"
)

const (
	// defaultCapacity is the slot count used by New.
	defaultCapacity = 4

	// noSlot terminates the intrusive free list.
	noSlot = -1
)

// slot is one storage cell of the backing table.
//
// A slot is free when generation == 0 (nextFree is live) and occupied when
// generation != 0 (value is live). Occupied generations are always nonzero
// because the arena's counter starts at 1. The two states never overlap;
// every transition goes through occupy or release.
type slot[T any] struct {
	value      T
	nextFree   int
	generation uint64
}

// Arena is a generational arena over a growable slot table.
//
// The zero value is not usable; construct with New or WithCapacity.
type Arena[T any] struct {
	slots        []slot[T]
	generation   uint64 // stamp for the next insert, bumped on every remove
	freeListHead int
	len          int
}

// New creates an arena with a small default capacity.
func New[T any]() *Arena[T] {
	return WithCapacity[T](defaultCapacity)
}

// WithCapacity creates an arena with n preallocated free slots.
// n is normalized to at least 1.
func WithCapacity[T any](n int) *Arena[T] {
	if n < 1 {
		n = 1
	}
	a := &Arena[T]{
		slots:      make([]slot[T], n),
		generation: 1,
	}
	a.threadFreeList(0)
	return a
}

// threadFreeList links slots[start:] into an ascending free list and makes
// start the new head. Callers guarantee every slot in that range is free.
func (a *Arena[T]) threadFreeList(start int) {
	if start >= len(a.slots) {
		a.freeListHead = noSlot
		return
	}
	for i := start; i < len(a.slots); i++ {
		a.slots[i].nextFree = i + 1
	}
	a.slots[len(a.slots)-1].nextFree = noSlot
	a.freeListHead = start
}

// TryInsert inserts value into a free slot and returns its handle.
// It fails with ErrFull when no free slot exists; no allocation is attempted
// and the arena is left untouched.
func (a *Arena[T]) TryInsert(value T) (Handle, error) {
	i := a.freeListHead
	if i == noSlot {
		return Handle{}, ErrFull
	}
	a.occupy(i, value)
	return Handle{index: i, generation: a.generation}, nil
}

// Insert inserts value, growing the arena when full. Growth doubles the
// current capacity, so Insert is amortized O(1).
func (a *Arena[T]) Insert(value T) Handle {
	h, err := a.TryInsert(value)
	if err != nil {
		a.Reserve(max(len(a.slots), 1))
		h, err = a.TryInsert(value)
		if err != nil {
			panic("genarena: corrupt free list")
		}
	}
	return h
}

// TryInsertWith is like TryInsert, but the value is built by create, which
// receives the handle the value will live under. The slot is allocated before
// create runs, so self-referential values (a record storing its own handle)
// work naturally.
func (a *Arena[T]) TryInsertWith(create func(Handle) T) (Handle, error) {
	i := a.freeListHead
	if i == noSlot {
		return Handle{}, ErrFull
	}
	h := Handle{index: i, generation: a.generation}
	a.occupy(i, create(h))
	return h, nil
}

// InsertWith is like Insert, but the value is built by create, which receives
// its own future handle.
func (a *Arena[T]) InsertWith(create func(Handle) T) Handle {
	h, err := a.TryInsertWith(create)
	if err != nil {
		a.Reserve(max(len(a.slots), 1))
		h, err = a.TryInsertWith(create)
		if err != nil {
			panic("genarena: corrupt free list")
		}
	}
	return h
}

// occupy pops slot i off the free list head and stamps it with the current
// generation. Caller guarantees i is the free list head.
func (a *Arena[T]) occupy(i int, value T) {
	s := &a.slots[i]
	a.freeListHead = s.nextFree
	s.value = value
	s.nextFree = noSlot
	s.generation = a.generation
	a.len++
}

// Remove removes the value addressed by h and returns it.
//
// It reports false when h is stale: out of range, addressing a free slot, or
// carrying a generation that does not match the slot's current occupant. The
// arena is not mutated in that case.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	var zero T
	if h.index < 0 || h.index >= len(a.slots) {
		return zero, false
	}
	s := &a.slots[h.index]
	if s.generation == 0 || s.generation != h.generation {
		return zero, false
	}
	value := s.value
	s.value = zero
	s.generation = 0
	s.nextFree = a.freeListHead
	a.freeListHead = h.index
	// Bumping on remove (not on insert) is what defeats slot aliasing: once a
	// removal separates two occupations of a slot, their stamps can never
	// collide.
	a.generation++
	a.len--
	return value, true
}

// Get returns a pointer to the value addressed by h. The pointer stays valid
// until the next operation that can move or release the slot (growth, Remove,
// Clear, ShrinkToFit).
//
// It reports false for any stale or foreign handle, without panicking.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if h.index < 0 || h.index >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if s.generation == 0 || s.generation != h.generation {
		return nil, false
	}
	return &s.value, true
}

// Get2 resolves two handles in one call and returns independent pointers,
// nil for any side that does not resolve.
//
// When both handles address the same slot index they must carry different
// generations; at most the one matching the current occupant resolves.
// Passing the same handle twice is a caller contract violation and panics:
// it would hand out two aliasing mutable pointers under a contract that
// promises independence.
func (a *Arena[T]) Get2(h1, h2 Handle) (first, second *T) {
	if h1.index == h2.index && h1.generation == h2.generation {
		panic("genarena: Get2 called with the same handle twice")
	}
	first, _ = a.Get(h1)
	second, _ = a.Get(h2)
	return first, second
}

// GetAt looks up a slot by bare index, without a generation, and returns the
// value together with the handle of its current occupant. This serves callers
// that key external structures (bitmaps, columnar side tables) by slot
// position and do not track generations.
func (a *Arena[T]) GetAt(index int) (*T, Handle, bool) {
	if index < 0 || index >= len(a.slots) {
		return nil, Handle{}, false
	}
	s := &a.slots[index]
	if s.generation == 0 {
		return nil, Handle{}, false
	}
	return &s.value, Handle{index: index, generation: s.generation}, true
}

// Must returns the value addressed by h, panicking when the handle does not
// resolve. Reserve it for call sites that have established, by construction,
// that the handle is live; use Get everywhere else.
func (a *Arena[T]) Must(h Handle) *T {
	v, ok := a.Get(h)
	if !ok {
		panic(fmt.Sprintf("genarena: no value for handle %v", h))
	}
	return v
}

// Contains reports whether h currently resolves to a value.
func (a *Arena[T]) Contains(h Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int { return a.len }

// IsEmpty reports whether no slot is occupied.
func (a *Arena[T]) IsEmpty() bool { return a.len == 0 }

// Cap returns the total slot count, occupied or free.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Reserve grows the backing table by exactly additional slots.
//
// The new slots are threaded ahead of previously free slots, so freshly
// reserved capacity is consumed first by subsequent inserts. Reserve panics
// when the resulting capacity would overflow the addressable range.
func (a *Arena[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	if additional > math.MaxInt-len(a.slots) {
		panic("genarena: capacity overflow")
	}
	start := len(a.slots)
	oldHead := a.freeListHead
	a.slots = append(a.slots, make([]slot[T], additional)...)
	for i := start; i < len(a.slots); i++ {
		a.slots[i].nextFree = i + 1
	}
	a.slots[len(a.slots)-1].nextFree = oldHead
	a.freeListHead = start
}

// ShrinkToFit truncates the backing table to one past the highest occupied
// slot and rebuilds the free list from the remaining slots, threaded in
// ascending index order. On an empty arena it truncates to zero.
func (a *Arena[T]) ShrinkToFit() {
	high := noSlot
	for i := len(a.slots) - 1; i >= 0; i-- {
		if a.slots[i].generation != 0 {
			high = i
			break
		}
	}
	a.slots = a.slots[:high+1]

	a.freeListHead = noSlot
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		if s.generation != 0 {
			continue
		}
		s.nextFree = a.freeListHead
		a.freeListHead = i
	}
}

// Clear releases every value and rebuilds a fresh free list over the full
// capacity. The backing table is kept.
//
// Clear does not bump the generation counter: outstanding handles become
// invalid because their slots are now free, not because the epoch moved.
func (a *Arena[T]) Clear() {
	var zero T
	for i := range a.slots {
		a.slots[i].value = zero
		a.slots[i].generation = 0
	}
	a.threadFreeList(0)
	a.len = 0
}

// Retain removes every value for which pred returns false, scanning slots in
// ascending index order. Removals go through the normal Remove path, so
// generation bumps and free-list relinking apply as usual. pred runs at most
// once per slot occupied when the scan started and must not mutate the arena.
func (a *Arena[T]) Retain(pred func(Handle, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.generation == 0 {
			continue
		}
		h := Handle{index: i, generation: s.generation}
		if !pred(h, &s.value) {
			a.Remove(h)
		}
	}
}
