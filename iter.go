package genarena

import "iter"

// Iter walks the occupied slots of an arena in ascending slot order, yielding
// each handle together with a pointer to its value. The same iterator serves
// shared and exclusive access; under the single-owner model it is the
// caller's contract not to mutate the arena while an Iter is live.
//
// Iter supports consumption from both ends. Once Next and NextBack have met,
// the iterator is exhausted and stays exhausted.
type Iter[T any] struct {
	arena     *Arena[T]
	front     int // next slot index probed by Next
	back      int // one past the last slot index probed by NextBack
	remaining int
}

// Iter returns an iterator over all occupied slots.
func (a *Arena[T]) Iter() *Iter[T] {
	return &Iter[T]{arena: a, back: len(a.slots), remaining: a.len}
}

// Len returns the exact number of entries not yet yielded.
func (it *Iter[T]) Len() int { return it.remaining }

// Next yields the next entry from the front, or false when exhausted.
func (it *Iter[T]) Next() (Handle, *T, bool) {
	for it.remaining > 0 && it.front < it.back {
		i := it.front
		it.front++
		s := &it.arena.slots[i]
		if s.generation == 0 {
			continue
		}
		it.remaining--
		return Handle{index: i, generation: s.generation}, &s.value, true
	}
	it.remaining = 0
	return Handle{}, nil, false
}

// NextBack yields the next entry from the back, or false when exhausted.
func (it *Iter[T]) NextBack() (Handle, *T, bool) {
	for it.remaining > 0 && it.back > it.front {
		it.back--
		s := &it.arena.slots[it.back]
		if s.generation == 0 {
			continue
		}
		it.remaining--
		return Handle{index: it.back, generation: s.generation}, &s.value, true
	}
	it.remaining = 0
	return Handle{}, nil, false
}

// All returns a range-over-func view of the occupied slots, front to back.
//
//	for h, v := range arena.All() {
//	    ...
//	}
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		it := a.Iter()
		for h, v, ok := it.Next(); ok; h, v, ok = it.Next() {
			if !yield(h, v) {
				return
			}
		}
	}
}

// Backward returns a range-over-func view of the occupied slots, back to
// front.
func (a *Arena[T]) Backward() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		it := a.Iter()
		for h, v, ok := it.NextBack(); ok; h, v, ok = it.NextBack() {
			if !yield(h, v) {
				return
			}
		}
	}
}

// Values consumes the arena and yields its values without handles. The arena
// is emptied immediately; the values live on in the iterator.
type Values[T any] struct {
	slots     []slot[T]
	front     int
	back      int
	remaining int
}

// IntoValues empties the arena and returns a consuming iterator over the
// values it held, in ascending slot order. The arena itself is reset to a
// fully free table of the same capacity and remains usable; its generation
// epoch is preserved, so handles issued before the call stay invalid.
func (a *Arena[T]) IntoValues() *Values[T] {
	vals := &Values[T]{slots: a.slots, back: len(a.slots), remaining: a.len}
	a.slots = make([]slot[T], len(a.slots))
	a.threadFreeList(0)
	a.len = 0
	return vals
}

// Len returns the exact number of values not yet yielded.
func (v *Values[T]) Len() int { return v.remaining }

// Next yields the next value from the front, or false when exhausted.
func (v *Values[T]) Next() (T, bool) {
	for v.remaining > 0 && v.front < v.back {
		s := &v.slots[v.front]
		v.front++
		if s.generation == 0 {
			continue
		}
		v.remaining--
		return s.value, true
	}
	var zero T
	v.remaining = 0
	return zero, false
}

// NextBack yields the next value from the back, or false when exhausted.
func (v *Values[T]) NextBack() (T, bool) {
	for v.remaining > 0 && v.back > v.front {
		v.back--
		s := &v.slots[v.back]
		if s.generation == 0 {
			continue
		}
		v.remaining--
		return s.value, true
	}
	var zero T
	v.remaining = 0
	return zero, false
}
