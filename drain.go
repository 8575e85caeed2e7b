package genarena

// Drain removes and yields every entry of the arena, in ascending slot order.
//
// Each yielded entry goes through the normal Remove path, so the generation
// counter bumps and the slot is relinked into the free list exactly as a
// direct Remove would. A drain that is abandoned part way must be closed;
// Close eagerly removes whatever was not consumed, so after Close the arena
// is guaranteed empty of the entries the drain covered.
//
//	d := arena.Drain()
//	defer d.Close()
//	for h, v, ok := d.Next(); ok; h, v, ok = d.Next() {
//	    ...
//	}
type Drain[T any] struct {
	arena *Arena[T]
	front int
	back  int
}

// Drain returns a draining iterator over all occupied slots. No other
// mutation may happen on the arena between Drain and Close.
func (a *Arena[T]) Drain() *Drain[T] {
	return &Drain[T]{arena: a, back: len(a.slots)}
}

// Len returns the exact number of entries not yet drained.
func (d *Drain[T]) Len() int { return d.arena.len }

// Next removes and yields the next entry from the front, or false when the
// arena holds nothing more in the drained range.
func (d *Drain[T]) Next() (Handle, T, bool) {
	for d.front < d.back {
		i := d.front
		d.front++
		s := &d.arena.slots[i]
		if s.generation == 0 {
			continue
		}
		h := Handle{index: i, generation: s.generation}
		value, _ := d.arena.Remove(h)
		return h, value, true
	}
	var zero T
	return Handle{}, zero, false
}

// NextBack removes and yields the next entry from the back, or false when the
// drained range is exhausted.
func (d *Drain[T]) NextBack() (Handle, T, bool) {
	for d.back > d.front {
		d.back--
		s := &d.arena.slots[d.back]
		if s.generation == 0 {
			continue
		}
		h := Handle{index: d.back, generation: s.generation}
		value, _ := d.arena.Remove(h)
		return h, value, true
	}
	var zero T
	return Handle{}, zero, false
}

// Close removes every entry the drain has not yielded yet. It is safe to call
// Close multiple times; after the first call the drain is exhausted.
func (d *Drain[T]) Close() {
	for d.front < d.back {
		s := &d.arena.slots[d.front]
		if s.generation != 0 {
			d.arena.Remove(Handle{index: d.front, generation: s.generation})
		}
		d.front++
	}
}
