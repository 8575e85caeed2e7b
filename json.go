package genarena

import (
	"fmt"

	"github.com/goccy/go-json"
)

// The persisted layout of an arena is a sequence of slots in table order:
// an occupied slot encodes as the two-element array [generation, value],
// a free slot as null. Slot positions are preserved exactly, so handles
// issued before a save remain meaningful after a load.
//
// Do not reorder the per-slot tuple and do not change the free marker; the
// layout must stay byte-stable across versions.

// MarshalJSON encodes the arena as its slot sequence.
func (a *Arena[T]) MarshalJSON() ([]byte, error) {
	seq := make([]any, len(a.slots))
	for i := range a.slots {
		s := &a.slots[i]
		if s.generation == 0 {
			continue // marshals as null
		}
		seq[i] = [2]any{s.generation, s.value}
	}
	return json.Marshal(seq)
}

// UnmarshalJSON decodes a slot sequence produced by MarshalJSON, replacing
// the arena's contents.
//
// The free list is rebuilt by scanning the decoded sequence in reverse, so
// free slots are threaded in ascending index order. The arena's generation
// becomes the maximum generation observed in the payload (at least 1),
// matching the layout's original semantics.
func (a *Arena[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("genarena: decode slot sequence: %w", err)
	}

	slots := make([]slot[T], len(raw))
	maxGen := uint64(1)
	length := 0

	for i, msg := range raw {
		if isJSONNull(msg) {
			continue
		}
		var parts [2]json.RawMessage
		if err := json.Unmarshal(msg, &parts); err != nil {
			return fmt.Errorf("genarena: decode slot %d: %w", i, err)
		}
		var gen uint64
		if err := json.Unmarshal(parts[0], &gen); err != nil {
			return fmt.Errorf("genarena: decode slot %d generation: %w", i, err)
		}
		if gen == 0 {
			return fmt.Errorf("genarena: slot %d has zero generation", i)
		}
		var value T
		if err := json.Unmarshal(parts[1], &value); err != nil {
			return fmt.Errorf("genarena: decode slot %d value: %w", i, err)
		}
		slots[i].value = value
		slots[i].generation = gen
		slots[i].nextFree = noSlot
		maxGen = max(maxGen, gen)
		length++
	}

	head := noSlot
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i].generation != 0 {
			continue
		}
		slots[i].nextFree = head
		head = i
	}

	a.slots = slots
	a.generation = maxGen
	a.freeListHead = head
	a.len = length
	return nil
}

func isJSONNull(msg json.RawMessage) bool {
	return len(msg) == 0 || string(msg) == "null"
}
