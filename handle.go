package genarena

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Handle identifies a specific occupation of a specific slot in an Arena.
//
// Handles are comparable and usable as map keys. The zero Handle never
// resolves: occupied slots always carry a nonzero generation.
type Handle struct {
	index      int
	generation uint64
}

// NewHandle reconstructs a Handle from its raw parts, typically obtained from
// RawParts after transporting the handle through an external system (a wire
// format, a foreign-keyed table, ...). No validation happens here; a garbage
// handle fails safely at lookup time.
func NewHandle(index int, generation uint64) Handle {
	return Handle{index: index, generation: generation}
}

// Index returns the slot index addressed by the handle.
func (h Handle) Index() int { return h.index }

// Generation returns the generation stamp carried by the handle.
func (h Handle) Generation() uint64 { return h.generation }

// RawParts decomposes the handle into its slot index and generation.
func (h Handle) RawParts() (index int, generation uint64) {
	return h.index, h.generation
}

func (h Handle) String() string {
	return fmt.Sprintf("%d@%d", h.index, h.generation)
}

// MarshalJSON encodes the handle as the two-element array
// [index, generation].
//
// Do not change this layout: it is the persisted interop representation and
// must remain byte-stable across versions.
func (h Handle) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint64{uint64(h.index), h.generation}) //nolint:gosec // index is never negative for issued handles
}

// UnmarshalJSON decodes the [index, generation] array form.
func (h *Handle) UnmarshalJSON(data []byte) error {
	var parts [2]uint64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("genarena: decode handle: %w", err)
	}
	h.index = int(parts[0])
	h.generation = parts[1]
	return nil
}
