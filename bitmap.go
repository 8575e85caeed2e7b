package genarena

import "github.com/RoaringBitmap/roaring/v2"

// OccupiedBitmap returns a roaring bitmap of the currently occupied slot
// positions. It is a snapshot: later mutations are not reflected.
//
// This is the companion to GetAt for callers that key external structures by
// slot position, and it backs the occupancy section of the snapshot format.
// Slot indices are stored as uint32; arenas beyond 2^32 slots are out of
// scope for the bitmap view.
func (a *Arena[T]) OccupiedBitmap() *roaring.Bitmap {
	rb := roaring.New()
	for i := range a.slots {
		if a.slots[i].generation != 0 {
			rb.Add(uint32(i)) //nolint:gosec // slot counts beyond uint32 are documented out of scope
		}
	}
	return rb
}
