package genarena

import "testing"

func TestOccupiedBitmap(t *testing.T) {
	a := WithCapacity[int](5)
	h0 := a.Insert(0)
	a.Insert(1)
	h2 := a.Insert(2)
	a.Remove(h0)

	rb := a.OccupiedBitmap()
	if got := int(rb.GetCardinality()); got != a.Len() {
		t.Fatalf("GetCardinality() = %d, want %d", got, a.Len())
	}
	if rb.Contains(0) {
		t.Error("bitmap contains freed slot 0")
	}
	if !rb.Contains(1) || !rb.Contains(2) {
		t.Errorf("bitmap = %v, want slots 1 and 2 set", rb.ToArray())
	}

	// Snapshot: later mutations are invisible.
	a.Remove(h2)
	if !rb.Contains(2) {
		t.Error("bitmap tracked a mutation after the snapshot")
	}
}

func TestOccupiedBitmapEmpty(t *testing.T) {
	a := New[int]()
	if got := a.OccupiedBitmap().GetCardinality(); got != 0 {
		t.Errorf("GetCardinality() = %d, want 0", got)
	}
}
