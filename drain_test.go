package genarena

import "testing"

func TestDrain(t *testing.T) {
	a := New[int]()
	handles := make([]Handle, 3)
	for i := range handles {
		handles[i] = a.Insert(i)
	}

	d := a.Drain()
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}

	for i := 0; i < 3; i++ {
		h, v, ok := d.Next()
		if !ok {
			t.Fatalf("Next() #%d = false", i)
		}
		if h != handles[i] || v != i {
			t.Errorf("Next() #%d = (%v, %d), want (%v, %d)", i, h, v, handles[i], i)
		}
		// Removal is immediate, not deferred to exhaustion.
		if a.Contains(h) {
			t.Errorf("handle %v still live after being drained", h)
		}
	}

	if _, _, ok := d.Next(); ok {
		t.Error("Next() yielded past exhaustion")
	}
	if !a.IsEmpty() {
		t.Errorf("arena Len() = %d after drain, want 0", a.Len())
	}
}

func TestDrainBackward(t *testing.T) {
	a := New[string]()
	a.Insert("a")
	a.Insert("b")
	a.Insert("c")

	d := a.Drain()
	var out []string
	for {
		_, v, ok := d.NextBack()
		if !ok {
			break
		}
		out = append(out, v)
	}

	want := []string{"c", "b", "a"}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("NextBack() order = %v, want %v", out, want)
		}
	}
}

func TestDrainClose(t *testing.T) {
	a := New[int]()
	for i := 0; i < 5; i++ {
		a.Insert(i)
	}

	d := a.Drain()
	d.Next()
	d.Next()

	// Close removes everything the iterator did not reach.
	d.Close()
	if !a.IsEmpty() {
		t.Errorf("arena Len() = %d after Close, want 0", a.Len())
	}
	if _, _, ok := d.Next(); ok {
		t.Error("Next() after Close yielded")
	}

	// Idempotent.
	d.Close()
	if a.Len() != 0 {
		t.Errorf("second Close changed Len() to %d", a.Len())
	}
}

func TestDrainThenReuse(t *testing.T) {
	a := WithCapacity[int](2)
	old := a.Insert(1)

	d := a.Drain()
	d.Close()

	h := a.Insert(2)
	if a.Contains(old) {
		t.Error("pre-drain handle resolves after reuse")
	}
	if got := *a.Must(h); got != 2 {
		t.Errorf("value after reuse = %d, want 2", got)
	}
}
