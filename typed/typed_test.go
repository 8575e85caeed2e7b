package typed

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genarena"
)

type actor struct {
	Name string
	HP   int
}

type item struct {
	Name string
}

func TestArenaBasics(t *testing.T) {
	a := WithCapacity[actor](2)
	h := a.Insert(actor{Name: "hero", HP: 10})

	v, ok := a.Get(h)
	require.True(t, ok)
	assert.Equal(t, "hero", v.Name)
	assert.True(t, a.Contains(h))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, a.Cap())

	v.HP = 7
	assert.Equal(t, 7, a.Must(h).HP)

	removed, ok := a.Remove(h)
	require.True(t, ok)
	assert.Equal(t, 7, removed.HP)
	assert.False(t, a.Contains(h))
	assert.True(t, a.IsEmpty())
}

func TestArenaTryInsertFull(t *testing.T) {
	a := WithCapacity[item](1)

	_, err := a.TryInsert(item{Name: "sword"})
	require.NoError(t, err)

	_, err = a.TryInsert(item{Name: "shield"})
	assert.ErrorIs(t, err, genarena.ErrFull)
}

func TestArenaInsertWith(t *testing.T) {
	a := New[actor]()
	var captured Handle[actor]
	h := a.InsertWith(func(self Handle[actor]) actor {
		captured = self
		return actor{Name: "self-aware"}
	})

	assert.Equal(t, h, captured)
	assert.Equal(t, "self-aware", a.Must(h).Name)
}

func TestArenaGet2AndGetAt(t *testing.T) {
	a := New[item]()
	h1 := a.Insert(item{Name: "a"})
	h2 := a.Insert(item{Name: "b"})

	v1, v2 := a.Get2(h1, h2)
	require.NotNil(t, v1)
	require.NotNil(t, v2)
	assert.Equal(t, "a", v1.Name)
	assert.Equal(t, "b", v2.Name)

	v, got, ok := a.GetAt(h1.Index())
	require.True(t, ok)
	assert.Equal(t, h1, got)
	assert.Equal(t, "a", v.Name)
}

func TestArenaRetainAndClear(t *testing.T) {
	a := New[int]()
	for i := 0; i < 6; i++ {
		a.Insert(i)
	}

	a.Retain(func(_ Handle[int], v *int) bool { return *v < 3 })
	assert.Equal(t, 3, a.Len())

	var values []int
	for _, v := range a.All() {
		values = append(values, *v)
	}
	assert.ElementsMatch(t, []int{0, 1, 2}, values)

	a.Clear()
	assert.True(t, a.IsEmpty())
}

func TestArenaDrain(t *testing.T) {
	a := New[int]()
	handles := make([]Handle[int], 5)
	for i := range handles {
		handles[i] = a.Insert(i)
	}

	d := a.Drain()
	assert.Equal(t, 5, d.Len())

	h, v, ok := d.Next()
	require.True(t, ok)
	assert.Equal(t, handles[0], h)
	assert.Equal(t, 0, v)
	assert.False(t, a.Contains(h), "drained handle still live")

	h, v, ok = d.NextBack()
	require.True(t, ok)
	assert.Equal(t, handles[4], h)
	assert.Equal(t, 4, v)

	// Close removes everything the iterator did not reach.
	d.Close()
	assert.True(t, a.IsEmpty())
	_, _, ok = d.Next()
	assert.False(t, ok)
	for _, h := range handles {
		assert.False(t, a.Contains(h))
	}

	// Idempotent, and the arena stays usable.
	d.Close()
	assert.True(t, a.Contains(a.Insert(9)))
}

func TestWrapSharesState(t *testing.T) {
	core := genarena.New[item]()
	bare := core.Insert(item{Name: "x"})

	a := Wrap(core)
	assert.True(t, a.Contains(WrapHandle[item](bare)))
	assert.Same(t, core, a.Inner())
}

func TestHandleRawPartsRoundTrip(t *testing.T) {
	a := New[actor]()
	h := a.Insert(actor{Name: "hero"})

	index, generation := h.RawParts()
	rebuilt := HandleFromRawParts[actor](index, generation)
	assert.Equal(t, h, rebuilt)
	assert.Equal(t, h.Unwrap(), rebuilt.Unwrap())
	assert.True(t, a.Contains(rebuilt))
}

func TestHandleJSON(t *testing.T) {
	h := HandleFromRawParts[actor](2, 5)

	data, err := json.Marshal(h)
	require.NoError(t, err)
	// The type tag is compile-time only; the wire form is the bare handle.
	assert.JSONEq(t, `[2,5]`, string(data))

	var back Handle[actor]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, h, back)
}

func TestDynHandle(t *testing.T) {
	a := New[actor]()
	h := a.Insert(actor{Name: "hero"})

	d := Dyn(h)
	assert.Equal(t, h.Unwrap(), d.Unwrap())

	back := As[actor](d)
	assert.Equal(t, h, back)
	assert.Equal(t, "hero", a.Must(back).Name)

	_, ok := TryAs[item](d)
	assert.False(t, ok)

	got, ok := TryAs[actor](d)
	require.True(t, ok)
	assert.Equal(t, h, got)

	assert.Panics(t, func() { As[item](d) })
}

func TestPair(t *testing.T) {
	actors := New[actor]()
	items := New[item]()

	p := NewPair(actors.Insert(actor{Name: "hero"}), items.Insert(item{Name: "sword"}))
	assert.Equal(t, "hero", actors.Must(p.First).Name)
	assert.Equal(t, "sword", items.Must(p.Second).Name)
}
