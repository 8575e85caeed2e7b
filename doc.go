// Package genarena provides a generational arena: a growable container that
// hands out stable, typed handles to stored values with O(1) insertion and
// removal.
//
// Every value lives in a slot of a flat backing table. Removing a value frees
// its slot for reuse, but the handle that referred to it can never alias a
// later occupant of the same slot: each occupation carries a generation stamp,
// and the arena bumps its generation counter on every removal. A stale handle
// simply stops resolving.
//
// # Quick Start
//
//	arena := genarena.New[string]()
//	h := arena.Insert("hello")
//
//	if v, ok := arena.Get(h); ok {
//	    fmt.Println(*v) // "hello"
//	}
//
//	arena.Remove(h)
//	_, ok := arena.Get(h) // ok == false, forever
//
// # Handles
//
// A Handle is a small copyable value (slot index + generation). It carries no
// ownership and no pointer into the arena; it is safe to store, copy, hash as
// a map key, send across goroutines, and serialize. Presenting a handle to an
// arena other than the one that issued it yields "absent", never corruption.
//
// # Concurrency Model
//
// The arena is single-owner: exactly one goroutine mutates it at a time.
// Concurrent Get calls are safe with each other, but never with a mutating
// operation (Insert/Remove/Retain/Clear/Reserve) on the same arena. This
// discipline is the caller's responsibility; the arena takes no locks.
//
// # Persistence
//
// The snapshot and codec packages serialize an arena as a slot sequence that
// preserves slot positions and generations exactly, so handles remain valid
// across a save/load cycle. See the snapshot package for the framed container
// format and blob-store integration.
package genarena
