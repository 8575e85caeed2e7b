package genarena

import "errors"

var (
	// ErrFull is returned by TryInsert and TryInsertWith when no free slot is
	// available. The arena is untouched and the caller keeps the value.
	ErrFull = errors.New("genarena: arena is full")
)
