// Package snapshot persists arenas in a framed, checksummed container.
//
// The logical payload is the codec-encoded slot sequence defined by genarena
// (slot positions and generations preserved exactly, free slots as null
// markers): that layout is byte-stable and must never change. The container
// adds what durable storage needs around it: a versioned header, the codec
// name so the payload is self-describing, optional block compression, a
// roaring occupancy bitmap for cheap inspection without decoding the payload,
// and a CRC32 trailer.
package snapshot

import "errors"

const (
	// MagicNumber identifies arena snapshot files (ASCII "GAR1").
	MagicNumber = 0x47415231
	// Version is the current container format version.
	Version = 1

	// maxCodecNameLen bounds the codec-name field in the header.
	maxCodecNameLen = 255
)

var (
	// ErrInvalidMagic is returned when the input is not an arena snapshot.
	ErrInvalidMagic = errors.New("snapshot: invalid magic number")
	// ErrInvalidVersion is returned for snapshot versions this build cannot read.
	ErrInvalidVersion = errors.New("snapshot: unsupported version")
	// ErrChecksumMismatch is returned when the payload fails CRC verification.
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")
	// ErrUnknownCodec is returned when the header names a codec this build
	// does not provide.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
)
