package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/genarena"
	"github.com/hupe1980/genarena/codec"
)

// options configures Write.
type options struct {
	codec       codec.Codec
	compression Compression
}

// Option configures snapshot writing.
type Option func(*options)

// WithCodec selects the payload codec. The codec name is recorded in the
// header, so readers pick it up automatically. Nil selects codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression selects the payload compression.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// Info describes a snapshot without decoding its payload.
type Info struct {
	Version     uint32
	Codec       string
	Compression Compression
	// Occupied holds the occupied slot positions at write time.
	Occupied *roaring.Bitmap
}

// Len returns the number of occupied slots recorded in the snapshot.
func (i Info) Len() int {
	return int(i.Occupied.GetCardinality())
}

// Write writes a snapshot of the arena to w.
//
// The arena must not be mutated while Write runs (the usual single-owner
// discipline).
func Write[T any](w io.Writer, a *genarena.Arena[T], opts ...Option) error {
	o := options{codec: codec.Default, compression: CompressionZSTD}
	for _, opt := range opts {
		opt(&o)
	}

	name := o.codec.Name()
	if len(name) > maxCodecNameLen {
		return fmt.Errorf("snapshot: codec name %q too long", name)
	}

	occ, err := a.OccupiedBitmap().ToBytes()
	if err != nil {
		return fmt.Errorf("snapshot: encode occupancy: %w", err)
	}

	raw, err := o.codec.Marshal(a)
	if err != nil {
		return fmt.Errorf("snapshot: encode payload: %w", err)
	}
	payload, err := compressBlock(raw, o.compression)
	if err != nil {
		return err
	}

	cw := newChecksumWriter(w)
	header := []any{
		uint32(MagicNumber),
		uint32(Version),
		uint8(o.compression),
		uint8(len(name)),
		[2]byte{},
	}
	for _, v := range header {
		if err := binary.Write(cw, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if _, err := cw.Write([]byte(name)); err != nil {
		return err
	}

	if err := binary.Write(cw, binary.LittleEndian, uint32(len(occ))); err != nil {
		return err
	}
	if _, err := cw.Write(occ); err != nil {
		return err
	}

	if err := binary.Write(cw, binary.LittleEndian, uint64(len(payload))); err != nil {
		return err
	}
	if _, err := cw.Write(payload); err != nil {
		return err
	}

	// Trailer is written outside the checksummed region.
	return binary.Write(w, binary.LittleEndian, cw.Sum())
}

// Read reads a snapshot from r and reconstructs the arena: identical slot
// positions, an equivalent free list, and the maximum observed generation as
// the arena's generation.
func Read[T any](r io.Reader) (*genarena.Arena[T], error) {
	cr := newChecksumReader(r)

	info, payload, err := readSections(cr)
	if err != nil {
		return nil, err
	}

	sum := cr.Sum()
	var want uint32
	if err := binary.Read(r, binary.LittleEndian, &want); err != nil {
		return nil, fmt.Errorf("snapshot: read checksum: %w", err)
	}
	if sum != want {
		return nil, ErrChecksumMismatch
	}

	c, ok := codec.ByName(info.Codec)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, info.Codec)
	}

	raw, err := decompressBlock(payload, info.Compression)
	if err != nil {
		return nil, err
	}

	arena := new(genarena.Arena[T])
	if err := c.Unmarshal(raw, arena); err != nil {
		return nil, fmt.Errorf("snapshot: decode payload: %w", err)
	}
	return arena, nil
}

// Peek reads only the header and occupancy sections, without decoding (or
// checksumming) the payload. Use it to inspect a snapshot cheaply.
func Peek(r io.Reader) (Info, error) {
	return readHeader(r)
}

func readHeader(r io.Reader) (Info, error) {
	var (
		magic       uint32
		version     uint32
		compression uint8
		nameLen     uint8
		reserved    [2]byte
	)
	for _, v := range []any{&magic, &version, &compression, &nameLen, &reserved} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return Info{}, fmt.Errorf("snapshot: read header: %w", err)
		}
	}
	if magic != MagicNumber {
		return Info{}, ErrInvalidMagic
	}
	if version != Version {
		return Info{}, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}

	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return Info{}, fmt.Errorf("snapshot: read codec name: %w", err)
	}

	var occLen uint32
	if err := binary.Read(r, binary.LittleEndian, &occLen); err != nil {
		return Info{}, fmt.Errorf("snapshot: read occupancy length: %w", err)
	}
	occ := make([]byte, occLen)
	if _, err := io.ReadFull(r, occ); err != nil {
		return Info{}, fmt.Errorf("snapshot: read occupancy: %w", err)
	}
	rb := roaring.New()
	if _, err := rb.ReadFrom(bytes.NewReader(occ)); err != nil {
		return Info{}, fmt.Errorf("snapshot: decode occupancy: %w", err)
	}

	return Info{
		Version:     version,
		Codec:       string(name),
		Compression: Compression(compression),
		Occupied:    rb,
	}, nil
}

func readSections(r io.Reader) (Info, []byte, error) {
	info, err := readHeader(r)
	if err != nil {
		return Info{}, nil, err
	}

	var payloadLen uint64
	if err := binary.Read(r, binary.LittleEndian, &payloadLen); err != nil {
		return Info{}, nil, fmt.Errorf("snapshot: read payload length: %w", err)
	}
	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Info{}, nil, fmt.Errorf("snapshot: read payload: %w", err)
	}
	return info, payload, nil
}
