// Package container implements the day directory: an append-only byte
// buffer of encoded days plus a parallel directory of per-day byte offsets,
// supporting O(1) retrieval by day index and whole-container
// serialize/deserialize (spec.md §4.7, §6, §7).
package container

import (
	"fmt"
	"hash/crc32"

	"github.com/rana/tms/block"
	"github.com/rana/tms/compress"
	"github.com/rana/tms/endian"
	"github.com/rana/tms/errs"
	"github.com/rana/tms/format"
	"github.com/rana/tms/internal/bitpack"
	"github.com/rana/tms/internal/hash"
	"github.com/rana/tms/internal/options"
	"github.com/rana/tms/internal/pool"
	"github.com/rana/tms/section"
	"github.com/rana/tms/session"
)

// Container is an append-only multi-day store of encoded intraday offset
// sequences.
//
// A Container is either mutable (accepts AppendDay) or frozen (produced by
// Deserialize, or after a future freeze operation). A frozen container
// never mutates in place; Reopen copies it into a new mutable Container.
//
// Container is not safe for concurrent use by multiple writers, or by a
// writer and a reader at the same time; callers provide external mutual
// exclusion (spec.md §5).
type Container struct {
	engine endian.EndianEngine

	buf          *pool.ByteBuffer
	directory    []uint64
	fingerprints []uint64

	codec           compress.Codec
	compressionType format.CompressionType
	capacityLimit   uint64

	frozen bool
}

// Option configures a Container at construction time.
type Option = options.Option[*Container]

// WithPayloadCompression selects a codec applied to each day's already
// bit-packed bytes before it is appended to the container's byte buffer.
// The default is format.CompressionNone.
func WithPayloadCompression(ct format.CompressionType) Option {
	return options.New(func(c *Container) error {
		codec, err := compress.CreateCodec(ct, "container payload")
		if err != nil {
			return err
		}

		c.compressionType = ct
		c.codec = codec

		return nil
	})
}

// WithCapacityLimit caps the total number of bytes the container's payload
// buffer may hold. AppendDay fails with errs.ErrCapacityExceeded once an
// append would cross this limit. A limit of 0 (the default) means
// unlimited.
func WithCapacityLimit(limit uint64) Option {
	return options.NoError(func(c *Container) { c.capacityLimit = limit })
}

// WithRequireVectorSupport makes NewContainer fail with
// errs.ErrUnsupportedCPU when the host lacks the 256-bit SIMD feature the
// bit-pack codec is designed around, instead of silently using the
// portable scalar fallback (spec.md §5's "refuse to initialize" choice).
func WithRequireVectorSupport() Option {
	return options.New(func(_ *Container) error {
		if !bitpack.HasVectorSupport() {
			return fmt.Errorf("%w: no 256-bit SIMD feature detected", errs.ErrUnsupportedCPU)
		}

		return nil
	})
}

// NewContainer creates an empty, mutable Container.
func NewContainer(opts ...Option) (*Container, error) {
	c := &Container{
		engine:          endian.GetLittleEndianEngine(),
		buf:             pool.NewByteBuffer(pool.BlobSetBufferDefaultSize),
		codec:           compress.NewNoOpCompressor(),
		compressionType: format.CompressionNone,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// AppendDay validates, encodes, and appends one day's offsets, returning
// its day index.
//
// Fails with errs.ErrOffsetOutOfRange if any offset is >= session.MaxOffsetMs,
// errs.ErrTimestampsNotSorted if offsets are not non-decreasing,
// errs.ErrCapacityExceeded if the append would exceed a configured capacity
// limit, or errs.ErrContainerFrozen if called on a frozen container.
//
// AppendDay is atomic: on any error, neither the byte buffer nor the
// directory is modified.
func (c *Container) AppendDay(dateKey uint32, offsets []uint32) (uint64, error) {
	if c.frozen {
		return 0, fmt.Errorf("%w", errs.ErrContainerFrozen)
	}

	if err := validateOffsets(offsets); err != nil {
		return 0, err
	}

	dayBytes, err := block.EncodeDay(dateKey, offsets, c.engine)
	if err != nil {
		return 0, err
	}

	stored := dayBytes
	if c.compressionType != format.CompressionNone {
		stored, err = c.codec.Compress(dayBytes)
		if err != nil {
			return 0, fmt.Errorf("compressing day payload: %w", err)
		}
	}

	if c.capacityLimit > 0 && uint64(c.buf.Len())+uint64(len(stored)) > c.capacityLimit { //nolint:gosec
		return 0, fmt.Errorf("%w: appending %d bytes would exceed limit of %d", errs.ErrCapacityExceeded, len(stored), c.capacityLimit)
	}

	start := uint64(c.buf.Len()) //nolint:gosec
	c.buf.Grow(len(stored))
	c.buf.MustWrite(stored)

	c.directory = append(c.directory, start)
	c.fingerprints = append(c.fingerprints, hash.ID(string(stored)))

	return uint64(len(c.directory) - 1), nil //nolint:gosec
}

// GetDay locates day i via the directory, decodes it fully, and returns
// its date key and reconstructed offset sequence. The returned slice is
// owned by the caller and shares no memory with the container.
//
// Fails with errs.ErrDayIndexOutOfRange if i >= DayCount(), or with
// errs.ErrFingerprintMismatch / errs.ErrCorruptFooter / errs.ErrCorruptBlock
// if a structural invariant is violated.
func (c *Container) GetDay(i uint64) (uint32, []uint32, error) {
	if i >= uint64(len(c.directory)) {
		return 0, nil, fmt.Errorf("%w: %d >= %d", errs.ErrDayIndexOutOfRange, i, len(c.directory))
	}

	raw := c.dayBytes(i)

	if hash.ID(string(raw)) != c.fingerprints[i] {
		return 0, nil, fmt.Errorf("%w: day %d", errs.ErrFingerprintMismatch, i)
	}

	decoded := raw
	if c.compressionType != format.CompressionNone {
		dec, err := c.codec.Decompress(raw)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: decompressing day %d: %w", errs.ErrCorruptBlock, i, err)
		}
		decoded = dec
	}

	dateKey, offsets, consumed, err := block.DecodeDay(decoded, c.engine)
	if err != nil {
		return 0, nil, fmt.Errorf("day %d: %w", i, err)
	}

	if consumed != len(decoded) {
		return 0, nil, fmt.Errorf("%w: day %d: consumed %d of %d bytes", errs.ErrCorruptFooter, i, consumed, len(decoded))
	}

	return dateKey, offsets, nil
}

// dayBytes returns the stored (possibly compressed) bytes for day i,
// computed from the directory's start offsets.
func (c *Container) dayBytes(i uint64) []byte {
	start := c.directory[i]

	end := uint64(c.buf.Len()) //nolint:gosec
	if i+1 < uint64(len(c.directory)) {
		end = c.directory[i+1]
	}

	return c.buf.B[start:end]
}

// DayCount returns the number of appended days.
func (c *Container) DayCount() uint64 {
	return uint64(len(c.directory)) //nolint:gosec
}

// IsFrozen reports whether the container is frozen (produced by
// Deserialize). A frozen container rejects AppendDay; use Reopen to get a
// mutable copy.
func (c *Container) IsFrozen() bool {
	return c.frozen
}

// Reopen returns a mutable copy of c, leaving c itself untouched. This is
// the only supported way to resume appending to a deserialized container
// (spec.md §4.7's state machine forbids in-place mutation of a frozen
// view).
func (c *Container) Reopen() *Container {
	cp := &Container{
		engine:          c.engine,
		buf:             pool.NewByteBuffer(c.buf.Len()),
		directory:       append([]uint64(nil), c.directory...),
		fingerprints:    append([]uint64(nil), c.fingerprints...),
		codec:           c.codec,
		compressionType: c.compressionType,
		capacityLimit:   c.capacityLimit,
	}
	cp.buf.MustWrite(c.buf.B)

	return cp
}

// Serialize encodes the entire container into the wire format described in
// spec.md §6: magic, version, flags, day count, directory, payload length,
// payload, and a trailing CRC32 over everything preceding it.
func (c *Container) Serialize() ([]byte, error) {
	header := section.NewContainerHeader(uint64(len(c.directory))) //nolint:gosec
	header.Flag.SetCompression(c.compressionType)

	buf := pool.GetBlobSetBuffer()
	buf.MustWrite(header.Bytes())

	for _, off := range c.directory {
		buf.B = c.engine.AppendUint64(buf.B, off)
	}

	buf.B = c.engine.AppendUint64(buf.B, uint64(c.buf.Len())) //nolint:gosec
	buf.MustWrite(c.buf.B)

	crc := crc32.ChecksumIEEE(buf.B)
	buf.B = c.engine.AppendUint32(buf.B, crc)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	pool.PutBlobSetBuffer(buf)

	return out, nil
}

// Deserialize parses a serialized container, validating the magic number,
// version, CRC32 trailer, and every directory entry's day structure before
// returning. The returned Container is frozen; call Reopen to get a
// mutable copy.
//
// Fails with errs.ErrTruncated if data is too short, errs.ErrInvalidMagicNumber
// / errs.ErrInvalidVersion for header mismatches, errs.ErrChecksumMismatch
// for a CRC32 mismatch, or errs.ErrCorruptHeader / errs.ErrCorruptFooter /
// errs.ErrCorruptBlock if any day fails to decode cleanly. On any error, no
// partial Container is returned.
func Deserialize(data []byte) (*Container, error) {
	header, err := section.ParseContainerHeader(data)
	if err != nil {
		return nil, err
	}

	engine := header.Flag.GetEndianEngine()

	offset := section.ContainerHeaderSize
	dirLen := int(header.DayCount) * 8 //nolint:gosec

	if offset+dirLen+8 > len(data) {
		return nil, fmt.Errorf("%w: directory needs %d bytes, got %d", errs.ErrTruncated, dirLen+8, len(data)-offset)
	}

	directory := make([]uint64, header.DayCount)
	for i := range directory {
		directory[i] = engine.Uint64(data[offset : offset+8])
		offset += 8
	}

	payloadLen := engine.Uint64(data[offset : offset+8])
	offset += 8

	if uint64(offset)+payloadLen+4 > uint64(len(data)) { //nolint:gosec
		return nil, fmt.Errorf("%w: payload needs %d bytes, got %d", errs.ErrTruncated, payloadLen, uint64(len(data)-offset)) //nolint:gosec
	}

	payloadEnd := uint64(offset) + payloadLen //nolint:gosec
	payload := data[offset:payloadEnd]
	trailerOffset := int(payloadEnd) //nolint:gosec

	wantCRC := crc32.ChecksumIEEE(data[:trailerOffset])
	gotCRC := engine.Uint32(data[trailerOffset : trailerOffset+4])

	if wantCRC != gotCRC {
		return nil, fmt.Errorf("%w: want 0x%08x, got 0x%08x", errs.ErrChecksumMismatch, wantCRC, gotCRC)
	}

	codec, err := compress.CreateCodec(header.Flag.Compression(), "container payload")
	if err != nil {
		return nil, err
	}

	c := &Container{
		engine:          engine,
		buf:             pool.NewByteBuffer(len(payload)),
		directory:       directory,
		fingerprints:    make([]uint64, len(directory)),
		codec:           codec,
		compressionType: header.Flag.Compression(),
		frozen:          true,
	}
	c.buf.MustWrite(payload)

	for i := range directory {
		start := directory[i]

		end := uint64(len(payload))
		if i+1 < len(directory) {
			end = directory[i+1]
		}

		if start > end || end > uint64(len(payload)) {
			return nil, fmt.Errorf("%w: day %d directory entry out of range", errs.ErrCorruptHeader, i)
		}

		raw := payload[start:end]
		c.fingerprints[i] = hash.ID(string(raw))

		decoded := raw
		if c.compressionType != format.CompressionNone {
			dec, err := codec.Decompress(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: day %d: %w", errs.ErrCorruptBlock, i, err)
			}
			decoded = dec
		}

		_, _, consumed, err := block.DecodeDay(decoded, engine)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", i, err)
		}

		if consumed != len(decoded) {
			return nil, fmt.Errorf("%w: day %d", errs.ErrCorruptFooter, i)
		}
	}

	return c, nil
}

// validateOffsets checks the invariants spec.md §3 places on a single
// day's offset array: every value in [0, session.MaxOffsetMs), and the
// sequence non-decreasing.
func validateOffsets(offsets []uint32) error {
	var prev uint32

	for i, o := range offsets {
		if o >= session.MaxOffsetMs {
			return fmt.Errorf("%w: offset %d at index %d", errs.ErrOffsetOutOfRange, o, i)
		}

		if i > 0 && o < prev {
			return fmt.Errorf("%w: index %d", errs.ErrTimestampsNotSorted, i)
		}

		prev = o
	}

	return nil
}
