// Package block implements the day assembler: it segments a day's offset
// array into fixed-size blocks plus a residual tail, drives the delta coder
// and bit-pack codec per block and the varint coder for the tail, and
// produces or parses the resulting byte layout for one day (spec.md §4.2,
// §4.6).
package block

import (
	"fmt"

	"github.com/rana/tms/endian"
	"github.com/rana/tms/errs"
	"github.com/rana/tms/internal/bitpack"
	"github.com/rana/tms/internal/delta"
	"github.com/rana/tms/internal/pool"
	"github.com/rana/tms/internal/varint"
	"github.com/rana/tms/section"
)

const (
	// Size is the fixed number of offsets per full block.
	Size = 256
	// LaneWidth is the number of parallel delta lanes (spec.md §4.3).
	LaneWidth = delta.LaneWidth
	// SeedBytes is the encoded size of one block's verbatim seed group.
	SeedBytes = LaneWidth * 4
	// ResidueCount is the number of residues carried by one full block.
	ResidueCount = Size - LaneWidth
	// Alignment is the byte boundary each block's residue payload is
	// padded up to, so that a decoder can load it with vector instructions
	// (spec.md §4.4).
	Alignment = 32
)

// Segment splits an offset array into full blocks of Size values plus a
// tail of the remaining len(offsets) % Size values. The tail is always the
// final residue, never a prefix (spec.md §4.2).
func Segment(offsets []uint32) (blocks [][]uint32, tail []uint32) {
	full := len(offsets) / Size
	blocks = make([][]uint32, full)

	for i := 0; i < full; i++ {
		blocks[i] = offsets[i*Size : (i+1)*Size]
	}

	tail = offsets[full*Size:]

	return blocks, tail
}

// EncodeDay produces the encoded byte form of a single day: a DayHeader,
// one seed+width+packed-residues group per full block, the varint tail (if
// any), and a 4-byte footer carrying the total day length (spec.md §4.6).
// The returned slice is owned by the caller and independent of any internal
// buffer.
func EncodeDay(dateKey uint32, offsets []uint32, engine endian.EndianEngine) ([]byte, error) {
	blocks, tail := Segment(offsets)

	header := section.DayHeader{
		DateKey:    dateKey,
		BlockCount: uint32(len(blocks)), //nolint:gosec
		TailLength: uint16(len(tail)),   //nolint:gosec
	}

	buf := pool.GetBlobBuffer()
	buf.MustWrite(header.Bytes(engine))

	for _, blk := range blocks {
		if err := encodeBlock(buf, blk, engine); err != nil {
			pool.PutBlobBuffer(buf)
			return nil, err
		}
	}

	varint.EncodeTail(buf, tail)

	footer := make([]byte, section.DayFooterSize)
	engine.PutUint32(footer, uint32(buf.Len()+section.DayFooterSize)) //nolint:gosec
	buf.MustWrite(footer)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	pool.PutBlobBuffer(buf)

	return out, nil
}

// encodeBlock appends one full block's seed, width byte, and padded packed
// residues to buf.
func encodeBlock(buf *pool.ByteBuffer, blk []uint32, engine endian.EndianEngine) error {
	seed, residues := delta.Encode(blk)

	laneMajor := bitpack.ToLaneMajor(residues, LaneWidth)
	w := bitpack.Width(laneMajor)

	packed, err := bitpack.Pack(laneMajor, w)
	if err != nil {
		return err
	}

	seedBytes := make([]byte, SeedBytes)
	for lane, v := range seed {
		engine.PutUint32(seedBytes[lane*4:lane*4+4], v)
	}

	buf.MustWrite(seedBytes)
	buf.MustWrite([]byte{w})
	buf.MustWrite(packed)

	paddedLen := bitpack.PackedLen(len(laneMajor), w, Alignment)
	if pad := paddedLen - len(packed); pad > 0 {
		buf.MustWrite(make([]byte, pad))
	}

	return nil
}

// DecodeDay parses one day's encoded bytes starting at the beginning of
// data, returning the date key, the reconstructed offset array, and the
// number of bytes consumed (the caller uses this to locate the next day
// when days are packed back-to-back without a directory).
//
// Fails with errs.ErrTruncated if data ends before a structurally required
// byte, or errs.ErrCorruptBlock / errs.ErrCorruptFooter if a structural
// invariant is violated.
func DecodeDay(data []byte, engine endian.EndianEngine) (dateKey uint32, offsets []uint32, consumed int, err error) {
	header, err := section.ParseDayHeader(data, engine)
	if err != nil {
		return 0, nil, 0, err
	}

	offset := section.DayHeaderSize
	out := make([]uint32, 0, int(header.BlockCount)*Size+int(header.TailLength))

	for i := 0; i < int(header.BlockCount); i++ {
		vals, next, err := decodeBlock(data, offset, engine)
		if err != nil {
			return 0, nil, 0, fmt.Errorf("block %d: %w", i, err)
		}

		out = append(out, vals...)
		offset = next
	}

	if header.TailLength > 0 {
		tailVals, next, err := varint.DecodeTail(data, offset)
		if err != nil {
			return 0, nil, 0, err
		}

		if uint16(len(tailVals)) != header.TailLength { //nolint:gosec
			return 0, nil, 0, fmt.Errorf("%w: tail length mismatch, header says %d, decoded %d", errs.ErrCorruptBlock, header.TailLength, len(tailVals))
		}

		out = append(out, tailVals...)
		offset = next
	}

	if offset+section.DayFooterSize > len(data) {
		return 0, nil, 0, fmt.Errorf("%w: day footer needs %d bytes, got %d", errs.ErrTruncated, section.DayFooterSize, len(data)-offset)
	}

	footerLen := engine.Uint32(data[offset : offset+section.DayFooterSize])
	offset += section.DayFooterSize

	if int(footerLen) != offset {
		return 0, nil, 0, fmt.Errorf("%w: footer says %d bytes, day is %d bytes", errs.ErrCorruptFooter, footerLen, offset)
	}

	return header.DateKey, out, offset, nil
}

// decodeBlock parses one full block starting at offset within data,
// returning the reconstructed values and the offset just past the block.
func decodeBlock(data []byte, offset int, engine endian.EndianEngine) ([]uint32, int, error) {
	if offset+SeedBytes+1 > len(data) {
		return nil, 0, fmt.Errorf("%w: block header needs %d bytes, got %d", errs.ErrTruncated, SeedBytes+1, len(data)-offset)
	}

	var seed [LaneWidth]uint32
	for lane := range seed {
		start := offset + lane*4
		seed[lane] = engine.Uint32(data[start : start+4])
	}
	offset += SeedBytes

	w := data[offset]
	offset++

	if w > bitpack.MaxWidth {
		return nil, 0, fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, w)
	}

	paddedLen := bitpack.PackedLen(ResidueCount, w, Alignment)
	if offset+paddedLen > len(data) {
		return nil, 0, fmt.Errorf("%w: block residue payload needs %d bytes, got %d", errs.ErrTruncated, paddedLen, len(data)-offset)
	}

	laneMajor, err := bitpack.Unpack(data[offset:offset+paddedLen], ResidueCount, w)
	if err != nil {
		return nil, 0, err
	}
	offset += paddedLen

	residues := bitpack.FromLaneMajor(laneMajor, LaneWidth)
	vals := delta.Decode(seed, residues)

	return vals, offset, nil
}
