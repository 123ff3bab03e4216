// Package bitpack implements the bit-width selector and width-specialized
// binary packer for block residues (spec.md §4.4).
//
// Every width w in 0..32 is handled; selection is a single indexed dispatch
// on w rather than a function-pointer table, which keeps each path
// inlinable and visible to escape analysis. Only the byte-aligned widths
// (0, 8, 16, 24, 32) have dedicated routines, which work a whole byte at a
// time; the other 28 widths have no routine of their own and share one
// generic bit-level writer/reader.
package bitpack

import (
	"fmt"

	"github.com/rana/tms/errs"
)

// MaxWidth is the largest representable bit-width.
const MaxWidth = 32

// Width returns the minimum w in [0, 32] such that every value in residues
// satisfies value < 2^w.
func Width(residues []uint32) uint8 {
	var maxVal uint32
	for _, r := range residues {
		if r > maxVal {
			maxVal = r
		}
	}

	if maxVal == 0 {
		return 0
	}

	w := uint8(0)
	for (uint64(1) << w) <= uint64(maxVal) {
		w++
	}

	return w
}

// PackedLen returns the number of residue-payload bytes for n values at
// width w, rounded up to a multiple of alignment (no rounding when
// alignment <= 0) (spec.md §4.4).
func PackedLen(n int, w uint8, alignment int) int {
	if w == 0 {
		return 0
	}

	bits := n * int(w)
	bytes := (bits + 7) / 8

	if alignment <= 0 {
		return bytes
	}

	if rem := bytes % alignment; rem != 0 {
		bytes += alignment - rem
	}

	return bytes
}

// Pack packs residues into w-bit fields, concatenated least-significant-bit
// first, and returns the unpadded byte slice (the caller pads to the
// required alignment). w must be in [0, 32]; w=0 returns an empty slice.
func Pack(residues []uint32, w uint8) ([]byte, error) {
	if w > MaxWidth {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, w)
	}

	return pack(residues, w)
}

// Unpack decodes n values packed at width w from data. data must contain at
// least PackedLen(n, w, 0) bytes (callers strip alignment padding before
// calling, or simply pass a longer slice; only the first PackedLen bytes
// are read).
func Unpack(data []byte, n int, w uint8) ([]uint32, error) {
	if w > MaxWidth {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, w)
	}

	return unpack(data, n, w)
}

// ToLaneMajor reorders residues (in source-index order) into lane-major
// order for packing: lane 0's residues first, then lane 1's, and so on,
// matching spec.md §4.4's packing layout (lane ℓ receives residues whose
// source index i satisfies i mod lanes == ℓ). len(residues) must be a
// multiple of lanes.
func ToLaneMajor(residues []uint32, lanes int) []uint32 {
	out := make([]uint32, len(residues))
	perLane := len(residues) / lanes

	for i, r := range residues {
		lane := i % lanes
		pos := i / lanes
		out[lane*perLane+pos] = r
	}

	return out
}

// FromLaneMajor reverses ToLaneMajor, restoring source-index order.
func FromLaneMajor(laneMajor []uint32, lanes int) []uint32 {
	out := make([]uint32, len(laneMajor))
	perLane := len(laneMajor) / lanes

	for i := range out {
		lane := i % lanes
		pos := i / lanes
		out[i] = laneMajor[lane*perLane+pos]
	}

	return out
}
