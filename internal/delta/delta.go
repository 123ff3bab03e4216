// Package delta implements the lane-wise vector delta coder used by one
// block of a day's offset array (spec.md §4.3).
//
// A block of 256 uint32 values is split into a seed group (the first L
// values, verbatim) and 256-L residues, where residue[i] = v[i] - v[i-L].
// L (the lane width) is fixed at 8, matching a 256-bit SIMD register of
// 32-bit lanes; each lane carries an independent running sum with no
// horizontal dependency between lanes, which is what lets both encode and
// decode vectorize without a lane-to-lane carry chain.
package delta

import (
	"fmt"

	"github.com/rana/tms/errs"
)

// LaneWidth is the number of parallel lanes (L).
const LaneWidth = 8

// Encode splits a full block into its seed (the first LaneWidth values)
// and its residues, one per value of block[LaneWidth:], where
// residues[i-LaneWidth] = block[i] - block[i-LaneWidth].
//
// residues is a newly allocated slice of length len(block)-LaneWidth;
// block is not modified. Panics with
// errs.ErrInvalidBlockLength if len(block) is not a positive multiple of
// LaneWidth.
func Encode(block []uint32) (seed [LaneWidth]uint32, residues []uint32) {
	if len(block) == 0 || len(block)%LaneWidth != 0 {
		panic(fmt.Errorf("%w: block length %d", errs.ErrInvalidBlockLength, len(block)))
	}

	copy(seed[:], block[:LaneWidth])

	residues = make([]uint32, len(block)-LaneWidth)
	for i := LaneWidth; i < len(block); i++ {
		residues[i-LaneWidth] = block[i] - block[i-LaneWidth]
	}

	return seed, residues
}

// Decode reconstructs a full block from its seed and residues by
// cumulative lane-wise addition: out[i] = out[i-LaneWidth] + residue for i
// >= LaneWidth, out[0:LaneWidth] = seed.
//
// The returned slice has length LaneWidth+len(residues).
func Decode(seed [LaneWidth]uint32, residues []uint32) []uint32 {
	out := make([]uint32, LaneWidth+len(residues))
	copy(out[:LaneWidth], seed[:])

	for i := 0; i < len(residues); i++ {
		idx := i + LaneWidth
		out[idx] = out[idx-LaneWidth] + residues[i]
	}

	return out
}
