// This file documents the byte layout block.EncodeDay/DecodeDay produce and
// parse; see block.go for the implementation.
//
// # Day byte layout
//
//	section.DayHeader (12 bytes)
//	for each of BlockCount full blocks:
//	    seed            (SeedBytes = 32 bytes, LaneWidth uint32 values)
//	    width           (1 byte, 0-32)
//	    packed residues (padded up to Alignment = 32 bytes)
//	tail (absent if TailLength == 0; otherwise varint(TailLength) followed
//	    by TailLength varints)
//	footer: total day byte length (4 bytes, little/big endian per the
//	    container's flag)
//
// BlockCount and TailLength in the day header let a decoder walk the
// blocks and tail without re-deriving them from the input length; the
// footer lets a reader locate the start of a day by scanning backward from
// its end.
package block
