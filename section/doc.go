// Package section defines the low-level binary structures and constants for
// the container's on-disk format: the container header, the per-day header,
// and the packed flag bitfields each carries.
//
// # Overview
//
// The section package defines two fixed-size header types:
//
//  1. ContainerHeader: whole-container metadata (magic, version, flags,
//     day count) written once at the start of a serialized container. The
//     payload length is not part of it; the container package writes it
//     after the directory.
//  2. DayHeader: per-day metadata (date key, block count, tail length,
//     flags) written at the start of each encoded day within the payload.
//
// Both use the endian package's EndianEngine abstraction for their
// Bytes()/Parse() round trip so the same struct can target either byte
// order.
//
// # Container Header Format (16 bytes)
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|----------------------------------
//	0-3    | Magic       | uint32 | 0x544D5331 ("TMS1")
//	4-5    | Version     | uint16 | format version
//	6-7    | Flags       | uint16 | ContainerFlag bitfield
//	8-15   | DayCount    | uint64 | number of days in the directory
//
// The directory (N x uint64 offsets) and payload follow the header; see
// the container package for the full serialized layout including the
// trailing CRC32.
//
// # Day Header Format (12 bytes)
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|----------------------------------
//	0-3    | DateKey     | uint32 | session.DateKey for this day
//	4-7    | BlockCount  | uint32 | number of full 256-element blocks
//	8-9    | TailLength  | uint16 | number of residual tail values
//	10-11  | Flags       | uint16 | reserved, must be zero
//
// # Container Flag Format (16 bits)
//
//	Bit 0:     Endianness (0=little, 1=big)
//	Bit 1-3:   PayloadCompression (format.CompressionType; 1 = CompressionNone)
//	Bit 4-15:  reserved, must be zero
package section
