// This file documents the container's serialized wire format; see
// container.go for the implementation.
//
// # Serialized layout (spec.md §6)
//
//	section.ContainerHeader (16 bytes: magic, version, flags, day count)
//	directory: DayCount x uint64 byte-offsets into payload
//	payload_length (8 bytes)
//	payload: concatenated block.EncodeDay output, one per day, back-to-back
//	trailer crc32 (4 bytes) over everything preceding it
//
// All multi-byte integers use the byte order named by the header's flag
// bits (little-endian by default; NewContainer never produces a
// big-endian container itself, but Deserialize honors whatever the flag
// says).
package container
