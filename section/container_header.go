package section

import (
	"fmt"

	"github.com/rana/tms/errs"
)

// ContainerHeader is the fixed-size header at the start of a serialized
// container (spec.md §6).
type ContainerHeader struct {
	// Magic identifies the format; must equal ContainerMagic.
	Magic uint32
	// Version is the format version.
	Version uint16
	// Flag carries endianness and payload-compression configuration.
	Flag ContainerFlag
	// DayCount is the number of days recorded in the directory.
	DayCount uint64
}

// NewContainerHeader returns a header with default flags and the given day
// count.
func NewContainerHeader(dayCount uint64) ContainerHeader {
	return ContainerHeader{
		Magic:    ContainerMagic,
		Version:  ContainerVersion,
		Flag:     NewContainerFlag(),
		DayCount: dayCount,
	}
}

// Bytes serializes the header into a ContainerHeaderSize-byte slice.
func (h ContainerHeader) Bytes() []byte {
	b := make([]byte, ContainerHeaderSize)
	engine := h.Flag.GetEndianEngine()

	engine.PutUint32(b[0:4], h.Magic)
	engine.PutUint16(b[4:6], h.Version)
	// The flag field itself is always little-endian on the wire, since the
	// reader needs it to determine the byte order of everything else.
	b[6] = byte(h.Flag)
	b[7] = byte(h.Flag >> 8)
	engine.PutUint64(b[8:16], h.DayCount)

	return b
}

// ParseContainerHeader parses a ContainerHeader from data, which must be at
// least ContainerHeaderSize bytes.
//
// Fails with errs.ErrTruncated if data is too short, errs.ErrInvalidMagicNumber
// if the magic number doesn't match, errs.ErrInvalidVersion if the version
// is unrecognized, or errs.ErrCorruptHeader if reserved flag bits are set.
func ParseContainerHeader(data []byte) (ContainerHeader, error) {
	if len(data) < ContainerHeaderSize {
		return ContainerHeader{}, fmt.Errorf("%w: container header needs %d bytes, got %d", errs.ErrTruncated, ContainerHeaderSize, len(data))
	}

	var h ContainerHeader
	h.Flag = ContainerFlag(uint16(data[6]) | uint16(data[7])<<8)

	if err := h.Flag.Validate(); err != nil {
		return ContainerHeader{}, err
	}

	engine := h.Flag.GetEndianEngine()

	h.Magic = engine.Uint32(data[0:4])
	if h.Magic != ContainerMagic {
		return ContainerHeader{}, fmt.Errorf("%w: got 0x%08X", errs.ErrInvalidMagicNumber, h.Magic)
	}

	h.Version = engine.Uint16(data[4:6])
	if h.Version != ContainerVersion {
		return ContainerHeader{}, fmt.Errorf("%w: got %d, want %d", errs.ErrInvalidVersion, h.Version, ContainerVersion)
	}

	h.DayCount = engine.Uint64(data[8:16])

	return h, nil
}
