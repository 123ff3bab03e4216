package section

import (
	"fmt"

	"github.com/rana/tms/endian"
	"github.com/rana/tms/errs"
	"github.com/rana/tms/format"
)

// ContainerFlag is a packed bitfield carried in the container header.
//
// Bit 0 is the endianness bit (0=little, 1=big). Bits 1-3 hold the
// format.CompressionType applied to each day's payload bytes before they
// are appended. Bits 4-15 are reserved and must be zero.
type ContainerFlag uint16

// NewContainerFlag returns the default flag: little-endian, no payload
// compression.
func NewContainerFlag() ContainerFlag {
	var f ContainerFlag
	f.SetCompression(format.CompressionNone)

	return f
}

// IsLittleEndian reports whether the container uses little-endian byte
// order.
func (f ContainerFlag) IsLittleEndian() bool {
	return uint16(f)&EndiannessMask == 0
}

// WithBigEndian sets the big-endian bit.
func (f *ContainerFlag) WithBigEndian() {
	*f |= ContainerFlag(EndiannessMask)
}

// Compression returns the payload compression type carried in bits 1-3.
func (f ContainerFlag) Compression() format.CompressionType {
	return format.CompressionType((uint16(f) & CompressionMask) >> 1)
}

// SetCompression sets the payload compression type in bits 1-3.
func (f *ContainerFlag) SetCompression(c format.CompressionType) {
	*f &^= ContainerFlag(CompressionMask)
	*f |= ContainerFlag(uint16(c)<<1) & ContainerFlag(CompressionMask)
}

// GetEndianEngine returns the appropriate endian engine for this flag.
func (f ContainerFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Validate checks that reserved bits are zero and the compression type is
// known.
func (f ContainerFlag) Validate() error {
	if uint16(f)&^uint16(EndiannessMask|CompressionMask) != 0 {
		return fmt.Errorf("%w: reserved flag bits set", errs.ErrCorruptHeader)
	}

	switch f.Compression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return nil
	default:
		return fmt.Errorf("%w: unknown compression type %d", errs.ErrCorruptHeader, f.Compression())
	}
}
