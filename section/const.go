package section

const (
	// ContainerMagic is the 4-byte magic number identifying a serialized
	// container ("TMS1").
	ContainerMagic uint32 = 0x544D5331

	// ContainerVersion is the current format version.
	ContainerVersion uint16 = 1

	// ContainerHeaderSize is the fixed size in bytes of ContainerHeader.
	ContainerHeaderSize = 16

	// DayHeaderSize is the fixed size in bytes of DayHeader.
	DayHeaderSize = 12

	// DayFooterSize is the fixed size in bytes of the day footer
	// (total day byte length, for reverse scanning).
	DayFooterSize = 4
)

const (
	// EndiannessMask selects the endianness bit (bit 0) of ContainerFlag.
	EndiannessMask = 0x0001
	// CompressionMask selects the 3-bit payload compression field
	// (bits 1-3) of ContainerFlag.
	CompressionMask = 0x000E
)
