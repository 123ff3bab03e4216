package section

import (
	"fmt"

	"github.com/rana/tms/endian"
	"github.com/rana/tms/errs"
)

// DayHeader is the fixed-size header at the start of one day's encoded
// form within a container's payload (spec.md §4.6).
type DayHeader struct {
	// DateKey identifies the logical day (session.DateKey).
	DateKey uint32
	// BlockCount is the number of full 256-element blocks in this day.
	BlockCount uint32
	// TailLength is the number of residual offsets (< 256) after the full
	// blocks.
	TailLength uint16
	// Flags is reserved for future use; must be zero.
	Flags uint16
}

// Bytes serializes the header into a DayHeaderSize-byte slice using the
// given endian engine.
func (h DayHeader) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, DayHeaderSize)

	engine.PutUint32(b[0:4], h.DateKey)
	engine.PutUint32(b[4:8], h.BlockCount)
	engine.PutUint16(b[8:10], h.TailLength)
	engine.PutUint16(b[10:12], h.Flags)

	return b
}

// ParseDayHeader parses a DayHeader from data, which must be at least
// DayHeaderSize bytes.
func ParseDayHeader(data []byte, engine endian.EndianEngine) (DayHeader, error) {
	if len(data) < DayHeaderSize {
		return DayHeader{}, fmt.Errorf("%w: day header needs %d bytes, got %d", errs.ErrTruncated, DayHeaderSize, len(data))
	}

	h := DayHeader{
		DateKey:    engine.Uint32(data[0:4]),
		BlockCount: engine.Uint32(data[4:8]),
		TailLength: engine.Uint16(data[8:10]),
		Flags:      engine.Uint16(data[10:12]),
	}

	if h.Flags != 0 {
		return DayHeader{}, fmt.Errorf("%w: day header reserved bits set", errs.ErrCorruptDayHeader)
	}

	return h, nil
}
