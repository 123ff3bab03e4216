package section

import (
	"testing"

	"github.com/rana/tms/endian"
	"github.com/rana/tms/errs"
	"github.com/rana/tms/format"
	"github.com/stretchr/testify/require"
)

func TestContainerFlag_CompressionRoundTrip(t *testing.T) {
	tests := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range tests {
		t.Run(ct.String(), func(t *testing.T) {
			f := NewContainerFlag()
			f.SetCompression(ct)

			require.Equal(t, ct, f.Compression())
			require.True(t, f.IsLittleEndian())
			require.NoError(t, f.Validate())
		})
	}
}

func TestContainerFlag_BigEndian(t *testing.T) {
	f := NewContainerFlag()
	f.WithBigEndian()

	require.False(t, f.IsLittleEndian())
	require.Equal(t, endian.GetBigEndianEngine(), f.GetEndianEngine())
}

func TestContainerFlag_RejectsReservedBits(t *testing.T) {
	f := ContainerFlag(0xFFFF)
	require.ErrorIs(t, f.Validate(), errs.ErrCorruptHeader)
}

func TestContainerHeader_BytesParse_RoundTrip(t *testing.T) {
	h := NewContainerHeader(7)
	h.Flag.SetCompression(format.CompressionZstd)

	data := h.Bytes()
	require.Len(t, data, ContainerHeaderSize)

	got, err := ParseContainerHeader(data)
	require.NoError(t, err)
	require.Equal(t, h.Magic, got.Magic)
	require.Equal(t, h.Version, got.Version)
	require.Equal(t, h.DayCount, got.DayCount)
	require.Equal(t, h.Flag.Compression(), got.Flag.Compression())
}

func TestParseContainerHeader_Truncated(t *testing.T) {
	_, err := ParseContainerHeader(make([]byte, ContainerHeaderSize-1))
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestParseContainerHeader_RejectsBadMagic(t *testing.T) {
	h := NewContainerHeader(0)
	data := h.Bytes()
	data[0] ^= 0xFF

	_, err := ParseContainerHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestParseContainerHeader_RejectsBadVersion(t *testing.T) {
	h := NewContainerHeader(0)
	data := h.Bytes()
	engine := h.Flag.GetEndianEngine()
	engine.PutUint16(data[4:6], ContainerVersion+1)

	_, err := ParseContainerHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidVersion)
}

func TestDayHeader_BytesParse_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	h := DayHeader{DateKey: 20500, BlockCount: 39, TailLength: 16}
	data := h.Bytes(engine)
	require.Len(t, data, DayHeaderSize)

	got, err := ParseDayHeader(data, engine)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestParseDayHeader_Truncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := ParseDayHeader(make([]byte, DayHeaderSize-1), engine)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestParseDayHeader_RejectsReservedFlagBits(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	h := DayHeader{DateKey: 1, BlockCount: 1, TailLength: 0, Flags: 1}
	data := h.Bytes(engine)

	_, err := ParseDayHeader(data, engine)
	require.ErrorIs(t, err, errs.ErrCorruptDayHeader)
}
