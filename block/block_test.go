package block

import (
	"testing"

	"github.com/rana/tms/endian"
	"github.com/rana/tms/errs"
	"github.com/rana/tms/section"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		wantBlocks int
		wantTail   int
	}{
		{"empty", 0, 0, 0},
		{"below one block", 200, 0, 200},
		{"exactly one block", 256, 1, 0},
		{"one block plus tail", 300, 1, 44},
		{"many blocks", 10_000, 39, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offsets := make([]uint32, tt.n)
			for i := range offsets {
				offsets[i] = uint32(i) //nolint:gosec
			}

			blocks, tail := Segment(offsets)
			require.Len(t, blocks, tt.wantBlocks)
			require.Len(t, tail, tt.wantTail)

			for _, b := range blocks {
				require.Len(t, b, Size)
			}
		})
	}
}

func TestEncodeDecodeDay_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		offsets []uint32
	}{
		{"empty day", nil},
		{"single timestamp", []uint32{0}},
		{"one block of zeros", make([]uint32, Size)},
		{"uniform step", uniformStep(Size, 100)},
		{"one block plus small tail", append(uniformStep(Size, 50), 10, 20, 30)},
		{"max offset present", []uint32{0, 23_399_999}},
		{"multi-block random-ish sorted", sortedOffsets(10_000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := endian.GetLittleEndianEngine()

			encoded, err := EncodeDay(42, tt.offsets, engine)
			require.NoError(t, err)

			dateKey, decoded, consumed, err := DecodeDay(encoded, engine)
			require.NoError(t, err)
			require.Equal(t, uint32(42), dateKey)
			require.Equal(t, len(encoded), consumed)

			if len(tt.offsets) == 0 {
				require.Empty(t, decoded)
			} else {
				require.Equal(t, tt.offsets, decoded)
			}
		})
	}
}

func TestEncodeDay_AllZeroBlockHasNoResiduePayload(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoded, err := EncodeDay(1, make([]uint32, Size), engine)
	require.NoError(t, err)

	// header + seed + width byte, no residue bytes, no padding (0 bytes
	// rounds up to 0), no tail, + footer.
	wantLen := section.DayHeaderSize + SeedBytes + 1 + section.DayFooterSize
	require.Equal(t, wantLen, len(encoded))
}

func TestDecodeDay_TruncatedFailsWithTruncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoded, err := EncodeDay(7, sortedOffsets(1000), engine)
	require.NoError(t, err)

	_, _, _, err = DecodeDay(encoded[:len(encoded)-1], engine)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestDecodeDay_FooterMismatchFailsWithCorruptFooter(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoded, err := EncodeDay(7, sortedOffsets(600), engine)
	require.NoError(t, err)

	// Flip the footer length so it disagrees with the actual byte count.
	corrupted := append([]byte(nil), encoded...)
	footerStart := len(corrupted) - 4
	engine.PutUint32(corrupted[footerStart:], 0xFFFFFFFF)

	_, _, _, err = DecodeDay(corrupted, engine)
	require.ErrorIs(t, err, errs.ErrCorruptFooter)
}

func uniformStep(n int, step uint32) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i) * step //nolint:gosec
	}

	return out
}

func sortedOffsets(n int) []uint32 {
	out := make([]uint32, n)

	var cur uint32
	for i := range out {
		cur += uint32((i*37 + 11) % 2_000) //nolint:gosec
		out[i] = cur
	}

	return out
}
