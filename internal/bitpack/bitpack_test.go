package bitpack

import (
	"fmt"
	"testing"

	"github.com/rana/tms/errs"
	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name      string
		residues  []uint32
		wantWidth uint8
	}{
		{"all zero", []uint32{0, 0, 0}, 0},
		{"single one", []uint32{1}, 1},
		{"needs two bits", []uint32{3}, 2},
		{"needs two bits, not three", []uint32{2}, 2},
		{"needs ten bits", []uint32{800}, 10},
		{"max uint32", []uint32{0xFFFFFFFF}, 32},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantWidth, Width(tt.residues))

			for _, r := range tt.residues {
				if tt.wantWidth < 32 {
					require.Less(t, uint64(r), uint64(1)<<tt.wantWidth)
				}
			}
		})
	}
}

func TestPackUnpack_RoundTrip_AllWidths(t *testing.T) {
	for w := uint8(0); w <= MaxWidth; w++ {
		t.Run(widthName(w), func(t *testing.T) {
			n := 64
			residues := make([]uint32, n)

			var maxVal uint64
			if w > 0 {
				maxVal = (uint64(1) << w) - 1
			}

			for i := range residues {
				residues[i] = uint32(uint64(i) % (maxVal + 1)) //nolint:gosec
			}

			packed, err := Pack(residues, w)
			require.NoError(t, err)

			if w == 0 {
				require.Empty(t, packed)
			}

			got, err := Unpack(packed, n, w)
			require.NoError(t, err)
			require.Equal(t, residues, got)
		})
	}
}

func TestPack_RejectsWidthAboveMax(t *testing.T) {
	_, err := Pack([]uint32{1}, 33)
	require.ErrorIs(t, err, errs.ErrInvalidBitWidth)

	_, err = Unpack([]byte{0}, 1, 33)
	require.ErrorIs(t, err, errs.ErrInvalidBitWidth)
}

func TestPackedLen(t *testing.T) {
	require.Equal(t, 0, PackedLen(248, 0, 32))
	require.Equal(t, 32, PackedLen(248, 1, 32)) // 248 bits = 31 bytes, rounds up to 32
	require.Equal(t, 256, PackedLen(248, 8, 32))
	require.Equal(t, 0, PackedLen(0, 8, 32))
	require.Equal(t, 31, PackedLen(248, 1, 0)) // unaligned: exactly 31 bytes
}

func TestToFromLaneMajor_RoundTrip(t *testing.T) {
	residues := make([]uint32, 248)
	for i := range residues {
		residues[i] = uint32(i) //nolint:gosec
	}

	laneMajor := ToLaneMajor(residues, 8)
	require.Len(t, laneMajor, len(residues))

	back := FromLaneMajor(laneMajor, 8)
	require.Equal(t, residues, back)
}

func widthName(w uint8) string {
	return fmt.Sprintf("w=%d", w)
}
