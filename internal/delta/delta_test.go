package delta

import (
	"testing"

	"github.com/rana/tms/errs"
	"github.com/stretchr/testify/require"
)

func block256Uniform(step uint32) []uint32 {
	out := make([]uint32, 256)
	for i := range out {
		out[i] = uint32(i) * step //nolint:gosec
	}

	return out
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		block []uint32
	}{
		{"all zeros", make([]uint32, 256)},
		{"uniform step", block256Uniform(100)},
		{"duplicates within lane group", append([]uint32{5, 5, 5, 5, 5, 5, 5, 5}, block256Uniform(7)[8:]...)},
		{"minimum block size", make([]uint32, LaneWidth)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, residues := Encode(tt.block)
			require.Len(t, residues, len(tt.block)-LaneWidth)

			for _, r := range residues {
				require.GreaterOrEqual(t, int64(r), int64(0))
			}

			got := Decode(seed, residues)
			require.Equal(t, tt.block, got)
		})
	}
}

func TestEncode_SeedIsVerbatimFirstLaneGroup(t *testing.T) {
	block := block256Uniform(50)

	seed, _ := Encode(block)
	for i := 0; i < LaneWidth; i++ {
		require.Equal(t, block[i], seed[i])
	}
}

func TestEncode_UniformStepResiduesAreConstant(t *testing.T) {
	block := block256Uniform(100)

	_, residues := Encode(block)
	for _, r := range residues {
		require.Equal(t, uint32(800), r) // step * LaneWidth
	}
}

func TestEncode_PanicsOnInvalidBlockLength(t *testing.T) {
	require.PanicsWithError(t, errs.ErrInvalidBlockLength.Error()+": block length 0", func() {
		Encode(nil)
	})

	require.Panics(t, func() {
		Encode(make([]uint32, LaneWidth+1))
	})
}
