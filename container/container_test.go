package container

import (
	"testing"

	"github.com/rana/tms/errs"
	"github.com/rana/tms/format"
	"github.com/stretchr/testify/require"
)

func offsetsOfLen(n int) []uint32 {
	out := make([]uint32, n)

	var cur uint32
	for i := range out {
		cur += uint32((i % 37) + 1) //nolint:gosec
		out[i] = cur
	}

	return out
}

func TestContainer_AppendAndGetDay_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		days [][]uint32
	}{
		{"single empty day", [][]uint32{nil}},
		{"single small day", [][]uint32{{0, 10, 10, 20}}},
		{"single large day", [][]uint32{offsetsOfLen(10_000)}},
		{"multi day", [][]uint32{offsetsOfLen(1_000), offsetsOfLen(500), offsetsOfLen(2_000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer()
			require.NoError(t, err)

			for i, offsets := range tt.days {
				idx, err := c.AppendDay(uint32(i), offsets) //nolint:gosec
				require.NoError(t, err)
				require.Equal(t, uint64(i), idx) //nolint:gosec
			}

			require.Equal(t, uint64(len(tt.days)), c.DayCount())

			for i, offsets := range tt.days {
				dateKey, got, err := c.GetDay(uint64(i)) //nolint:gosec
				require.NoError(t, err)
				require.Equal(t, uint32(i), dateKey) //nolint:gosec

				if len(offsets) == 0 {
					require.Empty(t, got)
				} else {
					require.Equal(t, offsets, got)
				}
			}
		})
	}
}

func TestContainer_GetDay_OutOfRange(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, err = c.AppendDay(1, offsetsOfLen(10))
	require.NoError(t, err)

	_, _, err = c.GetDay(1)
	require.ErrorIs(t, err, errs.ErrDayIndexOutOfRange)
}

func TestContainer_AppendDay_RejectsOutOfRangeOffset(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, err = c.AppendDay(1, []uint32{23_400_000})
	require.ErrorIs(t, err, errs.ErrOffsetOutOfRange)
}

func TestContainer_AppendDay_RejectsUnsortedOffsets(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, err = c.AppendDay(1, []uint32{10, 5})
	require.ErrorIs(t, err, errs.ErrTimestampsNotSorted)
}

func TestContainer_AppendDay_IsAtomicOnFailure(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, err = c.AppendDay(1, offsetsOfLen(100))
	require.NoError(t, err)

	_, err = c.AppendDay(2, []uint32{10, 5})
	require.Error(t, err)

	require.Equal(t, uint64(1), c.DayCount())
}

func TestContainer_CapacityLimit(t *testing.T) {
	c, err := NewContainer(WithCapacityLimit(64))
	require.NoError(t, err)

	_, err = c.AppendDay(1, offsetsOfLen(10_000))
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	require.Equal(t, uint64(0), c.DayCount())
}

func TestContainer_SerializeDeserialize_RoundTrip(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	days := [][]uint32{offsetsOfLen(1_000), nil, offsetsOfLen(600)}
	for i, offsets := range days {
		_, err := c.AppendDay(uint32(i+1), offsets) //nolint:gosec
		require.NoError(t, err)
	}

	data, err := c.Serialize()
	require.NoError(t, err)

	loaded, err := Deserialize(data)
	require.NoError(t, err)
	require.True(t, loaded.IsFrozen())
	require.Equal(t, c.DayCount(), loaded.DayCount())

	for i, offsets := range days {
		dateKey, got, err := loaded.GetDay(uint64(i)) //nolint:gosec
		require.NoError(t, err)
		require.Equal(t, uint32(i+1), dateKey) //nolint:gosec

		if len(offsets) == 0 {
			require.Empty(t, got)
		} else {
			require.Equal(t, offsets, got)
		}
	}

	_, err = loaded.AppendDay(99, offsetsOfLen(10))
	require.ErrorIs(t, err, errs.ErrContainerFrozen)

	reopened := loaded.Reopen()
	require.False(t, reopened.IsFrozen())

	idx, err := reopened.AppendDay(99, offsetsOfLen(10))
	require.NoError(t, err)
	require.Equal(t, uint64(len(days)), idx)
}

func TestContainer_Deserialize_RejectsBadMagic(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, err = c.AppendDay(1, offsetsOfLen(10))
	require.NoError(t, err)

	data, err := c.Serialize()
	require.NoError(t, err)

	corrupted := append([]byte(nil), data...)
	corrupted[0] ^= 0xFF

	_, err = Deserialize(corrupted)
	require.Error(t, err)
}

func TestContainer_Deserialize_RejectsChecksumMismatch(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, err = c.AppendDay(1, offsetsOfLen(10))
	require.NoError(t, err)

	data, err := c.Serialize()
	require.NoError(t, err)

	corrupted := append([]byte(nil), data...)
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err = Deserialize(corrupted)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestContainer_PayloadCompression_RoundTrip(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			c, err := NewContainer(WithPayloadCompression(ct))
			require.NoError(t, err)

			offsets := offsetsOfLen(5_000)
			_, err = c.AppendDay(1, offsets)
			require.NoError(t, err)

			_, got, err := c.GetDay(0)
			require.NoError(t, err)
			require.Equal(t, offsets, got)

			data, err := c.Serialize()
			require.NoError(t, err)

			loaded, err := Deserialize(data)
			require.NoError(t, err)

			_, got2, err := loaded.GetDay(0)
			require.NoError(t, err)
			require.Equal(t, offsets, got2)
		})
	}
}
