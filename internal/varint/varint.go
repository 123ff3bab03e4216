// Package varint implements the byte-oriented variable-length integer
// scheme used for a day's residual tail (fewer than 256 offsets left over
// after block segmentation).
//
// Each uint32 is emitted as a stream of 7-bit little-endian groups; every
// byte except the final one has its high bit set to indicate continuation.
// Zero encodes as a single zero byte. A value occupies 1 to 5 bytes.
package varint

import (
	"fmt"

	"github.com/rana/tms/errs"
	"github.com/rana/tms/internal/pool"
)

// MaxLen is the maximum number of bytes a single uint32 can occupy.
const MaxLen = 5

// AppendUint32 appends the varint encoding of v to buf, growing it as
// needed, and returns the number of bytes written.
func AppendUint32(buf *pool.ByteBuffer, v uint32) int {
	buf.Grow(MaxLen)

	start := len(buf.B)
	for v >= 0x80 {
		buf.B = append(buf.B, byte(v)|0x80)
		v >>= 7
	}
	buf.B = append(buf.B, byte(v))

	return len(buf.B) - start
}

// EncodeTail writes varint(len(values)) followed by each value as an
// absolute varint, appending to buf. If values is empty, nothing is
// written (per spec.md §4.6, an empty tail is simply absent).
func EncodeTail(buf *pool.ByteBuffer, values []uint32) {
	if len(values) == 0 {
		return
	}

	AppendUint32(buf, uint32(len(values))) //nolint:gosec
	for _, v := range values {
		AppendUint32(buf, v)
	}
}

// DecodeUint32 decodes a single varint-encoded uint32 from data starting at
// offset, returning the value, the offset just past it, and an error if the
// stream ends mid-varint.
func DecodeUint32(data []byte, offset int) (uint32, int, error) {
	var result uint32

	shift := uint(0)
	cur := offset

	for i := 0; i < MaxLen; i++ {
		if cur >= len(data) {
			return 0, offset, fmt.Errorf("%w: varint truncated at byte %d", errs.ErrTruncated, i)
		}

		b := data[cur]
		cur++

		result |= uint32(b&0x7f) << shift
		if b < 0x80 {
			return result, cur, nil
		}

		shift += 7
	}

	return 0, offset, fmt.Errorf("%w: varint exceeds %d bytes", errs.ErrCorruptBlock, MaxLen)
}

// DecodeTail reads a count-prefixed tail (varint count followed by that
// many varints) from data starting at offset, returning the decoded values
// and the offset just past the tail.
//
// Fails with errs.ErrTruncated if the byte stream ends mid-varint or before
// the promised count is reached.
func DecodeTail(data []byte, offset int) ([]uint32, int, error) {
	count, next, err := DecodeUint32(data, offset)
	if err != nil {
		return nil, offset, err
	}

	values := make([]uint32, count)
	for i := range values {
		v, n, err := DecodeUint32(data, next)
		if err != nil {
			return nil, offset, fmt.Errorf("%w: tail entry %d of %d", err, i, count)
		}
		values[i] = v
		next = n
	}

	return values, next, nil
}
