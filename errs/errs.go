// Package errs declares the sentinel errors returned across the tms module.
//
// Call sites wrap these with additional context using fmt.Errorf("%w: ...", ...);
// callers should match against the sentinels with errors.Is, not by string
// comparison.
package errs

import "errors"

// Domain mapping (session window validation).
var (
	ErrOffsetOutOfRange    = errors.New("offset out of range")
	ErrTimestampsNotSorted = errors.New("timestamps not monotonically non-decreasing")
	ErrMultipleDays        = errors.New("timestamps span more than one day")
)

// Container-level errors.
var (
	ErrDayIndexOutOfRange = errors.New("day index out of range")
	ErrCapacityExceeded   = errors.New("append would exceed container capacity limit")
	ErrUnsupportedCPU     = errors.New("required CPU feature absent and no fallback configured")
	ErrContainerFrozen    = errors.New("container is frozen; call Reopen to get a mutable copy")
)

// Corruption / structural errors, returned from decode and deserialize.
var (
	ErrCorruptHeader       = errors.New("corrupt container header")
	ErrCorruptDayHeader    = errors.New("corrupt day header")
	ErrCorruptBlock        = errors.New("corrupt encoded block")
	ErrCorruptFooter       = errors.New("day footer length mismatch")
	ErrInvalidMagicNumber  = errors.New("invalid magic number")
	ErrInvalidVersion      = errors.New("unsupported container version")
	ErrChecksumMismatch    = errors.New("crc32 checksum mismatch")
	ErrFingerprintMismatch = errors.New("day fingerprint mismatch")
	ErrTruncated           = errors.New("byte stream ended before a structurally required byte")
)

// Internal invariant violations. These indicate a bug in the encoder rather
// than bad input, and are never expected to surface in a correct program.
var (
	ErrInvalidBitWidth    = errors.New("bit-width exceeds 32")
	ErrInvalidBlockLength = errors.New("block length is not a multiple of the lane width")
)
