package bitpack

import "golang.org/x/sys/cpu"

// strategy identifies which pack/unpack code path the package will use.
// Only Scalar is implemented today; Preferred is probed at init time and
// reserved for a future vectorized backend, so that callers and the
// serialized format never need to change when one lands (spec.md §5:
// "the choice is a build configuration").
type strategy uint8

const (
	// Scalar is the portable Go bit-level pack/unpack path. It is always
	// available and is what every width currently dispatches to.
	Scalar strategy = iota
	// Preferred is whichever vectorized path the hardware supports, once
	// one exists. Until then it behaves identically to Scalar.
	Preferred
)

// Active is the strategy selected at package init. Exported so callers
// implementing spec.md §5's UNSUPPORTED-or-fallback build-configuration
// choice can inspect it.
var Active = Scalar

func init() {
	if HasVectorSupport() {
		// Active records that the host has the vector feature. pack/unpack
		// do not consult Active and run the same portable routines either
		// way, so Pack/Unpack output is bit-identical.
		Active = Preferred
	}
}

// HasVectorSupport reports whether the host CPU has 256-bit integer SIMD
// (AVX2 on x86), the feature the format expects a vectorized codec to use.
// A build that wants the UNSUPPORTED behavior from spec.md §5 instead of the
// scalar fallback can check this before constructing a container.
func HasVectorSupport() bool {
	return cpu.X86.HasAVX2
}
