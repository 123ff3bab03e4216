// Package tms provides a compact, exact-round-trip binary format for
// intraday financial timestamp sequences.
//
// Timestamps are mapped to bounded millisecond offsets from a fixed
// session window, grouped into fixed-size blocks, delta-coded across
// lane-wide strides, and bit-packed at the minimum width each block needs.
// Compression favors decode throughput over ratio: every operation is a
// vectorizable fixed-width unpack plus a cumulative add, never an
// entropy-coded bitstream.
//
// # Basic usage
//
// Appending a day of timestamps and reading it back:
//
//	import (
//	    "time"
//
//	    "github.com/rana/tms"
//	)
//
//	c, _ := tms.NewContainer()
//
//	start := time.Date(2026, 3, 5, 9, 30, 0, 0, time.Local)
//	var stamps []time.Time
//	for i := 0; i < 1000; i++ {
//	    stamps = append(stamps, start.Add(time.Duration(i)*time.Second))
//	}
//
//	idx, _ := tms.AppendDay(c, stamps)
//	out, _ := tms.GetDay(c, idx, time.Local)
//	// out has the same length and order as stamps.
//
// Persisting and reloading a container:
//
//	data, _ := tms.Serialize(c)
//	loaded, _ := tms.Deserialize(data)
//	n := tms.DayCount(loaded)
//
// # Package structure
//
// This package is a thin convenience layer over container (the day
// directory), block (the day assembler), bitpack/delta/varint (the
// compression pipeline), and session (the timestamp-to-offset mapping).
// Advanced callers needing direct access to already-mapped offset arrays,
// a payload compression codec (one of the built-in format.CompressionType
// values), or capacity limits should use the container package directly.
package tms

import (
	"time"

	"github.com/rana/tms/container"
	"github.com/rana/tms/session"
)

// NewContainer creates a new, empty, mutable Container. Options from the
// container package (container.WithPayloadCompression,
// container.WithCapacityLimit, container.WithRequireVectorSupport) may be
// passed through.
func NewContainer(opts ...container.Option) (*container.Container, error) {
	return container.NewContainer(opts...)
}

// AppendDay maps an ordered sequence of timestamps for a single logical
// day through the session window, encodes it, and appends it to c,
// returning the new day's index.
//
// Fails with errs.ErrOffsetOutOfRange, errs.ErrTimestampsNotSorted, or
// errs.ErrMultipleDays if timestamps violates the domain mapping's
// preconditions (session.MapAll), or with any error AppendDay itself can
// return.
func AppendDay(c *container.Container, timestamps []time.Time) (uint64, error) {
	dateKey, offsets, err := session.MapAll(timestamps)
	if err != nil {
		return 0, err
	}

	return c.AppendDay(uint32(dateKey), offsets)
}

// GetDay retrieves day i from c and reconstructs its original timestamp
// sequence using loc as the location the day's session window is
// interpreted in (the same location used when the day was appended via
// AppendDay).
func GetDay(c *container.Container, i uint64, loc *time.Location) ([]time.Time, error) {
	dateKey, offsets, err := c.GetDay(i)
	if err != nil {
		return nil, err
	}

	out := make([]time.Time, len(offsets))
	for idx, off := range offsets {
		out[idx] = session.Unmap(loc, session.DateKey(dateKey), off)
	}

	return out, nil
}

// DayCount returns the number of days appended to c.
func DayCount(c *container.Container) uint64 {
	return c.DayCount()
}

// Serialize encodes the entire container into its wire format (spec.md §6).
func Serialize(c *container.Container) ([]byte, error) {
	return c.Serialize()
}

// Deserialize parses a serialized container. The returned container is
// frozen; call its Reopen method to resume appending to a copy of it.
func Deserialize(data []byte) (*container.Container, error) {
	return container.Deserialize(data)
}
