// Package session implements the domain mapping between wall-clock
// timestamps and the (date key, intraday offset) pairs the compression
// core operates on.
//
// This is deliberately minimal: a real deployment sits this behind a
// calendar library that knows about trading holidays and early closes.
// session only knows the fixed window [09:30, 16:00) local to the
// timestamp's own location; anything about which days are trading days
// is the caller's responsibility.
package session

import (
	"fmt"
	"time"

	"github.com/rana/tms/errs"
)

// SessionStartHour and SessionEndHour bound the accepted intraday window.
const (
	SessionStartHour   = 9
	SessionStartMinute = 30
	SessionEndHour     = 16
	SessionEndMinute   = 0

	// MaxOffsetMs is the number of milliseconds in the session window
	// (6.5 hours), one past the largest valid offset.
	MaxOffsetMs = 23_400_000
)

// DateKey identifies a single logical day. Its numeric value is days since
// the Unix epoch in the timestamp's own location; callers must not rely on
// this encoding, only on equality.
type DateKey uint32

// Map converts a single timestamp into a (date key, offset) pair.
//
// Fails with errs.ErrOffsetOutOfRange if the timestamp falls outside
// [09:30, 16:00) local to its own location.
func Map(ts time.Time) (DateKey, uint32, error) {
	y, m, d := ts.Date()
	start := time.Date(y, m, d, SessionStartHour, SessionStartMinute, 0, 0, ts.Location())
	end := time.Date(y, m, d, SessionEndHour, SessionEndMinute, 0, 0, ts.Location())

	if ts.Before(start) || !ts.Before(end) {
		return 0, 0, fmt.Errorf("%w: %s outside session window [%s, %s)", errs.ErrOffsetOutOfRange, ts, start, end)
	}

	offset := uint32(ts.Sub(start).Milliseconds()) //nolint:gosec

	return dateKeyFor(ts), offset, nil
}

// MapAll converts an ordered sequence of timestamps for a single logical
// day into a date key and an array of intraday offsets.
//
// Fails with errs.ErrOffsetOutOfRange if any timestamp lies outside the
// session window, errs.ErrTimestampsNotSorted if the input is not sorted
// non-decreasing, or errs.ErrMultipleDays if the input spans more than one
// date.
func MapAll(timestamps []time.Time) (DateKey, []uint32, error) {
	if len(timestamps) == 0 {
		return 0, nil, nil
	}

	offsets := make([]uint32, len(timestamps))

	key, offset, err := Map(timestamps[0])
	if err != nil {
		return 0, nil, err
	}
	offsets[0] = offset

	prev := timestamps[0]
	prevOffset := offset

	for i := 1; i < len(timestamps); i++ {
		ts := timestamps[i]

		k, off, err := Map(ts)
		if err != nil {
			return 0, nil, err
		}

		if k != key {
			return 0, nil, fmt.Errorf("%w: entry %d", errs.ErrMultipleDays, i)
		}

		if ts.Before(prev) || off < prevOffset {
			return 0, nil, fmt.Errorf("%w: entry %d", errs.ErrTimestampsNotSorted, i)
		}

		offsets[i] = off
		prev = ts
		prevOffset = off
	}

	return key, offsets, nil
}

// Unmap reconstructs a timestamp from a (date key, offset) pair produced by
// Map or MapAll. The returned time is in the given location, which must be
// the same location used to produce dateKey.
func Unmap(loc *time.Location, dateKey DateKey, offsetMs uint32) time.Time {
	epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, loc)
	day := epoch.AddDate(0, 0, int(dateKey))
	start := time.Date(day.Year(), day.Month(), day.Day(), SessionStartHour, SessionStartMinute, 0, 0, loc)

	return start.Add(time.Duration(offsetMs) * time.Millisecond)
}

func dateKeyFor(ts time.Time) DateKey {
	y, m, d := ts.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
	epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, ts.Location())

	return DateKey(midnight.Sub(epoch).Hours() / 24) //nolint:gosec
}
