// Package clock models points and intervals in time under the
// proleptic Gregorian calendar and converts them, exactly and
// reversibly, between civil representation, UTC, Unix time, GPS time,
// and International Atomic Time.
//
// The composite point-in-time type is [DateTime]: a calendar day, a
// time of day with microsecond resolution, an optional named time
// zone, and an always resolved UTC offset. Epoch-relative timestamps
// come from [DateTime.Timestamp], which accounts for inserted leap
// seconds via the table in [github.com/chronal/chronal/clock/leap].
// Intervals are [Period] values; stepping through an interval yields a
// [Sequence].
//
// Every type in this package is an immutable value. Operations named
// like mutators (AddDays, ToZone, ...) return new values.
package clock

import (
	"errors"
	"fmt"
)

var (
	// ErrClock wraps every error returned by the clock package.
	ErrClock = errors.New("clock")

	// ErrInvalidArgument errors denote malformed constructor input: an
	// invalid calendar date, a zero-length iteration step, or a named
	// zone paired with an offset it does not resolve to.
	ErrInvalidArgument = fmt.Errorf("%w: invalid argument", ErrClock)

	// ErrUnknownZone errors denote time zone names the zone database
	// cannot resolve.
	ErrUnknownZone = fmt.Errorf("%w: unknown zone", ErrClock)

	// ErrDomain errors denote timestamps requested relative to an
	// epoch that had not yet begun at the given instant.
	ErrDomain = fmt.Errorf("%w: domain", ErrClock)
)
