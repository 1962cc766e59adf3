// Package types provides the leaf value types for the clock package:
// signed durations with microsecond resolution and fixed UTC offsets.
//
// Both types are immutable values; every arithmetic operation returns a
// new value and no operation touches shared state.
package types

import "errors"

// ErrType wraps errors returned by the types package.
var ErrType = errors.New("type")

const (
	// microsPerSecond contains the number of microseconds in a second.
	microsPerSecond = 1_000_000

	// secondsPerMinute contains the number of seconds in a minute.
	secondsPerMinute = 60

	// secondsPerHour contains the number of seconds in an hour (excluding
	// leap seconds).
	secondsPerHour = 60 * secondsPerMinute

	// secondsPerDay contains the number of seconds in a civil day
	// (excluding leap seconds).
	secondsPerDay = 24 * secondsPerHour
)
