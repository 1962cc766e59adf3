package clock

import (
	"fmt"
	"time"

	"github.com/chronal/chronal/clock/types"
)

// Parse parses src into a DateTime by iterating through the accepted
// ISO 8601 layouts: date-time with a "Z" or numeric UTC offset,
// date-time without a designator, and a bare date. The "T" separator
// may be a space, and seconds may carry up to six fractional digits.
//
// A parsed offset attaches as a fixed offset only; no zone identity is
// inferred from it. Values without a designator are taken as UTC.
// Returns an error wrapping ErrInvalidArgument if no layout matches.
func Parse(src string) (DateTime, error) {
	// Date-time with an explicit offset ("Z", "+02:00", or "+02").
	for _, layout := range []string{
		"2006-01-02T15:04:05.999999Z07:00",
		"2006-01-02 15:04:05.999999Z07:00",
		"2006-01-02T15:04:05.999999Z07",
		"2006-01-02 15:04:05.999999Z07",
	} {
		value, err := time.Parse(layout, src)
		if err == nil {
			return fromParsed(value)
		}
	}

	// Date-time without a designator: a UTC civil instant.
	for _, layout := range []string{
		"2006-01-02T15:04:05.999999",
		"2006-01-02 15:04:05.999999",
	} {
		value, err := time.Parse(layout, src)
		if err == nil {
			return DateTime{t: value.Truncate(time.Microsecond).UTC()}, nil
		}
	}

	// Bare date: midnight UTC.
	if value, err := time.Parse("2006-01-02", src); err == nil {
		return DateTime{t: value.UTC()}, nil
	}

	return DateTime{}, fmt.Errorf(
		"%w: format of %q is not recognized", ErrInvalidArgument, src,
	)
}

// fromParsed normalizes a parsed instant to microsecond resolution in
// an offset-only location, validating that the offset is within the
// representable range.
func fromParsed(value time.Time) (DateTime, error) {
	_, off := value.Zone()
	offset, err := types.NewOffset(off)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return DateTime{t: value.Truncate(time.Microsecond).In(offset.Location())}, nil
}
