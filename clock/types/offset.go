package types

import (
	"fmt"
	"time"
)

// Offset represents a fixed offset from UTC in seconds, independent of
// any named time zone. The zero value is UTC itself.
type Offset struct {
	seconds int
}

// maxOffsetSeconds bounds offsets to ±18:00, the widest range RFC 3339
// timestamps can carry. Real-world zones stay within ±14:00.
const maxOffsetSeconds = 18 * secondsPerHour

// NewOffset returns the Offset seconds east of UTC. Returns an error
// if seconds lies outside ±18:00.
func NewOffset(seconds int) (Offset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return Offset{}, fmt.Errorf(
			"%w: UTC offset %d out of range ±%d seconds",
			ErrType, seconds, maxOffsetSeconds,
		)
	}
	return Offset{seconds}, nil
}

// OffsetOf returns the Offset of t's zone at the instant t.
func OffsetOf(t time.Time) Offset {
	_, off := t.Zone()
	return Offset{off}
}

// offsetFormat represents the canonical string format for Offset
// values.
const offsetFormat = "-07:00"

// ParseOffset parses the canonical "±HH:MM" rendering of an offset.
// "Z" and "z" parse as UTC.
func ParseOffset(src string) (Offset, error) {
	if src == "Z" || src == "z" {
		return Offset{}, nil
	}
	parsed, err := time.Parse(offsetFormat, src)
	if err != nil {
		return Offset{}, fmt.Errorf(
			"%w: Cannot parse %q as %q", ErrType, src, offsetFormat,
		)
	}
	return NewOffset(OffsetOf(parsed).seconds)
}

// InSeconds returns the signed offset from UTC in seconds.
func (o Offset) InSeconds() int {
	return o.seconds
}

// IsUTC reports whether o is the zero offset.
func (o Offset) IsUTC() bool {
	return o.seconds == 0
}

// Compare compares the offsets o and p. If o is west of p, it returns
// -1; if o is east of p, it returns +1; if they're the same, it
// returns 0.
func (o Offset) Compare(p Offset) int {
	switch {
	case o.seconds < p.seconds:
		return -1
	case o.seconds > p.seconds:
		return 1
	default:
		return 0
	}
}

// Location returns an offset-only time.Location fixed at o.
func (o Offset) Location() *time.Location {
	if o.seconds == 0 {
		return time.UTC
	}
	return time.FixedZone("", o.seconds)
}

// String returns the string representation of o using the format
// "±HH:MM".
func (o Offset) String() string {
	sec := o.seconds
	sign := "+"
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	return fmt.Sprintf("%s%02d:%02d", sign, sec/secondsPerHour, sec%secondsPerHour/secondsPerMinute)
}

// MarshalJSON implements the json.Marshaler interface. The offset is a
// quoted string in the "±HH:MM" format.
func (o Offset) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The offset
// must be a quoted string in the "±HH:MM" format or "Z".
func (o *Offset) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return fmt.Errorf("%w: Cannot parse %s as %q", ErrType, data, offsetFormat)
	}
	parsed, err := ParseOffset(str[1 : len(str)-1])
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
