package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unit represents a signed span of time with second and microsecond
// resolution. The sign is carried once for the whole value; the seconds
// and microseconds components are magnitudes, with the microsecond
// fraction always in [0, 1_000_000).
type Unit struct {
	negative bool
	seconds  int64
	micros   int32
}

// Seconds returns a Unit spanning s whole seconds.
func Seconds(s int64) Unit {
	return fromTotalMicros(s * microsPerSecond)
}

// Microseconds returns a Unit spanning us microseconds.
func Microseconds(us int64) Unit {
	return fromTotalMicros(us)
}

// Minutes returns a Unit spanning m minutes.
func Minutes(m int64) Unit {
	return Seconds(m * secondsPerMinute)
}

// Hours returns a Unit spanning h hours.
func Hours(h int64) Unit {
	return Seconds(h * secondsPerHour)
}

// Days returns a Unit spanning d civil days of 86400 seconds.
func Days(d int64) Unit {
	return Seconds(d * secondsPerDay)
}

// FromDuration converts d to a Unit, truncating sub-microsecond
// precision toward zero.
func FromDuration(d time.Duration) Unit {
	return fromTotalMicros(d.Microseconds())
}

// fromTotalMicros normalizes a signed microsecond count into a Unit.
// The zero span is always non-negative.
func fromTotalMicros(total int64) Unit {
	neg := total < 0
	if neg {
		total = -total
	}
	return Unit{
		negative: neg,
		seconds:  total / microsPerSecond,
		micros:   int32(total % microsPerSecond),
	}
}

// totalMicros returns the signed microsecond count of u.
func (u Unit) totalMicros() int64 {
	total := u.seconds*microsPerSecond + int64(u.micros)
	if u.negative {
		return -total
	}
	return total
}

// InSeconds returns the signed whole-second component of u, truncated
// toward zero.
func (u Unit) InSeconds() int64 {
	if u.negative {
		return -u.seconds
	}
	return u.seconds
}

// Microsecond returns the magnitude of the microsecond fraction of u,
// in [0, 1_000_000).
func (u Unit) Microsecond() int {
	return int(u.micros)
}

// IsZero reports whether u spans no time at all.
func (u Unit) IsZero() bool {
	return u.seconds == 0 && u.micros == 0
}

// IsPositive reports whether u is non-negative. The zero span counts
// as positive.
func (u Unit) IsPositive() bool {
	return !u.negative
}

// IsNegative reports whether u spans time in the negative direction.
func (u Unit) IsNegative() bool {
	return u.negative
}

// Add returns the sum of u and v.
func (u Unit) Add(v Unit) Unit {
	return fromTotalMicros(u.totalMicros() + v.totalMicros())
}

// Sub returns the difference of u and v.
func (u Unit) Sub(v Unit) Unit {
	return fromTotalMicros(u.totalMicros() - v.totalMicros())
}

// Negate returns u with its sign flipped. Negating the zero span
// returns the zero span.
func (u Unit) Negate() Unit {
	return fromTotalMicros(-u.totalMicros())
}

// Abs returns the non-negative span with the magnitude of u.
func (u Unit) Abs() Unit {
	u.negative = false
	return u
}

// Multiply returns u scaled by k.
func (u Unit) Multiply(k int64) Unit {
	return fromTotalMicros(u.totalMicros() * k)
}

// Compare compares the spans u and v. If u is shorter than v, it
// returns -1; if u is longer than v, it returns +1; if they're the
// same, it returns 0.
func (u Unit) Compare(v Unit) int {
	a, b := u.totalMicros(), v.totalMicros()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Duration converts u to a time.Duration with microsecond resolution.
func (u Unit) Duration() time.Duration {
	return time.Duration(u.totalMicros()) * time.Microsecond
}

// String returns the canonical decimal rendering of u in seconds, with
// a six-digit microsecond fraction, e.g. "-12.000300".
func (u Unit) String() string {
	sign := ""
	if u.negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%06d", sign, u.seconds, u.micros)
}

// MarshalJSON implements the json.Marshaler interface. The span is a
// quoted string in the canonical decimal rendering.
func (u Unit) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The span
// must be a quoted string in the canonical decimal rendering.
func (u *Unit) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return fmt.Errorf("%w: Cannot parse %s as a time unit", ErrType, data)
	}
	parsed, err := ParseUnit(str[1 : len(str)-1])
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUnit parses the canonical decimal rendering of a Unit, e.g.
// "3600.000000" or "-0.000014". The fraction is optional and may carry
// up to six digits.
func ParseUnit(src string) (Unit, error) {
	rest := src
	neg := strings.HasPrefix(rest, "-")
	if neg {
		rest = rest[1:]
	}

	secPart, usPart, hasFrac := strings.Cut(rest, ".")
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return Unit{}, fmt.Errorf("%w: Cannot parse %q as a time unit", ErrType, src)
	}

	var us int64
	if hasFrac {
		if len(usPart) == 0 || len(usPart) > 6 {
			return Unit{}, fmt.Errorf("%w: Cannot parse %q as a time unit", ErrType, src)
		}
		us, err = strconv.ParseInt(usPart, 10, 64)
		if err != nil {
			return Unit{}, fmt.Errorf("%w: Cannot parse %q as a time unit", ErrType, src)
		}
		// Scale short fractions up to microseconds.
		for i := len(usPart); i < 6; i++ {
			us *= 10
		}
	}

	total := sec*microsPerSecond + us
	if neg {
		total = -total
	}
	return fromTotalMicros(total), nil
}
