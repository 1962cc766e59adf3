package clock

import (
	"fmt"
	"time"

	"github.com/chronal/chronal/clock/types"
)

// DateTime represents a concrete civil instant: a proleptic Gregorian
// calendar day, a time of day with microsecond resolution, an optional
// named time zone, and the UTC offset resolved for that instant. The
// zero value is the proleptic Gregorian origin at UTC.
type DateTime struct {
	// t carries the absolute instant in the presentation location:
	// the named zone's location, or an offset-only one.
	t time.Time

	// zone is the named zone, or empty for offset-only values.
	zone string
}

// New constructs a DateTime from civil fields in the named time zone
// and resolves the zone's UTC offset at that instant. An empty zone
// name means UTC. Returns an error wrapping ErrUnknownZone if the zone
// database cannot resolve zone, or ErrInvalidArgument if the fields do
// not name a real calendar date and time of day.
func New(year int, month time.Month, day, hour, minute, second, micro int, zone string) (DateTime, error) {
	loc, err := resolveZone(zone)
	if err != nil {
		return DateTime{}, err
	}
	t, err := civilTime(year, month, day, hour, minute, second, micro, loc)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{t: t, zone: zone}, nil
}

// NewAt constructs an offset-only DateTime from civil fields at a
// fixed UTC offset. The result carries no zone identity.
func NewAt(year int, month time.Month, day, hour, minute, second, micro int, offset types.Offset) (DateTime, error) {
	t, err := civilTime(year, month, day, hour, minute, second, micro, offset.Location())
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{t: t}, nil
}

// NewInZone constructs a DateTime from civil fields with both a named
// zone and an explicit offset. The zone must resolve to exactly offset
// at that civil instant; otherwise construction fails with an error
// wrapping ErrInvalidArgument.
func NewInZone(year int, month time.Month, day, hour, minute, second, micro int, zone string, offset types.Offset) (DateTime, error) {
	d, err := New(year, month, day, hour, minute, second, micro, zone)
	if err != nil {
		return DateTime{}, err
	}
	if got := d.Offset(); got.Compare(offset) != 0 {
		return DateTime{}, fmt.Errorf(
			"%w: zone %q resolves to %v at %v, not %v",
			ErrInvalidArgument, zone, got, d, offset,
		)
	}
	return d, nil
}

// FromUnix reconstructs the UTC civil instant sec seconds after (or,
// when negative, before) 1970-01-01T00:00:00Z.
func FromUnix(sec int64) DateTime {
	return DateTime{t: time.Unix(sec, 0).UTC()}
}

// FromUnixMicro reconstructs the UTC civil instant usec microseconds
// after the Unix epoch.
func FromUnixMicro(usec int64) DateTime {
	return DateTime{t: time.UnixMicro(usec).UTC()}
}

// resolveZone looks name up in the zone database. An empty name
// resolves to UTC.
func resolveZone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return loc, nil
}

// civilTime builds a time.Time from civil fields in loc and rejects
// fields time.Date would normalize away, such as February 30 or a
// local time skipped by a daylight-saving transition.
func civilTime(year int, month time.Month, day, hour, minute, second, micro int, loc *time.Location) (time.Time, error) {
	if micro < 0 || micro >= 1_000_000 {
		return time.Time{}, fmt.Errorf(
			"%w: microsecond %d out of range", ErrInvalidArgument, micro,
		)
	}
	t := time.Date(year, month, day, hour, minute, second, micro*1000, loc)
	if t.Year() != year || t.Month() != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, fmt.Errorf(
			"%w: %04d-%02d-%02dT%02d:%02d:%02d is not a valid civil time",
			ErrInvalidArgument, year, month, day, hour, minute, second,
		)
	}
	return t, nil
}

// Year returns the calendar year of d.
func (d DateTime) Year() int { return d.t.Year() }

// Month returns the calendar month of d.
func (d DateTime) Month() time.Month { return d.t.Month() }

// Day returns the day of month of d.
func (d DateTime) Day() int { return d.t.Day() }

// Hour returns the hour of day of d.
func (d DateTime) Hour() int { return d.t.Hour() }

// Minute returns the minute of d.
func (d DateTime) Minute() int { return d.t.Minute() }

// Second returns the second of d.
func (d DateTime) Second() int { return d.t.Second() }

// Microsecond returns the microsecond fraction of d.
func (d DateTime) Microsecond() int { return d.t.Nanosecond() / 1000 }

// Zone returns the named zone of d, or ok == false for offset-only
// values.
func (d DateTime) Zone() (name string, ok bool) {
	return d.zone, d.zone != ""
}

// Offset returns the resolved UTC offset of d at its own instant.
func (d DateTime) Offset() types.Offset {
	return types.OffsetOf(d.t)
}

// GoTime returns the underlying time.Time object.
func (d DateTime) GoTime() time.Time { return d.t }

// Add returns d shifted forward by u. For values carrying a named
// zone, the offset is re-resolved at the shifted instant, so additions
// crossing a daylight-saving transition land on the correct local
// time.
func (d DateTime) Add(u types.Unit) DateTime {
	return DateTime{t: d.t.Add(u.Duration()), zone: d.zone}
}

// Sub returns d shifted backward by u.
func (d DateTime) Sub(u types.Unit) DateTime {
	return d.Add(u.Negate())
}

// AddSeconds returns d shifted forward by n seconds.
func (d DateTime) AddSeconds(n int64) DateTime { return d.Add(types.Seconds(n)) }

// AddMinutes returns d shifted forward by n minutes.
func (d DateTime) AddMinutes(n int64) DateTime { return d.Add(types.Minutes(n)) }

// AddHours returns d shifted forward by n hours.
func (d DateTime) AddHours(n int64) DateTime { return d.Add(types.Hours(n)) }

// AddDays returns d moved n calendar days later at the same local time
// of day, re-resolving the zone offset at the new date.
func (d DateTime) AddDays(n int) DateTime {
	return DateTime{t: d.t.AddDate(0, 0, n), zone: d.zone}
}

// SubDays returns d moved n calendar days earlier.
func (d DateTime) SubDays(n int) DateTime { return d.AddDays(-n) }

// AddDay returns d moved one calendar day later.
func (d DateTime) AddDay() DateTime { return d.AddDays(1) }

// SubDay returns d moved one calendar day earlier.
func (d DateTime) SubDay() DateTime { return d.AddDays(-1) }

// AddMonths returns d moved n calendar months later. When the day of
// month does not exist in the target month it clamps to the last day:
// January 31 plus one month is February 29 in a leap year and February
// 28 otherwise, never a rollover into March.
func (d DateTime) AddMonths(n int) DateTime {
	year, month, day := d.t.Date()
	// Shift from the first of the month so the target month can't
	// itself normalize away.
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	t := time.Date(
		first.Year(), first.Month(), day,
		d.t.Hour(), d.t.Minute(), d.t.Second(), d.t.Nanosecond(),
		d.t.Location(),
	)
	return DateTime{t: t, zone: d.zone}
}

// SubMonths returns d moved n calendar months earlier, with the same
// end-of-month clamping as AddMonths.
func (d DateTime) SubMonths(n int) DateTime { return d.AddMonths(-n) }

// AddMonth returns d moved one calendar month later.
func (d DateTime) AddMonth() DateTime { return d.AddMonths(1) }

// SubMonth returns d moved one calendar month earlier.
func (d DateTime) SubMonth() DateTime { return d.AddMonths(-1) }

// AddYears returns d moved n calendar years later, clamping February
// 29 to February 28 in non-leap target years.
func (d DateTime) AddYears(n int) DateTime { return d.AddMonths(12 * n) }

// SubYears returns d moved n calendar years earlier.
func (d DateTime) SubYears(n int) DateTime { return d.AddMonths(-12 * n) }

// AddYear returns d moved one calendar year later.
func (d DateTime) AddYear() DateTime { return d.AddYears(1) }

// SubYear returns d moved one calendar year earlier.
func (d DateTime) SubYear() DateTime { return d.AddYears(-1) }

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ToZone re-expresses the same absolute instant in the named zone.
// Only the civil fields and offset change; the UTC equivalent is
// invariant.
func (d DateTime) ToZone(zone string) (DateTime, error) {
	loc, err := resolveZone(zone)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{t: d.t.In(loc), zone: zone}, nil
}

// ToOffset re-expresses the same absolute instant at a fixed UTC
// offset, dropping any zone identity.
func (d DateTime) ToOffset(offset types.Offset) DateTime {
	return DateTime{t: d.t.In(offset.Location())}
}

// ToUTC re-expresses the same absolute instant at UTC.
func (d DateTime) ToUTC() DateTime {
	return d.ToOffset(types.Offset{})
}

// Compare compares the absolute instants of d and u, regardless of the
// zones they are expressed in. If d is before u, it returns -1; if d
// is after u, it returns +1; if they're the same instant, it returns
// 0.
func (d DateTime) Compare(u DateTime) int {
	return d.t.Compare(u.t)
}

// IsEqual reports whether d and u are the same absolute instant. Two
// DateTimes in different zones are equal when their UTC equivalents
// coincide.
func (d DateTime) IsEqual(u DateTime) bool { return d.Compare(u) == 0 }

// IsBefore reports whether the instant d precedes u.
func (d DateTime) IsBefore(u DateTime) bool { return d.Compare(u) < 0 }

// IsAfter reports whether the instant d follows u.
func (d DateTime) IsAfter(u DateTime) bool { return d.Compare(u) > 0 }

// IsBeforeOrEqual reports whether d does not follow u.
func (d DateTime) IsBeforeOrEqual(u DateTime) bool { return d.Compare(u) <= 0 }

// IsAfterOrEqual reports whether d does not precede u.
func (d DateTime) IsAfterOrEqual(u DateTime) bool { return d.Compare(u) >= 0 }

// UnixTimestamp returns the signed span between the Unix epoch and d:
// elapsed seconds plus d's microsecond fraction, not counting leap
// seconds. Instants before 1970 yield negative spans.
func (d DateTime) UnixTimestamp() types.Unit {
	return types.Microseconds(d.t.Unix()*1_000_000 + int64(d.t.Nanosecond()/1000))
}

// Until returns the Period from d to other.
func (d DateTime) Until(other DateTime) Period {
	return Period{start: d, end: other}
}

// Since returns the Period from other to d.
func (d DateTime) Since(other DateTime) Period {
	return Period{start: other, end: d}
}

// Iterate steps from d to until by the given span, forward or backward
// depending on which endpoint comes first. Returns an error wrapping
// ErrInvalidArgument if by is zero.
func (d DateTime) Iterate(until DateTime, by types.Unit) (Sequence, error) {
	return d.Until(until).Iterate(by)
}

// dateTimeFormat represents the canonical string format for DateTime
// values: ISO 8601 with a numeric offset and up to six fractional
// digits.
const dateTimeFormat = "2006-01-02T15:04:05.999999-07:00"

// String returns the string representation of d using the format
// "2006-01-02T15:04:05.999999-07:00".
func (d DateTime) String() string {
	return d.t.Format(dateTimeFormat)
}

// MarshalJSON implements the json.Marshaler interface. The time is a
// quoted string using the "2006-01-02T15:04:05.999999-07:00" format.
func (d DateTime) MarshalJSON() ([]byte, error) {
	const dateTimeJSONSize = len(dateTimeFormat) + len(`""`)
	b := make([]byte, 0, dateTimeJSONSize)
	b = append(b, '"')
	b = d.t.AppendFormat(b, dateTimeFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time
// must be a quoted string in a format accepted by Parse.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return fmt.Errorf(
			"%w: cannot parse %s as %q", ErrInvalidArgument, data, dateTimeFormat,
		)
	}
	parsed, err := Parse(str[1 : len(str)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
