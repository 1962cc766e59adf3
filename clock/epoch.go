package clock

import (
	"fmt"
	"strings"
	"time"

	"github.com/chronal/chronal/clock/leap"
	"github.com/chronal/chronal/clock/types"
)

// Epoch enumerates the reference epochs a DateTime can be expressed
// against.
type Epoch int

const (
	// EpochUnix counts from 1970-01-01T00:00:00Z, ignoring leap
	// seconds.
	EpochUnix Epoch = iota

	// EpochUTC counts from 1972-01-01T00:00:00Z, the start of the
	// leap-second-adjusted UTC scale, and absorbs every leap second
	// inserted since.
	EpochUTC

	// EpochGPS counts from 1980-01-06T00:00:00Z. GPS time is
	// continuous; it diverges from UTC by exactly the leap seconds
	// inserted after its anchor.
	EpochGPS

	// EpochTAI counts from 1958-01-01T00:00:00Z, the origin of
	// International Atomic Time, a monotonic scale free of leap
	// seconds.
	EpochTAI
)

// anchorSeconds returns the epoch's anchor as Unix seconds.
func (e Epoch) anchorSeconds() int64 {
	switch e {
	case EpochUTC:
		return 63_072_000 // 1972-01-01T00:00:00Z
	case EpochGPS:
		return 315_964_800 // 1980-01-06T00:00:00Z
	case EpochTAI:
		return -378_691_200 // 1958-01-01T00:00:00Z
	default:
		return 0
	}
}

// anchor returns the epoch's anchor instant.
func (e Epoch) anchor() time.Time {
	return time.Unix(e.anchorSeconds(), 0).UTC()
}

// Date returns the DateTime at which e starts.
func (e Epoch) Date() DateTime {
	return FromUnix(e.anchorSeconds())
}

// DistanceTo returns the fixed, leap-second-independent span from e's
// anchor to other's anchor. The span is negative when other's anchor
// precedes e's.
func (e Epoch) DistanceTo(other Epoch) types.Unit {
	return types.Seconds(other.anchorSeconds() - e.anchorSeconds())
}

// String returns the name of e.
func (e Epoch) String() string {
	switch e {
	case EpochUnix:
		return "UNIX"
	case EpochUTC:
		return "UTC"
	case EpochGPS:
		return "GPS"
	case EpochTAI:
		return "TAI"
	default:
		return fmt.Sprintf("Epoch(%d)", int(e))
	}
}

// ParseEpoch resolves an epoch by name, case-insensitively. Returns an
// error wrapping ErrInvalidArgument for unknown names.
func ParseEpoch(name string) (Epoch, error) {
	switch strings.ToUpper(name) {
	case "UNIX":
		return EpochUnix, nil
	case "UTC":
		return EpochUTC, nil
	case "GPS":
		return EpochGPS, nil
	case "TAI":
		return EpochTAI, nil
	default:
		return 0, fmt.Errorf("%w: unknown epoch %q", ErrInvalidArgument, name)
	}
}

// Timestamp returns the span between epoch's anchor and d, expressed
// on epoch's own time scale: leap seconds inserted between the anchor
// and d are absorbed into the count for the UTC, GPS, and TAI scales,
// while the Unix scale ignores them. Uses the historical leap-second
// table from leap.Load. Returns an error wrapping ErrDomain if d
// precedes the epoch's anchor.
func (d DateTime) Timestamp(epoch Epoch) (types.Unit, error) {
	table, err := leap.Load()
	if err != nil {
		return types.Unit{}, err
	}
	return d.TimestampIn(epoch, table)
}

// TimestampIn is Timestamp against an explicit leap-second table,
// allowing a substitute for the historical one.
func (d DateTime) TimestampIn(epoch Epoch, table *leap.Table) (types.Unit, error) {
	if d.t.Before(epoch.anchor()) {
		return types.Unit{}, fmt.Errorf(
			"%w: %v precedes the %v epoch", ErrDomain, d, epoch,
		)
	}

	unix := d.UnixTimestamp()
	switch epoch {
	case EpochUnix:
		return unix, nil
	case EpochUTC, EpochTAI:
		// Every recorded adjustment up to d applies: the whole table
		// postdates both the Unix anchor and the start of adjusted
		// UTC, and TAI predates the table entirely.
		offset := table.Until(d.t).OffsetTAI()
		return unix.Sub(EpochUnix.DistanceTo(epoch)).Add(offset), nil
	case EpochGPS:
		// Only leap seconds inserted after the GPS anchor accumulate
		// as UTC-GPS skew.
		offset := table.Until(d.t).OffsetTAI().
			Sub(table.Until(epoch.anchor()).OffsetTAI())
		return unix.Sub(EpochUnix.DistanceTo(epoch)).Add(offset), nil
	default:
		return types.Unit{}, fmt.Errorf(
			"%w: unknown epoch %d", ErrInvalidArgument, int(epoch),
		)
	}
}
