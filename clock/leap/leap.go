// Package leap provides the historical table of UTC leap-second
// adjustments and the range queries the epoch conversions are built on.
//
// The table is loaded once per process from an embedded data set and
// never changes afterward; every query returns a fresh immutable view.
package leap

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chronal/chronal/clock/types"
)

// ErrData wraps consistency errors detected in leap-second data.
var ErrData = errors.New("leap data")

// Record represents one UTC adjustment event: the UTC instant at which
// the new UTC-TAI relation took effect and the signed number of seconds
// the event contributed. The 1972 alignment step contributed +10; every
// later event is a single inserted (+1) or, hypothetically, removed
// (-1) leap second.
type Record struct {
	Time time.Time
	Step int
}

// Table is an immutable, ordered view over leap-second records. The
// zero value is an empty table.
type Table struct {
	records []Record
}

//nolint:gochecknoglobals
var (
	loadOnce sync.Once
	loaded   *Table
	loadErr  error
)

// Load returns the table of all known leap-second adjustments through
// the most recent insertion. The embedded data set is parsed and
// validated on first call; subsequent calls return the same cached
// table. Returns an error wrapping ErrData if the embedded data fails
// its consistency checks.
func Load() (*Table, error) {
	loadOnce.Do(func() {
		loaded, loadErr = NewTable(history())
	})
	return loaded, loadErr
}

// NewTable validates records and returns them as a Table. The records
// must be sorted by time in strictly increasing order and each step
// must be nonzero. Substitute tables built here can stand in for the
// historical one in epoch conversions.
func NewTable(records []Record) (*Table, error) {
	for i, rec := range records {
		if rec.Step == 0 {
			return nil, fmt.Errorf(
				"%w: record %d at %v has a zero step",
				ErrData, i, rec.Time,
			)
		}
		if i == 0 {
			continue
		}
		if !records[i-1].Time.Before(rec.Time) {
			return nil, fmt.Errorf(
				"%w: record %d at %v does not follow %v",
				ErrData, i, rec.Time, records[i-1].Time,
			)
		}
	}
	return &Table{records}, nil
}

// Until returns the view of t holding the records at or before point.
func (t *Table) Until(point time.Time) *Table {
	for i, rec := range t.records {
		if rec.Time.After(point) {
			return &Table{t.records[:i]}
		}
	}
	return &Table{t.records}
}

// Since returns the view of t holding the records at or after point.
func (t *Table) Since(point time.Time) *Table {
	for i, rec := range t.records {
		if !rec.Time.Before(point) {
			return &Table{t.records[i:]}
		}
	}
	return &Table{}
}

// OffsetTAI returns the cumulative signed offset between TAI and UTC
// implied by the records in t: the sum of every record's step.
func (t *Table) OffsetTAI() types.Unit {
	var sum int64
	for _, rec := range t.records {
		sum += int64(rec.Step)
	}
	return types.Seconds(sum)
}

// Count returns the number of adjustment events in t.
func (t *Table) Count() int {
	return len(t.records)
}

// Records returns a copy of the records in t, oldest first.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}
