package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronal/chronal/clock/types"
)

func mustNew(t *testing.T, year int, month time.Month, day, hour, minute, second int) DateTime {
	t.Helper()
	d, err := New(year, month, day, hour, minute, second, 0, "UTC")
	require.NoError(t, err)
	return d
}

func TestPeriodDistance(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	start := mustNew(t, 2020, time.January, 1, 0, 0, 0)
	end := mustNew(t, 2020, time.January, 2, 6, 0, 0)

	forward := NewPeriod(start, end)
	backward := NewPeriod(end, start)

	// Distance is absolute regardless of endpoint order.
	a.Equal(types.Hours(30), forward.Distance())
	a.Equal(types.Hours(30), backward.Distance())
	a.True(forward.IsForward())
	a.False(backward.IsForward())

	a.True(start.IsEqual(forward.Start()))
	a.True(end.IsEqual(forward.End()))

	// Until and Since order the endpoints from the receiver's view.
	a.True(start.Until(end).IsForward())
	a.False(start.Since(end).IsForward())
	a.Equal(types.Hours(30), start.Until(end).Distance())

	// A degenerate period spans no time.
	a.True(NewPeriod(start, start).Distance().IsZero())
}

func TestPeriodIterate(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	start := mustNew(t, 2020, time.January, 1, 0, 0, 0)
	end := mustNew(t, 2020, time.January, 1, 0, 0, 10)

	seq, err := NewPeriod(start, end).Iterate(types.Seconds(3))
	r.NoError(err)

	// :00, :03, :06, :09; :12 would overshoot the end.
	r.Equal(4, seq.Len())
	exp := []string{
		"2020-01-01T00:00:00+00:00",
		"2020-01-01T00:00:03+00:00",
		"2020-01-01T00:00:06+00:00",
		"2020-01-01T00:00:09+00:00",
	}
	for i, str := range exp {
		el, ok := seq.At(i)
		r.True(ok)
		a.Equal(str, el.String())
	}

	_, ok := seq.At(4)
	a.False(ok)
	_, ok = seq.At(-1)
	a.False(ok)
}

func TestPeriodIterateExactFit(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	start := mustNew(t, 2020, time.January, 1, 0, 0, 0)
	end := mustNew(t, 2020, time.January, 1, 0, 0, 9)

	seq, err := NewPeriod(start, end).Iterate(types.Seconds(3))
	require.NoError(t, err)

	// The closing endpoint is produced when the step lands on it.
	a.Equal(4, seq.Len())
	last, ok := seq.At(seq.Len() - 1)
	require.True(t, ok)
	a.True(last.IsEqual(end))
}

func TestPeriodIterateDirection(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	start := mustNew(t, 2020, time.January, 1, 0, 0, 0)
	end := mustNew(t, 2020, time.January, 1, 0, 0, 10)

	// A descending period steps downward from its start.
	seq, err := NewPeriod(end, start).Iterate(types.Seconds(4))
	r.NoError(err)
	r.Equal(3, seq.Len())
	first, _ := seq.At(0)
	second, _ := seq.At(1)
	a.True(first.IsEqual(end))
	a.Equal("2020-01-01T00:00:06+00:00", second.String())

	// IterateBackward walks from the closing endpoint toward the
	// start. The sign of the step is immaterial.
	seq, err = NewPeriod(start, end).IterateBackward(types.Seconds(-4))
	r.NoError(err)
	r.Equal(3, seq.Len())
	first, _ = seq.At(0)
	a.True(first.IsEqual(end))

	// DateTime.Iterate picks the direction from the relative order.
	seq, err = end.Iterate(start, types.Seconds(4))
	r.NoError(err)
	first, _ = seq.At(0)
	a.True(first.IsEqual(end))
	last, _ := seq.At(seq.Len() - 1)
	a.True(last.IsAfterOrEqual(start))
}

func TestPeriodIterateZeroStep(t *testing.T) {
	t.Parallel()

	period := NewPeriod(
		mustNew(t, 2020, time.January, 1, 0, 0, 0),
		mustNew(t, 2020, time.January, 2, 0, 0, 0),
	)

	_, err := period.Iterate(types.Unit{})
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = period.IterateBackward(types.Seconds(0))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSequenceBoundsAndRestart(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	start := mustNew(t, 2020, time.March, 1, 0, 0, 0)
	end := mustNew(t, 2020, time.March, 10, 0, 0, 0)

	seq, err := NewPeriod(start, end).Iterate(types.Hours(7))
	require.NoError(t, err)

	// Every element lies within the interval, inclusive of the start.
	count := 0
	seq.Each(func(_ int, el DateTime) bool {
		a.True(el.IsAfterOrEqual(start))
		a.True(el.IsBeforeOrEqual(end))
		count++
		return true
	})
	a.Equal(seq.Len(), count)

	// Re-iterating yields the identical sequence.
	a.Equal(seq.All(), seq.All())

	// Each stops when the callback returns false.
	seen := 0
	seq.Each(func(i int, _ DateTime) bool {
		seen++
		return i < 2
	})
	a.Equal(3, seen)
}

func TestPeriodLeapSeconds(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	// 1992-01-01 through 1998-01-01 spans five insertions.
	period := NewPeriod(
		mustNew(t, 1992, time.January, 1, 0, 0, 0),
		mustNew(t, 1998, time.January, 1, 0, 0, 0),
	)

	table, err := period.LeapSeconds()
	r.NoError(err)
	a.Equal(5, table.Count())
	a.Equal(types.Seconds(5), table.OffsetTAI())

	// Order of the endpoints does not matter.
	flipped, err := NewPeriod(period.End(), period.Start()).LeapSeconds()
	r.NoError(err)
	a.Equal(5, flipped.Count())

	// A period outside the table is empty.
	empty, err := NewPeriod(
		mustNew(t, 2020, time.January, 1, 0, 0, 0),
		mustNew(t, 2024, time.January, 1, 0, 0, 0),
	).LeapSeconds()
	r.NoError(err)
	a.Equal(0, empty.Count())
}
